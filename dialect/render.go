// This file is part of agon-bbc-basic-v - https://github.com/breakintoprogram/agon-bbc-basic-v
//
// Copyright 2024 The agon-bbc-basic-v Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dialect

import (
	"strings"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
)

// Renderer rewrites lines for a dialect and renders them as text, with labels
// padded to a fixed column.
//
// A Renderer has no mutable state: rendering the same line twice with the
// same arguments yields the same text.
type Renderer struct {
	d      *Dialect
	column int
}

// NewRenderer returns a new Renderer for dialect d. The column parameter is the
// width labels are padded to, colon included.
func NewRenderer(d *Dialect, column int) *Renderer {
	return &Renderer{d, column}
}

// Dialect returns the target dialect.
func (r *Renderer) Dialect() *Dialect { return r.d }

// Rewrite applies the reserved word guard and the dialect specific rewrite
// rules to l. The exports parameter holds the symbols the enclosing module
// exports. It may be nil.
func (r *Renderer) Rewrite(l asm.Line, exports SymbolSet) asm.Line {
	exported := l.Label != "" && exports != nil && exports.Has(l.Label)
	if l.Label != "" && r.d.IsReserved(l.Label) {
		l.Label += "_"
	}
	if l.Ref != "" && r.d.IsReserved(l.Ref) {
		l.Statement = replaceWords(l.Statement, l.Ref, l.Ref+"_", atStart)
	}
	if r.d.rewrite != nil {
		l = r.d.rewrite(l, exported)
	}
	return l
}

// Render rewrites l and returns its text. The boolean result is false if the
// line renders to nothing and should be omitted from the output.
//
// Lines with a label or a statement are rendered as the padded label, the
// statement, a tab and the comment, even if the comment is empty.
func (r *Renderer) Render(l asm.Line, exports SymbolSet) (string, bool) {
	l = r.Rewrite(l, exports)
	if l.Label == "" && l.Statement == "" {
		return l.Comment, l.Comment != ""
	}
	var b strings.Builder
	if l.Label != "" {
		b.WriteString(l.Label)
		b.WriteByte(':')
	}
	for n := b.Len(); n < r.column; n++ {
		b.WriteByte(' ')
	}
	b.WriteString(l.Statement)
	b.WriteByte('\t')
	b.WriteString(l.Comment)
	return b.String(), true
}
