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

// Package unit builds translation units: the tokenized lines of one source
// file together with the symbols it imports and exports.
package unit

import (
	"bufio"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
	"github.com/breakintoprogram/agon-bbc-basic-v/hints"
	"github.com/pkg/errors"
)

// Symbols is a set of symbol names.
type Symbols map[string]struct{}

// Add adds name to the set. Empty names are ignored.
func (s Symbols) Add(name string) {
	if name != "" {
		s[name] = struct{}{}
	}
}

// Has returns true if name is in the set.
func (s Symbols) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in the set in alphabetical order.
func (s Symbols) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Unit is a translation unit.
type Unit struct {
	Name    string // module name, the source file name without extension
	Path    string // source file
	Lines   []asm.Line
	Imports Symbols // defined elsewhere, used here
	Exports Symbols // defined here, used elsewhere
	Dialect *dialect.Dialect
	Column  int // label column width
	Hints   hints.FileHints
}

// ModuleName returns the module name for the given source file.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// New returns a new unit for source file path, made of the given raw lines.
func New(path string, raw []string, x *asm.Extractor) *Unit {
	return &Unit{
		Name:    ModuleName(path),
		Path:    path,
		Lines:   x.ParseAll(raw),
		Imports: make(Symbols),
		Exports: make(Symbols),
	}
}

// Read reads a unit for source file path from r. If skipFirst is true, the
// first line of the source is discarded. Lines longer than 1MiB are rejected
// with bufio.ErrTooLong.
func Read(path string, r io.Reader, skipFirst bool, x *asm.Extractor) (*Unit, error) {
	var raw []string
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	for s.Scan() {
		if skipFirst {
			skipFirst = false
			continue
		}
		raw = append(raw, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return New(path, raw, x), nil
}

// Render renders every line of the unit with r and passes the resulting text
// to emit, stopping at the first error. Lines that render to nothing are
// skipped.
func (u *Unit) Render(r *dialect.Renderer, emit func(string) error) error {
	for _, l := range u.Lines {
		s, ok := r.Render(l, u.Exports)
		if !ok {
			continue
		}
		if err := emit(s); err != nil {
			return err
		}
	}
	return nil
}
