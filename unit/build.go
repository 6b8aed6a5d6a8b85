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

package unit

import (
	"time"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/breakintoprogram/agon-bbc-basic-v/hints"
	"github.com/golang/glog"
)

// TimeFormat is the layout of the time stamp in the banner.
const TimeFormat = "2006-01-02 15:04:05"

type builder struct {
	x    *asm.Extractor
	now  func() time.Time
	name string
}

// BuildOption configures Build.
type BuildOption func(*builder)

// Extractor sets the extractor used to tokenize inserted lines. The default
// is asm.Default.
func Extractor(x *asm.Extractor) BuildOption {
	return func(b *builder) { b.x = x }
}

// Clock sets the function returning the time stamp of the banner. The default
// is time.Now.
func Clock(now func() time.Time) BuildOption {
	return func(b *builder) { b.now = now }
}

// Build returns a new unit made from u by, in order:
//
//   - inserting the autogeneration banner,
//   - inserting the dialect's module opening lines and the file's extra
//     directives,
//   - collecting the EXTRN symbols into Imports and the GLOBAL symbols into
//     Exports, while applying the file's patch rules,
//   - appending the dialect's module closing lines.
//
// Imports and exports are collected from the lines as they were before
// patching. u is not modified.
func Build(u *Unit, opts ...BuildOption) *Unit {
	b := builder{x: asm.Default, now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}

	b.name = u.Name
	nu := *u
	nu.Imports = make(Symbols)
	nu.Exports = make(Symbols)

	head := []string{
		";",
		";Automatically created from original source on " + b.now().Format(TimeFormat),
	}
	if u.Dialect != nil {
		head = append(head, u.Dialect.Prologue(u.Name)...)
	}
	head = append(head, u.Hints.Directives...)

	in := make([]asm.Line, 0, len(head)+len(u.Lines))
	in = append(in, b.x.ParseAll(head)...)
	in = append(in, u.Lines...)

	out := make([]asm.Line, 0, len(in)+2)
	for _, l := range in {
		switch l.Directive() {
		case "EXTRN":
			nu.Imports.Add(l.Ref)
		case "GLOBAL":
			nu.Exports.Add(l.Ref)
		}
		out = b.patch(out, l, u.Hints.Rules)
	}

	if u.Dialect != nil {
		out = append(out, b.x.ParseAll(u.Dialect.Epilogue())...)
	}
	nu.Lines = out
	return &nu
}

// patch appends l to out, with the patch rules applied. Every matching rule
// inserts its lines, but only the first replacement takes effect. Rules are
// always tested against the original statement.
func (b *builder) patch(out []asm.Line, l asm.Line, rules []hints.Rule) []asm.Line {
	var repl *asm.Line
	for i := range rules {
		r := &rules[i]
		if !r.Matches(l.Statement) {
			continue
		}
		if glog.V(1) {
			glog.Infof("%s: patch %q", b.name, r.Trigger)
		}
		out = append(out, b.x.ParseAll(r.Prepend)...)
		if r.Replace != nil && repl == nil {
			nl := b.x.Parse(*r.Replace)
			repl = &nl
		}
	}
	if repl != nil {
		return append(out, *repl)
	}
	return append(out, l)
}
