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

// Package dialect rewrites tokenized Z80 source lines for a target assembler
// and renders them as text.
//
// Two dialects are supported:
//
//	zds        Zilog ZDS II. EXTRN/GLOBAL become XREF/XDEF, DEFx data
//	           directives become DB/DW/DS and the AND/OR expression operators
//	           become & and |.
//	sjasmplus  module based. Imports and exports are expressed by the
//	           MODULE/ENDMODULE block around the file, EXTRN/GLOBAL lines are
//	           commented out and exported labels get the @ prefix.
//
// Both dialects append an underscore to labels and symbol references that
// collide with one of their reserved words.
package dialect

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/pkg/errors"
)

// ErrUnknown is returned by Lookup for unsupported dialect names.
var ErrUnknown = errors.New("unsupported dialect")

// SymbolSet is implemented by symbol sets, like the exports of a unit.
type SymbolSet interface {
	Has(name string) bool
}

// Dialect describes the syntax rules of a target assembler.
//
// Dialect values are immutable and safe for concurrent use.
type Dialect struct {
	name     string
	dir      string
	ext      string
	reserved map[string]struct{}
	prologue func(module string) []string
	epilogue []string
	rewrite  func(l asm.Line, exported bool) asm.Line
}

func newDialect(name, ext string, reserved []string) *Dialect {
	d := &Dialect{
		name:     name,
		dir:      name,
		ext:      ext,
		reserved: make(map[string]struct{}, len(reserved)),
	}
	for _, w := range reserved {
		d.reserved[strings.ToUpper(w)] = struct{}{}
	}
	return d
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return d.name }

// IsReserved returns true if word is a reserved word of the dialect. The test
// is not case sensitive.
func (d *Dialect) IsReserved(word string) bool {
	_, ok := d.reserved[strings.ToUpper(word)]
	return ok
}

// Prologue returns the raw source lines opening a module.
func (d *Dialect) Prologue(module string) []string {
	if d.prologue == nil {
		return nil
	}
	return d.prologue(module)
}

// Epilogue returns the raw source lines closing a module.
func (d *Dialect) Epilogue() []string {
	return append([]string(nil), d.epilogue...)
}

// OutputPath returns the name of the file to write the translation of source
// file src to. It lives in a sub directory named after the dialect, next to
// src.
func (d *Dialect) OutputPath(src string) string {
	base := filepath.Base(src)
	if d.ext != "" {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + d.ext
	}
	return filepath.Join(filepath.Dir(src), d.dir, base)
}

var dialects = map[string]*Dialect{
	ZDS.name:       ZDS,
	Sjasmplus.name: Sjasmplus,
}

// Lookup returns the dialect with the given name.
func Lookup(name string) (*Dialect, error) {
	if d, ok := dialects[name]; ok {
		return d, nil
	}
	return nil, errors.Wrapf(ErrUnknown, "%q (supported: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the names of all supported dialects in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
