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

package asm

import (
	"regexp"
	"strings"
)

// Line holds the lexical parts of one physical source line. Absent parts are
// empty strings.
type Line struct {
	Label     string // identifier defined in column 0
	Statement string // instruction or directive text
	Comment   string // trailing comment, including its leading ';'
	Ref       string // symbol defined or referenced by Statement
}

// IsBlank returns true if the line has no label, no statement and no comment.
func (l Line) IsBlank() bool {
	return l.Label == "" && l.Statement == "" && l.Comment == ""
}

// Directive returns the leading token of the statement.
func (l Line) Directive() string {
	return LeadingToken(l.Statement)
}

// Z80 lists the Z80 register names followed by the condition flags.
var Z80 = []string{
	"A", "B", "C", "D", "E", "H", "L", "I", "R",
	"IXL", "IXH", "IYL", "IYH",
	"AF", "BC", "DE", "HL", "IX", "IY", "SP", "PC",
	"NC", "Z", "NZ", "M", "P", "PE", "PO",
}

const (
	ident     = `([A-Za-z]\w*)`
	condition = `(?:C|NC|Z|NZ|M|P|PE|PO)`
	register  = `(?:A|B|C|D|E|H|L|BC|DE|HL|IX|IY|SP)`
)

// extraction rules, first match wins. Later rules are shadowed by earlier,
// broader ones, so the order matters.
var rules = [...]string{
	// conditional jump or call
	`^(?:CALL|JR|JP)\s+` + condition + `\s*,\s*` + ident,
	// direct reference
	`^(?:DEFW|GLOBAL|EXTRN|CALL|CP|DJNZ|JR|JP|RST)\s+` + ident,
	// load from memory
	`^(?:LD|IN)\s+` + register + `\s*,\s*\(?` + ident,
	// store to memory
	`^(?:LD|OUT)\s+\(` + ident + `\)\s*,\s*` + register,
}

// Extractor finds the identifier a statement defines or references.
//
// An Extractor is immutable once created and is safe for concurrent use.
type Extractor struct {
	rules []*regexp.Regexp
	regs  map[string]struct{}
}

// NewExtractor returns an Extractor that will never report one of the given
// register or flag names as a symbol, except in GLOBAL and EXTRN directives.
// Names are matched case-insensitively.
func NewExtractor(registers []string) *Extractor {
	x := &Extractor{
		rules: make([]*regexp.Regexp, len(rules)),
		regs:  make(map[string]struct{}, len(registers)),
	}
	for i, r := range rules {
		x.rules[i] = regexp.MustCompile(r)
	}
	for _, r := range registers {
		x.regs[strings.ToUpper(r)] = struct{}{}
	}
	return x
}

// Default is an Extractor for the Z80 register set.
var Default = NewExtractor(Z80)

// IsRegister returns true if name is one of the Extractor's register or flag
// names.
func (x *Extractor) IsRegister(name string) bool {
	_, ok := x.regs[strings.ToUpper(name)]
	return ok
}

// Extract returns the symbol defined or referenced by stmt, or an empty string
// if the statement has no recognizable shape or the candidate is a register.
func (x *Extractor) Extract(stmt string) string {
	if stmt == "" {
		return ""
	}
	for _, re := range x.rules {
		m := re.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}
		switch LeadingToken(stmt) {
		case "GLOBAL", "EXTRN":
			return m[1]
		}
		if x.IsRegister(m[1]) {
			return ""
		}
		return m[1]
	}
	return ""
}

// Parse tokenizes raw and fills in the Ref field of the resulting Line.
func (x *Extractor) Parse(raw string) Line {
	l := Tokenize(raw)
	l.Ref = x.Extract(l.Statement)
	return l
}

// ParseAll parses each line of raw in order.
func (x *Extractor) ParseAll(raw []string) []Line {
	ls := make([]Line, len(raw))
	for i, r := range raw {
		ls[i] = x.Parse(r)
	}
	return ls
}
