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

// ZDS is the Zilog ZDS II assembler dialect.
var ZDS = func() *Dialect {
	d := newDialect("zds", ".asm", zdsReserved)
	d.prologue = func(string) []string {
		return []string{"\t.ASSUME\tADL = 0"}
	}
	d.rewrite = rewriteZDS
	return d
}()

var zdsDirectives = [][2]string{
	{"EXTRN", "XREF"},
	{"GLOBAL", "XDEF"},
	{"DEFS", "DS"},
	{"DEFW", "DW"},
	{"DEFB", "DB"},
	{"DEFM", "DB"},
}

var zdsOperators = [][2]string{
	{"AND", "&"},
	{"OR", "|"},
}

var zdsReserved = []string{
	"ADL", "ALIGN", "ASCII", "ASCIZ", "ASSUME", "BLKB", "BLKL", "BLKP", "BLKW",
	"BYTE", "CPU", "DB", "DEFINE", "DL", "DS", "DW", "DW24", "ELIF", "ELSE",
	"END", "ENDIF", "ENDM", "ENDMAC", "ENDMACRO", "ENDSTRUCT", "ENDWITH", "EQU",
	"ERROR", "EXIT", "EXTERN", "FILLB", "FILLL", "FILLW", "HIGH", "HIGH16",
	"IF", "IFDEF", "IFMA", "IFNDEF", "IFSAME", "INCLUDE", "LIST", "LOW", "LOW16",
	"MACDELIM", "MACEXIT", "MACRO", "MLIST", "NEWPAGE", "NOLIST", "ORG", "PUBLIC",
	"REPT", "SCOPE", "SEGMENT", "SPACE", "STRUCT", "TAG", "TITLE", "UNION",
	"VAR", "WARNING", "WITH", "WORD", "WORD24", "XDEF", "XREF",
}

func rewriteZDS(l asm.Line, _ bool) asm.Line {
	if l.Statement == "" {
		return l
	}
	s := renameLeading(l.Statement, zdsDirectives)
	for _, op := range zdsOperators {
		s = replaceWords(s, op[0], op[1], inOperandSlot)
	}
	l.Statement = repairQuotes(s)
	return l
}

// repairQuotes turns the first doubled apostrophe into a single one when the
// statement holds an even number of apostrophes, more than two. This is a
// heuristic for escaped quotes in string literals, not a string parser.
func repairQuotes(s string) string {
	if n := strings.Count(s, "'"); n > 2 && n%2 == 0 {
		return strings.Replace(s, "''", "'", 1)
	}
	return s
}
