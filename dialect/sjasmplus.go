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

import "github.com/breakintoprogram/agon-bbc-basic-v/asm"

// Sjasmplus is the sjasmplus assembler dialect.
var Sjasmplus = func() *Dialect {
	d := newDialect("sjasmplus", "", sjasmplusReserved)
	d.prologue = func(module string) []string {
		return []string{"\tMODULE " + module}
	}
	d.epilogue = []string{"\tENDMODULE"}
	d.rewrite = rewriteSjasmplus
	return d
}()

var sjasmplusReserved = []string{
	"ABYTE", "ABYTEC", "ABYTEZ", "ALIGN", "ASSERT", "BINARY", "BLOCK", "BPLIST",
	"BYTE", "DB", "DC", "DD", "DEFARRAY", "DEFB", "DEFD", "DEFDEVICE", "DEFG",
	"DEFH", "DEFINE", "DEFL", "DEFM", "DEFS", "DEFW", "DEPHASE", "DEVICE", "DG",
	"DH", "DISP", "DM", "DS", "DUP", "DW", "DWORD", "DZ", "EDUP", "ELSE",
	"ELSEIF", "ENCODING", "END", "ENDIF", "ENDLUA", "ENDM", "ENDMODULE", "ENDR",
	"ENDS", "ENDT", "ENDW", "ENT", "EQU", "EXPORT", "FPOS", "HIGH", "IF",
	"IFDEF", "IFN", "IFNDEF", "IFNUSED", "IFUSED", "INCBIN", "INCHOB",
	"INCLUDE", "INCLUDELUA", "INCTRD", "INSERT", "LABELSLIST", "LOW", "LUA",
	"MACRO", "MMU", "MOD", "MODULE", "NOT", "OPT", "ORG", "OUTEND", "OUTPUT",
	"PAGE", "PHASE", "REPT", "SAVEBIN", "SAVEDEV", "SAVENEX", "SAVESNA",
	"SAVETAP", "SAVETRD", "SETBP", "SHELLEXEC", "SHL", "SHR", "SIZE", "SLOT",
	"STRUCT", "TEXTAREA", "UNDEFINE", "UNPHASE", "WHILE", "WORD",
}

func rewriteSjasmplus(l asm.Line, exported bool) asm.Line {
	switch l.Directive() {
	case "EXTRN", "GLOBAL":
		c := ";\t" + l.Statement
		if l.Comment != "" {
			c += "\t" + l.Comment
		}
		l.Statement, l.Comment = "", c
		return l
	}
	if exported && l.Label != "" {
		l.Label = "@" + l.Label
	}
	return l
}
