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

package unit_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
	"github.com/breakintoprogram/agon-bbc-basic-v/hints"
	"github.com/breakintoprogram/agon-bbc-basic-v/unit"
)

func text(s string) *string { return &s }

func fixedClock() time.Time {
	return time.Date(2024, 12, 1, 10, 20, 30, 0, time.UTC)
}

func statements(ls []asm.Line) []string {
	var s []string
	for _, l := range ls {
		switch {
		case l.Statement != "":
			s = append(s, l.Statement)
		case l.Comment != "":
			s = append(s, l.Comment)
		default:
			s = append(s, "")
		}
	}
	return s
}

func TestBuild(t *testing.T) {
	src := []string{
		"\tEXTRN\tOSWRCH",
		"\tEXTRN\tOSWRCH",
		"\tGLOBAL\tPRINT",
		"PRINT:\tCALL OSWRCH",
		"\tDEFM 'x'",
		"\tDEFS 4",
	}
	u := unit.New("src/MAIN.Z80", src, asm.Default)
	u.Dialect = dialect.Sjasmplus
	u.Column = 8
	u.Hints = hints.FileHints{
		Directives: []string{"\tDEVICE NONE"},
		Rules: []hints.Rule{
			{Trigger: "DEFM 'x'", Prepend: []string{"; first"}, Replace: text("\tDEFB 'x'")},
			{Trigger: "DEFM", Prepend: []string{"; second"}, Replace: text("\tDEFB 0")},
			{Trigger: "CALL", Prepend: []string{"\tNOP"}},
			{Trigger: "DEFS", Replace: text("\tGLOBAL HIDDEN")},
		},
	}

	b := unit.Build(u, unit.Clock(fixedClock))

	want := []string{
		";",
		";Automatically created from original source on 2024-12-01 10:20:30",
		"MODULE MAIN",
		"DEVICE NONE",
		"EXTRN\tOSWRCH",
		"EXTRN\tOSWRCH",
		"GLOBAL\tPRINT",
		"NOP",
		"CALL OSWRCH",
		"; first",
		"; second",
		"DEFB 'x'",
		"GLOBAL HIDDEN",
		"ENDMODULE",
	}
	if got := statements(b.Lines); !reflect.DeepEqual(got, want) {
		t.Errorf("Build lines:\ngot  %q\nwant %q", got, want)
	}
	if b.Lines[8].Label != "PRINT" {
		t.Errorf("patched line lost its label: %+v", b.Lines[8])
	}
	if got := b.Imports.Sorted(); !reflect.DeepEqual(got, []string{"OSWRCH"}) {
		t.Errorf("Imports = %v", got)
	}
	// patches do not add symbols
	if got := b.Exports.Sorted(); !reflect.DeepEqual(got, []string{"PRINT"}) {
		t.Errorf("Exports = %v", got)
	}
	if b.Name != "MAIN" || b.Dialect != dialect.Sjasmplus || b.Column != 8 {
		t.Errorf("unit attributes not carried over: %+v", b)
	}

	// the source unit is left untouched
	if len(u.Lines) != len(src) || len(u.Exports) != 0 || len(u.Imports) != 0 {
		t.Errorf("Build modified its input: %+v", u)
	}
}

func TestBuild_zds(t *testing.T) {
	u := unit.New("EVAL.Z80", []string{"\tGLOBAL\tEXPR", "EXPR:\tRET"}, asm.Default)
	u.Dialect = dialect.ZDS
	b := unit.Build(u, unit.Clock(fixedClock), unit.Extractor(asm.Default))

	want := []string{
		";",
		";Automatically created from original source on 2024-12-01 10:20:30",
		".ASSUME\tADL = 0",
		"GLOBAL\tEXPR",
		"RET",
	}
	if got := statements(b.Lines); !reflect.DeepEqual(got, want) {
		t.Errorf("Build lines:\ngot  %q\nwant %q", got, want)
	}
	if !b.Exports.Has("EXPR") {
		t.Error("EXPR should be exported")
	}

	var out []string
	b.Render(dialect.NewRenderer(dialect.ZDS, 8), func(s string) error { out = append(out, s); return nil })
	wantOut := []string{
		";",
		";Automatically created from original source on 2024-12-01 10:20:30",
		"        .ASSUME\tADL = 0\t",
		"        XDEF\tEXPR\t",
		"EXPR:   RET\t",
	}
	if !reflect.DeepEqual(out, wantOut) {
		t.Errorf("Render:\ngot  %q\nwant %q", out, wantOut)
	}
}
