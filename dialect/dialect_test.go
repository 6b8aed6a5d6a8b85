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

package dialect_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
	"github.com/pkg/errors"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"zds", "sjasmplus"} {
		d, err := dialect.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if d.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, d.Name())
		}
	}
	_, err := dialect.Lookup("tasm")
	if err == nil {
		t.Fatal("Lookup(\"tasm\") should fail")
	}
	if errors.Cause(err) != dialect.ErrUnknown {
		t.Errorf("Lookup(\"tasm\"): unexpected error %v", err)
	}
	if got, want := dialect.Names(), []string{"sjasmplus", "zds"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v; want %v", got, want)
	}
}

func TestOutputPath(t *testing.T) {
	src := filepath.Join("..", "src", "ACORN.Z80")
	tests := []struct {
		d    *dialect.Dialect
		want string
	}{
		{dialect.ZDS, filepath.Join("..", "src", "zds", "ACORN.asm")},
		{dialect.Sjasmplus, filepath.Join("..", "src", "sjasmplus", "ACORN.Z80")},
	}
	for _, tc := range tests {
		if got := tc.d.OutputPath(src); got != tc.want {
			t.Errorf("%s: OutputPath(%q) = %q; want %q", tc.d.Name(), src, got, tc.want)
		}
	}
}

func TestStructure(t *testing.T) {
	if got := dialect.ZDS.Prologue("MAIN"); !reflect.DeepEqual(got, []string{"\t.ASSUME\tADL = 0"}) {
		t.Errorf("zds prologue = %q", got)
	}
	if got := dialect.ZDS.Epilogue(); len(got) != 0 {
		t.Errorf("zds epilogue = %q", got)
	}
	if got := dialect.Sjasmplus.Prologue("MAIN"); !reflect.DeepEqual(got, []string{"\tMODULE MAIN"}) {
		t.Errorf("sjasmplus prologue = %q", got)
	}
	if got := dialect.Sjasmplus.Epilogue(); !reflect.DeepEqual(got, []string{"\tENDMODULE"}) {
		t.Errorf("sjasmplus epilogue = %q", got)
	}
}

func TestIsReserved(t *testing.T) {
	if !dialect.ZDS.IsReserved("low") || !dialect.ZDS.IsReserved("XREF") {
		t.Error("zds: LOW and XREF should be reserved")
	}
	if dialect.ZDS.IsReserved("LOWER") {
		t.Error("zds: LOWER should not be reserved")
	}
	if !dialect.Sjasmplus.IsReserved("Output") || dialect.Sjasmplus.IsReserved("PRINT") {
		t.Error("sjasmplus: bad reserved word set")
	}
}
