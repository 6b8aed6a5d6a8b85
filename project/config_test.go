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

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/breakintoprogram/agon-bbc-basic-v/project"
)

func TestLoadConfig(t *testing.T) {
	c, err := project.LoadConfig("testdata/project.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Target != "sjasmplus" || c.Column != 10 || !c.SkipFirst || c.Jobs != 2 {
		t.Errorf("bad settings: %+v", c)
	}
	files := []string{
		filepath.Join("testdata", "src", "MAIN.Z80"),
		filepath.Join("testdata", "src", "EVAL.Z80"),
	}
	if !reflect.DeepEqual(c.Files, files) {
		t.Errorf("Files = %q; want %q", c.Files, files)
	}

	h := c.Hints.Lookup(files[1], "zds")
	if len(h.Directives) != 1 || h.Directives[0] != "\tSEGMENT CODE" {
		t.Errorf("bad EVAL directives: %q", h.Directives)
	}
	if len(h.Rules) != 1 || h.Rules[0].Replace == nil || *h.Rules[0].Replace != "\tDB 'y'" {
		t.Errorf("bad EVAL rules: %+v", h.Rules)
	}
	h = c.Hints.Lookup(files[0], "sjasmplus")
	if len(h.Directives) != 1 || h.Directives[0] != "\tDEVICE NONE" {
		t.Errorf("MAIN hints not resolved against the config directory: %+v", c.Hints)
	}

	p, err := project.New(c.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	if p.Dialect().Name() != "sjasmplus" {
		t.Errorf("wrong target %s", p.Dialect().Name())
	}
}

func TestLoadConfig_errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, content string
	}{
		{"unknown.yaml", "target: zds\ncolour: 3\n"},
		{"syntax.yaml", "files: [a\n"},
		{"trigger.yaml", "hints:\n  A.Z80:\n    zds:\n      rules:\n        - prepend: [x]\n"},
	}
	for _, tc := range tests {
		name := filepath.Join(dir, tc.name)
		if err := os.WriteFile(name, []byte(tc.content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := project.LoadConfig(name); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
	if _, err := project.LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: expected an error")
	}

	// an empty project file is valid but has no target
	name := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(name, nil, 0644); err != nil {
		t.Fatal(err)
	}
	c, err := project.LoadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Options()) != 0 {
		t.Errorf("empty config yields options")
	}
	if _, err = project.New(c.Options()...); err == nil {
		t.Error("expected a missing target error")
	}
}
