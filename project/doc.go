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

// Package project runs the translation of a set of Z80 source files to a
// target assembler dialect.
//
// A Project is configured with functional options, either directly:
//
//	p, err := project.New(
//		project.Target("zds"),
//		project.Column(16),
//		project.Files("src/MAIN.Z80", "src/EVAL.Z80"))
//
// or from a YAML project file loaded with LoadConfig:
//
//	cfg, err := project.LoadConfig("tools/bbcbasic.yaml")
//	p, err := project.New(cfg.Options()...)
//
// Run then reads every source file, builds its translation unit and writes
// the translation next to the source, in a sub directory named after the
// target dialect.
package project
