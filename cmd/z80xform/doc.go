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

// The z80xform command translates the Z80 sources of BBC BASIC to the syntax
// of another assembler.
//
// Usage:
//
//	z80xform [flags] file...
//
//	-column value
//		  label column width (default 16)
//	-config file
//		  load project settings from YAML file
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the translation units to stderr before writing them
//	-i
//		  interactive mode: translate lines read from the terminal
//	-j int
//		  number of files processed concurrently (default 1)
//	-skipfirst
//		  discard the first line of every source file
//	-target dialect
//		  target assembler dialect: sjasmplus, zds (default zds)
//
// Logging flags such as -v and -logtostderr are also accepted. Progress is
// logged to stderr.
//
// Every source file is translated to a file of the same base name in a sub
// directory named after the target dialect, next to the source. For zds, the
// file extension is changed to ".asm".
//
// -config: the project file lists the source files along with the settings
// and the per file hints. Source file names are relative to the project file.
// Flags given on the command line take precedence, and files given as
// arguments are added to the list:
//
//	target: zds
//	column: 16
//	skipfirst: true
//	files:
//	  - ../src/MAIN.Z80
//	  - ../src/EVAL.Z80
//	hints:
//	  EVAL.Z80:
//	    zds:
//	      directives: ["\tSEGMENT CODE"]
//	      rules:
//	        - trigger: "DEFM 'x'"
//	          prepend: ["; patched"]
//	          replace: "\tDB 'x'"
//
// Directives are inserted after the module opening lines. A rule matches any
// line whose statement contains its trigger. Its prepend lines are inserted
// before that line and, if present, its replacement takes the line's place.
//
// -debug: errors are printed with a full stack trace.
//
// -dump: the translation units are pretty-printed to stderr once built.
//
// -i: reads source lines from the terminal and prints their tokenization,
// extracted symbol reference and translation. Type :help at the prompt for
// the list of commands.
package main
