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

// Package asm splits Z80 assembly source lines into their lexical parts and
// finds the symbol each statement defines or references.
//
// Source format:
//
// Each physical line is made of up to three parts, all optional:
//
//	LABEL:  STATEMENT       ; comment
//
// A label starts in column 0 and ends at the first colon or white space. Any
// non-blank text in column 0 is a label, even if it looks like an
// instruction: detection is purely positional. A line starting with a
// semicolon is a comment line.
//
// The statement starts at the first non-blank character after the label (or
// after the leading white space). It runs up to the first semicolon that is
// not inside a single-quoted string literal. The apostrophe of the shadow
// register pair, as in
//
//	EX AF,AF'       ; swap
//
// does not open a string literal.
//
// Symbol references:
//
// Operands are never parsed. An Extractor matches the statement against a
// short, ordered list of instruction shapes and returns the identifier of the
// first matching shape:
//
//	CALL|JR|JP cc,sym           conditional jump or call
//	DEFW|GLOBAL|EXTRN|CALL|CP|DJNZ|JR|JP|RST sym
//	LD|IN r,sym or r,(sym)      load from memory
//	LD|OUT (sym),r              store to memory
//
// where cc is one of C NC Z NZ M P PE PO and r one of A B C D E H L BC DE HL
// IX IY SP. A candidate that turns out to be a register or flag name is
// dropped, except in GLOBAL and EXTRN directives.
package asm
