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
	"strings"
	"unicode"
)

type scanState int

const (
	lineStart scanState = iota
	inLabel
	skipToStatement
	inStatement
	inComment
)

// Tokenize splits a raw source line into its label, statement and comment
// parts. It never fails: any input yields a Line, possibly blank. The Ref
// field is left empty, see Extractor.Parse.
//
// Label detection is purely positional: any text starting in column 0 that is
// not a comment is a label, even if it looks like a mnemonic.
func Tokenize(raw string) Line {
	var label, stmt, comment strings.Builder
	var quoted bool

	src := strings.TrimRightFunc(raw, unicode.IsSpace)
	state := lineStart

	for i, c := range src {
		switch state {
		case lineStart:
			switch {
			case c == ';':
				comment.WriteRune(c)
				state = inComment
			case unicode.IsSpace(c):
				state = skipToStatement
			default:
				label.WriteRune(c)
				state = inLabel
			}
		case inLabel:
			if c == ':' || unicode.IsSpace(c) {
				state = skipToStatement
				break
			}
			label.WriteRune(c)
		case skipToStatement:
			switch {
			case unicode.IsSpace(c):
			case c == ';':
				comment.WriteRune(c)
				state = inComment
			default:
				quoted = isQuote(src, i, false)
				stmt.WriteRune(c)
				state = inStatement
			}
		case inStatement:
			if c == ';' && !quoted {
				comment.WriteRune(c)
				state = inComment
				break
			}
			if isQuote(src, i, quoted) {
				quoted = !quoted
			}
			stmt.WriteRune(c)
		case inComment:
			comment.WriteRune(c)
		}
	}

	return Line{
		Label:     label.String(),
		Statement: strings.TrimRightFunc(stmt.String(), unicode.IsSpace),
		Comment:   comment.String(),
	}
}

// isQuote returns true if the byte at s[i] opens or closes a single-quoted
// string. The quoted parameter tells if a string is open before s[i]. Outside
// of a string, the apostrophe of the shadow register pair AF' is not a quote.
func isQuote(s string, i int, quoted bool) bool {
	if s[i] != '\'' {
		return false
	}
	if !quoted && i >= 2 && strings.EqualFold(s[i-2:i], "AF") && (i == 2 || !IsIdentByte(s[i-3])) {
		return false
	}
	return true
}

// QuoteMask returns a slice where element i is true if s[i] is part of a
// single-quoted string literal, delimiters included. An unterminated literal
// extends to the end of s.
func QuoteMask(s string) []bool {
	m := make([]bool, len(s))
	var quoted bool
	for i := 0; i < len(s); i++ {
		if isQuote(s, i, quoted) {
			m[i] = true
			quoted = !quoted
			continue
		}
		m[i] = quoted
	}
	return m
}

// IsIdentByte returns true if b can be part of an identifier.
func IsIdentByte(b byte) bool {
	return b == '_' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// LeadingToken returns the first whitespace delimited token of a statement.
func LeadingToken(stmt string) string {
	if i := strings.IndexFunc(stmt, unicode.IsSpace); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
