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
	"unicode"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
)

// replaceWords replaces the whole-word occurrences of word in s with repl.
// Occurrences inside single-quoted strings are left alone, as are those for
// which keep returns true. keep receives the original string and the offset
// of the occurrence.
func replaceWords(s, word, repl string, keep func(s string, at int) bool) string {
	if word == "" || !strings.Contains(s, word) {
		return s
	}
	quoted := asm.QuoteMask(s)
	var b strings.Builder
	last := 0
	for i := 0; i+len(word) <= len(s); {
		j := strings.Index(s[i:], word)
		if j < 0 {
			break
		}
		at := i + j
		end := at + len(word)
		i = end
		if at > 0 && asm.IsIdentByte(s[at-1]) || end < len(s) && asm.IsIdentByte(s[end]) {
			continue
		}
		if quoted[at] || keep != nil && keep(s, at) {
			continue
		}
		b.WriteString(s[last:at])
		b.WriteString(repl)
		last = end
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// atStart is a keep function for replaceWords that protects an occurrence
// opening the statement.
func atStart(_ string, at int) bool { return at == 0 }

// renameLeading replaces the leading token of stmt according to the first
// matching entry of the renames table. Only one replacement is made.
func renameLeading(stmt string, renames [][2]string) string {
	tok := asm.LeadingToken(stmt)
	for _, r := range renames {
		if tok == r[0] {
			return r[1] + stmt[len(tok):]
		}
	}
	return stmt
}

const operatorChars = ",(+-*/&|<>=!~"

// inOperandSlot returns true if the word at offset at in stmt is not in a
// binary operator position: it either opens the statement, directly follows
// the mnemonic, or follows a comma, an opening parenthesis or another
// operator. There, AND and OR can only be an instruction or an operand name.
func inOperandSlot(stmt string, at int) bool {
	prefix := strings.TrimRightFunc(stmt[:at], unicode.IsSpace)
	if prefix == "" || strings.IndexFunc(prefix, unicode.IsSpace) < 0 {
		return true
	}
	return strings.IndexByte(operatorChars, prefix[len(prefix)-1]) >= 0
}
