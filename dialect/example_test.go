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
	"fmt"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
)

func ExampleRenderer_Render() {
	src := []string{
		"        EXTRN OSWRCH",
		"        GLOBAL PRINT",
		"PRINT:  LD A,(HL)",
		"        CP CR",
		"        RET Z",
		"        CALL OSWRCH",
		"        JR PRINT",
		"MSG:    DEFM 'Don''t panic'",
		"MASK:   DEFB 0FH OR 80H",
	}

	r := dialect.NewRenderer(dialect.ZDS, 10)
	for _, l := range asm.Default.ParseAll(src) {
		if s, ok := r.Render(l, nil); ok {
			fmt.Printf("%q\n", s)
		}
	}

	// Output:
	// "          XREF OSWRCH\t"
	// "          XDEF PRINT\t"
	// "PRINT:    LD A,(HL)\t"
	// "          CP CR\t"
	// "          RET Z\t"
	// "          CALL OSWRCH\t"
	// "          JR PRINT\t"
	// "MSG:      DB 'Don't panic'\t"
	// "MASK:     DB 0FH | 80H\t"
}
