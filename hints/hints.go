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

// Package hints holds the hand written, file specific patches applied while
// building a module, for source constructs the generic rewrite rules cannot
// handle.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Rule is a patch rule. When Trigger is found in a statement, the Prepend lines
// are inserted before it and, if Replace is not nil, the line is replaced by
// the Replace text.
type Rule struct {
	Trigger string   `yaml:"trigger"`
	Prepend []string `yaml:"prepend,omitempty"`
	Replace *string  `yaml:"replace,omitempty"`
}

// Matches returns true if the rule triggers on the given statement.
func (r *Rule) Matches(stmt string) bool {
	return r.Trigger != "" && strings.Contains(stmt, r.Trigger)
}

// FileHints are the hints for one source file and one dialect.
type FileHints struct {
	// Directives are raw lines inserted right after the dialect's module
	// opening directives.
	Directives []string `yaml:"directives,omitempty"`
	// Rules are tried in order on every line.
	Rules []Rule `yaml:"rules,omitempty"`
}

// Table maps source file names to dialect names to hints.
type Table map[string]map[string]FileHints

// Lookup returns the hints for the given source file and dialect. An entry for
// the exact path takes precedence over one for its base name.
func (t Table) Lookup(path, dialect string) FileHints {
	if h, ok := t[path][dialect]; ok {
		return h
	}
	return t[filepath.Base(path)][dialect]
}

// Validate checks that every rule has a trigger.
func (t Table) Validate() error {
	for file, byDialect := range t {
		for d, h := range byDialect {
			for i := range h.Rules {
				if h.Rules[i].Trigger == "" {
					return errors.Errorf("hints for %s/%s: rule #%d has no trigger", file, d, i+1)
				}
			}
		}
	}
	return nil
}
