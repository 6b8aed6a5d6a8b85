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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
	"github.com/breakintoprogram/agon-bbc-basic-v/unit"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const historyFile = ".z80xform_history"

const replHelp = `Enter a line of Z80 source to see how it is tokenized and translated.
Lines starting with a space have no label. GLOBAL lines add their symbol to
the exports of the session.

Commands:
  :target name   switch the target dialect (%s)
  :column n      set the label column width
  :exports       list the exported symbols
  :reset         clear the exported symbols
  :help          show this help
  :quit          exit
`

// session is the state of an interactive session.
type session struct {
	x       *asm.Extractor
	d       *dialect.Dialect
	column  int
	r       *dialect.Renderer
	exports unit.Symbols
}

func newSession(d *dialect.Dialect, column int) *session {
	return &session{
		x:       asm.Default,
		d:       d,
		column:  column,
		r:       dialect.NewRenderer(d, column),
		exports: make(unit.Symbols),
	}
}

func (s *session) prompt() string { return s.d.Name() + "> " }

// command runs a session command. It returns true if the session should end.
func (s *session) command(w io.Writer, cmd string) bool {
	f := strings.Fields(cmd)
	switch {
	case f[0] == ":quit":
		return true
	case f[0] == ":help":
		fmt.Fprintf(w, replHelp, strings.Join(dialect.Names(), ", "))
	case f[0] == ":exports":
		fmt.Fprintln(w, strings.Join(s.exports.Sorted(), " "))
	case f[0] == ":reset":
		s.exports = make(unit.Symbols)
	case f[0] == ":target" && len(f) == 2:
		d, err := dialect.Lookup(f[1])
		if err != nil {
			fmt.Fprintln(w, err)
			break
		}
		s.d = d
		s.r = dialect.NewRenderer(d, s.column)
	case f[0] == ":column" && len(f) == 2:
		n, err := strconv.Atoi(f[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(w, "invalid label column %q\n", f[1])
			break
		}
		s.column = n
		s.r = dialect.NewRenderer(s.d, n)
	default:
		fmt.Fprintf(w, "unknown command %q. Type :help for help.\n", cmd)
	}
	return false
}

// eval translates one source line and writes the details to w.
func (s *session) eval(w io.Writer, line string) {
	l := s.x.Parse(line)
	if l.Directive() == "GLOBAL" {
		s.exports.Add(l.Ref)
	}
	fmt.Fprintf(w, "%-10s%q\n", "label", l.Label)
	fmt.Fprintf(w, "%-10s%q\n", "statement", l.Statement)
	fmt.Fprintf(w, "%-10s%q\n", "comment", l.Comment)
	fmt.Fprintf(w, "%-10s%q\n", "ref", l.Ref)
	if out, ok := s.r.Render(l, s.exports); ok {
		fmt.Fprintf(w, "%-10s%s\n", s.d.Name(), out)
	} else {
		fmt.Fprintf(w, "%-10s(no output)\n", s.d.Name())
	}
}

// handle processes one input line. It returns true if the session should end.
func (s *session) handle(w io.Writer, line string) bool {
	if strings.HasPrefix(line, ":") {
		return s.command(w, line)
	}
	s.eval(w, line)
	return false
}

func repl(d *dialect.Dialect, column int) error {
	s := newSession(d, column)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("z80xform: %s dialect, label column %d. Type :help for help.\n", d.Name(), column)
	for {
		line, err := ln.Prompt(s.prompt())
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Println()
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if s.handle(os.Stdout, line) {
			return nil
		}
	}
}
