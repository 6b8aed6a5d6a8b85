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
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
	"github.com/breakintoprogram/agon-bbc-basic-v/internal/ew"
	"github.com/breakintoprogram/agon-bbc-basic-v/project"
	"github.com/breakintoprogram/agon-bbc-basic-v/unit"
	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
)

type targetFlag struct {
	d *dialect.Dialect
}

func (t *targetFlag) String() string {
	if t.d == nil {
		return ""
	}
	return t.d.Name()
}
func (t *targetFlag) Set(s string) error {
	d, err := dialect.Lookup(s)
	if err != nil {
		return err
	}
	t.d = d
	return nil
}
func (t *targetFlag) Get() interface{} { return t.d }

type columnFlag int

func (c *columnFlag) String() string { return strconv.Itoa(int(*c)) }
func (c *columnFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errors.Errorf("invalid label column %d", n)
	}
	*c = columnFlag(n)
	return nil
}
func (c *columnFlag) Get() interface{} { return *c }

var (
	debug       bool
	dump        bool
	interactive bool
	skipFirst   bool
	jobs        int
	configFile  string
	target      = targetFlag{dialect.ZDS}
	column      = columnFlag(16)
)

func atExit(err error) {
	glog.Flush()
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

// options returns the project options: built-in defaults first, then the
// project file settings, then the flags set on the command line.
func options() ([]project.Option, error) {
	opts := []project.Option{
		project.Target(target.String()),
		project.Column(int(column)),
	}
	if configFile != "" {
		c, err := project.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, c.Options()...)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			opts = append(opts, project.Target(target.String()))
		case "column":
			opts = append(opts, project.Column(int(column)))
		case "skipfirst":
			opts = append(opts, project.SkipFirstLine(skipFirst))
		case "j":
			opts = append(opts, project.Jobs(jobs))
		}
	})
	return append(opts, project.Files(flag.Args()...)), nil
}

// dumpUnits pretty-prints units to w.
func dumpUnits(w io.Writer, units []*unit.Unit) error {
	bw := ew.New(w)
	pp.Fprintln(bw, units)
	return bw.Flush()
}

func run(ctx context.Context) error {
	opts, err := options()
	if err != nil {
		return err
	}
	p, err := project.New(opts...)
	if err != nil {
		return err
	}
	if err = p.Parse(ctx); err != nil {
		return err
	}
	if dump {
		if err = dumpUnits(os.Stderr, p.Units()); err != nil {
			return err
		}
	}
	return p.Export(ctx)
}

func main() {
	var err error

	// flush logs, catch and print errors
	defer func() {
		atExit(err)
	}()

	flag.Set("logtostderr", "true")

	flag.StringVar(&configFile, "config", "", "load project settings from YAML `file`")
	flag.Var(&target, "target", "target assembler `dialect`: "+strings.Join(dialect.Names(), ", "))
	flag.Var(&column, "column", "label column width")
	flag.BoolVar(&skipFirst, "skipfirst", false, "discard the first line of every source file")
	flag.IntVar(&jobs, "j", 1, "number of files processed concurrently")
	flag.BoolVar(&dump, "dump", false, "dump the translation units to stderr before writing them")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&interactive, "i", false, "interactive mode: translate lines read from the terminal")

	flag.Parse()

	if interactive {
		err = repl(target.d, int(column))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = run(ctx)
}
