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

package project

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/breakintoprogram/agon-bbc-basic-v/asm"
	"github.com/breakintoprogram/agon-bbc-basic-v/dialect"
	"github.com/breakintoprogram/agon-bbc-basic-v/hints"
	"github.com/breakintoprogram/agon-bbc-basic-v/internal/ew"
	"github.com/breakintoprogram/agon-bbc-basic-v/unit"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultColumn is the default label column width.
const DefaultColumn = 8

// Project is a set of source files translated to the same target dialect.
type Project struct {
	files     []string
	dialect   *dialect.Dialect
	column    int
	skipFirst bool
	hints     hints.Table
	jobs      int
	now       func() time.Time
	x         *asm.Extractor
	units     []*unit.Unit
}

// Option interface
type Option func(*Project) error

// Files appends the given source files to the project. Files are processed
// in the order they are added.
func Files(names ...string) Option {
	return func(p *Project) error {
		p.files = append(p.files, names...)
		return nil
	}
}

// Target sets the target dialect by name.
func Target(name string) Option {
	return func(p *Project) error {
		d, err := dialect.Lookup(name)
		if err != nil {
			return err
		}
		p.dialect = d
		return nil
	}
}

// Column sets the label column width. The default is 8.
func Column(n int) Option {
	return func(p *Project) error {
		if n <= 0 {
			return errors.Errorf("invalid label column %d", n)
		}
		p.column = n
		return nil
	}
}

// SkipFirstLine enables or disables the removal of the first line of every
// source file.
func SkipFirstLine(skip bool) Option {
	return func(p *Project) error { p.skipFirst = skip; return nil }
}

// Hints sets the per file directives and patch rules.
func Hints(t hints.Table) Option {
	return func(p *Project) error {
		if err := t.Validate(); err != nil {
			return err
		}
		p.hints = t
		return nil
	}
}

// Jobs sets the number of files processed concurrently. The default is 1.
func Jobs(n int) Option {
	return func(p *Project) error {
		if n < 1 {
			return errors.Errorf("invalid job count %d", n)
		}
		p.jobs = n
		return nil
	}
}

// Clock sets the function used to time stamp the generated files. The
// default is time.Now.
func Clock(now func() time.Time) Option {
	return func(p *Project) error { p.now = now; return nil }
}

// Extractor sets the reference extractor used to tokenize source lines. The
// default is asm.Default.
func Extractor(x *asm.Extractor) Option {
	return func(p *Project) error { p.x = x; return nil }
}

// SetOptions sets the provided options.
func (p *Project) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new project. A target dialect must be set by one of the
// options.
func New(opts ...Option) (*Project, error) {
	p := &Project{
		column: DefaultColumn,
		jobs:   1,
		now:    time.Now,
		x:      asm.Default,
	}
	if err := p.SetOptions(opts...); err != nil {
		return nil, err
	}
	if p.dialect == nil {
		return nil, errors.New("no target dialect")
	}
	return p, nil
}

// Dialect returns the target dialect.
func (p *Project) Dialect() *dialect.Dialect { return p.dialect }

// Units returns the units built by Parse, in file order.
func (p *Project) Units() []*unit.Unit { return p.units }

// each calls fn for every index in [0,n), running at most p.jobs calls at
// once. It returns the first error. Once a call has failed, the calls not yet
// started are skipped.
func (p *Project) each(ctx context.Context, n int, fn func(int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.jobs)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}

// Parse reads every source file and builds its translation unit.
func (p *Project) Parse(ctx context.Context) error {
	units := make([]*unit.Unit, len(p.files))
	err := p.each(ctx, len(p.files), func(i int) error {
		u, err := p.parseFile(p.files[i])
		units[i] = u
		return err
	})
	if err != nil {
		return err
	}
	p.units = units
	return nil
}

func (p *Project) parseFile(name string) (*unit.Unit, error) {
	glog.Infof("Loading %s", name)
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()
	u, err := unit.Read(name, f, p.skipFirst, p.x)
	if err != nil {
		return nil, err
	}
	u.Dialect = p.dialect
	u.Column = p.column
	u.Hints = p.hints.Lookup(name, p.dialect.Name())
	u = unit.Build(u, unit.Clock(p.now), unit.Extractor(p.x))
	if glog.V(1) {
		glog.Infof("%s: %d lines, %d imports, %d exports", u.Name, len(u.Lines), len(u.Imports), len(u.Exports))
	}
	return u, nil
}

// Export writes the translation of every unit built by Parse.
func (p *Project) Export(ctx context.Context) error {
	return p.each(ctx, len(p.units), func(i int) error {
		return p.exportUnit(p.units[i])
	})
}

func (p *Project) exportUnit(u *unit.Unit) (err error) {
	name := u.Dialect.OutputPath(u.Path)
	glog.Infof("Writing %s", name)
	if err = os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return errors.Wrapf(err, "create directory %s", filepath.Dir(name))
	}
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "close %s", name)
		}
	}()
	if err = WriteUnit(f, u, dialect.NewRenderer(u.Dialect, u.Column)); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}

// Run parses all the project files and writes their translation.
func (p *Project) Run(ctx context.Context) error {
	if err := p.Parse(ctx); err != nil {
		return err
	}
	return p.Export(ctx)
}

// WriteUnit renders u with r and writes the resulting lines to w.
func WriteUnit(w io.Writer, u *unit.Unit, r *dialect.Renderer) error {
	bw := ew.New(w)
	if err := u.Render(r, bw.WriteLine); err != nil {
		return err
	}
	return bw.Flush()
}
