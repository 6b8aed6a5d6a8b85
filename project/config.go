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
	"io"
	"os"
	"path/filepath"

	"github.com/breakintoprogram/agon-bbc-basic-v/hints"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the content of a project file.
type Config struct {
	Target    string      `yaml:"target"`
	Column    int         `yaml:"column"`
	SkipFirst bool        `yaml:"skipfirst"`
	Jobs      int         `yaml:"jobs"`
	Files     []string    `yaml:"files"`
	Hints     hints.Table `yaml:"hints"`
}

// LoadConfig loads a project file. Relative source file names, including the
// hint keys that have a directory part, are resolved against the directory
// of the project file.
func LoadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "load config %s", name)
	}
	if err = c.Hints.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load config %s", name)
	}

	dir := filepath.Dir(name)
	for i, fn := range c.Files {
		c.Files[i] = resolve(dir, fn)
	}
	if len(c.Hints) > 0 {
		t := make(hints.Table, len(c.Hints))
		for k, v := range c.Hints {
			if filepath.Base(k) != k {
				k = resolve(dir, k)
			}
			t[k] = v
		}
		c.Hints = t
	}
	return &c, nil
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Options returns the project options matching the configuration. Unset
// values are left out so that the project defaults apply.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Target != "" {
		opts = append(opts, Target(c.Target))
	}
	if c.Column != 0 {
		opts = append(opts, Column(c.Column))
	}
	if c.Jobs != 0 {
		opts = append(opts, Jobs(c.Jobs))
	}
	if c.SkipFirst {
		opts = append(opts, SkipFirstLine(true))
	}
	if len(c.Files) > 0 {
		opts = append(opts, Files(c.Files...))
	}
	if c.Hints != nil {
		opts = append(opts, Hints(c.Hints))
	}
	return opts
}
