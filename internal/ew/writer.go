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

// Package ew provides a line writer that tracks io errors.
package ew

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Writer is a buffered line writer that tracks io errors. Once a write has
// failed, every subsequent call keeps returning the same error.
type Writer struct {
	w   *bufio.Writer
	Err error
}

// New returns a new Writer writing to w.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if w.Err != nil {
		return w.Err
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.Err = errors.Wrap(err, "write failed")
		return w.Err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return w.Err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.Err != nil {
		return w.Err
	}
	if err := w.w.Flush(); err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return w.Err
}
