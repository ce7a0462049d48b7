// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads and writes the integer key lists fed to the
// splay map benchmarks.
//
// A dataset file holds base-10 integers separated by commas and newlines.
// Whitespace around a value is ignored, as are blank lines and empty
// fields such as a trailing comma.
package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrMalformed is matched by errors.Is for any *ParseError.
var ErrMalformed = errors.New("malformed dataset")

// A ParseError records a field that is not an integer.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed integer %q: %v", e.Path, e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

// Read reads the dataset file at path.
func Read(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	vals, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	return vals, nil
}

// Parse reads a dataset from r. The name is used in error messages.
func Parse(r io.Reader, name string) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanFields)

	var vals []int64
	line := 1
	for sc.Scan() {
		tok := sc.Bytes()
		newline := len(tok) > 0 && tok[len(tok)-1] == '\n'
		field := bytes.TrimSpace(bytes.TrimRight(tok, ",\n"))
		if len(field) > 0 {
			v, err := strconv.ParseInt(string(field), 10, 64)
			if err != nil {
				return nil, &ParseError{Path: name, Line: line, Field: string(field), Err: err}
			}
			vals = append(vals, v)
		}
		if newline {
			line++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return vals, nil
}

// scanFields is a bufio.SplitFunc that returns each field
// together with the comma or newline that ends it.
func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexAny(data, ",\n"); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Write writes vals to w, perLine values to a line.
func Write(w io.Writer, vals []int64, perLine int) error {
	if perLine <= 0 {
		perLine = len(vals)
	}
	bw := bufio.NewWriter(w)
	var buf []byte
	for i, v := range vals {
		buf = buf[:0]
		if i%perLine != 0 {
			buf = append(buf, ',')
		} else if i > 0 {
			buf = append(buf, '\n')
		}
		buf = strconv.AppendInt(buf, v, 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if len(vals) > 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
