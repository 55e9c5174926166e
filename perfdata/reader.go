// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfdata reads tabular benchmark results.
//
// A results file is CSV. Its first line names the columns, and every
// following line is one measurement, for example:
//
//	Level of Parallelism,Speedup Rayon,Speedup Tokio Ordered
//	0,1.0,1.0
//	1,0.98,0.91
//	2,1.9,1.7
//
// Cells are kept as text until a caller asks for a numeric column.
package perfdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// A Row is one data record keyed by header name.
type Row map[string]string

// Get returns the value of column col, or a *ColumnError if the
// header has no such column.
func (r Row) Get(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", &ColumnError{Column: col}
	}
	return v, nil
}

// A ColumnError reports a column name that is not in a file's header.
type ColumnError struct {
	FileName string
	Column   string
}

func (e *ColumnError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("no column %q", e.Column)
	}
	return fmt.Sprintf("%s: no column %q", e.FileName, e.Column)
}

// A NumberError reports a cell that does not parse as a number.
type NumberError struct {
	FileName string
	Line     int
	Column   string
	Value    string
	Err      error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: cannot parse %q as a number", e.FileName, e.Line, e.Column, e.Value)
}

func (e *NumberError) Unwrap() error { return e.Err }

// A Reader reads rows from a CSV results file.
//
// Its API is modeled on bufio.Scanner. The header is read on first
// use. Rows are consumed as they are scanned; a Reader cannot be
// rewound.
type Reader struct {
	cr       *csv.Reader
	fileName string

	header []string
	row    Row
	line   int
	err    error
	done   bool
}

// NewReader returns a Reader that parses CSV from r. fileName is used
// in error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{cr: csv.NewReader(r), fileName: fileName}
}

// Open opens the named file for reading. The caller must close the
// returned io.Closer when done with the Reader.
func Open(path string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(f, path), f, nil
}

// FileName returns the name the Reader reports in errors.
func (r *Reader) FileName() string {
	return r.fileName
}

// Header returns the column names declared on the first line.
func (r *Reader) Header() ([]string, error) {
	if r.header == nil && r.err == nil {
		r.readHeader()
	}
	return r.header, r.err
}

func (r *Reader) readHeader() {
	rec, err := r.cr.Read()
	if err == io.EOF {
		r.err = fmt.Errorf("%s: missing header line", r.fileName)
		return
	}
	if err != nil {
		r.err = r.wrap(err)
		return
	}
	r.header = rec
	// The header fixes the field count for every later record.
	r.cr.FieldsPerRecord = len(rec)
}

// HasColumn reports whether the header declares col.
func (r *Reader) HasColumn(col string) (bool, error) {
	hdr, err := r.Header()
	if err != nil {
		return false, err
	}
	for _, h := range hdr {
		if h == col {
			return true, nil
		}
	}
	return false, nil
}

// Scan advances to the next row and reports whether there was one.
// When Scan returns false, the caller should check Err.
func (r *Reader) Scan() bool {
	if r.done || r.err != nil {
		return false
	}
	if r.header == nil {
		if r.readHeader(); r.err != nil {
			return false
		}
	}
	rec, err := r.cr.Read()
	if err == io.EOF {
		r.done = true
		r.row = nil
		return false
	}
	if err != nil {
		r.err = r.wrap(err)
		return false
	}
	r.line, _ = r.cr.FieldPos(0)
	row := make(Row, len(r.header))
	for i, h := range r.header {
		row[h] = rec[i]
	}
	r.row = row
	return true
}

// Row returns the row read by the last call to Scan.
func (r *Reader) Row() Row {
	return r.row
}

// Line returns the input line number of the current row.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the error that stopped Scan, or nil at a clean end of
// input.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) wrap(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%s:%d: %w", r.fileName, perr.Line, perr.Err)
	}
	return fmt.Errorf("%s: %w", r.fileName, err)
}
