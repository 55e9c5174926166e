// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// A Table is a whole results file held in memory, column by column.
//
// Unlike a Reader, a Table can be queried for any number of column
// pairs. Cells stay as strings; XY parses on demand with the same
// rules and errors as Extract.
type Table struct {
	fileName string
	t        *table.Table
	lines    []int
}

// ReadTable reads every remaining row of r into a Table.
func ReadTable(r *Reader) (*Table, error) {
	hdr, err := r.Header()
	if err != nil {
		return nil, err
	}
	var rows [][]string
	var lines []int
	for r.Scan() {
		row := r.Row()
		rec := make([]string, len(hdr))
		for i, h := range hdr {
			rec[i] = row[h]
		}
		rows = append(rows, rec)
		lines = append(lines, r.Line())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if dup := duplicate(hdr); dup != "" {
		return nil, fmt.Errorf("%s: duplicate column %q", r.FileName(), dup)
	}
	return &Table{
		fileName: r.FileName(),
		t:        table.TableFromStrings(hdr, rows, false),
		lines:    lines,
	}, nil
}

// LoadTable reads the results file at path into a Table.
func LoadTable(path string) (*Table, error) {
	r, c, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return ReadTable(r)
}

func duplicate(hdr []string) string {
	seen := make(map[string]bool, len(hdr))
	for _, h := range hdr {
		if seen[h] {
			return h
		}
		seen[h] = true
	}
	return ""
}

// FileName returns the name of the file t was read from.
func (t *Table) FileName() string {
	return t.fileName
}

// Len returns the number of data rows in t.
func (t *Table) Len() int {
	return len(t.lines)
}

// Columns returns the header of t.
func (t *Table) Columns() []string {
	return t.t.Columns()
}

// Column returns the raw cells of column name.
func (t *Table) Column(name string) ([]string, error) {
	col := t.t.Column(name)
	if col == nil {
		return nil, &ColumnError{FileName: t.fileName, Column: name}
	}
	return col.([]string), nil
}

// Floats returns column name parsed as numbers.
func (t *Table) Floats(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(cells))
	for i, c := range cells {
		v, err := parseCell(t.fileName, t.lines[i], name, c)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// XY returns columns xcol and ycol as a Series.
func (t *Table) XY(xcol, ycol string) (Series, error) {
	if _, err := t.Column(xcol); err != nil {
		return Series{}, err
	}
	if _, err := t.Column(ycol); err != nil {
		return Series{}, err
	}
	x, err := t.Floats(xcol)
	if err != nil {
		return Series{}, err
	}
	y, err := t.Floats(ycol)
	if err != nil {
		return Series{}, err
	}
	return Series{X: x, Y: y}, nil
}
