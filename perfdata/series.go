// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"strconv"
	"strings"
)

// A Series is a sequence of (x, y) points taken from two columns of
// a results file, in row order. X and Y always have the same length.
//
// Series implements gonum's plotter.XYer.
type Series struct {
	X, Y []float64
}

// Len returns the number of points in s.
func (s Series) Len() int {
	return len(s.X)
}

// XY returns the i'th point of s.
func (s Series) XY(i int) (x, y float64) {
	return s.X[i], s.Y[i]
}

// Slice returns the points of s in [start, end). Bounds are clamped
// to the series, so an end past the last point means "to the end".
// A negative end also means "to the end".
func (s Series) Slice(start, end int) Series {
	start, end = clamp(start, end, s.Len())
	return Series{X: s.X[start:end:end], Y: s.Y[start:end:end]}
}

// Pad extends s to n points by repeating its last point. Pad returns
// s unchanged if it already has n or more points, or if it is empty.
func (s Series) Pad(n int) Series {
	l := s.Len()
	if l == 0 || l >= n {
		return s
	}
	out := Series{
		X: make([]float64, l, n),
		Y: make([]float64, l, n),
	}
	copy(out.X, s.X)
	copy(out.Y, s.Y)
	for len(out.X) < n {
		out.X = append(out.X, s.X[l-1])
		out.Y = append(out.Y, s.Y[l-1])
	}
	return out
}

func clamp(start, end, n int) (int, int) {
	if end < 0 || end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	return start, end
}

// Extract reads every remaining row of r and returns the values of
// columns xcol and ycol as a Series.
//
// Extract fails with a *ColumnError if either column is missing from
// the header, and with a *NumberError on the first cell that is not
// a number. It consumes r.
func Extract(r *Reader, xcol, ycol string) (Series, error) {
	for _, col := range []string{xcol, ycol} {
		ok, err := r.HasColumn(col)
		if err != nil {
			return Series{}, err
		}
		if !ok {
			return Series{}, &ColumnError{FileName: r.FileName(), Column: col}
		}
	}

	var s Series
	for r.Scan() {
		row := r.Row()
		x, err := parseCell(r.FileName(), r.Line(), xcol, row[xcol])
		if err != nil {
			return Series{}, err
		}
		y, err := parseCell(r.FileName(), r.Line(), ycol, row[ycol])
		if err != nil {
			return Series{}, err
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	if err := r.Err(); err != nil {
		return Series{}, err
	}
	return s, nil
}

func parseCell(fileName string, line int, col, val string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &NumberError{FileName: fileName, Line: line, Column: col, Value: val, Err: err}
	}
	return v, nil
}
