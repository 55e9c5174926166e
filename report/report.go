// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot/vg"

	"github.com/rust-spp/perfplot/perfchart"
	"github.com/rust-spp/perfplot/perfdata"
)

// Apply restricts s to the window. The x values are taken from rows
// [Start, End). The y values are taken from rows [Start+offset, End)
// and then padded with their last value to the same length, so a
// line can be shifted to line up with the others.
func (w Window) Apply(s perfdata.Series, offset int) (perfdata.Series, error) {
	end := w.End
	if end == 0 {
		end = -1
	}
	x := s.Slice(w.Start, end)
	y := s.Slice(w.Start+offset, end)
	if x.Len() == 0 || y.Len() == 0 {
		return perfdata.Series{}, fmt.Errorf("rows [%d, %d) offset %d select nothing from %d rows", w.Start, w.End, offset, s.Len())
	}
	return perfdata.Series{X: x.X, Y: y.Pad(x.Len()).Y}, nil
}

// Resolve extracts the lines of r from t.
func (r *Report) Resolve(t *perfdata.Table) ([]perfchart.Line, error) {
	lines := make([]perfchart.Line, 0, len(r.Lines))
	for _, l := range r.Lines {
		s, err := t.XY(r.X, l.Column)
		if err != nil {
			return nil, err
		}
		s, err = r.Rows.Apply(s, l.Offset)
		if err != nil {
			return nil, fmt.Errorf("%s: column %q: %w", t.FileName(), l.Column, err)
		}
		lines = append(lines, perfchart.Line{
			XYs:    s,
			Legend: l.Legend,
			Marker: l.Marker,
			Style:  l.Style,
			XLabel: l.XLabel,
		})
	}
	return lines, nil
}

// Chart builds the chart for r from t.
func (r *Report) Chart(t *perfdata.Table) (*perfchart.Chart, error) {
	layout, err := r.Layout.Chart()
	if err != nil {
		return nil, err
	}
	lines, err := r.Resolve(t)
	if err != nil {
		return nil, err
	}
	return &perfchart.Chart{
		Title:       r.Title,
		XLabel:      r.XLabel,
		YLabel:      r.YLabel,
		SeqLabel:    r.SeqLabel,
		Lines:       lines,
		Layout:      layout,
		Width:       vg.Length(r.Width) * vg.Inch,
		Height:      vg.Length(r.Height) * vg.Inch,
		ShowTitle:   r.ShowTitle,
		ShareYTicks: r.ShareYTicks,
	}, nil
}

// WriteCSV writes lines, as resolved for r, as a CSV table: a header
// row, then one row per x value with one column per line.
func (r *Report) WriteCSV(w io.Writer, lines []perfchart.Line) error {
	xname := r.XLabel
	if xname == "" {
		xname = r.X
	}
	hdr := []string{xname}
	n := 0
	for i, l := range lines {
		name := l.Legend
		if name == "" && i < len(r.Lines) {
			name = r.Lines[i].Column
		}
		hdr = append(hdr, name)
		if l.XYs.Len() > n {
			n = l.XYs.Len()
		}
	}
	tab := [][]string{hdr}
	for i := 0; i < n; i++ {
		row := make([]string, len(hdr))
		for j, l := range lines {
			if i >= l.XYs.Len() {
				continue
			}
			x, y := l.XYs.XY(i)
			if row[0] == "" {
				row[0] = strof(x)
			}
			row[j+1] = strof(y)
		}
		tab = append(tab, row)
	}
	csvw := csv.NewWriter(w)
	return csvw.WriteAll(tab)
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// A Runner produces report documents.
type Runner struct {
	// DataDir is the directory holding input files.
	DataDir string

	// OutDir is the directory documents are written to.
	OutDir string

	// Format is the output file extension; empty means "pdf".
	Format string

	// Logf, if non-nil, receives progress messages.
	Logf func(format string, args ...interface{})

	tables map[string]*perfdata.Table
}

func (rn *Runner) logf(format string, args ...interface{}) {
	if rn.Logf != nil {
		rn.Logf(format, args...)
	}
}

// Table returns the parsed input file of r. Each file is read once
// per Runner.
func (rn *Runner) Table(r *Report) (*perfdata.Table, error) {
	path := filepath.Join(rn.DataDir, r.Input)
	if t, ok := rn.tables[path]; ok {
		return t, nil
	}
	t, err := perfdata.LoadTable(path)
	if err != nil {
		return nil, err
	}
	if rn.tables == nil {
		rn.tables = make(map[string]*perfdata.Table)
	}
	rn.tables[path] = t
	return t, nil
}

// OutputPath returns the document path of r.
func (rn *Runner) OutputPath(r *Report) string {
	format := rn.Format
	if format == "" {
		format = "pdf"
	}
	return filepath.Join(rn.OutDir, r.Name+"."+format)
}

// Run draws r and writes it to OutputPath(r), replacing any previous
// document. It returns the path written.
func (rn *Runner) Run(r *Report) (string, error) {
	t, err := rn.Table(r)
	if err != nil {
		return "", err
	}
	c, err := r.Chart(t)
	if err != nil {
		return "", fmt.Errorf("report %s: %w", r.Name, err)
	}
	path := rn.OutputPath(r)
	rn.logf("creating graph %s (%d lines, %s)", path, len(c.Lines), c.Layout)
	if err := c.Save(path); err != nil {
		return "", fmt.Errorf("report %s: %w", r.Name, err)
	}
	return path, nil
}
