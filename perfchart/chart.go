// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfchart draws speedup and throughput charts.
//
// A Chart is a set of lines sharing an x axis of parallelism levels.
// The x ticks are the even levels of the first line, with level 0
// relabeled as the sequential baseline. A Chart is drawn either as a
// single plot holding every line (Combined) or as one plot per line
// stacked vertically (Stacked), and written as PDF, SVG, EPS or PNG.
package perfchart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Layout selects how a Chart arranges its lines.
type Layout int

const (
	// Combined draws every line in one plot.
	Combined Layout = iota
	// Stacked draws each line in its own plot, one above the other.
	// Each plot has its own legend and x-axis label.
	Stacked
)

func (l Layout) String() string {
	switch l {
	case Combined:
		return "combined"
	case Stacked:
		return "stacked"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// DefaultSeqLabel labels the x tick at parallelism level 0.
const DefaultSeqLabel = "Sequential"

// A Line is one series of a Chart.
type Line struct {
	XYs plotter.XYer

	// Legend is the legend entry. Lines with no legend are drawn
	// but not listed.
	Legend string

	// Marker is a marker code; see Glyph.
	Marker string

	// Style is a line style code; see Dashes.
	Style string

	// XLabel overrides Chart.XLabel for this line's plot in a
	// Stacked chart.
	XLabel string
}

// A Chart describes one output document.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	// SeqLabel replaces the x tick label at level 0. If empty,
	// DefaultSeqLabel is used.
	SeqLabel string

	Lines  []Line
	Layout Layout

	// Width and Height are the document size. Zero selects a size
	// suited to the layout.
	Width, Height vg.Length

	// FontSize is the base text size; zero means 10pt.
	FontSize vg.Length

	// LegendColumns is the maximum number of legend columns; zero
	// means 3.
	LegendColumns int

	// ShowTitle draws Title above the plot area.
	ShowTitle bool

	// ShareYTicks places y ticks at the same values as the x ticks.
	ShareYTicks bool
}

const (
	lineWidth    = 1
	markerRadius = 1.5
)

func (c *Chart) seqLabel() string {
	if c.SeqLabel == "" {
		return DefaultSeqLabel
	}
	return c.SeqLabel
}

func (c *Chart) fontSize() vg.Length {
	if c.FontSize == 0 {
		return vg.Points(10)
	}
	return c.FontSize
}

func (c *Chart) legendColumns() int {
	if c.LegendColumns <= 0 {
		return 3
	}
	return c.LegendColumns
}

// Size returns the document size of c.
func (c *Chart) Size() (width, height vg.Length) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = 6 * vg.Inch
	}
	if height == 0 {
		height = 4.5 * vg.Inch
		if c.Layout == Stacked {
			height = vg.Length(len(c.Lines)) * 3.5 * vg.Inch
		}
	}
	return width, height
}

// Save draws c and writes it to path, replacing any existing file.
// The file extension selects the format.
func (c *Chart) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	can, err := c.render(format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := can.WriteTo(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteTo draws c and writes it to w in the named format.
func (c *Chart) WriteTo(w io.Writer, format string) (int64, error) {
	can, err := c.render(format)
	if err != nil {
		return 0, err
	}
	return can.WriteTo(w)
}

func (c *Chart) render(format string) (vg.CanvasWriterTo, error) {
	width, height := c.Size()
	can, err := newCanvas(width, height, format)
	if err != nil {
		return nil, err
	}
	if err := c.Draw(draw.New(can)); err != nil {
		return nil, err
	}
	return can, nil
}

func newCanvas(w, h vg.Length, format string) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(300), vgimg.UseBackgroundColor(color.White))}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// Draw draws c onto dc.
func (c *Chart) Draw(dc draw.Canvas) error {
	if len(c.Lines) == 0 {
		return errors.New("chart has no lines")
	}
	ticks := EvenTicks(xValues(c.Lines[0].XYs), c.seqLabel())

	switch c.Layout {
	case Combined:
		p, entries, err := c.subplot(c.Lines, c.XLabel, ticks, 0)
		if err != nil {
			return err
		}
		if c.ShowTitle {
			p.Title.Text = c.Title
		}
		c.place(dc, p, entries)

	case Stacked:
		plots := make([][]*plot.Plot, len(c.Lines))
		legends := make([][]legendEntry, len(c.Lines))
		for i, l := range c.Lines {
			xlabel := l.XLabel
			if xlabel == "" {
				xlabel = c.XLabel
			}
			p, entries, err := c.subplot(c.Lines[i:i+1], xlabel, ticks, i)
			if err != nil {
				return err
			}
			plots[i] = []*plot.Plot{p}
			legends[i] = entries
		}
		if c.ShowTitle {
			plots[0][0].Title.Text = c.Title
		}
		tiles := draw.Tiles{
			Rows:      len(plots),
			Cols:      1,
			PadY:      c.fontSize(),
			PadTop:    vg.Points(2),
			PadBottom: vg.Points(2),
			PadLeft:   vg.Points(2),
			PadRight:  vg.Points(2),
		}
		canvases := plot.Align(plots, tiles, dc)
		for i := range plots {
			c.place(canvases[i][0], plots[i][0], legends[i])
		}

	default:
		return fmt.Errorf("unknown layout %v", c.Layout)
	}
	return nil
}

type legendEntry struct {
	name   string
	thumbs []plot.Thumbnailer
}

// subplot builds a plot of lines. Line colors start at palette index
// color0 so stacked plots keep the colors a combined plot would use.
func (c *Chart) subplot(lines []Line, xlabel string, ticks []plot.Tick, color0 int) (*plot.Plot, []legendEntry, error) {
	p := plot.New()
	fs := c.fontSize()
	p.Title.TextStyle.Font.Size = fs * 1.2
	p.X.Label.TextStyle.Font.Size = fs
	p.Y.Label.TextStyle.Font.Size = fs
	p.X.Tick.Label.Font.Size = fs * 0.9
	p.Y.Tick.Label.Font.Size = fs * 0.9

	p.X.Label.Text = xlabel
	p.Y.Label.Text = c.YLabel
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	if c.ShareYTicks {
		p.Y.Tick.Marker = plot.ConstantTicks(numericTicks(ticks))
	}
	p.Add(plotter.NewGrid())

	var entries []legendEntry
	for i, l := range lines {
		thumbs, err := addLine(p, l, plotutil.Color(color0+i))
		if err != nil {
			return nil, nil, err
		}
		if l.Legend != "" {
			entries = append(entries, legendEntry{l.Legend, thumbs})
		}
	}
	return p, entries, nil
}

func addLine(p *plot.Plot, l Line, clr color.Color) ([]plot.Thumbnailer, error) {
	if l.XYs == nil || l.XYs.Len() == 0 {
		return nil, fmt.Errorf("line %q has no points", l.Legend)
	}
	glyph, err := Glyph(l.Marker)
	if err != nil {
		return nil, fmt.Errorf("line %q: %w", l.Legend, err)
	}
	dashes, stroke, err := Dashes(l.Style)
	if err != nil {
		return nil, fmt.Errorf("line %q: %w", l.Legend, err)
	}
	if glyph == nil && !stroke {
		return nil, fmt.Errorf("line %q has neither marker nor line style", l.Legend)
	}

	var thumbs []plot.Thumbnailer
	if stroke {
		ln, err := plotter.NewLine(l.XYs)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Legend, err)
		}
		ln.LineStyle.Color = clr
		ln.LineStyle.Width = vg.Points(lineWidth)
		ln.LineStyle.Dashes = dashes
		p.Add(ln)
		thumbs = append(thumbs, ln)
	}
	if glyph != nil {
		sc, err := plotter.NewScatter(l.XYs)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Legend, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: clr, Radius: vg.Points(markerRadius), Shape: glyph}
		p.Add(sc)
		thumbs = append(thumbs, sc)
	}
	return thumbs, nil
}

// place draws p into dc below a band holding the legend entries laid
// out in columns, filled column by column.
func (c *Chart) place(dc draw.Canvas, p *plot.Plot, entries []legendEntry) {
	ncol := c.legendColumns()
	if ncol > len(entries) {
		ncol = len(entries)
	}
	if ncol == 0 {
		p.Draw(dc)
		return
	}
	rows := (len(entries) + ncol - 1) / ncol
	fs := c.fontSize()
	pad := fs / 2
	h := vg.Length(rows)*fs*1.25 + 2*pad

	band := draw.Crop(dc, 0, 0, dc.Max.Y-dc.Min.Y-h, 0)
	p.Draw(draw.Crop(dc, 0, 0, 0, -h))

	colW := (band.Max.X - band.Min.X) / vg.Length(ncol)
	for j := 0; j < ncol; j++ {
		// p.Legend carries the plot's default legend style and no
		// entries, since lines are never added to it.
		leg := p.Legend
		leg.Top, leg.Left = true, true
		leg.YOffs = pad
		leg.TextStyle.Font.Size = fs
		for k := j * rows; k < (j+1)*rows && k < len(entries); k++ {
			leg.Add(entries[k].name, entries[k].thumbs...)
		}
		col := draw.Crop(band, colW*vg.Length(j), -colW*vg.Length(ncol-j-1), 0, 0)
		leg.Draw(col)
	}
}
