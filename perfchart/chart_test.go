// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfchart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

func TestTickLabel(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{0, "Sequential"},
		{math.Copysign(0, -1), "Sequential"},
		{2, "2"},
		{4, "4"},
		{16, "16"},
		{3.7, "3"},
		{-2, "-2"},
	} {
		if got := TickLabel(test.v, "Sequential"); got != test.want {
			t.Errorf("TickLabel(%v) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestEvenTicks(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 2, 7, 8}
	got := EvenTicks(xs, "Seq")
	want := []plot.Tick{
		{Value: 0, Label: "Seq"},
		{Value: 2, Label: "2"},
		{Value: 4, Label: "4"},
		{Value: 6, Label: "6"},
		{Value: 8, Label: "8"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EvenTicks mismatch (-want +got):\n%s", diff)
	}

	// Without a 0 level nothing is relabeled.
	for _, tick := range EvenTicks([]float64{1, 2, 3, 4}, "Seq") {
		if tick.Label == "Seq" {
			t.Errorf("tick %v labeled as sequential", tick.Value)
		}
	}

	if got := EvenTicks([]float64{1, 3, 5.5}, "Seq"); len(got) != 0 {
		t.Errorf("got ticks %v from odd levels", got)
	}

	y := numericTicks(want)
	if y[0].Label != "0" || y[4].Label != "8" {
		t.Errorf("numericTicks = %v", y)
	}
}

func TestGlyph(t *testing.T) {
	for _, m := range []string{"s", "o", ".", "x", "+", "^", "1", "2", "3", "4"} {
		g, err := Glyph(m)
		if err != nil || g == nil {
			t.Errorf("Glyph(%q) = %v, %v", m, g, err)
		}
	}
	for _, m := range []string{"", "none"} {
		if g, err := Glyph(m); g != nil || err != nil {
			t.Errorf("Glyph(%q) = %v, %v; want nil, nil", m, g, err)
		}
	}
	if _, err := Glyph("*"); err == nil {
		t.Errorf("Glyph(*) succeeded")
	}
}

func TestDashes(t *testing.T) {
	for _, test := range []struct {
		style  string
		stroke bool
		dashed bool
	}{
		{"-", true, false},
		{"solid", true, false},
		{"--", true, true},
		{"-.", true, true},
		{":", true, true},
		{"dotted", true, true},
		{"", false, false},
		{"none", false, false},
	} {
		d, stroke, err := Dashes(test.style)
		if err != nil {
			t.Errorf("Dashes(%q): %v", test.style, err)
			continue
		}
		if stroke != test.stroke || (len(d) > 0) != test.dashed {
			t.Errorf("Dashes(%q) = %v, %v; want stroke=%v dashed=%v", test.style, d, stroke, test.stroke, test.dashed)
		}
	}
	if _, _, err := Dashes("~"); err == nil {
		t.Errorf("Dashes(~) succeeded")
	}
}

func speedup(n int, f func(float64) float64) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X = float64(i)
		xys[i].Y = f(float64(i))
	}
	return xys
}

func testChart(layout Layout) *Chart {
	return &Chart{
		Title:    "Mandelbrot 1000x1000 Speedup",
		XLabel:   "Parallelism Level",
		YLabel:   "Speedup",
		SeqLabel: "Sequential",
		Layout:   layout,
		Lines: []Line{
			{XYs: speedup(9, func(x float64) float64 { return 0.9 * x }), Legend: "SSP-Rust Unordered", Marker: "s", Style: "--", XLabel: "Threads per stage"},
			{XYs: speedup(9, func(x float64) float64 { return 0.8 * x }), Legend: "Rayon", Marker: "4", Style: "-.", XLabel: "Buffer size per stage"},
			{XYs: speedup(9, func(x float64) float64 { return x }), Legend: "Ideal", Marker: "2", Style: "-"},
		},
		ShareYTicks: true,
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		layout Layout
		ext    string
		magic  string
	}{
		{Combined, "pdf", "%PDF"},
		{Stacked, "pdf", "%PDF"},
		{Combined, "svg", "<?xml"},
		{Combined, "eps", "%!PS"},
		{Stacked, "png", "\x89PNG"},
	} {
		path := filepath.Join(dir, test.layout.String()+"."+test.ext)
		if err := testChart(test.layout).Save(path); err != nil {
			t.Fatalf("Save(%s): %v", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte(test.magic)) {
			t.Errorf("%s: got prefix %q, want %q", path, data[:min(len(data), 8)], test.magic)
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandelbrot_comparison.pdf")
	junk := bytes.Repeat([]byte("stale "), 1<<16)
	if err := os.WriteFile(path, junk, 0666); err != nil {
		t.Fatal(err)
	}
	c := testChart(Combined)
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(first, []byte("stale")) {
		t.Errorf("old contents survived Save")
	}
	if !bytes.HasPrefix(first, []byte("%PDF")) {
		t.Errorf("not a PDF after overwrite")
	}
	// A second run targets the same path.
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("got files %v, want only %s", matches, path)
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	c := testChart(Combined)

	err := c.Save(filepath.Join(dir, "chart.gif"))
	if err == nil || !strings.Contains(err.Error(), `unsupported output format "gif"`) {
		t.Errorf("unknown format: got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "chart.gif")); !os.IsNotExist(err) {
		t.Errorf("failed Save left a file behind")
	}

	if err := c.Save(filepath.Join(dir, "missing", "chart.pdf")); err == nil {
		t.Errorf("Save into missing directory succeeded")
	}

	empty := &Chart{}
	if err := empty.Save(filepath.Join(dir, "empty.pdf")); err == nil {
		t.Errorf("Save of chart with no lines succeeded")
	}

	bad := testChart(Combined)
	bad.Lines[1].Marker = "*"
	if _, err := bad.WriteTo(new(bytes.Buffer), "pdf"); err == nil || !strings.Contains(err.Error(), `unknown marker "*"`) {
		t.Errorf("bad marker: got %v", err)
	}

	invisible := testChart(Combined)
	invisible.Lines[0].Marker, invisible.Lines[0].Style = "none", "none"
	if _, err := invisible.WriteTo(new(bytes.Buffer), "svg"); err == nil {
		t.Errorf("line with no marker and no style rendered")
	}

	nan := testChart(Combined)
	nan.Lines[0].XYs = plotter.XYs{{X: 0, Y: math.NaN()}}
	if _, err := nan.WriteTo(new(bytes.Buffer), "svg"); err == nil {
		t.Errorf("NaN point rendered")
	}
}

func TestSize(t *testing.T) {
	c := testChart(Stacked)
	c.Lines = c.Lines[:2]
	w, h := c.Size()
	if w <= 0 || h <= w {
		t.Errorf("stacked Size = %v x %v, want taller than wide", w, h)
	}
	c.Width, c.Height = 100, 50
	if w, h := c.Size(); w != 100 || h != 50 {
		t.Errorf("explicit Size = %v x %v, want 100 x 50", w, h)
	}
}
