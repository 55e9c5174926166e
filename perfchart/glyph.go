// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfchart

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	cosπover4 = vg.Length(.707106781202420)
	sinπover6 = vg.Length(.500000000025921)
	cosπover6 = vg.Length(.866025403769473)
)

// Glyph returns the glyph drawer for a one-character marker code.
// The empty code and "none" mean no marker and return nil.
func Glyph(marker string) (draw.GlyphDrawer, error) {
	switch marker {
	case "", "none":
		return nil, nil
	case "s":
		return draw.BoxGlyph{}, nil
	case "o", ".":
		return draw.CircleGlyph{}, nil
	case "x":
		return CrossGlyph{}, nil
	case "+":
		return draw.PlusGlyph{}, nil
	case "^":
		return draw.TriangleGlyph{}, nil
	case "1":
		return TriDown{}, nil
	case "2":
		return TriUp{}, nil
	case "3":
		return TriLeft{}, nil
	case "4":
		return TriRight{}, nil
	}
	return nil, fmt.Errorf("unknown marker %q", marker)
}

// CrossGlyph is a glyph that draws a big X.
// this version draws a heavier X.
type CrossGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (CrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius * cosπover4
	p := make(vg.Path, 0, 2)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	c.Stroke(p)
	p = p[:0]
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	c.Stroke(p)
}

// The tri glyphs draw three spokes from the center: one along the
// named direction and two at 120 degrees from it.

// TriDown points one spoke down.
type TriDown struct{}

// DrawGlyph implements the Glyph interface.
func (TriDown) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	drawTri(c, sty, pt, 0, -1)
}

// TriUp points one spoke up.
type TriUp struct{}

// DrawGlyph implements the Glyph interface.
func (TriUp) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	drawTri(c, sty, pt, 0, 1)
}

// TriLeft points one spoke left.
type TriLeft struct{}

// DrawGlyph implements the Glyph interface.
func (TriLeft) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	drawTri(c, sty, pt, -1, 0)
}

// TriRight points one spoke right.
type TriRight struct{}

// DrawGlyph implements the Glyph interface.
func (TriRight) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	drawTri(c, sty, pt, 1, 0)
}

// drawTri strokes three spokes of length sty.Radius from pt. (dx, dy)
// is the unit direction of the first spoke; the others are rotated
// by ±120°.
func drawTri(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point, dx, dy vg.Length) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius
	// Rotating (dx, dy) by ±120° gives (-dx/2 ∓ dy·√3/2, ±dx·√3/2 - dy/2).
	spokes := [3]vg.Point{
		{X: dx, Y: dy},
		{X: -dx*sinπover6 - dy*cosπover6, Y: dx*cosπover6 - dy*sinπover6},
		{X: -dx*sinπover6 + dy*cosπover6, Y: -dx*cosπover6 - dy*sinπover6},
	}
	p := make(vg.Path, 0, 2)
	for _, s := range spokes {
		p = p[:0]
		p.Move(pt)
		p.Line(vg.Point{X: pt.X + r*s.X, Y: pt.Y + r*s.Y})
		c.Stroke(p)
	}
}

// Dashes returns the dash pattern for a line style code.
// A nil pattern is a solid line. ok is false for "" and "none", which
// draw no line at all.
func Dashes(style string) (dashes []vg.Length, ok bool, err error) {
	switch style {
	case "", "none":
		return nil, false, nil
	case "-", "solid":
		return nil, true, nil
	case "--", "dashed":
		return []vg.Length{vg.Points(4), vg.Points(2)}, true, nil
	case "-.", "dashdot":
		return []vg.Length{vg.Points(4), vg.Points(2), vg.Points(1), vg.Points(2)}, true, nil
	case ":", "dotted":
		return []vg.Length{vg.Points(1), vg.Points(1.5)}, true, nil
	}
	return nil, false, fmt.Errorf("unknown line style %q", style)
}
