// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfchart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// TickLabel returns the label for an x tick at v. The parallelism
// level 0 is the sequential baseline, so it is labeled seq. Every
// other tick is labeled with v truncated to an integer.
func TickLabel(v float64, seq string) string {
	if v == 0 {
		return seq
	}
	return strconv.Itoa(int(v))
}

// EvenTicks returns a tick at each even value of xs, in the order the
// values first appear, labeled by TickLabel.
func EvenTicks(xs []float64, seq string) []plot.Tick {
	var ticks []plot.Tick
	seen := make(map[float64]bool)
	for _, x := range xs {
		if math.Mod(x, 2) != 0 || seen[x] {
			continue
		}
		seen[x] = true
		ticks = append(ticks, plot.Tick{Value: x, Label: TickLabel(x, seq)})
	}
	return ticks
}

// numericTicks relabels ticks with their plain numeric value.
func numericTicks(ticks []plot.Tick) []plot.Tick {
	out := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: strconv.Itoa(int(t.Value))}
	}
	return out
}

// xValues returns the x coordinates of xys.
func xValues(xys plotter.XYer) []float64 {
	xs := make([]float64, xys.Len())
	for i := range xs {
		xs[i], _ = xys.XY(i)
	}
	return xs
}
