// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

// Default returns the built-in reports: the Mandelbrot speedup
// comparison and the image processing throughput chart, plus the
// image processing speedup chart, which is disabled.
func Default() *Config {
	return &Config{Reports: []*Report{
		{
			Name:        "mandelbrot_comparison",
			Input:       "mandelbrot_perfdata.csv",
			Layout:      Combined,
			Title:       "Mandelbrot 1000x1000 Speedup",
			X:           "Level of Parallelism",
			XLabel:      "Parallelism Level",
			YLabel:      "Speedup",
			SeqLabel:    "Sequential",
			ShareYTicks: true,
			Lines: []Line{
				{Column: "Speedup Rust-SPP", Legend: "SSP-Rust Unordered", Marker: "s", Style: "--"},
				{Column: "Speedup Rust-SPP Ordered", Legend: "SSP-Rust Ordered", Marker: "3", Style: "-."},
				{Column: "Speedup Rayon", Legend: "Rayon", Marker: "4", Style: "--"},
				{Column: "Speedup Tokio Ordered", Legend: "Tokio Ordered", Marker: "+", Style: ":"},
				{Column: "Speedup Tokio Unordered", Legend: "Tokio Unordered", Marker: "x", Style: ":"},
				// Perfect scaling: speedup equals the parallelism level.
				{Column: "Level of Parallelism", Legend: "Ideal", Marker: "2", Style: "-"},
			},
		},
		{
			Name:        "imageproc_speedup",
			Input:       "imageproc_perfdata.csv",
			Disabled:    true,
			Layout:      Combined,
			Title:       "Image processing speedup",
			X:           "threads_per_filter",
			XLabel:      "Parallelism Level",
			YLabel:      "Speedup",
			SeqLabel:    "Seq",
			ShareYTicks: true,
			Rows:        Window{End: 13},
			Lines: []Line{
				{Column: "Speedup Rust-SPP", Legend: "SSP-Rust", Marker: "x", Style: ":"},
				{Column: "Speedup Tokio", Legend: "Tokio", Marker: "x", Style: "--"},
				{Column: "Speedup Tokio", Legend: "Tokio Normalized", Marker: "o", Style: ":", Offset: 1},
			},
		},
		{
			Name:        "imageproc_throughput",
			Input:       "imageproc_perfdata.csv",
			Layout:      Stacked,
			Title:       "Image processing throughput",
			X:           "threads_per_filter",
			YLabel:      "Images/sec",
			SeqLabel:    "Seq",
			ShareYTicks: true,
			Lines: []Line{
				{Column: "Throughput Rust-SPP", Legend: "SSP-Rust", Marker: "x", Style: "-", XLabel: "Threads per stage"},
				{Column: "Throughput Tokio", Legend: "Tokio", Marker: "x", Style: "-", XLabel: "Buffer size per stage"},
			},
		},
	}}
}
