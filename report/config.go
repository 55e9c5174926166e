// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report turns benchmark result files into chart documents.
//
// A Report names an input file, the column holding the parallelism
// level, and the columns to draw against it. A Config is an ordered
// list of reports, read from YAML:
//
//	reports:
//	  - name: mandelbrot_comparison
//	    input: mandelbrot_perfdata.csv
//	    x: Level of Parallelism
//	    x_label: Parallelism Level
//	    y_label: Speedup
//	    lines:
//	      - column: Speedup Rayon
//	        legend: Rayon
//	        marker: "4"
//	        style: "--"
//
// Default returns the configuration used when no file is given.
package report

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/rust-spp/perfplot/perfchart"
)

// A Config is the ordered set of reports a run may produce.
type Config struct {
	Reports []*Report `yaml:"reports" json:"reports"`
}

// A Report describes one chart document.
type Report struct {
	// Name is the output file name without extension.
	Name string `yaml:"name" json:"name"`

	// Input is the results file, relative to the data directory.
	Input string `yaml:"input" json:"input"`

	// Disabled reports only run when selected by name.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`

	Layout Layout `yaml:"layout,omitempty" json:"layout,omitempty"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`

	// X is the column holding the parallelism level.
	X      string `yaml:"x" json:"x"`
	XLabel string `yaml:"x_label,omitempty" json:"x_label,omitempty"`
	YLabel string `yaml:"y_label,omitempty" json:"y_label,omitempty"`

	// SeqLabel labels the x tick at level 0.
	SeqLabel string `yaml:"seq_label,omitempty" json:"seq_label,omitempty"`

	// Rows restricts every line to a window of input rows.
	Rows Window `yaml:"rows,omitempty" json:"rows,omitempty"`

	Lines []Line `yaml:"lines" json:"lines"`

	// Width and Height are in inches; zero picks a default.
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" json:"height,omitempty"`

	ShowTitle   bool `yaml:"show_title,omitempty" json:"show_title,omitempty"`
	ShareYTicks bool `yaml:"share_y_ticks,omitempty" json:"share_y_ticks,omitempty"`
}

// A Line is one column drawn against the report's x column.
type Line struct {
	Column string `yaml:"column" json:"column"`
	Legend string `yaml:"legend,omitempty" json:"legend,omitempty"`
	Marker string `yaml:"marker,omitempty" json:"marker,omitempty"`
	Style  string `yaml:"style,omitempty" json:"style,omitempty"`

	// XLabel labels this line's own plot in a stacked report.
	XLabel string `yaml:"x_label,omitempty" json:"x_label,omitempty"`

	// Offset shifts this line's values forward by that many rows
	// within the report's window; the gap left at the end is filled
	// by repeating the last value.
	Offset int `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// A Window selects input rows [Start, End). An End of zero means
// through the last row.
type Window struct {
	Start int `yaml:"start,omitempty" json:"start,omitempty"`
	End   int `yaml:"end,omitempty" json:"end,omitempty"`
}

// A Layout is the YAML form of perfchart.Layout.
type Layout string

const (
	Combined Layout = "combined"
	Stacked  Layout = "stacked"
)

// Chart returns the perfchart layout for l. The empty layout is
// Combined.
func (l Layout) Chart() (perfchart.Layout, error) {
	switch l {
	case "", Combined:
		return perfchart.Combined, nil
	case Stacked:
		return perfchart.Stacked, nil
	}
	return 0, fmt.Errorf("unknown layout %q", string(l))
}

//go:embed schema.json
var schema []byte

// Load reads a YAML report configuration from path.
//
// The document is checked against the configuration schema before it
// is decoded, so misspelled keys are reported rather than ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML report configuration. name is used in errors.
func Parse(data []byte, name string) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", name, err)
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

func validate(doc interface{}) error {
	// Round trip through JSON so the schema sees the same types a
	// JSON document would produce.
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, issue := range result.Errors() {
		issues = append(issues, issue.String())
	}
	return errors.New(strings.Join(issues, "; "))
}

// Check reports the first semantic problem in cfg that the schema
// cannot express.
func (cfg *Config) Check() error {
	seen := make(map[string]bool)
	for i, r := range cfg.Reports {
		if r == nil {
			return fmt.Errorf("report %d is empty", i)
		}
		if r.Name == "" {
			return fmt.Errorf("report %d has no name", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate report %q", r.Name)
		}
		seen[r.Name] = true
		if err := r.Check(); err != nil {
			return fmt.Errorf("report %q: %w", r.Name, err)
		}
	}
	return nil
}

// Check reports the first problem with r's definition.
func (r *Report) Check() error {
	if r.Input == "" {
		return errors.New("no input file")
	}
	if r.X == "" {
		return errors.New("no x column")
	}
	if len(r.Lines) == 0 {
		return errors.New("no lines")
	}
	if _, err := r.Layout.Chart(); err != nil {
		return err
	}
	if r.Rows.Start < 0 || r.Rows.End < 0 {
		return fmt.Errorf("negative row window [%d, %d)", r.Rows.Start, r.Rows.End)
	}
	if r.Rows.End != 0 && r.Rows.End <= r.Rows.Start {
		return fmt.Errorf("empty row window [%d, %d)", r.Rows.Start, r.Rows.End)
	}
	for _, l := range r.Lines {
		if l.Column == "" {
			return errors.New("line with no column")
		}
		if l.Offset < 0 {
			return fmt.Errorf("line %q: negative offset %d", l.Column, l.Offset)
		}
		if _, err := perfchart.Glyph(l.Marker); err != nil {
			return fmt.Errorf("line %q: %w", l.Column, err)
		}
		if _, _, err := perfchart.Dashes(l.Style); err != nil {
			return fmt.Errorf("line %q: %w", l.Column, err)
		}
	}
	return nil
}

// Select returns the reports to run. With no names, it returns the
// enabled reports in configuration order. Otherwise it returns the
// named reports in the order given, whether enabled or not.
func (cfg *Config) Select(names ...string) ([]*Report, error) {
	if len(names) == 0 {
		var out []*Report
		for _, r := range cfg.Reports {
			if !r.Disabled {
				out = append(out, r)
			}
		}
		return out, nil
	}
	byName := make(map[string]*Report, len(cfg.Reports))
	for _, r := range cfg.Reports {
		byName[r.Name] = r
	}
	out := make([]*Report, 0, len(names))
	for _, name := range names {
		r, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown report %q", name)
		}
		out = append(out, r)
	}
	return out, nil
}
