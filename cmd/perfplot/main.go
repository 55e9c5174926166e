// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfplot draws speedup and throughput charts from benchmark result
// tables.
//
// Usage:
//
//	perfplot [-config file] [-data dir] [-o dir] [-format ext] [-csv] [-list] [report...]
//
// Each report names a CSV input file, the column holding the level of
// parallelism, and the columns to draw against it. Perfplot reads the
// input from the -data directory and writes one document per report,
// named after the report, to the -o directory. An existing document
// of the same name is replaced.
//
// With no arguments, perfplot draws every enabled report in the order
// they are configured. Naming reports draws just those, including
// reports that are disabled by default.
//
// The -config flag reads reports from a YAML file instead of the
// built-in set. The built-in set is:
//
//	mandelbrot_comparison  Mandelbrot speedup of five pipeline runtimes,
//	                       from mandelbrot_perfdata.csv
//	imageproc_speedup      image processing speedup, first 13 rows of
//	                       imageproc_perfdata.csv (disabled)
//	imageproc_throughput   image processing throughput, one panel per
//	                       runtime, from imageproc_perfdata.csv
//
// The -format flag selects the document type: pdf (the default), svg,
// eps or png.
//
// The -csv flag prints the data each report would draw as CSV instead
// of drawing it. Tables for successive reports are separated by a
// blank line.
//
// The -list flag prints the configured reports and exits.
//
// A missing input file, a missing column or a cell that is not a
// number stops perfplot with an error; documents already written by
// earlier reports are left in place.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/rust-spp/perfplot/report"
)

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("perfplot: ")
	log.SetFlags(0)

	if err := perfplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func perfplot(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("perfplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: perfplot [flags] [report...]\n\n")
		fs.PrintDefaults()
	}
	flagConfig := fs.String("config", "", "read reports from YAML `file`")
	flagData := fs.String("data", ".", "read input CSV files from `dir`")
	flagOut := fs.String("o", ".", "write documents to `dir`")
	flagFormat := fs.String("format", "pdf", "document `type`: pdf, svg, eps or png")
	flagCSV := fs.Bool("csv", false, "print report data as CSV instead of drawing it")
	flagList := fs.Bool("list", false, "list configured reports and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}

	cfg := report.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = report.Load(*flagConfig)
		if err != nil {
			return err
		}
	}

	if *flagList {
		return list(stdout, cfg)
	}

	reports, err := cfg.Select(fs.Args()...)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", 0)
	rn := &report.Runner{
		DataDir: *flagData,
		OutDir:  *flagOut,
		Format:  *flagFormat,
		Logf:    logger.Printf,
	}

	for i, r := range reports {
		if !*flagCSV {
			if _, err := rn.Run(r); err != nil {
				return err
			}
			continue
		}

		t, err := rn.Table(r)
		if err != nil {
			return err
		}
		lines, err := r.Resolve(t)
		if err != nil {
			return fmt.Errorf("report %s: %w", r.Name, err)
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := r.WriteCSV(stdout, lines); err != nil {
			return err
		}
	}
	return nil
}

func list(w io.Writer, cfg *report.Config) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, r := range cfg.Reports {
		layout := r.Layout
		if layout == "" {
			layout = report.Combined
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d", r.Name, r.Input, layout, len(r.Lines))
		if r.Disabled {
			fmt.Fprint(tw, "\tdisabled")
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
