// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command barchart draws monthly sales as a vertical bar chart.
//
// barchart reads monthly_sales.csv from the data directory, which
// must have Month and Sales columns, orders the months January
// through December and writes barchart_<mode>.png to the output
// directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/chartgallery/internal/barplot"
	"github.com/aclements/chartgallery/internal/chartdata"
	"github.com/aclements/chartgallery/internal/config"
	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/theme"
	"github.com/aclements/chartgallery/internal/viewer"
)

func main() {
	log.SetPrefix("barchart: ")
	log.SetFlags(0)

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	out, err := run(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if out != "" {
		if err := viewer.Show(cfg.Viewer, out, cfg.Show); err != nil {
			log.Fatal(err)
		}
	}
}

// run draws the chart described by cfg and returns the path it
// wrote, or "" if there was nothing to draw.
func run(cfg *config.Config, w io.Writer) (string, error) {
	th, err := cfg.Theme()
	if err != nil {
		return "", err
	}
	in := cfg.InputPath("monthly_sales.csv")
	if cfg.Table {
		return "", chartdata.Fprint(w, in)
	}

	s, err := chartdata.LoadSeries(in, "Month", "Sales")
	if err != nil {
		return "", err
	}
	if s.Len() == 0 {
		fmt.Fprintln(w, "No data to display")
		return "", nil
	}
	s = chartdata.SortMonths(s)

	p, err := barPlot(s, th)
	if err != nil {
		return "", err
	}
	out := render.Output(cfg.OutputDir, "barchart", string(th.Mode))
	if err := render.Save(p, out, 6*vg.Inch, 4*vg.Inch, 72, th.Background); err != nil {
		return "", err
	}
	render.Announce(w, "Chart", out, string(th.Mode))
	return out, nil
}

func barPlot(s chartdata.Series, th *theme.Theme) (*plot.Plot, error) {
	p := plot.New()
	th.Style(p)
	p.Title.Text = "Monthly Sales Performance"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Sales"

	p.Add(th.Grid(false, true))
	bars, err := barplot.New(s.Values, th.Colors(s.Len()), false)
	if err != nil {
		return nil, err
	}
	p.Add(bars...)
	barplot.Frame(p, s.Labels, false)
	return p, nil
}
