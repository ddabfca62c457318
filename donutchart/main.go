// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command donutchart draws each product's share of sales as a donut
// chart: a pie with its center cut out and the percentages on the
// ring.
//
// donutchart reads product_sales.csv from the data directory, which
// must have Product and Sales columns. Products with negative sales
// are left out with a warning. The chart is written to
// donutchart_<mode>.png in the output directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/chartgallery/internal/chartdata"
	"github.com/aclements/chartgallery/internal/config"
	"github.com/aclements/chartgallery/internal/pieplot"
	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/theme"
	"github.com/aclements/chartgallery/internal/viewer"
)

func main() {
	log.SetPrefix("donutchart: ")
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

func run(cfg *config.Config, w io.Writer) (string, error) {
	th, err := cfg.Theme()
	if err != nil {
		return "", err
	}
	in := cfg.InputPath("product_sales.csv")
	if cfg.Table {
		return "", chartdata.Fprint(w, in)
	}

	s, err := chartdata.LoadSeries(in, "Product", "Sales")
	if err != nil {
		return "", err
	}
	if s.Len() == 0 {
		fmt.Fprintln(w, "No data to display")
		return "", nil
	}
	s, dropped := chartdata.DropNegative(s)
	if dropped > 0 {
		fmt.Fprintln(w, "Warning: Negative sales values detected")
	}
	if !(s.Total() > 0) {
		fmt.Fprintln(w, "No data to display")
		return "", nil
	}

	p, _ := donutPlot(s, th)
	out := render.Output(cfg.OutputDir, "donutchart", string(th.Mode))
	if err := render.Save(p, out, 6*vg.Inch, 4*vg.Inch, 72, th.Background); err != nil {
		return "", err
	}
	render.Announce(w, "Chart", out, string(th.Mode))
	return out, nil
}

// Ring geometry as fractions of the outer radius.
const (
	ringWidth   = 0.45
	pctDistance = 0.75
)

func donutPlot(s chartdata.Series, th *theme.Theme) (*plot.Plot, *pieplot.Pie) {
	p := plot.New()
	th.Style(p)
	p.HideAxes()
	p.Title.Text = "Sales Distribution by Product"
	p.Title.Padding = vg.Points(20)

	pie := pieplot.New(s.Values, s.Labels, th.Colors(s.Len()))
	pie.LabelStyle.Color = th.Text
	pie.PctStyle.Color = th.Text
	pie.Hole = 1 - ringWidth
	pie.PctDistance = pctDistance
	p.Add(pie)
	return p, pie
}
