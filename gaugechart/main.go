// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gaugechart draws reported sales as a share of total sales
// on a semicircular gauge.
//
// gaugechart reads monthly_sales.csv from the data directory, which
// must have Month and Sales columns. The sales of the first months
// of the year (eight by default, see -reported) are shown as a
// percentage of the sales of all months.
//
// Rows are put in calendar order before counting, so -reported
// counts January onward whatever order the file lists months in.
// Rows whose label is not a month name sort after December.
//
// The chart is written to gaugechart_<mode>.png in the output
// directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/chartgallery/internal/chartdata"
	"github.com/aclements/chartgallery/internal/config"
	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/theme"
	"github.com/aclements/chartgallery/internal/viewer"
)

type options struct {
	reported int
	title    string
}

func main() {
	log.SetPrefix("gaugechart: ")
	log.SetFlags(0)

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	var opts options
	flag.IntVar(&opts.reported, "reported", 8, "count the first `n` months as reported")
	flag.StringVar(&opts.title, "title", "Sales Performance", "chart `title`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	out, err := run(cfg, opts, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if out != "" {
		if err := viewer.Show(cfg.Viewer, out, cfg.Show); err != nil {
			log.Fatal(err)
		}
	}
}

var errNoSales = errors.New("total sales is zero")

func run(cfg *config.Config, opts options, w io.Writer) (string, error) {
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
	pct, err := percentReported(chartdata.SortMonths(s), opts.reported)
	if err != nil {
		return "", err
	}

	p := gaugePlot(pct, opts.title, th)
	out := render.Output(cfg.OutputDir, "gaugechart", string(th.Mode))
	if err := render.Save(p, out, 4*vg.Inch, 3*vg.Inch, 150, th.Background); err != nil {
		return "", err
	}
	render.Announce(w, "Gauge chart", out, string(th.Mode))
	return out, nil
}

// percentReported returns the sales of the first n points of s as a
// percentage of the sales of all of s.
func percentReported(s chartdata.Series, n int) (float64, error) {
	total := s.Total()
	if total == 0 {
		return 0, errNoSales
	}
	return s.Head(n).Total() / total * 100, nil
}

func gaugePlot(pct float64, title string, th *theme.Theme) *plot.Plot {
	p := plot.New()
	th.Style(p)
	p.HideAxes()
	p.Title.Text = title
	p.Title.Padding = vg.Points(5)
	p.Title.TextStyle.Font = theme.Font(12, true)
	p.Add(newGauge(pct, th))
	return p
}
