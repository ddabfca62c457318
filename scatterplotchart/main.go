// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scatterplotchart draws monthly sales as a scatter plot.
//
// scatterplotchart reads monthly_sales.csv from the data directory.
// Its Month column gives the categories and its Sales column, which
// must be numeric, the values. The chart is written to
// scatterplotchart_<mode>.png in the output directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aclements/chartgallery/internal/chartdata"
	"github.com/aclements/chartgallery/internal/config"
	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/theme"
	"github.com/aclements/chartgallery/internal/viewer"
)

func main() {
	log.SetPrefix("scatterplotchart: ")
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

	p, err := scatterPlot(s, th)
	if err != nil {
		return "", err
	}
	out := render.Output(cfg.OutputDir, "scatterplotchart", string(th.Mode))
	if err := render.Save(p, out, 6*vg.Inch, 4*vg.Inch, 72, th.Background); err != nil {
		return "", err
	}
	render.Announce(w, "Chart", out, string(th.Mode))
	return out, nil
}

func scatterPlot(s chartdata.Series, th *theme.Theme) (*plot.Plot, error) {
	p := plot.New()
	th.Style(p)
	p.Title.Text = "Sales Scatter Plot"
	p.Title.Padding = vg.Points(20)
	p.Title.TextStyle.Font = theme.Font(12, false)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Sales"
	p.X.Label.TextStyle.Font = theme.Font(10, false)
	p.Y.Label.TextStyle.Font = theme.Font(10, false)
	p.Add(th.Grid(true, true))

	pts := make(plotter.XYs, s.Len())
	for i, v := range s.Values {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: th.Palette[2], Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	p.Add(sc)

	p.NominalX(s.Labels...)
	p.X.Min, p.X.Max = -0.5, float64(s.Len())-0.5
	rotateTicks(&p.X)
	return p, nil
}

// rotateTicks slants the tick labels of a by 45° so long category
// names do not collide, anchoring each at its right end.
func rotateTicks(a *plot.Axis) {
	a.Tick.Label.Rotation = math.Pi / 4
	a.Tick.Label.XAlign = draw.XRight
	a.Tick.Label.YAlign = draw.YTop
}
