// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command usmap draws the population of the continental US states
// as a choropleth map.
//
// usmap reads states.csv from the data directory, which must have
// State, Code and Population columns, and joins it to state
// boundaries by postal code. States without a population are drawn
// in a neutral color.
//
// Boundaries come from the Natural Earth admin-1 shapefile. By
// default usmap looks for ne_110m_admin_1_states_provinces.zip in
// the data directory and downloads it there if it is missing. The
// map is written to us_population_map_<mode>.png in the output
// directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aclements/chartgallery/internal/chartdata"
	"github.com/aclements/chartgallery/internal/config"
	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/shapes"
	"github.com/aclements/chartgallery/internal/theme"
	"github.com/aclements/chartgallery/internal/viewer"
)

const statesFile = "ne_110m_admin_1_states_provinces.zip"

type options struct {
	// shapes is the boundary shapefile. If empty, statesFile in
	// the data directory is used, fetching it from url if needed.
	shapes string
	url    string
	client *http.Client
}

func main() {
	log.SetPrefix("usmap: ")
	log.SetFlags(0)

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	opts := options{url: shapes.NaturalEarthStates}
	flag.StringVar(&opts.shapes, "shapes", "", "read state boundaries from `file` (.shp or .zip)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	out, err := run(ctx, cfg, opts, os.Stdout)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	if out != "" {
		if err := viewer.Show(cfg.Viewer, out, cfg.Show); err != nil {
			log.Fatal(err)
		}
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, w io.Writer) (string, error) {
	th, err := cfg.Theme()
	if err != nil {
		return "", err
	}
	in := cfg.InputPath("states.csv")
	if cfg.Table {
		return "", chartdata.Fprint(w, in)
	}

	pop, err := loadPopulation(in)
	if err != nil {
		return "", err
	}
	if len(pop) == 0 {
		fmt.Fprintln(w, "No data to display")
		return "", nil
	}

	path := opts.shapes
	if path == "" {
		path = filepath.Join(cfg.DataDir, statesFile)
		if _, err := shapes.Fetch(ctx, opts.client, opts.url, path); err != nil {
			return "", err
		}
	}
	all, err := shapes.Load(path)
	if err != nil {
		return "", err
	}
	states := continental(all)
	if len(states) == 0 {
		return "", fmt.Errorf("%s has no continental US states", path)
	}

	d := mapDrawing(states, join(states, pop), th)
	out := render.Output(cfg.OutputDir, "us_population_map", string(th.Mode))
	if err := render.Save(d, out, 7*vg.Inch, 4*vg.Inch, 150, th.Background); err != nil {
		return "", err
	}
	render.Announce(w, "Map", out, string(th.Mode))
	return out, nil
}

// loadPopulation reads the population of each state by postal code.
func loadPopulation(path string) (map[string]float64, error) {
	t, err := chartdata.Load(path)
	if err != nil {
		return nil, err
	}
	if err := chartdata.Require(t, path, "State", "Code", "Population"); err != nil {
		return nil, err
	}
	vals, err := chartdata.Floats(t, "Population")
	if err != nil {
		return nil, err
	}
	pop := make(map[string]float64, len(vals))
	for i, code := range chartdata.Strings(t, "Code") {
		pop[strings.ToUpper(strings.TrimSpace(code))] = vals[i]
	}
	return pop, nil
}

// continental returns the US states in rs other than Alaska and
// Hawaii.
func continental(rs []*shapes.Region) []*shapes.Region {
	var out []*shapes.Region
	for _, r := range rs {
		if r.Attr("admin") != "United States of America" {
			continue
		}
		if p := r.Attr("postal"); p == "AK" || p == "HI" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// join returns the population of each state, or NaN if pop does not
// have it.
func join(states []*shapes.Region, pop map[string]float64) []float64 {
	vals := make([]float64, len(states))
	for i, s := range states {
		v, ok := pop[s.Attr("postal")]
		if !ok {
			v = math.NaN()
		}
		vals[i] = v
	}
	return vals
}

// colorBarWidth is the share of the figure width given to the
// color bar.
const colorBarWidth = 0.15

// mapDrawing lays out the map with a color bar to its right.
func mapDrawing(states []*shapes.Region, vals []float64, th *theme.Theme) render.DrawFunc {
	var known []float64
	for _, v := range vals {
		if !math.IsNaN(v) {
			known = append(known, v)
		}
	}
	lo, hi := 0.0, 1.0
	if len(known) > 0 {
		lo, hi = stats.Bounds(known)
	}
	cmap := newGradientMap(blues, lo, hi)

	mp := mapPlot(states, vals, cmap, th)
	bar := colorBarPlot(cmap, th)
	return func(c draw.Canvas) {
		bw := vg.Length(colorBarWidth) * (c.Max.X - c.Min.X)
		mp.Draw(draw.Crop(c, 0, -bw, 0, 0))
		// Line the bar up with the map below the title.
		bar.Draw(draw.Crop(c, c.Max.X-c.Min.X-bw, -bw/3, 0, -vg.Points(40)))
	}
}

func mapPlot(states []*shapes.Region, vals []float64, cmap palette.ColorMap, th *theme.Theme) *plot.Plot {
	p := plot.New()
	th.Style(p)
	p.HideAxes()
	p.Title.Text = "U.S. States by Population (Continental US)"
	p.Title.Padding = vg.Points(15)
	p.Title.TextStyle.Font = theme.Font(14, false)

	ch := newChoropleth(states, vals, cmap)
	ch.Missing = th.MapMissing
	ch.Edge.Color = th.MapEdge
	p.Add(ch)
	return p
}

func colorBarPlot(cmap palette.ColorMap, th *theme.Theme) *plot.Plot {
	p := plot.New()
	th.Style(p)
	p.HideX()
	p.Y.Tick.Marker = thousandsTicks{}
	p.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	return p
}

// thousandsTicks are the default ticks labeled with thousands
// separators.
type thousandsTicks struct{}

var printer = message.NewPrinter(language.English)

func (thousandsTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label != "" {
			ticks[i].Label = printer.Sprintf("%d", int64(math.Round(t.Value)))
		}
	}
	return ticks
}
