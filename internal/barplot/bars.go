// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barplot draws categorical bar charts with one color per
// bar.
package barplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Width is the fraction of the space between categories a bar
// covers.
const Width = 0.8

// bar is a single-value bar chart whose width is a fraction of the
// distance between categories rather than a fixed length.
type bar struct {
	*plotter.BarChart
}

func (b bar) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	if b.Horizontal {
		b.Width = Width * (trY(1) - trY(0))
	} else {
		b.Width = Width * (trX(1) - trX(0))
	}
	b.BarChart.Plot(c, p)
}

// New returns one plotter per value, placing value i at category
// position i and coloring it colors[i%len(colors)]. Horizontal bars
// grow along X with categories on Y.
func New(values []float64, colors []color.Color, horizontal bool) ([]plot.Plotter, error) {
	ps := make([]plot.Plotter, len(values))
	for i, v := range values {
		b, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(1))
		if err != nil {
			return nil, err
		}
		b.XMin = float64(i)
		b.Horizontal = horizontal
		b.Color = colors[i%len(colors)]
		b.LineStyle.Width = 0
		ps[i] = bar{b}
	}
	return ps, nil
}

// Frame sets the category axis of p to show n categories with half
// a category of margin on each side, labeled with names.
func Frame(p *plot.Plot, names []string, horizontal bool) {
	n := float64(len(names))
	if horizontal {
		p.NominalY(names...)
		p.Y.Min, p.Y.Max = -0.5, n-0.5
		return
	}
	p.NominalX(names...)
	p.X.Min, p.X.Max = -0.5, n-0.5
}
