// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/theme"
)

// Gauge geometry in data units. The dial is the upper half of an
// annulus centered on the origin.
const (
	outerRadius = 1.0
	innerRadius = 0.7
	labelRadius = outerRadius + 0.1
	arcSamples  = 100

	viewXMin, viewXMax = -1.2, 1.2
	viewYMin, viewYMax = -0.2, 1.3
)

var scaleMarks = []int{0, 20, 40, 60, 80, 100}

type point struct {
	X, Y float64
}

// angle returns the dial angle in degrees of pct percent: 180 at 0%,
// sweeping clockwise to 0 at 100%.
func angle(pct float64) float64 {
	return 180 - pct/100*180
}

// band returns the polygon of the annular sector between radii inner
// and outer running from angle from to angle to (in degrees). Each
// edge is sampled at n evenly spaced angles. The outer edge comes
// first, followed by the inner edge in reverse, so the vertices go
// around the sector once.
func band(inner, outer, from, to float64, n int) []point {
	pts := make([]point, 2*n)
	for i := 0; i < n; i++ {
		theta := from
		if n > 1 {
			theta += (to - from) * float64(i) / float64(n-1)
		}
		theta *= math.Pi / 180
		c, s := math.Cos(theta), math.Sin(theta)
		pts[i] = point{outer * c, outer * s}
		pts[2*n-1-i] = point{inner * c, inner * s}
	}
	return pts
}

// A gauge is a semicircular dial filled to Percent.
type gauge struct {
	Percent float64

	Track, Value, Scale, Text color.Color
}

func newGauge(pct float64, th *theme.Theme) *gauge {
	return &gauge{
		Percent: pct,
		Track:   th.GaugeTrack,
		Value:   th.GaugeValue,
		Scale:   th.GaugeScale,
		Text:    th.Text,
	}
}

// arcs returns the background track and the value arc. The value
// arc is clamped to the dial.
func (g *gauge) arcs() (track, value []point) {
	pct := math.Max(0, math.Min(100, g.Percent))
	track = band(innerRadius, outerRadius, angle(0), angle(100), arcSamples)
	value = band(innerRadius, outerRadius, angle(0), angle(pct), arcSamples)
	return track, value
}

func (g *gauge) DataRange() (xmin, xmax, ymin, ymax float64) {
	return viewXMin, viewXMax, viewYMin, viewYMax
}

func (g *gauge) Plot(c draw.Canvas, p *plot.Plot) {
	f := render.Fit(c, viewXMin, viewXMax, viewYMin, viewYMax)
	toCanvas := func(pts []point) []vg.Point {
		out := make([]vg.Point, len(pts))
		for i, pt := range pts {
			out[i] = f.Point(pt.X, pt.Y)
		}
		return out
	}

	track, value := g.arcs()
	c.FillPolygon(g.Track, toCanvas(track))
	if g.Percent > 0 {
		c.FillPolygon(g.Value, toCanvas(value))
	}

	sty := text.Style{
		Color:   g.Scale,
		Font:    theme.Font(10, false),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	for _, mark := range scaleMarks {
		theta := angle(float64(mark)) * math.Pi / 180
		pt := f.Point(labelRadius*math.Cos(theta), labelRadius*math.Sin(theta))
		c.FillText(sty, pt, fmt.Sprint(mark))
	}

	sty.Color = g.Text
	sty.Font = theme.Font(36, false)
	c.FillText(sty, f.Point(0, 0.2), fmt.Sprintf("%.1f%%", g.Percent))
}
