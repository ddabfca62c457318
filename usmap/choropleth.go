// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/shapes"
)

// A choropleth fills each region by its value. Regions whose value
// is NaN get the Missing color.
type choropleth struct {
	Regions []*shapes.Region
	Values  []float64

	ColorMap palette.ColorMap
	Missing  color.Color
	Edge     draw.LineStyle

	// kx scales longitude so distances near the middle latitude
	// come out right.
	kx float64
}

func newChoropleth(regions []*shapes.Region, values []float64, cmap palette.ColorMap) *choropleth {
	_, _, ymin, ymax := shapes.Bounds(regions)
	return &choropleth{
		Regions:  regions,
		Values:   values,
		ColorMap: cmap,
		Edge:     draw.LineStyle{Width: vg.Points(0.5)},
		kx:       math.Cos((ymin + ymax) / 2 * math.Pi / 180),
	}
}

// project maps longitude and latitude to plane coordinates.
func (ch *choropleth) project(lon, lat float64) (x, y float64) {
	return lon * ch.kx, lat
}

func (ch *choropleth) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = shapes.Bounds(ch.Regions)
	xmin, _ = ch.project(xmin, 0)
	xmax, _ = ch.project(xmax, 0)
	return
}

// fill returns the color region i is drawn in.
func (ch *choropleth) fill(i int) color.Color {
	if c, err := ch.ColorMap.At(ch.Values[i]); err == nil {
		return c
	}
	return ch.Missing
}

func (ch *choropleth) Plot(c draw.Canvas, p *plot.Plot) {
	xmin, xmax, ymin, ymax := ch.DataRange()
	f := render.Fit(c, xmin, xmax, ymin, ymax)
	for i, r := range ch.Regions {
		rings := make([][]vg.Point, len(r.Rings))
		for k, ring := range r.Rings {
			rings[k] = make([]vg.Point, len(ring))
			for j, pt := range ring {
				rings[k][j] = f.Point(ch.project(pt.X, pt.Y))
			}
		}
		c.SetColor(ch.fill(i))
		c.Fill(ringPath(rings))
		c.StrokeLines(ch.Edge, rings...)
	}
}

// ringPath returns all rings as one closed path. Shapefile holes
// wind opposite to their outer ring, so filling the path leaves them
// empty.
func ringPath(rings [][]vg.Point) vg.Path {
	var path vg.Path
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		path.Move(ring[0])
		for _, pt := range ring[1:] {
			path.Line(pt)
		}
		path.Close()
	}
	return path
}
