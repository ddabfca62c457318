// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pieplot provides a gonum plotter for pie and donut charts.
package pieplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aclements/chartgallery/internal/render"
	"github.com/aclements/chartgallery/internal/theme"
)

// ErrNoTotal is returned by Wedges when the values do not sum to a
// positive number.
var ErrNoTotal = errors.New("pie values must sum to a positive number")

// A Pie draws one wedge per value, counterclockwise from StartAngle.
// Radii are fractions of the pie's radius.
type Pie struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// StartAngle is the angle of the first wedge's leading edge in
	// degrees counterclockwise from the positive X axis.
	StartAngle float64

	// Hole is the radius of the center cut out of every wedge. Zero
	// draws a pie, anything in (0, 1) a donut.
	Hole float64

	// PctDistance and LabelDistance are the radii at which the
	// percentage and the label of each wedge are centered.
	PctDistance   float64
	LabelDistance float64

	LabelStyle text.Style
	PctStyle   text.Style
}

// New returns a Pie with the default geometry of a pie chart: 10pt
// black labels and bold 9pt percentages.
func New(values []float64, labels []string, colors []color.Color) *Pie {
	return &Pie{
		Values:        values,
		Labels:        labels,
		Colors:        colors,
		StartAngle:    140,
		PctDistance:   0.6,
		LabelDistance: 1.1,
		LabelStyle:    text.Style{Color: color.Black, Font: theme.Font(10, false), Handler: plot.DefaultTextHandler},
		PctStyle:      text.Style{Color: color.Black, Font: theme.Font(9, true), Handler: plot.DefaultTextHandler},
	}
}

// A Wedge is the computed extent of one value. Angles are in
// degrees.
type Wedge struct {
	Fraction   float64
	Start, End float64
}

// Mid returns the angle halfway through w in radians.
func (w Wedge) Mid() float64 {
	return (w.Start + w.End) / 2 * math.Pi / 180
}

// Wedges returns the wedge of every value.
func (p *Pie) Wedges() ([]Wedge, error) {
	total := floats.Sum(p.Values)
	if !(total > 0) {
		return nil, ErrNoTotal
	}
	ws := make([]Wedge, len(p.Values))
	theta := p.StartAngle
	for i, v := range p.Values {
		frac := v / total
		ws[i] = Wedge{frac, theta, theta + 360*frac}
		theta = ws[i].End
	}
	return ws, nil
}

// viewExtent bounds the unit pie and its outer labels.
const viewExtent = 1.25

// DataRange implements plot.DataRanger.
func (p *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -viewExtent, viewExtent, -viewExtent, viewExtent
}

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	ws, err := p.Wedges()
	if err != nil {
		return
	}
	f := render.Fit(c, -viewExtent, viewExtent, -viewExtent, viewExtent)
	center := f.Point(0, 0)
	outer, inner := f.Len(1), f.Len(p.Hole)

	for i, w := range ws {
		if w.Fraction == 0 {
			continue
		}
		c.FillPolygon(p.Colors[i%len(p.Colors)], wedgeOutline(center, outer, inner, w))
	}

	for i, w := range ws {
		mid := w.Mid()
		x, y := math.Cos(mid), math.Sin(mid)

		if i < len(p.Labels) {
			sty := p.LabelStyle
			sty.XAlign = draw.XLeft
			if x < 0 {
				sty.XAlign = draw.XRight
			}
			sty.YAlign = draw.YCenter
			c.FillText(sty, f.Point(p.LabelDistance*x, p.LabelDistance*y), p.Labels[i])
		}

		sty := p.PctStyle
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YCenter
		c.FillText(sty, f.Point(p.PctDistance*x, p.PctDistance*y), fmt.Sprintf("%1.1f%%", 100*w.Fraction))
	}
}

// wedgeOutline returns the polygon of the annular sector of w
// between radii inner and outer around center, one vertex per degree
// of arc. An inner radius of zero gives a pie slice.
func wedgeOutline(center vg.Point, outer, inner vg.Length, w Wedge) []vg.Point {
	n := int(math.Ceil(w.End-w.Start)) + 1
	if n < 2 {
		n = 2
	}
	angle := func(i int) float64 {
		return (w.Start + (w.End-w.Start)*float64(i)/float64(n-1)) * math.Pi / 180
	}
	pts := make([]vg.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		pts = append(pts, polar(center, outer, angle(i)))
	}
	if inner <= 0 {
		return append(pts, center)
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, polar(center, inner, angle(i)))
	}
	return pts
}

func polar(center vg.Point, r vg.Length, theta float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(theta)),
		Y: center.Y + r*vg.Length(math.Sin(theta)),
	}
}
