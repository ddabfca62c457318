// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Frame maps data coordinates to canvas coordinates with the same
// scale on both axes.
type Frame struct {
	origin     vg.Point
	xmin, ymin float64
	scale      float64
}

// Fit returns the Frame that places the box [xmin,xmax]×[ymin,ymax]
// as large as possible in c while keeping its aspect ratio, centered
// along the axis with room to spare.
func Fit(c draw.Canvas, xmin, xmax, ymin, ymax float64) Frame {
	w, h := float64(c.Max.X-c.Min.X), float64(c.Max.Y-c.Min.Y)
	dx, dy := xmax-xmin, ymax-ymin
	s := math.Min(w/dx, h/dy)
	return Frame{
		origin: vg.Point{
			X: c.Min.X + vg.Length((w-s*dx)/2),
			Y: c.Min.Y + vg.Length((h-s*dy)/2),
		},
		xmin:  xmin,
		ymin:  ymin,
		scale: s,
	}
}

// Point maps (x, y) to the canvas.
func (f Frame) Point(x, y float64) vg.Point {
	return vg.Point{
		X: f.origin.X + vg.Length(f.scale*(x-f.xmin)),
		Y: f.origin.Y + vg.Length(f.scale*(y-f.ymin)),
	}
}

// Len maps a data distance to a canvas length.
func (f Frame) Len(d float64) vg.Length {
	return vg.Length(f.scale * d)
}
