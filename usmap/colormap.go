// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"math"

	ggpalette "github.com/aclements/go-gg/palette"
	"gonum.org/v1/plot/palette"

	"github.com/aclements/chartgallery/internal/theme"
)

// ColorBrewer's 9-class sequential Blues.
var blues = ggpalette.RGBGradient{Colors: []color.RGBA{
	theme.Hex("#f7fbff"), theme.Hex("#deebf7"), theme.Hex("#c6dbef"),
	theme.Hex("#9ecae1"), theme.Hex("#6baed6"), theme.Hex("#4292c6"),
	theme.Hex("#2171b5"), theme.Hex("#08519c"), theme.Hex("#08306b"),
}}

// gradientMap adapts a continuous palette to a palette.ColorMap over
// [min, max].
type gradientMap struct {
	gradient ggpalette.Continuous
	min, max float64
	alpha    float64
}

func newGradientMap(g ggpalette.Continuous, min, max float64) *gradientMap {
	if !(max > min) {
		max = min + 1
	}
	return &gradientMap{gradient: g, min: min, max: max, alpha: 1}
}

func (m *gradientMap) At(v float64) (color.Color, error) {
	// Allow rounding error at the ends.
	tol := 1e-9 * (m.max - m.min)
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min-tol:
		return nil, palette.ErrUnderflow
	case v > m.max+tol:
		return nil, palette.ErrOverflow
	}
	return m.unit((v - m.min) / (m.max - m.min)), nil
}

// unit returns the color at fraction x of the way from min to max.
func (m *gradientMap) unit(x float64) color.Color {
	c := color.NRGBAModel.Convert(m.gradient.Map(x)).(color.NRGBA)
	c.A = uint8(math.Round(float64(c.A) * m.alpha))
	return c
}

func (m *gradientMap) Min() float64       { return m.min }
func (m *gradientMap) SetMin(v float64)   { m.min = v }
func (m *gradientMap) Max() float64       { return m.max }
func (m *gradientMap) SetMax(v float64)   { m.max = v }
func (m *gradientMap) Alpha() float64     { return m.alpha }
func (m *gradientMap) SetAlpha(a float64) { m.alpha = a }

// Palette returns n colors evenly spaced over the map.
func (m *gradientMap) Palette(n int) palette.Palette {
	cs := make(colors, n)
	for i := range cs {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		cs[i] = m.unit(x)
	}
	return cs
}

type colors []color.Color

func (cs colors) Colors() []color.Color { return cs }
