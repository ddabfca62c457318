// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme holds the light and dark color presets shared by the
// chart commands.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A Mode selects a Theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode parses "light" or "dark", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, Light, Dark)
}

// A Theme is the set of colors a chart is drawn with.
type Theme struct {
	Mode       Mode
	Background color.Color
	Text       color.Color
	GridColor  color.Color
	Edge       color.Color

	// Palette is the qualitative palette for bars, wedges and
	// markers.
	Palette []color.Color

	GaugeTrack color.Color
	GaugeValue color.Color
	GaugeScale color.Color

	MapEdge    color.Color
	MapMissing color.Color
}

// Seaborn's "pastel" and "bright" palettes.
var (
	pastel = hexColors("#a1c9f4", "#ffb482", "#8de5a1", "#ff9f9b", "#d0bbff",
		"#debb9b", "#fab0e4", "#cfcfcf", "#fffea3", "#b9f2f0")
	bright = hexColors("#023eff", "#ff7c00", "#1ac938", "#e8000b", "#8b2be2",
		"#9f4800", "#f14cc1", "#a3a3a3", "#ffc400", "#00d7ff")
)

var gridGray = color.NRGBA{128, 128, 128, 77}

// For returns the Theme for mode m. Unknown modes get the light
// theme.
func For(m Mode) *Theme {
	if m == Dark {
		return &Theme{
			Mode:       Dark,
			Background: Hex("#1e1e1e"),
			Text:       color.White,
			GridColor:  gridGray,
			Edge:       Hex("#555555"),
			Palette:    bright,
			GaugeTrack: Hex("#3a3a3a"),
			GaugeValue: Hex("#42a5f5"),
			GaugeScale: Hex("#cccccc"),
			MapEdge:    Hex("#555555"),
			MapMissing: Hex("#2a2a2a"),
		}
	}
	return &Theme{
		Mode:       Light,
		Background: color.White,
		Text:       color.Black,
		GridColor:  gridGray,
		Edge:       Hex("#808080"),
		Palette:    pastel,
		GaugeTrack: Hex("#dcdbdb"),
		GaugeValue: Hex("#84d9e0"),
		GaugeScale: Hex("#333333"),
		MapEdge:    color.Black,
		MapMissing: Hex("#eaeaea"),
	}
}

// Colors returns n colors from the palette, cycling if n is larger
// than the palette.
func (th *Theme) Colors(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = th.Palette[i%len(th.Palette)]
	}
	return cs
}

// Font returns the sans-serif font at size points.
func Font(size float64, bold bool) font.Font {
	f := font.Font{Typeface: "Liberation", Variant: "Sans", Size: vg.Points(size)}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return f
}

// Style applies th to p: background, title, axis labels and tick
// labels. Axis lines are hidden, leaving only tick labels.
func (th *Theme) Style(p *plot.Plot) {
	p.BackgroundColor = th.Background

	p.Title.Padding = vg.Points(10)
	p.Title.TextStyle.Color = th.Text
	p.Title.TextStyle.Font = Font(14, true)

	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Color = th.Text
		a.Label.TextStyle.Font = Font(10, true)
		a.Tick.Label.Color = th.Text
		a.Tick.Label.Font = Font(10, false)
		a.Tick.LineStyle.Color = th.Text
		a.LineStyle.Color = color.Transparent
		a.LineStyle.Width = 0
	}
}

// Grid returns grid lines in the theme's grid color along the
// requested axes.
func (th *Theme) Grid(vertical, horizontal bool) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color, g.Horizontal.Color = nil, nil
	g.Vertical.Width, g.Horizontal.Width = vg.Points(0.8), vg.Points(0.8)
	if vertical {
		g.Vertical.Color = th.GridColor
	}
	if horizontal {
		g.Horizontal.Color = th.GridColor
	}
	return g
}

// Hex parses a "#rrggbb" color. It panics on malformed input.
func Hex(s string) color.RGBA {
	var c color.RGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		panic(fmt.Sprintf("bad color %q: %v", s, err))
	}
	c.A = 0xff
	return c
}

func hexColors(ss ...string) []color.Color {
	cs := make([]color.Color, len(ss))
	for i, s := range ss {
		cs[i] = Hex(s)
	}
	return cs
}
