// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"light": Light, "Dark": Dark, " LIGHT ": Light} {
		got, err := ParseMode(in)
		require.NoError(t, err, "ParseMode(%q)", in)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("sepia")
	assert.Error(t, err)
}

func TestFor(t *testing.T) {
	dark := For(Dark)
	assert.Equal(t, color.RGBA{0x1e, 0x1e, 0x1e, 0xff}, dark.Background)
	assert.Equal(t, color.RGBA{0x42, 0xa5, 0xf5, 0xff}, dark.GaugeValue)
	assert.Equal(t, Hex("#023eff"), dark.Palette[0])

	light := For(Light)
	assert.Equal(t, color.White, light.Background)
	assert.Equal(t, Hex("#a1c9f4"), light.Palette[0])
	assert.Equal(t, Hex("#84d9e0"), light.GaugeValue)
}

func TestColorsCycle(t *testing.T) {
	th := For(Light)
	cs := th.Colors(12)
	require.Len(t, cs, 12)
	assert.Equal(t, cs[0], cs[10])
	assert.Equal(t, cs[1], cs[11])
	assert.NotEqual(t, cs[0], cs[1])
}

func TestHex(t *testing.T) {
	assert.Equal(t, color.RGBA{0xdc, 0xdb, 0xdb, 0xff}, Hex("#dcdbdb"))
	assert.Panics(t, func() { Hex("dcdbdb") })
}

func TestStyle(t *testing.T) {
	p := plot.New()
	th := For(Dark)
	th.Style(p)
	assert.Equal(t, th.Background, p.BackgroundColor)
	assert.Equal(t, th.Text, p.Title.TextStyle.Color)
	assert.Equal(t, xfont.WeightBold, p.Title.TextStyle.Font.Weight)
	assert.Equal(t, th.Text, p.X.Tick.Label.Color)
	assert.Equal(t, th.Text, p.Y.Label.TextStyle.Color)
}

func TestGrid(t *testing.T) {
	th := For(Light)
	g := th.Grid(false, true)
	assert.Nil(t, g.Vertical.Color)
	assert.Equal(t, th.GridColor, g.Horizontal.Color)

	g = For(Dark).Grid(true, false)
	assert.Equal(t, For(Dark).GridColor, g.Vertical.Color)
	assert.Nil(t, g.Horizontal.Color)
}
