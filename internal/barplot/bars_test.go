// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barplot

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/chartgallery/internal/render"
)

var (
	red  = color.RGBA{0xff, 0, 0, 0xff}
	blue = color.RGBA{0, 0, 0xff, 0xff}
)

func TestNew(t *testing.T) {
	ps, err := New([]float64{3, 5, 2}, []color.Color{red, blue}, false)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	third := ps[2].(bar)
	assert.Equal(t, 2.0, third.XMin)
	assert.Equal(t, red, third.Color)
	xmin, xmax, ymin, ymax := third.DataRange()
	assert.Equal(t, 2.0, xmin)
	assert.Equal(t, 2.0, xmax)
	assert.Equal(t, 0.0, ymin)
	assert.Equal(t, 2.0, ymax)
}

func TestNewHorizontal(t *testing.T) {
	ps, err := New([]float64{4}, []color.Color{red}, true)
	require.NoError(t, err)
	b := ps[0].(bar)
	assert.True(t, b.Horizontal)
	xmin, xmax, _, _ := b.DataRange()
	assert.Equal(t, 0.0, xmin)
	assert.Equal(t, 4.0, xmax)
}

func TestDraw(t *testing.T) {
	for _, horizontal := range []bool{false, true} {
		p := plot.New()
		ps, err := New([]float64{3, 5, 2}, []color.Color{red, blue}, horizontal)
		require.NoError(t, err)
		p.Add(ps...)
		Frame(p, []string{"Jan", "Feb", "Mar"}, horizontal)
		if horizontal {
			assert.Equal(t, -0.5, p.Y.Min)
			assert.Equal(t, 2.5, p.Y.Max)
		} else {
			assert.Equal(t, -0.5, p.X.Min)
			assert.Equal(t, 2.5, p.X.Max)
		}

		path := filepath.Join(t.TempDir(), "bars.png")
		require.NoError(t, render.Save(p, path, 4*vg.Inch, 3*vg.Inch, 72, color.White))
		// Plot resized the bars to 80% of the category spacing.
		assert.Greater(t, float64(ps[0].(bar).Width), 1.0)
	}
}
