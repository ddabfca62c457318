// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pieplot

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/chartgallery/internal/render"
)

func TestWedges(t *testing.T) {
	p := New([]float64{1, 1, 2}, []string{"a", "b", "c"}, nil)
	ws, err := p.Wedges()
	require.NoError(t, err)
	require.Len(t, ws, 3)

	assert.Equal(t, Wedge{0.25, 140, 230}, ws[0])
	assert.Equal(t, Wedge{0.25, 230, 320}, ws[1])
	assert.Equal(t, Wedge{0.5, 320, 500}, ws[2])
	assert.InDelta(t, 185*math.Pi/180, ws[0].Mid(), 1e-12)
}

func TestWedgesNoTotal(t *testing.T) {
	for _, vals := range [][]float64{nil, {0, 0}, {math.NaN()}} {
		_, err := New(vals, nil, nil).Wedges()
		assert.ErrorIs(t, err, ErrNoTotal, "values %v", vals)
	}
}

func TestWedgeOutline(t *testing.T) {
	w := Wedge{0.25, 0, 90}
	slice := wedgeOutline(vg.Point{}, 10, 0, w)
	// 91 points along the arc and the center.
	require.Len(t, slice, 92)
	assert.InDelta(t, 10, float64(slice[0].X), 1e-9)
	assert.InDelta(t, 10, float64(slice[90].Y), 1e-9)
	assert.Equal(t, vg.Point{}, slice[91])

	ring := wedgeOutline(vg.Point{}, 10, 5, w)
	require.Len(t, ring, 182)
	// The inner edge runs back to the start angle.
	assert.InDelta(t, 5, float64(ring[181].X), 1e-9)
	assert.InDelta(t, 0, float64(ring[181].Y), 1e-9)
}

func TestPlot(t *testing.T) {
	p := plot.New()
	p.HideAxes()
	pie := New([]float64{30, 50, 20}, []string{"A", "B", "C"},
		[]color.Color{color.RGBA{255, 0, 0, 255}, color.RGBA{0, 255, 0, 255}, color.RGBA{0, 0, 255, 255}})
	pie.Hole = 0.55
	p.Add(pie)

	path := filepath.Join(t.TempDir(), "pie.png")
	require.NoError(t, render.Save(p, path, 3*vg.Inch, 3*vg.Inch, 72, color.White))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}
