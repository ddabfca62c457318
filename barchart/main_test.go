// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/chartgallery/internal/chartdata"
	"github.com/aclements/chartgallery/internal/config"
	"github.com/aclements/chartgallery/internal/theme"
)

const monthlySales = `Month,Sales
Mar,130
Jan,120
Feb,98
Apr,150
May,170
Jun,160
Jul,180
Aug,175
Sep,165
Oct,190
Nov,200
Dec,220
`

func testConfig(t *testing.T, mode, csv string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0o777))
	if csv != "" {
		require.NoError(t, os.WriteFile(filepath.Join(data, "monthly_sales.csv"), []byte(csv), 0o644))
	}
	return &config.Config{Mode: mode, DataDir: data, OutputDir: filepath.Join(dir, "output")}
}

func TestRun(t *testing.T) {
	for _, mode := range []string{"light", "dark"} {
		cfg := testConfig(t, mode, monthlySales)
		var stdout bytes.Buffer
		out, err := run(cfg, &stdout)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(cfg.OutputDir, "barchart_"+mode+".png"), out)
		assert.Equal(t, "Chart saved to: "+out+" ("+mode+" mode)\n", stdout.String())

		f, err := os.Open(out)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Greater(t, img.Bounds().Dx(), 100)
	}
}

func TestRunMissingFile(t *testing.T) {
	cfg := testConfig(t, "light", "")
	_, err := run(cfg, new(bytes.Buffer))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestRunMissingColumn(t *testing.T) {
	cfg := testConfig(t, "light", "Month,Revenue\nJan,1\n")
	_, err := run(cfg, new(bytes.Buffer))
	var mce *chartdata.MissingColumnsError
	assert.True(t, errors.As(err, &mce), "got %v", err)
}

func TestRunEmpty(t *testing.T) {
	cfg := testConfig(t, "light", "Month,Sales\n")
	var stdout bytes.Buffer
	out, err := run(cfg, &stdout)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "No data to display\n", stdout.String())
	_, err = os.Stat(cfg.OutputDir)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRunBadMode(t *testing.T) {
	cfg := testConfig(t, "neon", monthlySales)
	_, err := run(cfg, new(bytes.Buffer))
	assert.Error(t, err)
}

func TestRunTable(t *testing.T) {
	cfg := testConfig(t, "light", monthlySales)
	cfg.Table = true
	var stdout bytes.Buffer
	out, err := run(cfg, &stdout)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stdout.String(), "Month")
	assert.Contains(t, stdout.String(), "Dec")
}

func TestBarPlotMonthOrder(t *testing.T) {
	s := chartdata.SortMonths(chartdata.Series{
		Labels: []string{"Mar", "Jan", "Feb"},
		Values: []float64{3, 1, 2},
	})
	p, err := barPlot(s, theme.For(theme.Light))
	require.NoError(t, err)
	var labels []string
	for _, tick := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, labels)
	assert.Equal(t, "Monthly Sales Performance", p.Title.Text)
}
