// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes reads polygon boundaries from ESRI shapefiles.
package shapes

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// A Region is one polygon record of a shapefile together with its
// attributes.
type Region struct {
	// Attrs maps lower-cased field names to their trimmed values.
	Attrs map[string]string

	// Rings are the polygon's parts, in longitude/latitude order.
	// Outer rings run clockwise and holes counterclockwise.
	Rings [][]shp.Point
}

// Attr returns the value of field name, ignoring case.
func (r *Region) Attr(name string) string {
	return r.Attrs[strings.ToLower(name)]
}

// Bounds returns the bounding box of all of rs' rings.
func Bounds(rs []*Region) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, r := range rs {
		for _, ring := range r.Rings {
			for _, pt := range ring {
				xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
				ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
			}
		}
	}
	return
}

// reader is the part of shp.Reader and shp.ZipReader Load needs.
type reader interface {
	Next() bool
	Shape() (int, shp.Shape)
	Fields() []shp.Field
	Close() error
	Err() error
	attr(row, field int) string
}

type fileReader struct{ *shp.Reader }

func (r fileReader) attr(row, field int) string { return r.ReadAttribute(row, field) }

type zipReader struct{ *shp.ZipReader }

func (r zipReader) attr(row, field int) string { return r.Attribute(field) }

func open(path string) (reader, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		r, err := shp.OpenZip(path)
		if err != nil {
			return nil, err
		}
		return zipReader{r}, nil
	}
	r, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	return fileReader{r}, nil
}

// Load reads the polygon records of the shapefile at path, which is
// either a .shp file with its .dbf next to it or a .zip archive
// holding one shapefile. Records that are not polygons are skipped.
func Load(path string) ([]*Region, error) {
	r, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", path, err)
	}
	defer r.Close()

	fields := r.Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("shapefile %s: no attributes (missing or empty .dbf)", path)
	}
	var regions []*Region
	for r.Next() {
		row, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		reg := &Region{Attrs: make(map[string]string, len(fields)), Rings: rings(poly)}
		for i, f := range fields {
			name := strings.ToLower(f.String())
			reg.Attrs[name] = strings.Trim(r.attr(row, i), " \x00")
		}
		regions = append(regions, reg)
	}
	if err := r.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return regions, nil
}

// rings splits poly's points into its parts.
func rings(poly *shp.Polygon) [][]shp.Point {
	out := make([][]shp.Point, len(poly.Parts))
	for i, start := range poly.Parts {
		end := int32(len(poly.Points))
		if i+1 < len(poly.Parts) {
			end = poly.Parts[i+1]
		}
		out[i] = poly.Points[start:end]
	}
	return out
}
