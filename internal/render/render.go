// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes charts to PNG files.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// A Drawer draws itself on a canvas. *plot.Plot is a Drawer.
type Drawer interface {
	Draw(draw.Canvas)
}

// DrawFunc adapts a function to a Drawer.
type DrawFunc func(draw.Canvas)

func (f DrawFunc) Draw(c draw.Canvas) { f(c) }

// Pad is the margin left around the drawn content by Save.
const Pad = 0.1 * vg.Inch

// Save renders d on a w by h canvas at dpi dots per inch over a bg
// background, crops the result to the drawn content plus Pad and
// writes it to path as a PNG. It creates path's directory if
// necessary.
func Save(d Drawer, path string, w, h vg.Length, dpi int, bg color.Color) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(bg))
	d.Draw(draw.New(c))

	pad := int(Pad.Dots(float64(dpi)) + 0.5)
	img := Trim(c.Image(), bg, pad)

	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// Trim crops img to the smallest rectangle containing every pixel
// that differs from bg, grown by pad pixels on each side and clipped
// to img's bounds. An image that is entirely bg is returned as is.
func Trim(img image.Image, bg color.Color, pad int) image.Image {
	b := img.Bounds()
	content := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if sameColor(img.At(x, y), bg) {
				continue
			}
			content = content.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	if content.Empty() {
		return img
	}
	r := content.Inset(-pad).Intersect(b)

	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, img, r, xdraw.Src, nil)
	return dst
}

// sameColor reports whether a and b are equal to within rounding of
// 8-bit components.
func sameColor(a, b color.Color) bool {
	const tol = 0x101
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	near := func(x, y uint32) bool {
		if x > y {
			return x-y <= tol
		}
		return y-x <= tol
	}
	return near(ar, br) && near(ag, bg) && near(ab, bb) && near(aa, ba)
}

// Output returns the path of the PNG for chart name in mode under dir.
func Output(dir, name, mode string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", name, mode))
}

// Announce prints the confirmation line for a saved chart, for
// example "Chart saved to: output/barchart_light.png (light mode)".
func Announce(w io.Writer, kind, path, mode string) {
	fmt.Fprintf(w, "%s saved to: %s (%s mode)\n", kind, path, mode)
}
