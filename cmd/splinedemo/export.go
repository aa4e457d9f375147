package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"honnef.co/go/spline"
)

const exportMargin = 10

var fillColor = color.RGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff}

// writeSVG writes an SVG document containing the curve as a single path.
func writeSVG(w io.Writer, c *spline.CatmullRom, precision int) error {
	bbox := c.BoundingBox().Inflate(exportMargin, exportMargin)
	if _, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n<path d=\"",
		bbox.X0, bbox.Y0, bbox.Width(), bbox.Height()); err != nil {
		return err
	}
	if err := spline.WriteSVG(w, c.PathElements(), spline.SVGOptions{MaxPrecision: precision}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\" fill=\"none\" stroke=\"black\"/>\n</svg>\n")
	return err
}

// rasterize fills the curve into an image whose longer side is size pixels,
// keeping the curve's aspect ratio.
func rasterize(c *spline.CatmullRom, size int) *image.RGBA {
	bbox := c.BoundingBox().Inflate(exportMargin, exportMargin)
	w, h := size, size
	if bbox.Width() > bbox.Height() {
		h = int(math.Ceil(bbox.Height() * float64(size) / bbox.Width()))
	} else {
		w = int(math.Ceil(bbox.Width() * float64(size) / bbox.Height()))
	}
	aff := spline.MapRect(bbox, spline.Rect{X0: 0, Y0: 0, X1: float64(w), Y1: float64(h)})

	r := vector.NewRasterizer(w, h)
	spline.Rasterize(r, spline.Transform(c.PathElements(), aff))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r.Draw(img, img.Bounds(), image.NewUniform(fillColor), image.Point{})
	return img
}

func writePNG(w io.Writer, c *spline.CatmullRom, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid image size %d", size)
	}
	return png.Encode(w, rasterize(c, size))
}
