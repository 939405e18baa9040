// Package render draws point sequences onto a raster canvas.
//
// A Canvas is created per render, mutated only by the LineRenderer, and
// handed to a sink for persistence once the draw loop completes. Rendering
// is synchronous and deterministic: all randomness lives in the generators
// that produce the point sequence.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/arthofer/lineart/pkg/art"
)

// Canvas is a mutable RGBA raster of fixed bounds. It is owned exclusively
// by a single render; renders never share a canvas.
type Canvas struct {
	img    *image.RGBA
	bounds art.Bounds
}

// NewCanvas allocates a canvas of the given bounds, filled with the
// background color. It fails with INVALID_BOUNDS for non-positive sizes.
func NewCanvas(bounds art.Bounds, background color.RGBA) (*Canvas, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, bounds.Width, bounds.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{img: img, bounds: bounds}, nil
}

// Image exposes the underlying raster for encoding or inspection.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas extent.
func (c *Canvas) Bounds() art.Bounds {
	return c.bounds
}
