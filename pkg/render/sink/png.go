// Package sink persists rendered canvases as PNG files.
//
// Canvases are rendered supersampled and downscaled here with a Lanczos
// filter before encoding, which is what antialiases the line work.
package sink

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/arthofer/lineart/pkg/errors"
	"github.com/arthofer/lineart/pkg/render"
)

// EncodePNG writes the canvas to w as PNG. A scale factor above 1 shrinks
// the image by that factor first (the canvas was rendered at scale times
// the target size).
func EncodePNG(canvas *render.Canvas, scale int, w io.Writer) error {
	img, err := downscale(canvas, scale)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// SavePNG writes the canvas to path as PNG, creating parent directories as
// needed. Nothing is written when downscaling or encoding fails.
func SavePNG(canvas *render.Canvas, scale int, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	img, err := downscale(canvas, scale)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	return nil
}

// downscale resizes the canvas image by the supersampling factor.
func downscale(canvas *render.Canvas, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale factor must be at least 1, got %d", scale)
	}
	img := canvas.Image()
	if scale == 1 {
		return img, nil
	}
	b := canvas.Bounds()
	return imaging.Resize(img, b.Width/scale, b.Height/scale, imaging.Lanczos), nil
}
