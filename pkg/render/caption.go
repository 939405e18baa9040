package render

import (
	"image/color"
	"os"

	findfont "github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/arthofer/lineart/pkg/errors"
)

// captionFonts are tried in order when locating a system font.
var captionFonts = []string{
	"DejaVuSans.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
	"LiberationSans-Regular.ttf",
}

// DrawCaption writes text centered near the bottom edge of the canvas using
// a system font. The font is located at runtime; when no candidate font is
// installed the caption fails with UNSUPPORTED rather than rendering a
// placeholder.
func DrawCaption(canvas *Canvas, text string, size float64) error {
	if text == "" {
		return nil
	}
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "caption size must be positive, got %g", size)
	}

	f, err := loadCaptionFont()
	if err != nil {
		return err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size})

	b := canvas.Bounds()
	dc := gg.NewContextForRGBA(canvas.Image())
	dc.SetFontFace(face)
	dc.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dc.DrawStringAnchored(text, float64(b.Width)/2, float64(b.Height)-size, 0.5, 0.5)
	return nil
}

// loadCaptionFont locates and parses the first available candidate font.
func loadCaptionFont() (*truetype.Font, error) {
	var lastErr error
	for _, name := range captionFonts {
		path, err := findfont.Find(name)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			lastErr = err
			continue
		}
		return f, nil
	}
	return nil, errors.Wrap(errors.ErrCodeUnsupported, lastErr, "no caption font found")
}
