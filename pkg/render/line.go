package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/arthofer/lineart/pkg/art"
	"github.com/arthofer/lineart/pkg/errors"
)

// LineRenderer draws straight segments between consecutive points of a
// sequence. A sequence of N points yields exactly N-1 segments; a single
// point yields none. The renderer never closes the polyline; a closed look
// comes from the sequence explicitly repeating its first point.
type LineRenderer struct {
	style Stroke
}

// NewLineRenderer creates a renderer with the given stroke style.
func NewLineRenderer(style Stroke) *LineRenderer {
	return &LineRenderer{style: style}
}

// Draw renders the sequence onto the canvas. Each segment is stroked onto a
// fresh overlay and additively blended into the canvas, so crossing lines
// brighten instead of occluding each other.
//
// Draw is all-or-nothing: it fails with INVALID_INPUT for an empty sequence
// and with OUT_OF_BOUNDS if any point lies outside the canvas, in both
// cases before touching a pixel.
func (r *LineRenderer) Draw(canvas *Canvas, seq art.Sequence) error {
	if len(seq) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot render an empty point sequence")
	}

	bounds := canvas.Bounds()
	for i, p := range seq {
		if !bounds.Contains(p) {
			return errors.New(errors.ErrCodeOutOfBounds,
				"point %d at (%g, %g) outside canvas %dx%d", i, p.X, p.Y, bounds.Width, bounds.Height)
		}
	}

	segments := len(seq) - 1
	for i := 0; i < segments; i++ {
		overlay := image.NewRGBA(canvas.Image().Bounds())
		dc := gg.NewContextForRGBA(overlay)
		dc.SetColor(r.style.colorAt(i, segments))
		dc.SetLineWidth(r.style.widthAt(i, segments))
		dc.DrawLine(seq[i].X, seq[i].Y, seq[i+1].X, seq[i+1].Y)
		dc.Stroke()
		addRGBA(canvas.Image(), overlay)
	}
	return nil
}
