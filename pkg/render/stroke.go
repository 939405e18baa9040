package render

import (
	"image/color"

	"github.com/arthofer/lineart/pkg/colors"
)

// Stroke is the fixed stroke style for one render. The color fades linearly
// from Start to End across the segments; the width grows by Width per
// segment until the midpoint and shrinks after it, so strokes swell toward
// the middle of the sequence.
type Stroke struct {
	Start color.RGBA // color of the first segment
	End   color.RGBA // color of the last segment
	Width float64    // base width in pixels, also the ramp increment
}

// DefaultStroke is a plain white 1px stroke.
var DefaultStroke = Stroke{
	Start: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	End:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Width: 1,
}

// colorAt returns the interpolated color for segment i of segments.
func (s Stroke) colorAt(i, segments int) color.RGBA {
	if segments <= 1 {
		return s.Start
	}
	return colors.Interpolate(s.Start, s.End, float64(i)/float64(segments-1))
}

// widthAt returns the stroke width for segment i of segments: up by Width
// per segment until the halfway point, down after, never below the base.
func (s Stroke) widthAt(i, segments int) float64 {
	base := s.Width
	if base < 1 {
		base = 1
	}
	if segments <= 1 {
		return base
	}
	half := (segments - 1) / 2
	if i <= half {
		return base * float64(i+1)
	}
	w := base * float64(half+1-(i-half))
	if w < base {
		w = base
	}
	return w
}
