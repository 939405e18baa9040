// Package colors provides the stroke colors used by the line renderer:
// fully saturated random hues and linear interpolation between two colors.
package colors

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Random returns a fully saturated, fully bright color with a random hue.
func Random(rng *rand.Rand) color.RGBA {
	return HSV(rng.Float64(), 1, 1)
}

// HSV converts hue, saturation and value (each in [0, 1]) to RGBA.
func HSV(h, s, v float64) color.RGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

// Interpolate mixes two colors linearly. factor 0 returns a, factor 1
// returns b; values outside [0, 1] are clamped.
func Interpolate(a, b color.RGBA, factor float64) color.RGBA {
	factor = math.Max(0, math.Min(1, factor))
	recip := 1 - factor
	return color.RGBA{
		R: uint8(float64(a.R)*recip + float64(b.R)*factor),
		G: uint8(float64(a.G)*recip + float64(b.G)*factor),
		B: uint8(float64(a.B)*recip + float64(b.B)*factor),
		A: 255,
	}
}
