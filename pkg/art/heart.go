package art

import (
	"math"
	"math/rand/v2"

	"github.com/arthofer/lineart/pkg/errors"
)

// Coefficients of the parametric heart curve:
//
//	x(t) = sin³(t)
//	y(t) = 0.8·cos(t) − 0.6·cos(2t) − 0.2·cos(3t) − 0.1·cos(4t)
//
// Only the y coefficients are distorted; x stays on the exact curve.
var heartYCoeffs = [4]float64{0.8, 0.6, 0.2, 0.1}

// Heart generates points along a parametric heart curve, sampled at evenly
// spaced parameter values t in [0, 2π). Each y coefficient is independently
// scaled by (1 − distortion·U[0,1)) per sample, so distortion 0 yields the
// exact curve and larger magnitudes pull points off it. The result is
// uniformly scaled and translated to fit the bounds, centered.
type Heart struct {
	rng        *rand.Rand
	distortion float64
	margin     float64
}

// NewHeart creates a heart-curve generator.
// It fails with INVALID_DISTORTION when distortion is negative.
func NewHeart(rng *rand.Rand, distortion, margin float64) (*Heart, error) {
	if err := errors.ValidateDistortion(distortion); err != nil {
		return nil, err
	}
	return &Heart{rng: rng, distortion: distortion, margin: margin}, nil
}

// Generate returns count points on the (possibly distorted) heart curve,
// fitted inside [0, Width) x [0, Height).
func (g *Heart) Generate(count int, bounds Bounds) (Sequence, error) {
	if err := validateRequest(count, bounds); err != nil {
		return nil, err
	}

	// Sample the curve in its own coordinate space. Screen y grows
	// downward, so the curve's y is negated to keep the heart upright.
	step := 2 * math.Pi / float64(count)
	seq := make(Sequence, count)
	for i := range seq {
		t := float64(i) * step
		sin := math.Sin(t)

		var y float64
		for k, c := range heartYCoeffs {
			if g.distortion > 0 {
				c *= 1 - g.distortion*g.rng.Float64()
			}
			term := c * math.Cos(float64(k+1)*t)
			if k == 0 {
				y = term
			} else {
				y -= term
			}
		}

		seq[i] = Point{X: sin * sin * sin, Y: -y}
	}

	g.fit(seq, bounds)
	return seq, nil
}

// fit maps the sequence's bounding box into the margin-shrunk draw area,
// preserving aspect ratio and centering both axes.
func (g *Heart) fit(seq Sequence, bounds Bounds) {
	minX, maxX := seq[0].X, seq[0].X
	minY, maxY := seq[0].Y, seq[0].Y
	for _, p := range seq[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	xLo, xHi := drawArea(bounds.Width, g.margin)
	yLo, yHi := drawArea(bounds.Height, g.margin)

	scale := math.Inf(1)
	if extX := maxX - minX; extX > 0 {
		scale = (xHi - xLo) / extX
	}
	if extY := maxY - minY; extY > 0 {
		scale = math.Min(scale, (yHi-yLo)/extY)
	}
	if math.IsInf(scale, 1) {
		scale = 0 // degenerate extent: collapse to the center
	}

	// Largest representable coordinates still inside the half-open bounds.
	xMax := math.Nextafter(float64(bounds.Width), 0)
	yMax := math.Nextafter(float64(bounds.Height), 0)

	cx := (xLo + xHi) / 2
	cy := (yLo + yHi) / 2
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	for i, p := range seq {
		x := cx + (p.X-midX)*scale
		y := cy + (p.Y-midY)*scale
		seq[i] = Point{X: math.Min(x, xMax), Y: math.Min(y, yMax)}
	}
}
