package art

import "math/rand/v2"

// Random generates points with independent, uniformly distributed
// coordinates inside the bounds (shrunk by the margin fraction).
type Random struct {
	rng    *rand.Rand
	margin float64
}

// NewRandom creates a uniform random point generator.
func NewRandom(rng *rand.Rand, margin float64) *Random {
	return &Random{rng: rng, margin: margin}
}

// Generate returns count points, each drawn independently and uniformly
// within [0, Width) x [0, Height), respecting the margin.
func (g *Random) Generate(count int, bounds Bounds) (Sequence, error) {
	if err := validateRequest(count, bounds); err != nil {
		return nil, err
	}

	xLo, xHi := drawArea(bounds.Width, g.margin)
	yLo, yHi := drawArea(bounds.Height, g.margin)

	seq := make(Sequence, count)
	for i := range seq {
		seq[i] = Point{
			X: xLo + g.rng.Float64()*(xHi-xLo),
			Y: yLo + g.rng.Float64()*(yHi-yLo),
		}
	}
	return seq, nil
}
