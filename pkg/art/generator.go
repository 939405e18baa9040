package art

import (
	"math/rand/v2"

	"github.com/arthofer/lineart/pkg/errors"
)

// Generator names understood by NewGenerator.
const (
	KindRandom = "random"
	KindHeart  = "heart"
)

// ValidKinds is the set of supported generator kinds.
var ValidKinds = map[string]bool{
	KindRandom: true,
	KindHeart:  true,
}

// Generator produces an ordered sequence of points within the given bounds.
//
// Implementations must return exactly count points, each inside
// [0, Width) x [0, Height), or an INVALID_* error when count or bounds are
// not positive. The renderer is agnostic to which implementation produced
// the sequence.
type Generator interface {
	Generate(count int, bounds Bounds) (Sequence, error)
}

// Config carries the variant-specific parameters shared by the built-in
// generators. Zero values are usable: no margin, no distortion.
type Config struct {
	// Margin is the fraction of each dimension kept clear on every side.
	// Must be in [0, 0.5).
	Margin float64

	// Distortion scales the random perturbation of the heart curve.
	// Zero yields the exact parametric curve. Ignored by the random
	// generator. Must be non-negative.
	Distortion float64
}

// NewGenerator constructs the named generator variant.
// rng is the entropy source for all randomized output; callers seed it
// explicitly to make generation reproducible.
func NewGenerator(kind string, rng *rand.Rand, cfg Config) (Generator, error) {
	if err := errors.ValidateMargin(cfg.Margin); err != nil {
		return nil, err
	}
	switch kind {
	case KindRandom:
		return NewRandom(rng, cfg.Margin), nil
	case KindHeart:
		return NewHeart(rng, cfg.Distortion, cfg.Margin)
	default:
		return nil, errors.New(errors.ErrCodeInvalidGenerator, "unknown generator: %q (must be 'random' or 'heart')", kind)
	}
}

// NewRand returns a seeded PCG random source.
// The same seed always yields the same stream.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// validateRequest checks the shared Generate preconditions.
func validateRequest(count int, bounds Bounds) error {
	if err := errors.ValidateCount(count); err != nil {
		return err
	}
	return bounds.Validate()
}

// drawArea returns the usable coordinate range [lo, hi) for one dimension
// after reserving the margin fraction on both sides.
func drawArea(size int, margin float64) (lo, hi float64) {
	lo = float64(size) * margin
	hi = float64(size) - lo
	return lo, hi
}
