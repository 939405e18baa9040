package art

import (
	"math"
	"testing"

	"github.com/arthofer/lineart/pkg/errors"
)

func TestHeartGenerateCountAndBounds(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		bounds     Bounds
		distortion float64
		margin     float64
	}{
		{"exact curve", 100, Bounds{720, 720}, 0, 0},
		{"distorted", 100, Bounds{720, 720}, 1, 0},
		{"heavy distortion", 50, Bounds{300, 200}, 2.5, 0},
		{"with margin", 64, Bounds{500, 500}, 0.5, 0.1},
		{"single point", 1, Bounds{100, 100}, 0, 0},
		{"two points", 2, Bounds{100, 100}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewHeart(NewRand(3), tt.distortion, tt.margin)
			if err != nil {
				t.Fatalf("NewHeart() error = %v", err)
			}
			seq, err := g.Generate(tt.count, tt.bounds)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(seq) != tt.count {
				t.Fatalf("Generate() returned %d points, want %d", len(seq), tt.count)
			}
			for i, p := range seq {
				if !tt.bounds.Contains(p) {
					t.Errorf("point %d = %v outside bounds %v", i, p, tt.bounds)
				}
			}
		})
	}
}

// With distortion 0 the generator must be fully deterministic: the entropy
// source must not influence the output at all.
func TestHeartGenerateZeroDistortionDeterministic(t *testing.T) {
	bounds := Bounds{Width: 400, Height: 300}

	gen := func(seed uint64) Sequence {
		g, err := NewHeart(NewRand(seed), 0, 0.1)
		if err != nil {
			t.Fatalf("NewHeart() error = %v", err)
		}
		seq, err := g.Generate(36, bounds)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		return seq
	}

	a, b := gen(1), gen(999)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs across seeds with distortion 0: %v vs %v", i, a[i], b[i])
		}
	}
}

// The undistorted heart curve is symmetric about its vertical axis:
// x(2π−t) = −x(t) while y(2π−t) = y(t). After the centered fit, points i
// and count−i must mirror around the canvas center line.
func TestHeartGenerateZeroDistortionOnCurve(t *testing.T) {
	const count = 32
	bounds := Bounds{Width: 200, Height: 100}

	g, err := NewHeart(NewRand(1), 0, 0)
	if err != nil {
		t.Fatalf("NewHeart() error = %v", err)
	}
	seq, err := g.Generate(count, bounds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	cx := float64(bounds.Width) / 2
	const tol = 1e-9
	for i := 1; i < count; i++ {
		j := count - i
		if math.Abs((seq[i].X-cx)+(seq[j].X-cx)) > tol {
			t.Errorf("x symmetry broken at %d/%d: %g vs %g", i, j, seq[i].X, seq[j].X)
		}
		if math.Abs(seq[i].Y-seq[j].Y) > tol {
			t.Errorf("y symmetry broken at %d/%d: %g vs %g", i, j, seq[i].Y, seq[j].Y)
		}
	}

	// The bottom tip of the heart (t = π) must be the lowest point.
	tip := seq[count/2]
	for i, p := range seq {
		if p.Y > tip.Y+tol {
			t.Errorf("point %d = %v below the heart tip %v", i, p, tip)
		}
	}
}

func TestHeartGenerateDistortionStaysInBounds(t *testing.T) {
	bounds := Bounds{Width: 256, Height: 256}
	for _, distortion := range []float64{0.1, 1.0, 5.0} {
		g, err := NewHeart(NewRand(11), distortion, 0)
		if err != nil {
			t.Fatalf("NewHeart(%g) error = %v", distortion, err)
		}
		seq, err := g.Generate(128, bounds)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for i, p := range seq {
			if !bounds.Contains(p) {
				t.Errorf("distortion %g: point %d = %v outside bounds", distortion, i, p)
			}
		}
	}
}

func TestHeartInvalidArguments(t *testing.T) {
	if _, err := NewHeart(NewRand(1), -0.5, 0); !errors.Is(err, errors.ErrCodeInvalidDistortion) {
		t.Errorf("NewHeart(distortion=-0.5) error = %v, want INVALID_DISTORTION", err)
	}

	g, err := NewHeart(NewRand(1), 0, 0)
	if err != nil {
		t.Fatalf("NewHeart() error = %v", err)
	}
	if _, err := g.Generate(0, Bounds{100, 100}); !errors.Is(err, errors.ErrCodeInvalidCount) {
		t.Errorf("Generate(count=0) error = %v, want INVALID_COUNT", err)
	}
	if _, err := g.Generate(10, Bounds{-1, 100}); !errors.Is(err, errors.ErrCodeInvalidBounds) {
		t.Errorf("Generate(width=-1) error = %v, want INVALID_BOUNDS", err)
	}
}
