package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/arthofer/lineart/pkg/art"
	"github.com/arthofer/lineart/pkg/errors"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := NewCanvas(art.Bounds{Width: w, Height: h}, black)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	return c
}

// countLitPixels returns the number of non-background pixels.
func countLitPixels(c *Canvas) int {
	img := c.Image()
	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	return lit
}

func TestDrawSinglePointIsNoOp(t *testing.T) {
	canvas := newTestCanvas(t, 50, 50)
	r := NewLineRenderer(Stroke{Start: white, End: white, Width: 1})

	if err := r.Draw(canvas, art.Sequence{{X: 25, Y: 25}}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if lit := countLitPixels(canvas); lit != 0 {
		t.Errorf("single-point draw lit %d pixels, want 0", lit)
	}
}

func TestDrawEmptySequence(t *testing.T) {
	canvas := newTestCanvas(t, 50, 50)
	r := NewLineRenderer(DefaultStroke)

	err := r.Draw(canvas, art.Sequence{})
	if !errors.IsInvalid(err) {
		t.Errorf("Draw(empty) error = %v, want INVALID_* error", err)
	}
}

func TestDrawHorizontalSegment(t *testing.T) {
	canvas := newTestCanvas(t, 100, 100)
	r := NewLineRenderer(Stroke{Start: white, End: white, Width: 1})

	seq := art.Sequence{{X: 10, Y: 50}, {X: 90, Y: 50}}
	if err := r.Draw(canvas, seq); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	img := canvas.Image()
	for x := 20; x <= 80; x++ {
		if img.RGBAAt(x, 50) == black {
			t.Fatalf("pixel (%d, 50) on the segment is unlit", x)
		}
	}
	// Rows far from the segment stay untouched.
	for x := 0; x < 100; x++ {
		if img.RGBAAt(x, 10) != black {
			t.Fatalf("pixel (%d, 10) off the segment is lit", x)
		}
		if img.RGBAAt(x, 90) != black {
			t.Fatalf("pixel (%d, 90) off the segment is lit", x)
		}
	}
}

// Three horizontal strips at distinct heights: two segments drawn between
// consecutive points, none between the last and first point.
func TestDrawSegmentsConnectConsecutivePointsOnly(t *testing.T) {
	canvas := newTestCanvas(t, 100, 100)
	r := NewLineRenderer(Stroke{Start: white, End: white, Width: 1})

	// Vertical zigzag: (50,10) -> (50,40) -> (20,40). No segment may
	// connect (20,40) back to (50,10).
	seq := art.Sequence{{X: 50, Y: 10}, {X: 50, Y: 40}, {X: 20, Y: 40}}
	if err := r.Draw(canvas, seq); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	img := canvas.Image()
	if img.RGBAAt(50, 25) == black {
		t.Error("segment 0 (vertical) missing at (50, 25)")
	}
	if img.RGBAAt(35, 40) == black {
		t.Error("segment 1 (horizontal) missing at (35, 40)")
	}
	// Midpoint of the would-be closing segment (20,40)-(50,10) is (35,25),
	// far from both drawn segments.
	if img.RGBAAt(35, 25) != black {
		t.Error("unexpected closing segment at (35, 25)")
	}
}

func TestDrawOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		seq  art.Sequence
	}{
		{"x too large", art.Sequence{{X: 10, Y: 10}, {X: 100, Y: 10}}},
		{"negative y", art.Sequence{{X: 10, Y: -1}, {X: 20, Y: 10}}},
		{"later point", art.Sequence{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 20, Y: 200}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newTestCanvas(t, 100, 100)
			r := NewLineRenderer(DefaultStroke)

			err := r.Draw(canvas, tt.seq)
			if !errors.Is(err, errors.ErrCodeOutOfBounds) {
				t.Fatalf("Draw() error = %v, want OUT_OF_BOUNDS", err)
			}
			// All-or-nothing: the canvas must be untouched.
			if lit := countLitPixels(canvas); lit != 0 {
				t.Errorf("failed draw lit %d pixels, want 0", lit)
			}
		})
	}
}

func TestDrawDeterministic(t *testing.T) {
	seq := art.Sequence{{X: 5, Y: 5}, {X: 60, Y: 30}, {X: 20, Y: 55}, {X: 40, Y: 12}}
	stroke := Stroke{Start: color.RGBA{255, 0, 0, 255}, End: color.RGBA{0, 0, 255, 255}, Width: 2}

	render := func() []byte {
		canvas := newTestCanvas(t, 64, 64)
		if err := NewLineRenderer(stroke).Draw(canvas, seq); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		return canvas.Image().Pix
	}

	if !bytes.Equal(render(), render()) {
		t.Error("two draws with identical inputs produced different pixels")
	}
}

// Round-trip: five random points on a 100x100 canvas render four segments
// whose endpoints all stay in bounds.
func TestDrawRoundTripWithRandomGenerator(t *testing.T) {
	bounds := art.Bounds{Width: 100, Height: 100}
	g := art.NewRandom(art.NewRand(5), 0)

	seq, err := g.Generate(5, bounds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(seq) != 5 {
		t.Fatalf("Generate() returned %d points, want 5", len(seq))
	}

	canvas := newTestCanvas(t, bounds.Width, bounds.Height)
	r := NewLineRenderer(Stroke{Start: white, End: white, Width: 1})
	if err := r.Draw(canvas, seq); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if lit := countLitPixels(canvas); lit == 0 {
		t.Error("round-trip render lit no pixels")
	}
}
