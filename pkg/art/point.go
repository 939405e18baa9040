// Package art generates the point sequences that lineart renders.
//
// A Generator produces an ordered Sequence of points inside a Bounds. The
// renderer connects consecutive points with line segments, so the order of
// the sequence defines the drawing order. Two generators are provided:
// Random (independent uniform coordinates) and Heart (a parametric heart
// curve with bounded random distortion).
//
// All randomness flows through an explicit seedable source, never through
// process-global state, so generation is reproducible in tests.
package art

import "github.com/arthofer/lineart/pkg/errors"

// Point is a 2D coordinate produced by a generator.
// Points are immutable once produced.
type Point struct {
	X, Y float64
}

// Sequence is an ordered list of points. Order is significant: the renderer
// draws a segment from each point to its successor.
type Sequence []Point

// Close returns a copy of the sequence with the first point appended,
// so that rendering produces a closed polyline. Closing the loop is a
// sequence-level choice; the renderer itself never adds segments.
// Sequences shorter than two points are returned unchanged.
func (s Sequence) Close() Sequence {
	if len(s) < 2 {
		return s
	}
	closed := make(Sequence, len(s)+1)
	copy(closed, s)
	closed[len(s)] = s[0]
	return closed
}

// Bounds is the canvas extent constraining valid point coordinates.
// Every generated point lies within [0, Width) x [0, Height).
type Bounds struct {
	Width  int
	Height int
}

// Validate checks that both dimensions are positive.
func (b Bounds) Validate() error {
	return errors.ValidateBounds(b.Width, b.Height)
}

// Contains reports whether p lies within the half-open bounds rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < float64(b.Width) && p.Y >= 0 && p.Y < float64(b.Height)
}
