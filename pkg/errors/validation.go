package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateCount validates a point count.
// A sequence must contain at least one point.
func ValidateCount(count int) error {
	if count <= 0 {
		return New(ErrCodeInvalidCount, "count must be positive, got %d", count)
	}
	return nil
}

// ValidateBounds validates canvas dimensions.
// Both width and height must be positive.
func ValidateBounds(width, height int) error {
	if width <= 0 {
		return New(ErrCodeInvalidBounds, "width must be positive, got %d", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidBounds, "height must be positive, got %d", height)
	}
	return nil
}

// ValidateDistortion validates a distortion magnitude.
// Distortion scales random perturbation and must be non-negative.
func ValidateDistortion(d float64) error {
	if d < 0 {
		return New(ErrCodeInvalidDistortion, "distortion must be non-negative, got %g", d)
	}
	return nil
}

// ValidateMargin validates a margin fraction.
// The margin is a fraction of the canvas reserved on each side, so values
// at or above 0.5 would leave no drawable area.
func ValidateMargin(m float64) error {
	if m < 0 || m >= 0.5 {
		return New(ErrCodeInvalidInput, "margin must be in [0, 0.5), got %g", m)
	}
	return nil
}

// collectionNameRegex matches safe collection names.
var collectionNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateCollection validates a collection name for safety and correctness.
// Collection names become directory and file name components, so the rules
// are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateCollection(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCollection, "collection name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidCollection, "collection name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCollection, "collection name contains invalid control characters")
		}
	}

	if !collectionNameRegex.MatchString(name) {
		return New(ErrCodeInvalidCollection, "invalid collection name: %q", name)
	}

	return nil
}

// ValidateOutputPath validates an output directory path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "output path cannot contain backslashes")
	}

	return nil
}
