// Package pipeline provides the core generation pipeline for lineart.
//
// This package implements the complete generate → render → save pipeline
// used by the CLI. Each image in a batch is an independent sequential unit
// of work with its own canvas, point sequence, and derived random stream;
// no mutable state is shared across units beyond the read-only options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Generator = "heart"
//	opts.Images = 5
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Paths)
package pipeline

import (
	"image/color"
	"time"

	"github.com/arthofer/lineart/pkg/art"
	"github.com/arthofer/lineart/pkg/errors"
)

// Default values, single source of truth for CLI and presets.
const (
	// DefaultSize is the default output image edge length in pixels.
	DefaultSize = 720

	// DefaultPoints is the default number of points per image.
	DefaultPoints = 10

	// DefaultScaleFactor is the supersampling factor used for antialiasing.
	// The canvas is rendered at scale times the target size and downscaled
	// on save.
	DefaultScaleFactor = 2

	// DefaultMargin is the fraction of the canvas kept clear on each side.
	DefaultMargin = 0.1

	// DefaultDistortion scales each heart coefficient by a fresh uniform
	// random factor in [0, 1).
	DefaultDistortion = 1.0

	// DefaultCollection is the collection name used when none is given.
	DefaultCollection = "collection"

	// DefaultOutputDir is the directory collections are written under.
	DefaultOutputDir = "output"

	// DefaultCaptionSize is the caption font size in (unscaled) pixels.
	DefaultCaptionSize = 16
)

// Options configures a pipeline run. Use DefaultOptions as the base and
// override fields before calling Execute.
type Options struct {
	Collection string // collection name; becomes the output subdirectory
	OutputDir  string // base directory collections are written under

	Images int // how many images to generate in this batch
	Points int // points (and thus segments) per image

	Width       int     // target image width in pixels
	Height      int     // target image height in pixels
	ScaleFactor int     // supersampling factor for antialiasing
	Margin      float64 // fraction of the canvas kept clear on each side

	Generator  string  // point generator kind: "random" or "heart"
	Distortion float64 // heart perturbation magnitude (0 = exact curve)
	Close      bool    // repeat the first point to close the polyline

	Seed uint64 // random seed; 0 means derive one from the clock

	Caption     string  // optional text drawn near the bottom edge
	CaptionSize float64 // caption font size in unscaled pixels

	Background color.RGBA // canvas background fill
	LineWidth  float64    // base stroke width; 0 means the scale factor
}

// DefaultOptions returns the baseline options: one 720x720 random-walk
// image, closed polyline, black background.
func DefaultOptions() Options {
	return Options{
		Collection:  DefaultCollection,
		OutputDir:   DefaultOutputDir,
		Images:      1,
		Points:      DefaultPoints,
		Width:       DefaultSize,
		Height:      DefaultSize,
		ScaleFactor: DefaultScaleFactor,
		Margin:      DefaultMargin,
		Generator:   art.KindRandom,
		Distortion:  DefaultDistortion,
		Close:       true,
		CaptionSize: DefaultCaptionSize,
		Background:  color.RGBA{A: 255},
	}
}

// ValidateAndSetDefaults checks the options and fills derived defaults.
// All failures carry INVALID_* codes.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Collection == "" {
		o.Collection = DefaultCollection
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if err := errors.ValidateCollection(o.Collection); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.OutputDir); err != nil {
		return err
	}
	if o.Images <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "images must be positive, got %d", o.Images)
	}
	if err := errors.ValidateCount(o.Points); err != nil {
		return err
	}
	if err := errors.ValidateBounds(o.Width, o.Height); err != nil {
		return err
	}
	if o.ScaleFactor < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "scale factor must be at least 1, got %d", o.ScaleFactor)
	}
	if err := errors.ValidateMargin(o.Margin); err != nil {
		return err
	}
	if !art.ValidKinds[o.Generator] {
		return errors.New(errors.ErrCodeInvalidGenerator, "unknown generator: %q (must be 'random' or 'heart')", o.Generator)
	}
	if err := errors.ValidateDistortion(o.Distortion); err != nil {
		return err
	}
	if o.LineWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "line width must be non-negative, got %g", o.LineWidth)
	}
	if o.LineWidth == 0 {
		o.LineWidth = float64(o.ScaleFactor)
	}
	if o.CaptionSize <= 0 {
		o.CaptionSize = DefaultCaptionSize
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return nil
}

// bounds returns the supersampled canvas bounds for one image.
func (o *Options) bounds() art.Bounds {
	return art.Bounds{
		Width:  o.Width * o.ScaleFactor,
		Height: o.Height * o.ScaleFactor,
	}
}
