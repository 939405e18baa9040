package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/arthofer/lineart/pkg/art"
	"github.com/arthofer/lineart/pkg/colors"
	"github.com/arthofer/lineart/pkg/observability"
	"github.com/arthofer/lineart/pkg/render"
	"github.com/arthofer/lineart/pkg/render/sink"
)

// Runner executes the generate → render → save pipeline.
//
// The Runner is stateless except for its logger; it does not retain results
// between runs. Each Execute call processes its batch strictly sequentially.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result reports the artifacts and timing of one Execute call.
type Result struct {
	Paths []string // written files, in generation order
	Stats Stats
}

// Stats aggregates timings across the whole batch.
type Stats struct {
	GenerateTime time.Duration
	RenderTime   time.Duration
	SaveTime     time.Duration
}

// Execute validates the options and renders the requested batch of images.
// Each image uses a random stream derived from the seed and its index, so a
// fixed seed reproduces the whole batch. The first error aborts the batch;
// images already written stay on disk.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	r.Logger.Info("starting batch",
		"collection", opts.Collection,
		"images", opts.Images,
		"generator", opts.Generator,
		"seed", opts.Seed)

	result := &Result{}
	for i := 0; i < opts.Images; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		path, err := r.renderOne(ctx, opts, i, result)
		if err != nil {
			return result, fmt.Errorf("image %d/%d: %w", i+1, opts.Images, err)
		}
		result.Paths = append(result.Paths, path)
		r.Logger.Info("generated image", "path", path, "index", i+1, "total", opts.Images)
	}
	return result, nil
}

// renderOne produces a single image: generate points, draw, save.
func (r *Runner) renderOne(ctx context.Context, opts Options, index int, result *Result) (string, error) {
	// Derived stream: stable per (seed, index) regardless of batch size.
	rng := art.NewRand(opts.Seed + uint64(index))
	bounds := opts.bounds()

	gen, err := art.NewGenerator(opts.Generator, rng, art.Config{
		Margin:     opts.Margin,
		Distortion: opts.Distortion,
	})
	if err != nil {
		return "", err
	}

	start := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, opts.Generator, opts.Points)
	seq, err := gen.Generate(opts.Points, bounds)
	observability.Pipeline().OnGenerateComplete(ctx, opts.Generator, opts.Points, time.Since(start), err)
	if err != nil {
		return "", err
	}
	result.Stats.GenerateTime += time.Since(start)
	r.Logger.Debug("generated points", "count", len(seq), "generator", opts.Generator)

	if opts.Close {
		seq = seq.Close()
	}

	stroke := render.Stroke{
		Start: colors.Random(rng),
		End:   colors.Random(rng),
		Width: opts.LineWidth,
	}

	start = time.Now()
	observability.Pipeline().OnRenderStart(ctx, bounds.Width, bounds.Height)
	canvas, err := r.draw(seq, bounds, stroke, opts)
	observability.Pipeline().OnRenderComplete(ctx, bounds.Width, bounds.Height, time.Since(start), err)
	if err != nil {
		return "", err
	}
	result.Stats.RenderTime += time.Since(start)

	path := r.artifactPath(opts, index)
	start = time.Now()
	observability.Pipeline().OnSaveStart(ctx, path)
	err = sink.SavePNG(canvas, opts.ScaleFactor, path)
	observability.Pipeline().OnSaveComplete(ctx, path, time.Since(start), err)
	if err != nil {
		return "", err
	}
	result.Stats.SaveTime += time.Since(start)

	return path, nil
}

// draw renders the sequence onto a fresh canvas and applies the caption.
func (r *Runner) draw(seq art.Sequence, bounds art.Bounds, stroke render.Stroke, opts Options) (*render.Canvas, error) {
	canvas, err := render.NewCanvas(bounds, opts.Background)
	if err != nil {
		return nil, err
	}
	if err := render.NewLineRenderer(stroke).Draw(canvas, seq); err != nil {
		return nil, err
	}
	if opts.Caption != "" {
		size := opts.CaptionSize * float64(opts.ScaleFactor)
		if err := render.DrawCaption(canvas, opts.Caption, size); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// artifactPath builds a unique file name for one batch item:
// <output>/<collection>/<collection>_<index>_<shortid>.png
func (r *Runner) artifactPath(opts Options, index int) string {
	short := uuid.NewString()[:8]
	name := fmt.Sprintf("%s_%03d_%s.png", opts.Collection, index, short)
	return filepath.Join(opts.OutputDir, opts.Collection, name)
}
