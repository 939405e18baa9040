// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about pipeline execution.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, kind, count)
//	// ... generate points ...
//	observability.Pipeline().OnGenerateComplete(ctx, kind, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the generate → render → save pipeline.
type PipelineHooks interface {
	// Point generation events
	OnGenerateStart(ctx context.Context, generator string, count int)
	OnGenerateComplete(ctx context.Context, generator string, count int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, width, height int)
	OnRenderComplete(ctx context.Context, width, height int, duration time.Duration, err error)

	// Persistence events
	OnSaveStart(ctx context.Context, path string)
	OnSaveComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// noopPipelineHooks is the default no-op implementation.
type noopPipelineHooks struct{}

func (noopPipelineHooks) OnGenerateStart(context.Context, string, int) {}
func (noopPipelineHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}
func (noopPipelineHooks) OnRenderStart(context.Context, int, int)                        {}
func (noopPipelineHooks) OnRenderComplete(context.Context, int, int, time.Duration, error) {}
func (noopPipelineHooks) OnSaveStart(context.Context, string)                            {}
func (noopPipelineHooks) OnSaveComplete(context.Context, string, time.Duration, error)   {}

var (
	mu            sync.RWMutex
	pipelineHooks PipelineHooks = noopPipelineHooks{}
)

// SetPipelineHooks registers the pipeline hook implementation.
// Passing nil restores the no-op default.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		pipelineHooks = noopPipelineHooks{}
		return
	}
	pipelineHooks = h
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipelineHooks
}
