// Package observability lets callers watch framechart at work without the
// libraries depending on any metrics or tracing backend.
//
// Three event categories are reported: the figure pipeline (load, fit,
// render), cache lookups and writes, and requests served by the render
// service. Each category has an interface and a no-op default. The process
// installs its implementations once at startup, before any work starts:
//
//	observability.SetPipelineHooks(&promPipeline{})
//
// or several at a time, with a way back:
//
//	restore := observability.Install(observability.Hooks{Cache: counter})
//	defer restore()
//
// Libraries fetch the current implementation on every event:
//
//	observability.Pipeline().OnFitStart(ctx, len(doc.Plots))
//
// [LogHooks] is the implementation the CLI installs in verbose mode.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the figure pipeline.
type PipelineHooks interface {
	// Load events. source is a file path or "inline".
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, plotCount int, duration time.Duration, err error)

	// Fit events
	OnFitStart(ctx context.Context, plotCount int)
	OnFitComplete(ctx context.Context, chartCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache backends. keyType is the key's
// namespace, "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the render service.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError is called for server-side failures only; client errors are
	// visible through OnResponse.
	OnError(ctx context.Context, method, path string, err error)
}

// NoopPipelineHooks ignores every pipeline event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnFitStart(context.Context, int)                                   {}
func (NoopPipelineHooks) OnFitComplete(context.Context, int, time.Duration, error)          {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks ignores every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every HTTP event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// Hooks bundles one implementation per category. Nil fields leave the
// category unchanged when installed.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
}

func defaults() Hooks {
	return Hooks{NoopPipelineHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}}
}

var (
	mu      sync.RWMutex
	current = defaults()
)

// Install replaces the non-nil categories of h and returns a function that
// puts the previous hooks back.
func Install(h Hooks) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	if h.Pipeline != nil {
		current.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		current.Cache = h.Cache
	}
	if h.HTTP != nil {
		current.HTTP = h.HTTP
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		current = prev
	}
}

// SetPipelineHooks installs pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) { Install(Hooks{Pipeline: h}) }

// SetCacheHooks installs cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) { Install(Hooks{Cache: h}) }

// SetHTTPHooks installs HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) { Install(Hooks{HTTP: h}) }

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return current.Pipeline
}

// Cache returns the installed cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return current.Cache
}

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks {
	mu.RLock()
	defer mu.RUnlock()
	return current.HTTP
}

// Reset restores the no-op defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}
