package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framechart/pkg/cache"
	"github.com/matzehuels/framechart/pkg/figfile"
	"github.com/matzehuels/framechart/pkg/figure"
	"github.com/matzehuels/framechart/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → fit → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, docHash, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.DocumentHash = docHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PlotCount = len(doc.Plots)

	opts.Logger.Info("loaded figure",
		"source", opts.Source(),
		"plots", len(doc.Plots),
		"duration", result.Stats.LoadTime)

	// Stage 2: Fit
	fitStart := time.Now()
	layout, fitHit, err := r.FitWithCacheInfo(ctx, doc, docHash, opts)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	result.Layout = layout
	result.Stats.FitTime = time.Since(fitStart)
	result.Stats.ChartCount = layout.Charts()
	result.CacheInfo.LayoutHit = fitHit

	opts.Logger.Info("fitted layout",
		"charts", result.Stats.ChartCount,
		"cached", fitHit,
		"duration", result.Stats.FitTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the figure document and reports the stage to the hooks.
func (r *Runner) Load(ctx context.Context, opts Options) (*figfile.Document, string, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Source())
	start := time.Now()

	doc, hash, err := Load(opts)

	plots := 0
	if doc != nil {
		plots = len(doc.Plots)
	}
	hooks.OnLoadComplete(ctx, opts.Source(), plots, time.Since(start), err)
	return doc, hash, err
}

// FitWithCacheInfo fits the document with caching and returns cache hit info.
func (r *Runner) FitWithCacheInfo(ctx context.Context, doc *figfile.Document, docHash string, opts Options) (figure.Layout, bool, error) {
	r.applyLogger(&opts)
	cacheKey := r.Keyer.LayoutKey(docHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := UnmarshalLayout(data)
			if err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
			opts.Logger.Warn("discarding unreadable cached layout", "key", cacheKey, "err", err)
		}
	}

	hooks := observability.Pipeline()
	hooks.OnFitStart(ctx, len(doc.Plots))
	start := time.Now()
	layout, err := Fit(doc)
	hooks.OnFitComplete(ctx, layout.Charts(), time.Since(start), err)
	if err != nil {
		return figure.Layout{}, false, err
	}

	// Cache the result
	if data, err := MarshalLayout(layout); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache layout", "err", err)
		}
	}

	return layout, false, nil // Cache miss
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout figure.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from layout data
	layoutData, err := MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, layout, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache artifact", "format", format, "err", err)
		}
	}

	return rendered, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
