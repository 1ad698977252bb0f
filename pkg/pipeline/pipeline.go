// Package pipeline provides the figure pipeline shared by the CLI and the
// render service.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse a TOML figure document and inline its CSV data
//  2. Fit: Resolve the figure into a [figure.Layout]
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Fitted layouts and rendered artifacts are cached by content hash, so
// rendering the same document twice only loads it.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "figure.toml",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framechart/pkg/cache"
	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figure"
)

const (
	// DefaultScale is the PNG pixel-density factor.
	DefaultScale = 1.0

	// MaxScale bounds the PNG pixel-density factor.
	MaxScale = 8.0

	// MaxDocumentSize bounds inline documents accepted by the service.
	MaxDocumentSize = 8 << 20
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Document string `json:"document,omitempty"` // Inline TOML
	Path     string `json:"-"`                  // Read when Document is empty
	Width    int    `json:"width,omitempty"`    // Overrides the document
	Height   int    `json:"height,omitempty"`   // Overrides the document

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	EmbedFont bool     `json:"embed_font,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocumentHash is the content hash of the canonical document.
	DocumentHash string

	// Layout is the fitted figure.
	Layout figure.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PlotCount  int
	ChartCount int
	LoadTime   time.Duration
	FitTime    time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the document source and size overrides.
func (o *Options) ValidateForLoad() error {
	if o.Document == "" && o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document or path is required")
	}
	if len(o.Document) > MaxDocumentSize {
		return errors.New(errors.ErrCodeInvalidInput, "document too large (max %d bytes)", MaxDocumentSize)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must not be negative")
	}
	if o.Width > figure.MaxDimension || o.Height > figure.MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must not exceed %d", figure.MaxDimension)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %v], got %v", MaxScale, o.Scale)
	}
	return nil
}

// Source names the document origin for logs and hooks.
func (o *Options) Source() string {
	if o.Document != "" {
		return "inline"
	}
	return o.Path
}

// LayoutKeyOpts returns cache key options for fitting.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Options that do not affect a format are left out of its key.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatSVG, FormatPDF:
		k.EmbedFont = o.EmbedFont
	}
	return k
}
