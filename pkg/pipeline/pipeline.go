// Package pipeline provides the core planning pipeline for Tilewright.
//
// This package implements the complete resolve → layout → render pipeline
// that the CLI commands share. Centralizing it keeps caching and default
// handling consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Convert the room and tile specs to canonical millimetres and
//     resolve the room boundary polygon
//  2. Layout: Enumerate tile placements for the selected pattern and derive
//     the quantity summary
//  3. Render: Generate output artifacts in various formats (SVG, PNG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Room:    room,
//	    Tile:    tile,
//	    Pattern: plan.PatternBrick,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// The geometry entry points [ComputeLayout] and [ComputeSummary] are plain
// functions without caching or I/O, for callers that only need the numbers.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/render/styles"
)

// Default values shared by the CLI commands.
const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultMargin is the default viewport margin in pixels.
	DefaultMargin = 20.0

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = func() map[string]bool {
	m := make(map[string]bool)
	for _, n := range styles.Names() {
		m[n] = true
	}
	return m
}()

// Options contains all configuration for the planning pipeline.
// This struct supports JSON serialization for session storage.
type Options struct {
	// Plan inputs
	Room    plan.RoomSpec `json:"room"`
	Tile    plan.TileSpec `json:"tile"`
	Pattern plan.Pattern  `json:"pattern,omitempty"`

	// Viewport options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Margin float64 `json:"margin,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Title   string   `json:"title,omitempty"`

	// PricePerTile enables the purchase cost estimate when positive.
	PricePerTile float64 `json:"price_per_tile,omitempty"`

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed placement list in canonical millimetres.
	Layout *plan.LayoutResult

	// Summary aggregates the material requirements for the layout.
	Summary plan.QuantitySummary

	// Transform maps the layout's canonical geometry into the viewport.
	Transform projection.Transform

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PlacementCount int
	CutCount       int
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
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

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, blueprint)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Pattern == "" {
		o.Pattern = plan.PatternGrid
	}
	if _, err := plan.ParsePattern(string(o.Pattern)); err != nil {
		return err
	}
	o.SetViewportDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetViewportDefaults sets default values for the preview viewport.
func (o *Options) SetViewportDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
}

// Viewport returns the projection viewport the options describe.
func (o *Options) Viewport() projection.Viewport {
	return projection.Viewport{Width: o.Width, Height: o.Height, Margin: o.Margin}
}

// layoutKeyParts lists every option value that determines the layout stage
// output. Values not in this list must not influence the layout.
func (o *Options) layoutKeyParts() []any {
	return []any{o.Room, o.Tile, o.Pattern}
}
