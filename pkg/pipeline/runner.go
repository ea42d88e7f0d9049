package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tilewright/tilewright/pkg/cache"
	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/planio"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/quantity"
	"github.com/tilewright/tilewright/pkg/render/sink"
	"github.com/tilewright/tilewright/pkg/render/styles"
)

// Cache TTLs per stage. Layouts are pure functions of the plan inputs, so
// they could live forever; the TTL just bounds disk growth.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Runner encapsulates pipeline execution with caching.
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

// Execute runs the complete resolve → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1+2: Resolve and layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Transform = projection.NewTransform(layout.RoomLength, layout.RoomWidth, opts.Viewport())
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PlacementCount = len(layout.Placements)
	result.CacheInfo.LayoutHit = layoutHit
	for _, p := range layout.Placements {
		if p.Cut {
			result.Stats.CutCount++
		}
	}

	opts.Logger.Info("computed layout",
		"tiles", result.Stats.PlacementCount,
		"cut", result.Stats.CutCount,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Summary is arithmetic over the placement list; not worth caching.
	summary, err := computeSummary(layout, opts.Room, opts.Tile, opts.Pattern,
		quantity.Options{PricePerTile: opts.PricePerTile})
	if err != nil {
		return nil, err
	}
	result.Summary = summary

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, &summary, opts)
	if err != nil {
		return nil, err
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

// LayoutWithCacheInfo computes the layout with caching and reports whether
// the result came from cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (*plan.LayoutResult, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.LayoutKey(opts.layoutKeyParts()...)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := planio.ReadJSON(bytes.NewReader(data)); err == nil {
				return cached, true, nil
			}
			// Unreadable entry: fall through and recompute.
		}
	}

	layout, _, err := ComputeLayout(opts.Room, opts.Tile, opts.Pattern, opts.Viewport())
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := planio.WriteJSON(layout, &buf); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), TTLLayout)
	}

	return layout, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, opts Options) (*plan.LayoutResult, error) {
	layout, _, err := r.LayoutWithCacheInfo(ctx, opts)
	return layout, err
}

// RenderWithCacheInfo renders all requested formats, reading and writing
// the artifact cache. Formats render concurrently; the first error wins.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout *plan.LayoutResult, summary *plan.QuantitySummary, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutKey, err := layoutHash(layout, opts)
	if err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutKey, format, opts.Style)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit && !opts.Refresh {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := r.renderAll(ctx, layout, summary, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutKey, format, opts.Style)
		_ = r.Cache.Set(ctx, key, data, TTLArtifact)
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout *plan.LayoutResult, summary *plan.QuantitySummary, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, summary, opts)
	return artifacts, err
}

// renderAll fans the formats out over goroutines. PNG encoding dominates
// multi-format runs, so the cheap SVG/JSON encoders never wait behind it.
func (r *Runner) renderAll(ctx context.Context, layout *plan.LayoutResult, summary *plan.QuantitySummary, opts Options) (map[string][]byte, error) {
	vp := opts.Viewport()

	var mu sync.Mutex
	rendered := make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		format := format
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.renderOne(layout, summary, format, opts, vp)
			if err != nil {
				return err
			}
			mu.Lock()
			rendered[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rendered, nil
}

func (r *Runner) renderOne(layout *plan.LayoutResult, summary *plan.QuantitySummary, format string, opts Options, vp projection.Viewport) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(layout, vp,
			sink.WithStyle(styles.ForName(opts.Style)),
			sink.WithTitle(opts.Title),
			sink.WithSummary(summary),
		), nil
	case FormatJSON:
		return sink.RenderJSON(layout, vp,
			sink.WithJSONStyle(opts.Style),
			sink.WithJSONSummary(summary),
		)
	case FormatPNG:
		pngOpts := []sink.PNGOption{}
		if opts.Style == "blueprint" {
			pngOpts = append(pngOpts, sink.WithPNGBlueprint())
		}
		return sink.RenderPNG(layout, vp, pngOpts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

// layoutHash derives the artifact cache key's layout component. The
// viewport participates because rendered output depends on it even though
// the layout geometry does not.
func layoutHash(layout *plan.LayoutResult, opts Options) (string, error) {
	data, err := json.Marshal(struct {
		Layout   *plan.LayoutResult  `json:"layout"`
		Viewport projection.Viewport `json:"viewport"`
		Title    string              `json:"title,omitempty"`
	}{layout, opts.Viewport(), opts.Title})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	return cache.Hash(data), nil
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
