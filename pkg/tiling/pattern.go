package tiling

import (
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// Strategy adjusts a tile's base placement for a pattern before cut
// detection runs. Each pattern is an explicit, named strategy so a future
// exact-geometry variant (true herringbone interlock, polygon clipping) can
// replace one strategy without touching the enumeration loop or the
// aggregator.
type Strategy interface {
	// Name identifies the strategy for logging and JSON export.
	Name() string

	// Adjust transforms the row-major base placement. The rectangle passed
	// in carries the nominal tile extents; implementations may move or
	// resize it but must stay pure per invocation.
	Adjust(row, col int, r geometry.Rect) geometry.Rect
}

// ForPattern returns the strategy for a pattern selector. Unknown patterns
// fall back to the grid strategy; selector validity is the manifest layer's
// responsibility.
func ForPattern(p plan.Pattern) Strategy {
	switch p {
	case plan.PatternBrick:
		return brickStrategy{}
	case plan.PatternHerringbone:
		return herringboneStrategy{}
	default:
		return gridStrategy{}
	}
}

// gridStrategy places every tile on the base grid unmodified.
type gridStrategy struct{}

func (gridStrategy) Name() string { return "grid" }

func (gridStrategy) Adjust(_, _ int, r geometry.Rect) geometry.Rect { return r }

// brickStrategy shifts odd rows right by half a tile length, the classic
// running-bond offset. The shift is applied uniformly; tiles pushed past the
// bounding rectangle are handled by cut detection afterwards.
type brickStrategy struct{}

func (brickStrategy) Name() string { return "brick" }

func (brickStrategy) Adjust(row, _ int, r geometry.Rect) geometry.Rect {
	if row%2 == 1 {
		r.X += r.Width / 2
	}
	return r
}

// herringboneStrategy swaps tile orientation on alternating cells. This is a
// simplified stand-in for true 90° herringbone geometry: tiles are resized,
// not rotated or translated to interlock.
type herringboneStrategy struct{}

func (herringboneStrategy) Name() string { return "herringbone" }

func (herringboneStrategy) Adjust(row, col int, r geometry.Rect) geometry.Rect {
	if (row+col)%2 == 1 {
		r.Width, r.Height = r.Height, r.Width
	}
	return r
}
