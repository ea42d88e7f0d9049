// Package plan defines the value objects exchanged between the planning
// engine's components: room and tile specifications, pattern selectors, and
// the layout/summary results handed to downstream consumers.
//
// All entities are request-scoped values constructed fresh per computation
// and discarded after the caller consumes the result. Nothing here persists
// across calls; session state for the wizard lives in pkg/session.
package plan

import (
	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/units"
)

// Shape selects the room outline the resolver produces.
type Shape string

// Supported room shapes.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeSquare    Shape = "square"
	ShapeLShape    Shape = "l-shape"
	ShapeCustom    Shape = "custom"
)

// ParseShape converts a manifest string into a Shape.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeRectangle, ShapeSquare, ShapeLShape, ShapeCustom:
		return Shape(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidShape, "unknown shape: %q", s)
}

// Pattern selects the tiling arrangement strategy. Pure selector, no payload.
type Pattern string

// Supported tiling patterns.
const (
	PatternGrid        Pattern = "grid"
	PatternBrick       Pattern = "brick"
	PatternHerringbone Pattern = "herringbone"
)

// ParsePattern converts a manifest string into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(s) {
	case PatternGrid, PatternBrick, PatternHerringbone:
		return Pattern(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidPattern, "unknown pattern: %q", s)
}

// RoomSpec describes the room to tile. Boundary is present iff Shape is
// ShapeCustom; its points describe a simple closed polygon in an arbitrary
// local coordinate space (first and last point implicitly connected).
type RoomSpec struct {
	Shape    Shape            `json:"shape"`
	Length   units.Length     `json:"length"`
	Width    units.Length     `json:"width"`
	Boundary []geometry.Point `json:"boundary,omitempty"`
}

// TileSpec describes the tile and the grout gap between adjacent tiles.
type TileSpec struct {
	Length units.Length `json:"length"`
	Width  units.Length `json:"width"`
	Grout  units.Length `json:"grout"`
}

// TilePlacement is a single tile rectangle produced by the tiling engine.
// Coordinates and extents are canonical-unit numbers. Placements are
// produced once and never mutated; consumers read them transiently.
type TilePlacement struct {
	geometry.Rect
	Row int `json:"row"`
	Col int `json:"col"`

	// Cut marks a tile whose size was reduced to fit the room boundary.
	Cut bool `json:"cut,omitempty"`
}

// LayoutResult is the sole handoff artifact between the tiling engine and
// downstream consumers (aggregator, projector, render sinks). It is
// immutable once produced; all geometry is in canonical units with the room
// anchored at the working-frame origin.
type LayoutResult struct {
	// Boundary is the closed room outline (implicit closing edge). Nil when
	// no preview is available (custom shape with fewer than three points).
	Boundary []geometry.Point `json:"boundary,omitempty"`

	// Placements is the row-major ordered tile enumeration.
	Placements []TilePlacement `json:"placements"`

	// RoomLength and RoomWidth are the bounding-rectangle extents the
	// engine tiled, in canonical units.
	RoomLength float64 `json:"room_length"`
	RoomWidth  float64 `json:"room_width"`

	// GroutWidth is the canonical-unit grout gap used between placements.
	GroutWidth float64 `json:"grout_width"`

	Pattern Pattern `json:"pattern"`
}

// CoveredArea sums the (possibly clamped) areas of all placements.
func (l *LayoutResult) CoveredArea() float64 {
	var sum float64
	for _, p := range l.Placements {
		sum += p.Area()
	}
	return sum
}

// QuantitySummary aggregates the material requirements derived from a
// layout. All fields are recomputed from scratch on every input change;
// there is no incremental state.
type QuantitySummary struct {
	// TotalArea is the room area in canonical units (mm²).
	TotalArea float64 `json:"total_area"`

	// TileArea is the nominal (uncut) area of a single tile in canonical
	// units. Waste math uses this denominator, not clamped cut areas:
	// purchased material is whole tiles.
	TileArea float64 `json:"tile_area"`

	TotalTiles int `json:"total_tiles"`
	FullTiles  int `json:"full_tiles"`
	CutTiles   int `json:"cut_tiles"`

	// WastePercentage is the recommended purchase buffer for the pattern.
	// It is a policy constant per pattern, deliberately independent of the
	// geometric cut count above.
	WastePercentage float64 `json:"waste_percentage"`

	// GroutArea approximates room area minus the nominal tile areas; it is
	// not an exact polygon subtraction.
	GroutArea float64 `json:"grout_area"`

	// Coverage is covered placement area over room area, clamped to [0,1].
	Coverage float64 `json:"coverage"`

	// RecommendedTiles is the purchase count: total tiles plus the waste
	// buffer, rounded up.
	RecommendedTiles int `json:"recommended_tiles"`

	// EstimatedCost is RecommendedTiles × price per tile when the manifest
	// carries pricing, otherwise 0.
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
}
