package pipeline

import (
	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/quantity"
	"github.com/tilewright/tilewright/pkg/room"
	"github.com/tilewright/tilewright/pkg/tiling"
	"github.com/tilewright/tilewright/pkg/units"
)

// canonicalRoom is the millimetre view of a RoomSpec: the bounding extents
// the tiling engine works against, plus the converted custom boundary.
type canonicalRoom struct {
	Length   float64
	Width    float64
	Boundary []geometry.Point
}

// resolveRoom converts a room spec to canonical millimetres. For custom
// shapes the declared extents are ignored in favour of the boundary's
// bounding rectangle, since the points are the source of truth there.
func resolveRoom(spec plan.RoomSpec) (canonicalRoom, error) {
	var r canonicalRoom
	var err error

	if r.Length, err = spec.Length.Canonical(); err != nil {
		return canonicalRoom{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "room length")
	}
	if r.Width, err = spec.Width.Canonical(); err != nil {
		return canonicalRoom{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "room width")
	}

	if spec.Shape == plan.ShapeCustom {
		r.Boundary = make([]geometry.Point, len(spec.Boundary))
		for i, p := range spec.Boundary {
			x, err := units.ToCanonical(p.X, spec.Length.Unit)
			if err != nil {
				return canonicalRoom{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "boundary point %d", i)
			}
			y, err := units.ToCanonical(p.Y, spec.Length.Unit)
			if err != nil {
				return canonicalRoom{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "boundary point %d", i)
			}
			r.Boundary[i] = geometry.Point{X: x, Y: y}
		}
		size := geometry.Bounds(r.Boundary)
		r.Length, r.Width = size.Length, size.Width
	}

	return r, nil
}

// canonicalTile is the millimetre view of a TileSpec.
type canonicalTile struct {
	Length float64
	Width  float64
	Grout  float64
}

func resolveTile(spec plan.TileSpec) (canonicalTile, error) {
	var t canonicalTile
	var err error

	if t.Length, err = spec.Length.Canonical(); err != nil {
		return canonicalTile{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "tile length")
	}
	if t.Width, err = spec.Width.Canonical(); err != nil {
		return canonicalTile{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "tile width")
	}
	if t.Grout, err = spec.Grout.Canonical(); err != nil {
		return canonicalTile{}, errors.Wrap(errors.ErrCodeInvalidUnit, err, "grout width")
	}
	return t, nil
}

// ComputeLayout resolves the room and enumerates tile placements for the
// pattern, returning the layout in canonical millimetres together with the
// transform that maps it into the viewport.
//
// The layout's geometry is never pre-scaled: render sinks and previews apply
// the returned transform so one scale factor covers the whole pass.
// Degenerate inputs (zero extents, a custom boundary with fewer than three
// points) yield a layout with no placements and possibly no boundary, not an
// error — callers render that as a "no preview" state.
func ComputeLayout(roomSpec plan.RoomSpec, tileSpec plan.TileSpec, pattern plan.Pattern, vp projection.Viewport) (*plan.LayoutResult, projection.Transform, error) {
	cr, err := resolveRoom(roomSpec)
	if err != nil {
		return nil, projection.Transform{}, err
	}
	ct, err := resolveTile(tileSpec)
	if err != nil {
		return nil, projection.Transform{}, err
	}

	boundary := room.Resolve(roomSpec.Shape, cr.Length, cr.Width, cr.Boundary, geometry.Identity())
	placements := tiling.Generate(tiling.Spec{
		RoomLength: cr.Length,
		RoomWidth:  cr.Width,
		TileLength: ct.Length,
		TileWidth:  ct.Width,
		GroutWidth: ct.Grout,
		Pattern:    pattern,
	})

	layout := &plan.LayoutResult{
		Boundary:   boundary,
		Placements: placements,
		RoomLength: cr.Length,
		RoomWidth:  cr.Width,
		GroutWidth: ct.Grout,
		Pattern:    pattern,
	}
	return layout, projection.NewTransform(cr.Length, cr.Width, vp), nil
}

// ComputeSummary aggregates a layout into material requirements. The room
// and tile specs supply the canonical areas; the placements supply the
// counts and covered area. The pattern argument selects the waste constant
// and wins over the pattern recorded in the layout.
func ComputeSummary(layout *plan.LayoutResult, roomSpec plan.RoomSpec, tileSpec plan.TileSpec, pattern plan.Pattern) (plan.QuantitySummary, error) {
	return computeSummary(layout, roomSpec, tileSpec, pattern, quantity.Options{})
}

func computeSummary(layout *plan.LayoutResult, roomSpec plan.RoomSpec, tileSpec plan.TileSpec, pattern plan.Pattern, opts quantity.Options) (plan.QuantitySummary, error) {
	cr, err := resolveRoom(roomSpec)
	if err != nil {
		return plan.QuantitySummary{}, err
	}
	ct, err := resolveTile(tileSpec)
	if err != nil {
		return plan.QuantitySummary{}, err
	}

	l := *layout
	l.Pattern = pattern
	tileArea := quantity.TileAreaFromSpec(ct.Length, ct.Width)
	roomArea := geometry.Area(cr.Length, cr.Width)
	return quantity.Summarize(&l, tileArea, roomArea, opts), nil
}
