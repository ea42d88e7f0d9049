// Package projection maps canonical-unit layout geometry into a target
// viewport for rendering.
//
// A render pass computes a single Transform up front and reuses it for every
// placement and boundary point; per-element scale factors would skew the
// drawing, so the transform is the only scaling authority downstream sinks
// may use.
package projection

import (
	"math"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// Viewport is the target drawing surface in output units (typically pixels).
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// Transform is the uniform scale and centering offset of one render pass.
type Transform struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// NewTransform computes the transform that fits a roomLength × roomWidth
// canonical rectangle inside the viewport, preserving aspect ratio and
// centering the result: scale = min((vw-2m)/roomLength, (vh-2m)/roomWidth).
//
// Degenerate room extents or a margin consuming the whole viewport yield a
// zero-scale transform centered in the viewport, keeping downstream math
// NaN-free.
func NewTransform(roomLength, roomWidth float64, vp Viewport) Transform {
	usableW := vp.Width - 2*vp.Margin
	usableH := vp.Height - 2*vp.Margin
	if roomLength <= 0 || roomWidth <= 0 || usableW <= 0 || usableH <= 0 {
		return Transform{OffsetX: vp.Width / 2, OffsetY: vp.Height / 2}
	}

	scale := math.Min(usableW/roomLength, usableH/roomWidth)
	return Transform{
		Scale:   scale,
		OffsetX: (vp.Width - roomLength*scale) / 2,
		OffsetY: (vp.Height - roomWidth*scale) / 2,
	}
}

// Frame exposes the transform as the working frame shared with the room
// resolver and tiling engine.
func (t Transform) Frame() geometry.Frame {
	return geometry.Frame{OffsetX: t.OffsetX, OffsetY: t.OffsetY, Scale: t.Scale}
}

// Point maps a canonical point into viewport coordinates.
func (t Transform) Point(p geometry.Point) geometry.Point {
	return t.Frame().Apply(p)
}

// Rect maps a canonical rectangle into viewport coordinates.
func (t Transform) Rect(r geometry.Rect) geometry.Rect {
	return t.Frame().ApplyRect(r)
}

// Layout maps an entire canonical layout into viewport coordinates with the
// single shared transform. The input layout is not mutated; a projected copy
// is returned.
func (t Transform) Layout(l *plan.LayoutResult) *plan.LayoutResult {
	out := &plan.LayoutResult{
		RoomLength: l.RoomLength * t.Scale,
		RoomWidth:  l.RoomWidth * t.Scale,
		GroutWidth: l.GroutWidth * t.Scale,
		Pattern:    l.Pattern,
	}
	if l.Boundary != nil {
		out.Boundary = make([]geometry.Point, len(l.Boundary))
		for i, p := range l.Boundary {
			out.Boundary[i] = t.Point(p)
		}
	}
	if l.Placements != nil {
		out.Placements = make([]plan.TilePlacement, len(l.Placements))
		for i, p := range l.Placements {
			out.Placements[i] = plan.TilePlacement{
				Rect: t.Rect(p.Rect),
				Row:  p.Row,
				Col:  p.Col,
				Cut:  p.Cut,
			}
		}
	}
	return out
}
