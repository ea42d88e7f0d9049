// Package room resolves a room specification into a closed boundary path.
//
// The resolver works on canonical-unit dimensions and emits the outline in a
// working frame (offset + scale) that the tiling engine shares, so tiles and
// boundary agree on coordinates. Output is always a closed polygon described
// as an ordered vertex list with an implicit closing edge, never an open
// path.
package room

import (
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// lNotchRatio fixes the L-shape's inner notch at 60% of each room extent.
// This is a deliberate proportional simplification, not a parametrized L;
// an exact notch would replace just this resolver.
const lNotchRatio = 0.6

// Resolve produces the closed boundary for a room whose dimensions have
// already been converted to canonical units. For a custom shape with fewer
// than three boundary points it returns nil, which callers must treat as "no
// preview available" rather than an error.
func Resolve(shape plan.Shape, length, width float64, boundary []geometry.Point, frame geometry.Frame) []geometry.Point {
	switch shape {
	case plan.ShapeRectangle, plan.ShapeSquare:
		return rectangle(length, width, frame)
	case plan.ShapeLShape:
		return lShape(length, width, frame)
	case plan.ShapeCustom:
		return custom(boundary, frame)
	}
	return nil
}

// rectangle returns the four corners of a right-angled rectangle anchored at
// the frame offset.
func rectangle(length, width float64, frame geometry.Frame) []geometry.Point {
	if length <= 0 || width <= 0 {
		return nil
	}
	return applyAll([]geometry.Point{
		{X: 0, Y: 0},
		{X: length, Y: 0},
		{X: length, Y: width},
		{X: 0, Y: width},
	}, frame)
}

// lShape returns a six-vertex L whose inner corner sits at lNotchRatio of
// the room length and width.
func lShape(length, width float64, frame geometry.Frame) []geometry.Point {
	if length <= 0 || width <= 0 {
		return nil
	}
	nx := length * lNotchRatio
	ny := width * lNotchRatio
	return applyAll([]geometry.Point{
		{X: 0, Y: 0},
		{X: length, Y: 0},
		{X: length, Y: ny},
		{X: nx, Y: ny},
		{X: nx, Y: width},
		{X: 0, Y: width},
	}, frame)
}

// custom transforms caller-supplied boundary points through the frame.
// Fewer than three points means no boundary can be formed.
func custom(points []geometry.Point, frame geometry.Frame) []geometry.Point {
	if len(points) < 3 {
		return nil
	}
	return applyAll(points, frame)
}

func applyAll(points []geometry.Point, frame geometry.Frame) []geometry.Point {
	out := make([]geometry.Point, len(points))
	for i, p := range points {
		out[i] = frame.Apply(p)
	}
	return out
}
