// Package geometry provides the primitive shapes and measure helpers used by
// the tiling engine, the room resolver, and the viewport projection.
//
// All values are canonical-unit (millimeter) floats. Every function in this
// package is total: degenerate or NaN input yields the documented fallback
// (usually zero), never NaN or an error. The tiling engine and the projector
// compose these primitives without re-checking their inputs, so that
// predictability is a contract, not a convenience.
package geometry

import "math"

// Point is a location in a 2D coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Area returns the rectangle's area, or 0 for degenerate extents.
func (r Rect) Area() float64 { return Area(r.Width, r.Height) }

// valid reports whether v is a usable positive finite measure.
func valid(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Area returns length × width. Non-positive, NaN, or infinite inputs yield 0,
// never a negative number or NaN.
func Area(length, width float64) float64 {
	if !valid(length) || !valid(width) {
		return 0
	}
	return length * width
}

// Perimeter returns 2 × (length + width) with the same degenerate-input
// guard as Area.
func Perimeter(length, width float64) float64 {
	if !valid(length) || !valid(width) {
		return 0
	}
	return 2 * (length + width)
}

// AspectRatio returns length / width, or 0 when width is degenerate rather
// than dividing by zero.
func AspectRatio(length, width float64) float64 {
	if !valid(length) || !valid(width) {
		return 0
	}
	return length / width
}

// Fit describes a rectangle scaled and centered inside a bounding box by
// ProportionalFit, plus anchor points for dimension labels.
type Fit struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// LengthLabel anchors a label for the horizontal dimension, centered
	// above the fitted rectangle. WidthLabel anchors the vertical dimension
	// label, centered left of it.
	LengthLabel Point `json:"length_label"`
	WidthLabel  Point `json:"width_label"`
}

// ProportionalFit scales a length×width rectangle to fit inside a
// boundsWidth×boundsHeight box while preserving aspect ratio, then centers
// it. The limiting dimension is chosen by comparing the rectangle's aspect
// ratio against the box's: a wider-than-box rectangle is width-limited,
// otherwise height-limited.
//
// Degenerate inputs yield a zero-size rectangle centered in the box; label
// anchors remain well-defined so no NaN coordinate ever escapes.
func ProportionalFit(length, width, boundsWidth, boundsHeight float64) Fit {
	cx, cy := boundsWidth/2, boundsHeight/2
	if math.IsNaN(cx) || math.IsInf(cx, 0) {
		cx = 0
	}
	if math.IsNaN(cy) || math.IsInf(cy, 0) {
		cy = 0
	}

	if !valid(length) || !valid(width) || !valid(boundsWidth) || !valid(boundsHeight) {
		return Fit{
			X: cx, Y: cy,
			LengthLabel: Point{X: cx, Y: cy},
			WidthLabel:  Point{X: cx, Y: cy},
		}
	}

	var w, h float64
	if AspectRatio(length, width) > boundsWidth/boundsHeight {
		w = boundsWidth
		h = boundsWidth * width / length
	} else {
		h = boundsHeight
		w = boundsHeight * length / width
	}

	x := (boundsWidth - w) / 2
	y := (boundsHeight - h) / 2
	return Fit{
		X: x, Y: y, Width: w, Height: h,
		LengthLabel: Point{X: x + w/2, Y: y},
		WidthLabel:  Point{X: x, Y: y + h/2},
	}
}

// Size is a width/height pair of canonical-unit extents.
type Size struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Bounds returns the bounding rectangle extents of a closed polygon.
// Fewer than three points yields a zero Size.
func Bounds(points []Point) Size {
	if len(points) < 3 {
		return Size{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Size{Length: maxX - minX, Width: maxY - minY}
}
