package geometry

// Frame is the working coordinate transform shared by the room resolver and
// the tiling engine: a uniform scale followed by an offset. Using one Frame
// for both guarantees tile coordinates line up with the boundary path.
type Frame struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// Identity returns the no-op frame (scale 1, zero offset). Layouts built in
// the identity frame stay in canonical units anchored at the origin.
func Identity() Frame {
	return Frame{Scale: 1}
}

// Apply maps a point through the frame.
func (f Frame) Apply(p Point) Point {
	return Point{
		X: f.OffsetX + p.X*f.Scale,
		Y: f.OffsetY + p.Y*f.Scale,
	}
}

// ApplyRect maps a rectangle through the frame.
func (f Frame) ApplyRect(r Rect) Rect {
	return Rect{
		X:      f.OffsetX + r.X*f.Scale,
		Y:      f.OffsetY + r.Y*f.Scale,
		Width:  r.Width * f.Scale,
		Height: r.Height * f.Scale,
	}
}
