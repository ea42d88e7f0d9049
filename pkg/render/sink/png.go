package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
)

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale     float64
	blueprint bool
}

// WithPNGScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBlueprint switches the raster palette to the blueprint look.
func WithPNGBlueprint() PNGOption {
	return func(r *pngRenderer) { r.blueprint = true }
}

// pngPalette mirrors the SVG styles for the raster path.
type pngPalette struct {
	background string
	roomFill   string
	roomStroke string
	tileFill   string
	cutFill    string
	tileStroke string
	fillRoom   bool
	fillTiles  bool
}

var simplePalette = pngPalette{
	background: "#ffffff",
	roomFill:   "#faf6ef",
	roomStroke: "#3a3a3a",
	tileFill:   "#e8dcc8",
	cutFill:    "#f4e9d8",
	tileStroke: "#b09a78",
	fillRoom:   true,
	fillTiles:  true,
}

var blueprintPalette = pngPalette{
	background: "#16355c",
	roomStroke: "#e8f1ff",
	cutFill:    "#2c4d7a",
	tileStroke: "#9db9de",
}

// RenderPNG rasterizes the layout directly with gg rather than converting
// the SVG, so the CLI keeps no external tool dependency. The same single
// viewport transform applies to every element.
func RenderPNG(l *plan.LayoutResult, vp projection.Viewport, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	pal := simplePalette
	if r.blueprint {
		pal = blueprintPalette
	}

	dc := gg.NewContext(int(vp.Width*r.scale), int(vp.Height*r.scale))
	dc.Scale(r.scale, r.scale)

	dc.SetHexColor(pal.background)
	dc.Clear()

	tr := projection.NewTransform(l.RoomLength, l.RoomWidth, vp)

	if len(l.Boundary) >= 3 {
		dc.NewSubPath()
		for i, p := range l.Boundary {
			pt := tr.Point(p)
			if i == 0 {
				dc.MoveTo(pt.X, pt.Y)
			} else {
				dc.LineTo(pt.X, pt.Y)
			}
		}
		dc.ClosePath()
		if pal.fillRoom {
			dc.SetHexColor(pal.roomFill)
			dc.FillPreserve()
		}
		dc.SetHexColor(pal.roomStroke)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	for _, p := range l.Placements {
		pr := tr.Rect(p.Rect)
		dc.DrawRectangle(pr.X, pr.Y, pr.Width, pr.Height)
		switch {
		case p.Cut:
			dc.SetHexColor(pal.cutFill)
			dc.FillPreserve()
		case pal.fillTiles:
			dc.SetHexColor(pal.tileFill)
			dc.FillPreserve()
		}
		dc.SetHexColor(pal.tileStroke)
		dc.SetLineWidth(0.75)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
