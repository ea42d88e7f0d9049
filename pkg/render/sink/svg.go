package sink

import (
	"bytes"
	"fmt"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/render/styles"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style   styles.Style
	title   string
	summary *plan.QuantitySummary
}

// WithStyle selects the visual style; the default is styles.Simple.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle draws a title caption above the plan.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithSummary draws a quantity caption (tile counts and waste buffer) below
// the plan.
func WithSummary(s *plan.QuantitySummary) SVGOption {
	return func(r *svgRenderer) { r.summary = s }
}

// RenderSVG renders a canonical-unit layout into the viewport as SVG.
//
// One transform is computed for the pass and applied to the boundary and
// every placement. A layout without a boundary (no preview available)
// produces just the empty ground, which callers may still write out.
func RenderSVG(l *plan.LayoutResult, vp projection.Viewport, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	tr := projection.NewTransform(l.RoomLength, l.RoomWidth, vp)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.Width, vp.Height, vp.Width, vp.Height)

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, vp.Width, vp.Height)

	if len(l.Boundary) >= 3 {
		boundary := make([]geometry.Point, len(l.Boundary))
		for i, p := range l.Boundary {
			boundary[i] = tr.Point(p)
		}
		r.style.RenderBoundary(&buf, boundary)
	}

	for _, p := range l.Placements {
		pr := tr.Rect(p.Rect)
		r.style.RenderTile(&buf, styles.Tile{
			Row: p.Row, Col: p.Col,
			X: pr.X, Y: pr.Y, W: pr.Width, H: pr.Height,
			Cut: p.Cut,
		})
	}

	if r.title != "" {
		fmt.Fprintf(&buf, `<text x="%.1f" y="18" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#555">%s</text>`+"\n",
			vp.Width/2, escapeText(r.title))
	}
	if r.summary != nil {
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#777">%d tiles (%d cut), buy %d (+%.0f%% waste)</text>`+"\n",
			vp.Width/2, vp.Height-8,
			r.summary.TotalTiles, r.summary.CutTiles, r.summary.RecommendedTiles, r.summary.WastePercentage)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// escapeText replaces the XML-significant characters in caption text.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
