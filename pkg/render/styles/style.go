// Package styles defines the visual appearance of plan rendering.
//
// A Style controls how the room boundary, tiles, and grout are drawn; the
// sinks in pkg/render/sink stay format-plumbing only. Two styles ship:
// Simple (neutral fills, hatched cut tiles) and Blueprint (drawing-office
// look with a dark ground and light line work).
package styles

import (
	"bytes"
	"fmt"

	"github.com/tilewright/tilewright/pkg/geometry"
)

// Tile contains all data needed to render a single placed tile.
type Tile struct {
	Row, Col   int
	X, Y, W, H float64
	Cut        bool
}

// Style defines the visual appearance for plan rendering.
type Style interface {
	// Name identifies the style in CLI flags and JSON exports.
	Name() string
	// RenderDefs writes SVG <defs> content (hatch patterns, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the drawing ground behind the room.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderBoundary writes the closed room outline.
	RenderBoundary(buf *bytes.Buffer, boundary []geometry.Point)
	// RenderTile writes a single tile rectangle.
	RenderTile(buf *bytes.Buffer, t Tile)
}

// ForName returns the style registered under name, or nil when unknown.
func ForName(name string) Style {
	switch name {
	case "simple":
		return Simple{}
	case "blueprint":
		return Blueprint{}
	}
	return nil
}

// Names lists the available style names.
func Names() []string { return []string{"simple", "blueprint"} }

// polygonPath builds the SVG path data for a closed polygon.
func polygonPath(points []geometry.Point) string {
	var buf bytes.Buffer
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&buf, "%s%.2f %.2f ", cmd, p.X, p.Y)
	}
	buf.WriteString("Z")
	return buf.String()
}

// Simple is the default plain style: white ground, light tile fills, and a
// diagonal hatch on cut tiles.
type Simple struct{}

// Name implements Style.
func (Simple) Name() string { return "simple" }

// RenderDefs implements Style.
func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`<defs>
<pattern id="cut-hatch" width="6" height="6" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">
<rect width="6" height="6" fill="#f4e9d8"/>
<line x1="0" y1="0" x2="0" y2="6" stroke="#c9a36a" stroke-width="2"/>
</pattern>
</defs>
`)
}

// RenderBackground implements Style.
func (Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `<rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", width, height)
}

// RenderBoundary implements Style.
func (Simple) RenderBoundary(buf *bytes.Buffer, boundary []geometry.Point) {
	if len(boundary) < 3 {
		return
	}
	fmt.Fprintf(buf, `<path d="%s" fill="#faf6ef" stroke="#3a3a3a" stroke-width="2"/>`+"\n",
		polygonPath(boundary))
}

// RenderTile implements Style.
func (Simple) RenderTile(buf *bytes.Buffer, t Tile) {
	fill := "#e8dcc8"
	if t.Cut {
		fill = "url(#cut-hatch)"
	}
	fmt.Fprintf(buf,
		`<rect class="tile" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#b09a78" stroke-width="0.5"/>`+"\n",
		t.X, t.Y, t.W, t.H, fill)
}

// Ensure Simple implements Style.
var _ Style = Simple{}

// Blueprint renders white line work on a blueprint-blue ground; cut tiles
// are cross-hatched instead of filled.
type Blueprint struct{}

// Name implements Style.
func (Blueprint) Name() string { return "blueprint" }

// RenderDefs implements Style.
func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`<defs>
<pattern id="bp-cut-hatch" width="5" height="5" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">
<line x1="0" y1="0" x2="0" y2="5" stroke="#cfe3ff" stroke-width="1"/>
</pattern>
</defs>
`)
}

// RenderBackground implements Style.
func (Blueprint) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `<rect width="%.1f" height="%.1f" fill="#16355c"/>`+"\n", width, height)
}

// RenderBoundary implements Style.
func (Blueprint) RenderBoundary(buf *bytes.Buffer, boundary []geometry.Point) {
	if len(boundary) < 3 {
		return
	}
	fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="#e8f1ff" stroke-width="2.5"/>`+"\n",
		polygonPath(boundary))
}

// RenderTile implements Style.
func (Blueprint) RenderTile(buf *bytes.Buffer, t Tile) {
	fill := "none"
	if t.Cut {
		fill = "url(#bp-cut-hatch)"
	}
	fmt.Fprintf(buf,
		`<rect class="tile" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#9db9de" stroke-width="0.75"/>`+"\n",
		t.X, t.Y, t.W, t.H, fill)
}

// Ensure Blueprint implements Style.
var _ Style = Blueprint{}
