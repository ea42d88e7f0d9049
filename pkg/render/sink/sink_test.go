package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/render/styles"
	"github.com/tilewright/tilewright/pkg/tiling"
)

func testViewport() projection.Viewport {
	return projection.Viewport{Width: 800, Height: 600, Margin: 20}
}

func testLayout(t *testing.T) *plan.LayoutResult {
	t.Helper()
	placements := tiling.Generate(tiling.Spec{
		RoomLength: 3000, RoomWidth: 2000,
		TileLength: 300, TileWidth: 300,
		GroutWidth: 2,
		Pattern:    plan.PatternGrid,
	})
	if len(placements) == 0 {
		t.Fatal("test layout generated no placements")
	}
	return &plan.LayoutResult{
		Boundary:   []geometry.Point{{X: 0, Y: 0}, {X: 3000, Y: 0}, {X: 3000, Y: 2000}, {X: 0, Y: 2000}},
		Placements: placements,
		RoomLength: 3000,
		RoomWidth:  2000,
		GroutWidth: 2,
		Pattern:    plan.PatternGrid,
	}
}

func TestRenderSVG(t *testing.T) {
	layout := testLayout(t)
	data := RenderSVG(layout, testViewport())
	out := string(data)

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatal("output is not a complete SVG document")
	}
	if got := strings.Count(out, `class="tile"`); got != len(layout.Placements) {
		t.Errorf("tile rects = %d, want %d", got, len(layout.Placements))
	}
	if !strings.Contains(out, `viewBox="0 0 800.0 600.0"`) {
		t.Error("viewBox does not match viewport")
	}
	// Closed room outline present.
	if !strings.Contains(out, "<path") {
		t.Error("boundary path missing")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	layout := testLayout(t)
	a := RenderSVG(layout, testViewport())
	b := RenderSVG(layout, testViewport())
	if !bytes.Equal(a, b) {
		t.Error("repeated rendering differs")
	}
}

func TestRenderSVGStyleAndCaptions(t *testing.T) {
	layout := testLayout(t)
	summary := &plan.QuantitySummary{TotalTiles: 54, RecommendedTiles: 60, WastePercentage: 10}

	out := string(RenderSVG(layout, testViewport(),
		WithStyle(styles.Blueprint{}),
		WithTitle("Kitchen <floor>"),
		WithSummary(summary),
	))

	if !strings.Contains(out, "#16355c") {
		t.Error("blueprint ground color missing")
	}
	if !strings.Contains(out, "Kitchen &lt;floor&gt;") {
		t.Error("title not escaped or missing")
	}
	if !strings.Contains(out, "buy 60") {
		t.Error("summary caption missing")
	}
}

func TestRenderSVGNoBoundary(t *testing.T) {
	layout := &plan.LayoutResult{RoomLength: 1000, RoomWidth: 1000, Pattern: plan.PatternGrid}
	out := string(RenderSVG(layout, testViewport()))

	if strings.Contains(out, "<path") {
		t.Error("boundary rendered for a layout without one")
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Error("empty layout did not produce an SVG shell")
	}
}

func TestRenderJSON(t *testing.T) {
	layout := testLayout(t)
	summary := &plan.QuantitySummary{TotalTiles: 54}

	data, err := RenderJSON(layout, testViewport(),
		WithJSONStyle("simple"),
		WithJSONSummary(summary),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded struct {
		Viewport  projection.Viewport  `json:"viewport"`
		Transform projection.Transform `json:"transform"`
		Style     string               `json:"style"`
		Layout    plan.LayoutResult    `json:"layout"`
		Summary   plan.QuantitySummary `json:"summary"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Style != "simple" {
		t.Errorf("style = %q, want simple", decoded.Style)
	}
	if len(decoded.Layout.Placements) != len(layout.Placements) {
		t.Errorf("placements = %d, want %d", len(decoded.Layout.Placements), len(layout.Placements))
	}
	if decoded.Summary.TotalTiles != 54 {
		t.Errorf("summary tiles = %d, want 54", decoded.Summary.TotalTiles)
	}

	// The recorded transform is the one the SVG sink would use.
	want := projection.NewTransform(layout.RoomLength, layout.RoomWidth, testViewport())
	if decoded.Transform != want {
		t.Errorf("transform = %+v, want %+v", decoded.Transform, want)
	}
}

func TestRenderPNG(t *testing.T) {
	layout := testLayout(t)

	data, err := RenderPNG(layout, testViewport())
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	bounds := img.Bounds()
	// Default 2x scale.
	if bounds.Dx() != 1600 || bounds.Dy() != 1200 {
		t.Errorf("PNG size = %dx%d, want 1600x1200", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGScaleAndPalette(t *testing.T) {
	layout := testLayout(t)

	data, err := RenderPNG(layout, testViewport(), WithPNGScale(1), WithPNGBlueprint())
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 800 {
		t.Errorf("PNG width = %d, want 800", img.Bounds().Dx())
	}
}
