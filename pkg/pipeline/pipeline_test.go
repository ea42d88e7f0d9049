package pipeline

import (
	"context"
	"testing"

	"github.com/tilewright/tilewright/pkg/cache"
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/units"
)

func mm(v float64) units.Length {
	return units.Length{Value: v, Unit: units.Millimeter}
}

func referenceOptions() Options {
	return Options{
		Room: plan.RoomSpec{
			Shape:  plan.ShapeRectangle,
			Length: mm(3000),
			Width:  mm(2000),
		},
		Tile: plan.TileSpec{
			Length: mm(300),
			Width:  mm(300),
			Grout:  mm(2),
		},
		Pattern: plan.PatternGrid,
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"blueprint", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := referenceOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight || opts.Margin != DefaultMargin {
		t.Errorf("viewport defaults not applied: %+v", opts.Viewport())
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("style = %q, want %q", opts.Style, DefaultStyle)
	}
}

func TestOptionsValidateRejectsBadPattern(t *testing.T) {
	opts := referenceOptions()
	opts.Pattern = "chevron"
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("unknown pattern should fail validation")
	}
}

func TestComputeLayout(t *testing.T) {
	opts := referenceOptions()
	vp := projection.Viewport{Width: 800, Height: 600, Margin: 20}

	layout, tr, err := ComputeLayout(opts.Room, opts.Tile, opts.Pattern, vp)
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	if len(layout.Placements) != 54 {
		t.Errorf("placements = %d, want 54", len(layout.Placements))
	}
	if layout.RoomLength != 3000 || layout.RoomWidth != 2000 {
		t.Errorf("room extents = %gx%g, want 3000x2000", layout.RoomLength, layout.RoomWidth)
	}
	if len(layout.Boundary) != 4 {
		t.Errorf("boundary points = %d, want 4", len(layout.Boundary))
	}

	// 760/3000 binds before 560/2000.
	wantScale := 760.0 / 3000.0
	if tr.Scale != wantScale {
		t.Errorf("scale = %g, want %g", tr.Scale, wantScale)
	}
}

func TestComputeLayoutConvertsUnits(t *testing.T) {
	opts := referenceOptions()
	opts.Room.Length = units.Length{Value: 3, Unit: units.Meter}
	opts.Room.Width = units.Length{Value: 200, Unit: units.Centimeter}

	layout, _, err := ComputeLayout(opts.Room, opts.Tile, opts.Pattern, projection.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if layout.RoomLength != 3000 || layout.RoomWidth != 2000 {
		t.Errorf("room extents = %gx%g, want canonical 3000x2000", layout.RoomLength, layout.RoomWidth)
	}
	if len(layout.Placements) != 54 {
		t.Errorf("placements = %d, want 54", len(layout.Placements))
	}
}

func TestComputeLayoutInvalidUnit(t *testing.T) {
	opts := referenceOptions()
	opts.Room.Length = units.Length{Value: 3000, Unit: "furlong"}

	if _, _, err := ComputeLayout(opts.Room, opts.Tile, opts.Pattern, projection.Viewport{}); err == nil {
		t.Error("unknown unit should surface an error, not default")
	}
}

func TestComputeLayoutDegenerate(t *testing.T) {
	opts := referenceOptions()
	opts.Tile.Length = mm(0)

	layout, _, err := ComputeLayout(opts.Room, opts.Tile, opts.Pattern, projection.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("degenerate tile should not error: %v", err)
	}
	if len(layout.Placements) != 0 {
		t.Errorf("placements = %d, want 0", len(layout.Placements))
	}
}

func TestComputeLayoutCustomBoundary(t *testing.T) {
	room := plan.RoomSpec{
		Shape:  plan.ShapeCustom,
		Length: units.Length{Value: 0, Unit: units.Meter},
		Width:  units.Length{Value: 0, Unit: units.Meter},
		Boundary: []geometry.Point{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1.5}, {X: 0, Y: 1.5},
		},
	}

	layout, _, err := ComputeLayout(room, referenceOptions().Tile, plan.PatternGrid, projection.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	// Extents come from the boundary's bounding rectangle: 2m x 1.5m.
	if layout.RoomLength != 2000 || layout.RoomWidth != 1500 {
		t.Errorf("room extents = %gx%g, want 2000x1500", layout.RoomLength, layout.RoomWidth)
	}
	if len(layout.Boundary) != 4 {
		t.Errorf("boundary points = %d, want 4", len(layout.Boundary))
	}
}

func TestComputeSummary(t *testing.T) {
	opts := referenceOptions()
	layout, _, err := ComputeLayout(opts.Room, opts.Tile, opts.Pattern, projection.Viewport{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	summary, err := ComputeSummary(layout, opts.Room, opts.Tile, opts.Pattern)
	if err != nil {
		t.Fatalf("ComputeSummary() error = %v", err)
	}

	if summary.TotalTiles != 54 || summary.CutTiles != 0 {
		t.Errorf("tiles = %d (%d cut), want 54 (0 cut)", summary.TotalTiles, summary.CutTiles)
	}
	if summary.TotalArea != 6e6 {
		t.Errorf("total area = %g, want 6e6", summary.TotalArea)
	}
	if summary.WastePercentage != 10 {
		t.Errorf("waste = %g, want 10", summary.WastePercentage)
	}
	if summary.RecommendedTiles != 60 {
		t.Errorf("recommended = %d, want 60", summary.RecommendedTiles)
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil) // null cache
	opts := referenceOptions()
	opts.Formats = []string{FormatSVG, FormatJSON}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.PlacementCount != 54 {
		t.Errorf("placements = %d, want 54", result.Stats.PlacementCount)
	}
	if result.Summary.TotalTiles != 54 {
		t.Errorf("summary tiles = %d, want 54", result.Summary.TotalTiles)
	}
	for _, format := range opts.Formats {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("no %s artifact produced", format)
		}
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never report hits")
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := referenceOptions()
	ctx := context.Background()

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should miss the layout cache")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit both caches: %+v", second.CacheInfo)
	}
	if string(second.Artifacts[FormatSVG]) != string(first.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses reads.
	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute() error = %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("refresh run should not report a layout cache hit")
	}
}
