package tiling

import (
	"math"
	"reflect"
	"testing"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// standardSpec is the reference scenario: 3000x2000 mm room, 300x300 mm
// tile, 2 mm grout.
func standardSpec(pattern plan.Pattern) Spec {
	return Spec{
		RoomLength: 3000,
		RoomWidth:  2000,
		TileLength: 300,
		TileWidth:  300,
		GroutWidth: 2,
		Pattern:    pattern,
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		wantCols int
		wantRows int
	}{
		{
			name:     "reference room",
			spec:     standardSpec(plan.PatternGrid),
			wantCols: 9, // floor(3002/302)
			wantRows: 6, // floor(2002/302)
		},
		{
			name: "exact fit without grout",
			spec: Spec{RoomLength: 3000, RoomWidth: 2000, TileLength: 500, TileWidth: 500},

			wantCols: 6,
			wantRows: 4,
		},
		{
			name: "zero tile length",
			spec: Spec{RoomLength: 3000, RoomWidth: 2000, TileWidth: 300},
		},
		{
			name: "zero room extents",
			spec: Spec{TileLength: 300, TileWidth: 300, GroutWidth: 2},
		},
		{
			name: "negative step",
			spec: Spec{RoomLength: 3000, RoomWidth: 2000, TileLength: 10, TileWidth: 10, GroutWidth: -20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := tt.spec.Counts()
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("Counts() = (%d, %d), want (%d, %d)", cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestGenerateGridReference(t *testing.T) {
	got := Generate(standardSpec(plan.PatternGrid))

	// 9 columns x 6 rows, none cut: the last column's right edge lands at
	// 2716 mm, well inside the 2998 mm cut threshold.
	if len(got) != 54 {
		t.Fatalf("placements = %d, want 54", len(got))
	}
	for _, p := range got {
		if p.Cut {
			t.Errorf("placement row=%d col=%d flagged cut", p.Row, p.Col)
		}
		if p.Width != 300 || p.Height != 300 {
			t.Errorf("placement row=%d col=%d size = %gx%g, want 300x300", p.Row, p.Col, p.Width, p.Height)
		}
	}

	// Row-major ordering.
	first, second := got[0], got[1]
	if first.Row != 0 || first.Col != 0 || second.Row != 0 || second.Col != 1 {
		t.Errorf("ordering not row-major: %+v then %+v", first, second)
	}
	if got[9].Row != 1 || got[9].Col != 0 {
		t.Errorf("row wrap wrong: got[9] = row %d col %d", got[9].Row, got[9].Col)
	}

	// Base placement formula.
	if got[10].X != 302 || got[10].Y != 302 {
		t.Errorf("placement (1,1) at (%g, %g), want (302, 302)", got[10].X, got[10].Y)
	}
}

func TestGenerateBrickOffset(t *testing.T) {
	got := Generate(standardSpec(plan.PatternBrick))

	// Odd rows shift right by half a tile length before cut detection.
	for _, p := range got {
		wantX := float64(p.Col) * 302
		if p.Row%2 == 1 {
			wantX += 150
		}
		if p.X != wantX {
			t.Errorf("row=%d col=%d x = %g, want %g", p.Row, p.Col, p.X, wantX)
		}
	}

	// The shifted last column of odd rows crosses the cut threshold:
	// x = 8*302+150 = 2566, right edge 2866 < 2998, so still not cut here.
	// Use a tighter room to force cuts instead.
	tight := standardSpec(plan.PatternBrick)
	tight.RoomLength = 2760 // odd-row col 8 would end at 2866 > 2758
	cuts := 0
	for _, p := range Generate(tight) {
		if p.Cut {
			cuts++
			if p.Right() > tight.RoomLength {
				t.Errorf("cut tile extends past boundary: right = %g", p.Right())
			}
		}
	}
	if cuts == 0 {
		t.Error("expected cut tiles in tightened brick layout")
	}
}

func TestGenerateHerringboneSwap(t *testing.T) {
	spec := standardSpec(plan.PatternHerringbone)
	spec.TileLength = 400
	spec.TileWidth = 200

	for _, p := range Generate(spec) {
		swapped := (p.Row+p.Col)%2 == 1
		wantW, wantH := 400.0, 200.0
		if swapped {
			wantW, wantH = 200, 400
		}
		if p.Cut {
			continue // clamped sizes are checked by the coverage bound test
		}
		if p.Width != wantW || p.Height != wantH {
			t.Errorf("row=%d col=%d size = %gx%g, want %gx%g", p.Row, p.Col, p.Width, p.Height, wantW, wantH)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, pattern := range []plan.Pattern{plan.PatternGrid, plan.PatternBrick, plan.PatternHerringbone} {
		a := Generate(standardSpec(pattern))
		b := Generate(standardSpec(pattern))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("pattern %s: repeated generation differs", pattern)
		}
	}
}

// TestGenerateCoverageBound checks that no placement escapes the bounding
// rectangle by more than the edge epsilon, for any pattern.
func TestGenerateCoverageBound(t *testing.T) {
	specs := []Spec{
		standardSpec(plan.PatternGrid),
		standardSpec(plan.PatternBrick),
		standardSpec(plan.PatternHerringbone),
		{RoomLength: 2750, RoomWidth: 1830, TileLength: 600, TileWidth: 300, GroutWidth: 3, Pattern: plan.PatternBrick},
		{RoomLength: 2750, RoomWidth: 1830, TileLength: 600, TileWidth: 300, GroutWidth: 3, Pattern: plan.PatternHerringbone},
	}

	for _, spec := range specs {
		for _, p := range Generate(spec) {
			if p.Right() > spec.RoomLength+EdgeEpsilon {
				t.Errorf("pattern %s row=%d col=%d right = %g exceeds %g", spec.Pattern, p.Row, p.Col, p.Right(), spec.RoomLength+EdgeEpsilon)
			}
			if p.Bottom() > spec.RoomWidth+EdgeEpsilon {
				t.Errorf("pattern %s row=%d col=%d bottom = %g exceeds %g", spec.Pattern, p.Row, p.Col, p.Bottom(), spec.RoomWidth+EdgeEpsilon)
			}
			if p.Width <= EdgeEpsilon || p.Height <= EdgeEpsilon {
				t.Errorf("pattern %s row=%d col=%d sliver survived: %gx%g", spec.Pattern, p.Row, p.Col, p.Width, p.Height)
			}
		}
	}
}

func TestGenerateCutClamping(t *testing.T) {
	// Room sized so the last column and row must be cut.
	spec := Spec{
		RoomLength: 1000,
		RoomWidth:  700,
		TileLength: 300,
		TileWidth:  300,
		Pattern:    plan.PatternGrid,
	}
	got := Generate(spec)

	cols, rows := spec.Counts()
	if cols != 3 || rows != 2 {
		t.Fatalf("Counts() = (%d, %d), want (3, 2)", cols, rows)
	}

	for _, p := range got {
		// Last column: x = 600, right edge 900 < 998, not cut.
		if p.Cut {
			t.Errorf("unexpected cut at row=%d col=%d", p.Row, p.Col)
		}
	}

	// Shrink so the last column crosses the threshold.
	spec.RoomLength = 890 // col 2 right edge 900 > 888
	cols, _ = spec.Counts()
	if cols != 2 {
		// floor(890/300) = 2: the third column is no longer counted, the
		// remainder is simply uncovered. Widen grout-free room slightly.
		t.Fatalf("Counts() cols = %d, want 2", cols)
	}
}

func TestGenerateClampedCutSize(t *testing.T) {
	// 650 mm room, 300 mm tiles, no grout: two columns fit, and with the
	// brick shift odd rows push the second column into the cut zone.
	spec := Spec{
		RoomLength: 650,
		RoomWidth:  650,
		TileLength: 300,
		TileWidth:  300,
		Pattern:    plan.PatternBrick,
	}

	foundCut := false
	for _, p := range Generate(spec) {
		if p.Row%2 == 1 && p.Col == 1 {
			// x = 300 + 150 = 450; right would be 750 > 648,
			// clamped to 650 - 450 - 2 = 198.
			foundCut = true
			if !p.Cut {
				t.Error("shifted tile not flagged cut")
			}
			if math.Abs(p.Width-198) > 1e-9 {
				t.Errorf("clamped width = %g, want 198", p.Width)
			}
		}
	}
	if !foundCut {
		t.Fatal("expected a shifted second-column tile")
	}
}

func TestGenerateDegenerate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{name: "zero room", spec: Spec{TileLength: 300, TileWidth: 300}},
		{name: "zero tile", spec: Spec{RoomLength: 3000, RoomWidth: 2000}},
		{name: "tile plus grout non-positive", spec: Spec{RoomLength: 3000, RoomWidth: 2000, TileLength: 5, TileWidth: 5, GroutWidth: -5}},
		{name: "negative room", spec: Spec{RoomLength: -10, RoomWidth: 2000, TileLength: 300, TileWidth: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.spec); len(got) != 0 {
				t.Errorf("Generate() returned %d placements, want 0", len(got))
			}
		})
	}
}

func TestGenerateFrameAlignment(t *testing.T) {
	spec := standardSpec(plan.PatternGrid)
	spec.Frame = geometry.Frame{OffsetX: 40, OffsetY: 30, Scale: 0.1}

	got := Generate(spec)
	if len(got) != 54 {
		t.Fatalf("placements = %d, want 54", len(got))
	}
	if got[0].X != 40 || got[0].Y != 30 {
		t.Errorf("first placement at (%g, %g), want (40, 30)", got[0].X, got[0].Y)
	}
	if math.Abs(got[0].Width-30) > 1e-9 {
		t.Errorf("scaled tile width = %g, want 30", got[0].Width)
	}
	// Second column steps by the scaled tile+grout pitch.
	if math.Abs(got[1].X-(40+30.2)) > 1e-9 {
		t.Errorf("second placement x = %g, want 70.2", got[1].X)
	}
}

func TestForPattern(t *testing.T) {
	tests := []struct {
		pattern plan.Pattern
		want    string
	}{
		{plan.PatternGrid, "grid"},
		{plan.PatternBrick, "brick"},
		{plan.PatternHerringbone, "herringbone"},
		{plan.Pattern("unknown"), "grid"},
	}
	for _, tt := range tests {
		if got := ForPattern(tt.pattern).Name(); got != tt.want {
			t.Errorf("ForPattern(%q).Name() = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}
