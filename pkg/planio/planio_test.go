package planio

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tilewright/tilewright/pkg/errors"
	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

func sampleLayout() *plan.LayoutResult {
	return &plan.LayoutResult{
		Boundary: []geometry.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 800}, {X: 0, Y: 800}},
		Placements: []plan.TilePlacement{
			{Rect: geometry.Rect{X: 0, Y: 0, Width: 300, Height: 300}, Row: 0, Col: 0},
			{Rect: geometry.Rect{X: 302, Y: 0, Width: 300, Height: 300}, Row: 0, Col: 1},
			{Rect: geometry.Rect{X: 604, Y: 0, Width: 198, Height: 300}, Row: 0, Col: 2, Cut: true},
		},
		RoomLength: 1000,
		RoomWidth:  800,
		GroutWidth: 2,
		Pattern:    plan.PatternBrick,
	}
}

func TestRoundTrip(t *testing.T) {
	want := sampleLayout()

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed layout:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestRoundTripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := sampleLayout()

	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(got.Placements) != len(want.Placements) || got.Pattern != want.Pattern {
		t.Errorf("imported layout differs: %+v", got)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"version": 1,`, errors.ErrCodeInvalidInput},
		{"wrong version", `{"version": 9, "pattern": "grid", "room_length": 10, "room_width": 10, "placements": []}`, errors.ErrCodeUnsupported},
		{"unknown pattern", `{"version": 1, "pattern": "chevron", "room_length": 10, "room_width": 10, "placements": []}`, errors.ErrCodeInvalidPattern},
		{"zero room", `{"version": 1, "pattern": "grid", "room_length": 0, "room_width": 10, "placements": []}`, errors.ErrCodeInvalidInput},
		{"degenerate placement", `{"version": 1, "pattern": "grid", "room_length": 10, "room_width": 10, "placements": [{"x": 0, "y": 0, "width": 0, "height": 5}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadJSON() succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("error code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
