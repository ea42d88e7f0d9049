package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tilewright/tilewright/pkg/geometry"
)

func TestForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "simple", want: "simple"},
		{name: "blueprint", want: "blueprint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ForName(tt.name)
			if s == nil {
				t.Fatalf("ForName(%q) = nil", tt.name)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}

	if s := ForName("gouache"); s != nil {
		t.Errorf("ForName(unknown) = %v, want nil", s)
	}
}

func TestRenderTileCutHatch(t *testing.T) {
	for _, style := range []Style{Simple{}, Blueprint{}} {
		var full, cut bytes.Buffer
		style.RenderTile(&full, Tile{X: 10, Y: 10, W: 30, H: 30})
		style.RenderTile(&cut, Tile{X: 40, Y: 10, W: 20, H: 30, Cut: true})

		if full.String() == cut.String() {
			t.Errorf("%s: cut tile rendered identically to full tile", style.Name())
		}
		if !strings.Contains(cut.String(), "hatch") {
			t.Errorf("%s: cut tile missing hatch fill: %s", style.Name(), cut.String())
		}
	}
}

func TestRenderBoundaryClosedPath(t *testing.T) {
	boundary := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 80}, {X: 0, Y: 80}}

	for _, style := range []Style{Simple{}, Blueprint{}} {
		var buf bytes.Buffer
		style.RenderBoundary(&buf, boundary)
		out := buf.String()
		if !strings.Contains(out, "M0.00 0.00") {
			t.Errorf("%s: path does not start at origin: %s", style.Name(), out)
		}
		if !strings.Contains(out, "Z") {
			t.Errorf("%s: boundary path not closed: %s", style.Name(), out)
		}
	}
}

func TestRenderBoundaryDegenerate(t *testing.T) {
	for _, style := range []Style{Simple{}, Blueprint{}} {
		var buf bytes.Buffer
		style.RenderBoundary(&buf, []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
		if buf.Len() != 0 {
			t.Errorf("%s: rendered a boundary from two points", style.Name())
		}
	}
}
