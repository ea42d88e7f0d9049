package planio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// formatVersion guards documents against silent format drift. Imports
// accept only this version.
const formatVersion = 1

type document struct {
	Version    int              `json:"version"`
	Pattern    string           `json:"pattern"`
	RoomLength float64          `json:"room_length"`
	RoomWidth  float64          `json:"room_width"`
	GroutWidth float64          `json:"grout_width"`
	Boundary   []geometry.Point `json:"boundary,omitempty"`
	Placements []placement      `json:"placements"`
}

type placement struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Cut    bool    `json:"cut,omitempty"`
}

// WriteJSON encodes a layout as JSON and writes it to w.
// The output preserves every placement with its grid position and cut flag,
// so the document can be re-imported with [ReadJSON] for round-trip use.
func WriteJSON(l *plan.LayoutResult, w io.Writer) error {
	out := document{
		Version:    formatVersion,
		Pattern:    string(l.Pattern),
		RoomLength: l.RoomLength,
		RoomWidth:  l.RoomWidth,
		GroutWidth: l.GroutWidth,
		Boundary:   l.Boundary,
		Placements: make([]placement, len(l.Placements)),
	}
	for i, p := range l.Placements {
		out.Placements[i] = placement{
			X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
			Row: p.Row, Col: p.Col, Cut: p.Cut,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a layout to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(l *plan.LayoutResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(l, f)
}
