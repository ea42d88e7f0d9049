package sink

import (
	"encoding/json"

	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	summary *plan.QuantitySummary
}

// WithJSONStyle records the style name in the output for round-trip
// rendering by other tools.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSummary embeds the quantity summary in the output.
func WithJSONSummary(s *plan.QuantitySummary) JSONOption {
	return func(r *jsonRenderer) { r.summary = s }
}

type jsonOutput struct {
	Viewport  projection.Viewport   `json:"viewport"`
	Transform projection.Transform  `json:"transform"`
	Style     string                `json:"style,omitempty"`
	Layout    *plan.LayoutResult    `json:"layout"`
	Summary   *plan.QuantitySummary `json:"summary,omitempty"`
}

// RenderJSON exports the canonical layout together with the transform that
// maps it into the viewport. Consumers can either use the canonical
// geometry directly or apply the recorded transform for pixel-space
// rendering; shipping both keeps the scale factor single-sourced.
func RenderJSON(l *plan.LayoutResult, vp projection.Viewport, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Viewport:  vp,
		Transform: projection.NewTransform(l.RoomLength, l.RoomWidth, vp),
		Style:     r.style,
		Layout:    l,
		Summary:   r.summary,
	}
	return json.MarshalIndent(out, "", "  ")
}
