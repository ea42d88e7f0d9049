// Package quantity derives material requirements from a tile layout.
//
// Every summary is recomputed from scratch on each call; there is no
// incremental or memoized state. The waste percentage is a purchasing
// policy, not geometry — see WasteFor.
package quantity

import (
	"math"

	"github.com/tilewright/tilewright/pkg/geometry"
	"github.com/tilewright/tilewright/pkg/plan"
)

// wasteByPattern is the recommended purchase buffer per pattern, in percent.
//
// These are policy constants, deliberately decoupled from the geometric cut
// count in the placement list: trade guidance prices whole tiles by pattern
// difficulty, not by how a particular room happened to slice. Deriving waste
// from CutTiles would change user-facing numbers, so any reconciliation
// needs a product decision first.
var wasteByPattern = map[plan.Pattern]float64{
	plan.PatternGrid:        10,
	plan.PatternBrick:       15,
	plan.PatternHerringbone: 20,
}

// defaultWaste applies when the pattern is not in the table.
const defaultWaste = 10

// WasteFor returns the purchase-buffer percentage for a pattern.
func WasteFor(p plan.Pattern) float64 {
	if w, ok := wasteByPattern[p]; ok {
		return w
	}
	return defaultWaste
}

// Options carries the optional inputs of Summarize.
type Options struct {
	// PricePerTile enables the cost estimate when positive.
	PricePerTile float64
}

// Summarize aggregates a layout into a QuantitySummary.
//
// tileArea is the nominal (uncut) tile area in canonical units; it is the
// denominator for purchase math because cut tiles still consume whole
// tiles of material. roomArea is the room's area in canonical units.
// A layout with no placements yields zero counts and areas, but the waste
// percentage still reports the pattern constant so the caller can render a
// meaningful "no preview" quote.
func Summarize(layout *plan.LayoutResult, tileArea, roomArea float64, opts Options) plan.QuantitySummary {
	summary := plan.QuantitySummary{
		TotalArea:       math.Max(roomArea, 0),
		TileArea:        math.Max(tileArea, 0),
		WastePercentage: WasteFor(layout.Pattern),
	}

	var covered float64
	for _, p := range layout.Placements {
		summary.TotalTiles++
		if p.Cut {
			summary.CutTiles++
		} else {
			summary.FullTiles++
		}
		covered += p.Area()
	}

	if summary.TotalArea > 0 {
		summary.Coverage = clamp01(covered / summary.TotalArea)
	}

	// Grout area approximates the gap material: room area minus the
	// nominal areas of all placed tiles. Not an exact polygon subtraction.
	if nominal := float64(summary.TotalTiles) * summary.TileArea; summary.TotalArea > nominal {
		summary.GroutArea = summary.TotalArea - nominal
	}

	summary.RecommendedTiles = recommendPurchase(summary.TotalTiles, summary.WastePercentage)
	if opts.PricePerTile > 0 {
		summary.EstimatedCost = float64(summary.RecommendedTiles) * opts.PricePerTile
	}
	return summary
}

// recommendPurchase applies the waste buffer to the placed tile count and
// rounds up, never recommending fewer tiles than the layout needs.
func recommendPurchase(total int, wastePct float64) int {
	if total <= 0 {
		return 0
	}
	recommended := int(math.Ceil(float64(total) * (1 + wastePct/100)))
	if recommended < total {
		recommended = total
	}
	return recommended
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// TileAreaFromSpec is a convenience for callers holding canonical tile
// extents rather than a precomputed area.
func TileAreaFromSpec(tileLength, tileWidth float64) float64 {
	return geometry.Area(tileLength, tileWidth)
}
