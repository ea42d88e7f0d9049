package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilewright/tilewright/pkg/pipeline"
	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/projection"
	"github.com/tilewright/tilewright/pkg/quantity"
)

// quoteCommand creates the quote command: materials estimate without files.
func (c *CLI) quoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [manifest]",
		Short: "Estimate tile quantities and cost for a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(args[0])
		},
	}
}

func runQuote(manifestPath string) error {
	manifest, err := plan.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	room := manifest.RoomSpec()
	tile := manifest.TileSpec()
	pattern := manifest.Pattern()

	vp := projection.Viewport{
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
		Margin: pipeline.DefaultMargin,
	}
	layout, _, err := pipeline.ComputeLayout(room, tile, pattern, vp)
	if err != nil {
		return err
	}
	summary, err := pipeline.ComputeSummary(layout, room, tile, pattern)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Material estimate"))
	printNewline()
	printKeyValue("Pattern", string(pattern))
	printKeyValue("Room area", formatSquareMeters(summary.TotalArea))
	printKeyValue("Tiles placed", fmt.Sprintf("%d (%d full, %d cut)",
		summary.TotalTiles, summary.FullTiles, summary.CutTiles))
	printKeyValue("Coverage", fmt.Sprintf("%.0f%%", summary.Coverage*100))
	printKeyValue("Grout area", formatSquareMeters(summary.GroutArea))
	printKeyValue("Waste buffer", fmt.Sprintf("%.0f%%", summary.WastePercentage))
	printKeyValue("Buy", StyleHighlight.Render(fmt.Sprintf("%d tiles", summary.RecommendedTiles)))
	if manifest.Pricing.PerTile > 0 {
		cost := float64(summary.RecommendedTiles) * manifest.Pricing.PerTile
		printKeyValue("Estimated cost", fmt.Sprintf("%.2f", cost))
	}

	if summary.TotalTiles == 0 {
		printNewline()
		printWarning("Nothing to quote: the layout is empty (waste buffer still shown: %.0f%%)",
			quantity.WasteFor(pattern))
	}
	return nil
}

// formatSquareMeters renders a canonical mm² area as m².
func formatSquareMeters(mm2 float64) string {
	return fmt.Sprintf("%.2f m²", mm2/1e6)
}
