package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilewright/tilewright/pkg/pipeline"
	"github.com/tilewright/tilewright/pkg/plan"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	output  string   // output file path (single format) or base path (multiple)
	formats []string // output formats: "svg", "png", "json"
	style   string   // visual style: "simple" or "blueprint"
	title   string   // caption rendered above the plan
	width   float64  // viewport width in pixels
	height  float64  // viewport height in pixels
	noCache bool     // disable the artifact cache entirely
	refresh bool     // recompute even when a cached result exists
}

// planCommand creates the plan command: manifest in, rendered plan out.
func (c *CLI) planCommand() *cobra.Command {
	var formatsStr string
	opts := planOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		style:  pipeline.DefaultStyle,
	}

	cmd := &cobra.Command{
		Use:   "plan [manifest]",
		Short: "Compute a tile layout plan from a manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			return c.runPlan(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: simple (default), blueprint")
	cmd.Flags().StringVar(&opts.title, "title", "", "caption rendered above the plan")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "viewport width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "viewport height")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, manifestPath string, opts *planOpts) error {
	ctx := cmd.Context()

	manifest, err := plan.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	track := newProgress(c.Logger)
	spin := newSpinner(ctx, "computing plan")
	spin.start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Room:         manifest.RoomSpec(),
		Tile:         manifest.TileSpec(),
		Pattern:      manifest.Pattern(),
		Width:        opts.width,
		Height:       opts.height,
		Formats:      opts.formats,
		Style:        opts.style,
		Title:        opts.title,
		PricePerTile: manifest.Pricing.PerTile,
		Refresh:      opts.refresh,
		Logger:       c.Logger,
	})
	spin.stop()
	if spin.cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Placed %d tiles", result.Stats.PlacementCount))

	if len(result.Layout.Placements) == 0 {
		printWarning("No tiles fit this room; check the manifest dimensions")
	}

	paths, err := writeArtifacts(manifestPath, opts.output, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Plan ready")
	printStats(result.Stats.PlacementCount, result.Stats.CutCount, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	printNewline()
	printNextStep("Material estimate", "tilewright quote "+manifestPath)
	return nil
}

// writeArtifacts writes each rendered format next to the manifest (or to
// the explicit output path) and returns the written paths.
func writeArtifacts(manifestPath, output string, artifacts map[string][]byte) ([]string, error) {
	base := output
	if base == "" {
		base = strings.TrimSuffix(manifestPath, filepath.Ext(manifestPath))
	}

	paths := make([]string, 0, len(artifacts))
	for _, format := range []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatJSON} {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base
		if len(artifacts) > 1 || output == "" || filepath.Ext(output) == "" {
			path = strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
