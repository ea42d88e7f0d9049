// Package pkg provides the core libraries for Tilewright tile layout planning.
//
// # Overview
//
// Tilewright turns a room description and a tile choice into a concrete
// placement plan, a material estimate, and rendered floor plans. The pkg
// directory is organized into three main areas:
//
//  1. Domain logic (units, geometry, room resolution, tiling, quantities)
//  2. Infrastructure (caching, sessions, plan serialization)
//  3. Rendering and orchestration (projection, sinks, pipeline)
//
// # Architecture
//
// The typical data flow through Tilewright:
//
//	Plan manifest (TOML)
//	         ↓
//	    [room] package (resolve shape → canonical mm outline)
//	         ↓
//	    [tiling] package (pattern generation → placements)
//	         ↓
//	    [quantity] package (counts, waste, purchase estimate)
//	         ↓
//	    [projection] + [render/sink] (SVG/PNG/JSON output)
//
// # Quick Start
//
// Compute a layout and render it to SVG:
//
//	import (
//	    "github.com/tilewright/tilewright/pkg/pipeline"
//	    "github.com/tilewright/tilewright/pkg/plan"
//	    "github.com/tilewright/tilewright/pkg/projection"
//	    "github.com/tilewright/tilewright/pkg/render/sink"
//	    "github.com/tilewright/tilewright/pkg/units"
//	)
//
//	// 1. Describe the job.
//	room := plan.RoomSpec{
//	    Shape:  plan.ShapeRectangle,
//	    Length: units.Length{Value: 3000, Unit: units.Millimeter},
//	    Width:  units.Length{Value: 2000, Unit: units.Millimeter},
//	}
//	tile := plan.TileSpec{
//	    Length: units.Length{Value: 300, Unit: units.Millimeter},
//	    Width:  units.Length{Value: 300, Unit: units.Millimeter},
//	    Grout:  units.Length{Value: 2, Unit: units.Millimeter},
//	}
//	vp := projection.Viewport{Width: 800, Height: 600, Margin: 20}
//
//	// 2. Compute the layout.
//	layout, _, _ := pipeline.ComputeLayout(room, tile, plan.PatternGrid, vp)
//
//	// 3. Estimate materials.
//	summary, _ := pipeline.ComputeSummary(layout, room, tile, plan.PatternGrid)
//
//	// 4. Render.
//	svg := sink.RenderSVG(layout, vp, sink.WithSummary(&summary))
//
// # Main Packages
//
// ## Domain Logic
//
// [units] - Length unit conversion with millimeters as the canonical unit.
// Supports mm, cm, m, in, and ft.
//
// [geometry] - Planar primitives (points, rectangles, transforms) shared by
// room resolution, tiling, and rendering.
//
// [plan] - The job description types: room, tile, and pattern specs, the TOML
// manifest loader, and the layout/summary result types.
//
// [room] - Shape resolution. Turns a room spec (rectangle, square, l-shape,
// or custom boundary) into a canonical millimeter outline.
//
// [tiling] - Pattern generation. Places tiles over the room's bounding
// rectangle in grid, brick, or herringbone arrangements, clipping cut tiles
// at the edges.
//
// [quantity] - Material estimation: full/cut tile counts, coverage and grout
// area, pattern-dependent waste buffers, and the purchase recommendation.
//
// ## Infrastructure
//
// [cache] - Cache backends for layouts and rendered artifacts. FileCache for
// local use, RedisCache for shared environments, NullCache for opting out.
//
// [session] - Wizard session persistence so the next run can prefill the
// previous answers. File-backed by default, MongoDB for shared setups.
//
// [planio] - JSON import/export of computed layouts, also used as the cache
// serialization format.
//
// ## Rendering and Orchestration
//
// [projection] - Maps canonical millimeter coordinates into viewport pixels
// with uniform scaling and margins.
//
// [render/sink] - Output formats (SVG, PNG, JSON).
//
// [render/styles] - Visual styles (simple, blueprint).
//
// [pipeline] - The complete planning pipeline (resolve → layout → render)
// used by the CLI. Ensures consistent behavior across entry points and wires
// in caching.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tiling/...   # Specific package
//
// [units]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/units
// [geometry]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/geometry
// [plan]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/plan
// [room]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/room
// [tiling]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/tiling
// [quantity]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/quantity
// [cache]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/cache
// [session]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/session
// [planio]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/planio
// [projection]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/projection
// [render/sink]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/tilewright/tilewright/pkg/pipeline
package pkg
