// Package sink renders computed tile layouts into output formats.
//
// Each sink consumes a canonical-unit LayoutResult plus a viewport and
// derives a single projection transform for the whole pass; no sink may
// rescale individual elements. SVG is the primary format, JSON exposes the
// projected geometry for other tools, and PNG rasterizes the plan for
// embedding where SVG is inconvenient.
package sink
