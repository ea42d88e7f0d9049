// Package planio provides JSON import and export for computed layouts.
//
// The format captures a [plan.LayoutResult] in canonical millimetres so a
// layout computed once can be cached on disk, shipped to another tool, or
// re-rendered later without running the tiling pass again. Exports round-trip:
// import a layout, render it, export it, and re-import identically.
//
// Use [ExportJSON]/[ImportJSON] for file paths and [WriteJSON]/[ReadJSON]
// for arbitrary readers and writers. Import validates the document (known
// pattern, positive room extents, well-formed placements) and returns coded
// errors from the errors package.
//
// [plan.LayoutResult]: github.com/tilewright/tilewright/pkg/plan.LayoutResult
package planio
