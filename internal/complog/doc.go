// Package complog renders composite well-log charts and interprets pointer
// gestures on them.
//
// # Overview
//
// A composite log is a set of vertical tracks sharing one depth axis:
// formation bands, a depth ruler, lithology fill patterns, continuous and
// discrete curve traces, interpretation bands, stacked mineral bars and
// free-text annotations. The caller owns a CompositeLogConfig (what to draw)
// and a CompositeLogData (the samples) and lends both to a Renderer and a
// Controller bound to the same Surface.
//
// # Components
//
//   - model.go: chart description, sample data and the missing-value rule
//   - presets.go: curve presets and the suggested default layout
//   - mapper.go: depth/pixel mapping and curve value scaling
//   - lithology.go: keyword table, interpretation and mineral colours
//   - patterns.go: tile drawers and the PatternCache
//   - canvas.go: Surface plus path and text drawing helpers
//   - renderer.go, tracks.go, header.go: the render pipeline
//   - interaction.go: the pointer state machine and EventBus
//
// # Render Pipeline
//
// Render recomputes the header height and track layout, then draws in a
// fixed order:
//
//  1. white background
//  2. horizontal depth grid across all tracks (50 m major, 10 m minor)
//  3. each visible track body, left to right, clipped to its rectangle
//  4. the selection border around the selected track
//  5. every track header, so headers always sit above body content
//
// DrawCrosshair is a separate overlay pass on top of the last render.
//
// Each body is drawn on a private transparent layer and composited with
// draw.Over; the layer bounds do the clipping. Paths go through the
// go-chart raster graphic context, text through an x/image font.Drawer
// using the 7x13 bitmap face. Runes the face lacks are drawn as '?'.
//
// # Coordinates
//
//	y = headerHeight + (depth - min) / (max - min) * (surfaceHeight - headerHeight)
//
// The header height depends on the busiest visible curve track, so a Mapper
// is only valid for the render pass that produced it. Mapper.YToDepth is
// the exact inverse of Mapper.DepthToY.
//
// # Missing Data
//
// A sample is missing when its value is JSON null or -9999. Missing samples
// never reach geometry. Empty inputs are skipped or replaced by a
// placeholder; degenerate curve domains are skipped; unknown lithology,
// interpretation or pattern keys fall back to fixed colours. Nothing in this
// package returns an error while drawing.
//
// # Interaction
//
// Controller is a three-state machine (idle, panning, trackDragging) over
// PointerEvents from an InputSource:
//
//	wheel           zoom about the cursor depth, width clamped to [10, 5000]
//	down in header  start dragging the track under the pointer
//	down in body    start panning
//	move            pan, update drag cursor, or report the crosshair
//	up              under 5 px of travel selects, otherwise reorders or ends the pan
//	leave           cancels the gesture and hides the crosshair
//	context         reports the track and depth under the pointer
//
// Edits are only proposed through Callbacks; the caller applies them and
// renders again.
//
// # Concurrency
//
// Renderer, Controller and PatternCache are used from a single goroutine.
// EventBus may be fed from any goroutine.
package complog
