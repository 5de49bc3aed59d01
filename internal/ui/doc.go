// Package ui provides the terminal viewer for strata.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The composite log itself is drawn by the
// complog renderer into an off-screen RGBA surface, scaled down to the
// terminal grid and written out as upper half blocks, so every cell carries
// two vertically stacked pixels in true colour. The surrounding chrome
// (header, command bar, statistics pane, help and menus) is styled with
// lipgloss.
//
// # Package Structure
//
//   - app.go: Model, message loop, keyboard actions and the Run function
//   - chart.go: surface, renderer and gesture controller for the chart area
//   - halfblock.go: image downscaling and half-block encoding
//   - mouse.go: terminal mouse events translated to pointer events
//   - menu.go: the per-track context menu
//   - statspane.go: outlier-filtered histogram, summary and track list
//   - header.go: status bar, command bar and crosshair readout
//   - help.go: keyboard shortcut overlay
//   - theme.go: colour themes for the chrome
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program with mouse motion and
//     focus reporting enabled.
//  2. Mouse input inside the chart is forwarded to the gesture controller.
//     Its callbacks write range, crosshair, selection and track order edits
//     to state.Store.
//  3. After every input, and on each tick, the Model takes a snapshot from
//     the store. A changed revision re-renders the chart; a moved crosshair
//     only repaints the overlay over a cached base image.
//  4. The poller updates the store in the background; the next tick picks
//     up the new data.
//
// # External Dependencies
//
//   - state.Store: chart configuration, data and interaction state
//   - complog: renderer, gesture controller and data model
//   - views, stats: distribution and outlier filtering for the side pane
//   - prefs: theme and statistics preferences
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Store:     store,
//		Prefs:     userPrefs,
//		PrefsPath: prefsPath,
//		Refresh:   poller.Kick,
//	})
package ui
