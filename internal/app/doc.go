// Package app provides the orchestration layer for strata.
//
// # Overview
//
// This package wires together configuration, the welldata client, state
// management, the layout watcher and the UI. It is the composition root
// for the terminal viewer and also hosts the one-shot render and stats
// commands, which share the same session bootstrap.
//
// # Components
//
//   - app.go: Options, LoadConfig and the Run entry point for the viewer
//   - session.go: OpenSession, which resolves a layout and fetches data
//   - poller.go: background refresh with exponential backoff
//   - export.go: PNG export of a chart (render command and viewer key)
//   - statscmd.go: curve statistics, histogram and crossplot output
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> LoadConfig()         config file + flag overrides
//	       ├─────> tea.LogToFile()      standard logger to log_file
//	       ├─────> welldata.NewClient() HTTP client
//	       ├─────> OpenSession()        layout + first fetch (fatal on error)
//	       ├─────> Poller.Start()       background refresh
//	       ├─────> layout.Watch()       reload the layout file on save
//	       └─────> ui.Run()             start the TUI (blocks)
//
// # Layout Resolution
//
// A configured layout file wins. Without one, the curves stored for the
// well are listed and complog.SuggestedTracks builds the standard layout.
// A layout with no depth range opens at the top of the data, showing at
// most 200 m.
//
// # Polling Behavior
//
// The poller fetches every curve the current layout references, for the
// whole well, so pan and zoom are served from memory. It waits the poll
// interval between fetches and doubles the wait for each consecutive
// failure, capped at 30 seconds. Kick triggers an immediate refresh; the
// UI kicks after track visibility changes and the layout watcher kicks
// after a reload so newly referenced curves arrive quickly.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - invalid configuration (no workarea or well)
//   - unreadable layout file
//   - first fetch failure, so strata never starts against a missing service
//
// Recoverable errors (logged, the previous data stays on screen):
//   - periodic fetch failures
//   - layout reload parse errors
package app
