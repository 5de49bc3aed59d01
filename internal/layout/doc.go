// Package layout reads and writes composite log layout files and watches
// them for edits.
//
// A layout is a CompositeLogConfig on disk. TOML, YAML and JSON are
// accepted and chosen by file extension:
//
//	well_name = "W1"
//	depth_range = { min = 1000, max = 1200 }
//
//	[[tracks]]
//	type = "depth"
//
//	[[tracks]]
//	type = "curve"
//	title = "GR / Sonic"
//	  [[tracks.curves]]
//	  curve_name = "GR"
//
// # Normalization
//
// Decode fills what a hand-written file usually leaves out:
//
//   - tracks are visible unless hidden = true
//   - missing ids are generated with complog.NextTrackID
//   - a missing width uses a per-type default
//   - curve color, width, unit and value range come from the curve preset
//     when unset; line style defaults to solid
//   - scale defaults to 1:200
//
// Unknown track types, duplicate ids, unnamed curves and an inverted depth
// range are errors. A missing depth range is allowed; the caller derives
// one from the data.
//
// # Watching
//
// Watch follows one file through fsnotify on its directory, debounces
// bursts of events and hands every reload, or its parse error, to a
// callback.
package layout
