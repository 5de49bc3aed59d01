// Package state provides thread-safe chart state shared by the data poller,
// the layout watcher and the terminal viewer.
//
// # Overview
//
// The Store holds the current composite log configuration, the last
// successfully fetched well data and the presentation state the viewer
// edits: visible depth range, track order, track visibility, selection and
// crosshair position. It is the single place where background updates meet
// user edits.
//
// # Architecture
//
//	Poller:                 Layout watcher:          UI:
//	FetchCompositeData()    layout.Load()            controller callbacks
//	      ↓                       ↓                        ↓
//	store.UpdateData()      store.SetConfig()        SetDepthRange, ReorderTracks,
//	                                                 SelectTrack, SetTrackVisible
//	              ╲               │               ╱
//	                     store.Snapshot()  →  render
//
// The interaction controller never mutates the configuration. It reports
// proposed edits and the UI applies them here before rendering again.
//
// # Concurrency Model
//
// All methods take a sync.RWMutex. Writers hold the write lock only while
// swapping fields; Snapshot holds the read lock while copying. No lock is
// held during network I/O or rendering.
//
// # Update Semantics
//
// UpdateData follows the keep-last-good rule:
//
//	store.UpdateData(data, nil)
//	→ Data = data, LastError = nil, ConsecutiveFailures = 0, Revision++
//
//	store.UpdateData(nil, err)
//	→ Data unchanged, LastError = err, ConsecutiveFailures++
//
// IsOffline reports two or more consecutive failures.
//
// Revision increases on every change that alters what the chart draws. The
// viewer compares it with the revision it last rendered to decide whether a
// redraw is due. Crosshair moves do not bump it; the overlay is redrawn
// separately.
//
// # Edits
//
//   - SetDepthRange ignores ranges with Min >= Max
//   - ReorderTracks moves a track to the index held by another track
//   - SelectTrack with an unknown id clears the selection; a hidden track
//     is refused and the selection is left as it was
//   - SetTrackVisible(id, false) also clears the selection of that track
//   - SetConfig keeps the selection only if its track still exists and is
//     visible
//
// # Copying
//
// Snapshot deep-copies the configuration (tracks, curve styles, fills and
// grid), so callers may modify what they receive. CompositeLogData is
// treated as immutable: the poller always stores a freshly decoded value
// and nobody writes to it afterwards, so the pointer is shared. Error
// values are wrapped so callers never hold the stored instance.
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if nothing was stored yet.
package state
