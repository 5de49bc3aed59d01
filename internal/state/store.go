package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/strata/internal/complog"
)

// Crosshair is the last reported cursor position over the chart body.
type Crosshair struct {
	Active bool
	X, Y   float64
	Depth  float64
}

// Snapshot represents the latest chart state available to the UI.
type Snapshot struct {
	Config              complog.CompositeLogConfig
	HasConfig           bool
	Data                *complog.CompositeLogData // read-only; replaced whole on update
	HasData             bool
	SelectedTrack       string
	Crosshair           Crosshair
	Revision            uint64 // bumped on every change that needs a redraw
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// UpdateData replaces the chart data. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) UpdateData(data *complog.CompositeLogData, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Data = data
	s.snapshot.HasData = data != nil
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.Revision++
}

// SetConfig replaces the chart configuration. The selection survives when
// the selected track still exists.
func (s *Store) SetConfig(cfg complog.CompositeLogConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Config = cfg.Clone()
	s.snapshot.HasConfig = true
	if t := s.snapshot.Config.Track(s.snapshot.SelectedTrack); t == nil || !t.Visible {
		s.snapshot.SelectedTrack = ""
	}
	s.snapshot.Revision++
}

// SetDepthRange applies a new visible depth window. Invalid ranges are
// ignored and reported as false.
func (s *Store) SetDepthRange(r complog.DepthRange) bool {
	if !r.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Config.DepthRange == r {
		return true
	}
	s.snapshot.Config.DepthRange = r
	s.snapshot.Revision++
	return true
}

// ReorderTracks moves the track fromID to the position currently held by
// toID. It reports false when either id is unknown or they are equal.
func (s *Store) ReorderTracks(fromID, toID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracks := s.snapshot.Config.Tracks
	from := trackIndex(tracks, fromID)
	to := trackIndex(tracks, toID)
	if from < 0 || to < 0 || from == to {
		return false
	}
	moved := tracks[from]
	tracks = slices.Delete(slices.Clone(tracks), from, from+1)
	tracks = slices.Insert(tracks, to, moved)
	s.snapshot.Config.Tracks = tracks
	s.snapshot.Revision++
	return true
}

// SelectTrack marks a track as selected. An empty or unknown id clears the
// selection. A hidden track cannot be selected: the call reports false and
// the current selection stays.
func (s *Store) SelectTrack(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.snapshot.Config.Track(id); t == nil {
		id = ""
	} else if !t.Visible {
		return false
	}
	if s.snapshot.SelectedTrack == id {
		return true
	}
	s.snapshot.SelectedTrack = id
	s.snapshot.Revision++
	return true
}

// SetTrackVisible shows or hides a track. Hiding the selected track clears
// the selection.
func (s *Store) SetTrackVisible(id string, visible bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := trackIndex(s.snapshot.Config.Tracks, id)
	if i < 0 {
		return false
	}
	if s.snapshot.Config.Tracks[i].Visible == visible {
		return true
	}
	tracks := slices.Clone(s.snapshot.Config.Tracks)
	tracks[i].Visible = visible
	s.snapshot.Config.Tracks = tracks
	if !visible && s.snapshot.SelectedTrack == id {
		s.snapshot.SelectedTrack = ""
	}
	s.snapshot.Revision++
	return true
}

// SetCrosshair records the cursor position. A negative x or y clears it.
func (s *Store) SetCrosshair(x, y, depth float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if x < 0 || y < 0 {
		s.snapshot.Crosshair = Crosshair{}
		return
	}
	s.snapshot.Crosshair = Crosshair{Active: true, X: x, Y: y, Depth: depth}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Config = s.snapshot.Config.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func trackIndex(tracks []complog.TrackConfig, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(tracks, func(t complog.TrackConfig) bool { return t.ID == id })
}
