package complog

import (
	"math"
	"testing"
)

type recorder struct {
	ranges    []DepthRange
	crosshair [][2]float64
	selects   []string
	reorders  [][2]string
	menus     []string
	depths    []float64
	renders   int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnDepthRangeChange: func(rng DepthRange) { r.ranges = append(r.ranges, rng) },
		OnCrosshairMove:    func(x, y float64) { r.crosshair = append(r.crosshair, [2]float64{x, y}) },
		OnContextMenu: func(_ PointerEvent, track *TrackConfig, depth float64) {
			id := ""
			if track != nil {
				id = track.ID
			}
			r.menus = append(r.menus, id)
			r.depths = append(r.depths, depth)
		},
		OnTrackReorder:  func(src, dst string) { r.reorders = append(r.reorders, [2]string{src, dst}) },
		OnTrackSelect:   func(id string) { r.selects = append(r.selects, id) },
		OnRequestRender: func() { r.renders++ },
	}
}

// newHarness lays out three 99 px tracks with 1 px gaps on a 400x500
// surface. With no curve tracks the header is 44 px and the body 456 px.
func newHarness(t *testing.T, rng DepthRange) (*Controller, *Renderer, *recorder) {
	t.Helper()
	cfg := &CompositeLogConfig{
		DepthRange: rng,
		Tracks: []TrackConfig{
			{ID: "a", Type: TrackDepth, Width: 99, Visible: true},
			{ID: "b", Type: TrackDepth, Width: 99, Visible: true},
			{ID: "c", Type: TrackDepth, Width: 99, Visible: true},
		},
	}
	r := NewRenderer(NewSurface(400, 500), cfg, &CompositeLogData{})
	r.Render()
	rec := &recorder{}
	return NewController(cfg, r, rec.callbacks()), r, rec
}

func TestClickInHeaderSelectsTrack(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 50, Y: 10})
	if c.State() != StateTrackDragging {
		t.Fatalf("state = %v, want trackDragging", c.State())
	}
	c.Dispatch(PointerEvent{Kind: PointerUp, X: 53, Y: 13})

	if len(rec.selects) != 1 || rec.selects[0] != "a" {
		t.Fatalf("selects = %v, want [a]", rec.selects)
	}
	if len(rec.reorders) != 0 {
		t.Fatalf("reorders = %v, want none", rec.reorders)
	}
	if c.State() != StateIdle {
		t.Fatalf("state = %v, want idle", c.State())
	}
}

func TestDragInHeaderReorders(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 50, Y: 10})
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 150, Y: 10})
	if c.Cursor() != CursorColResize {
		t.Fatalf("cursor over other track = %v, want col-resize", c.Cursor())
	}
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 250, Y: 10})
	c.Dispatch(PointerEvent{Kind: PointerUp, X: 250, Y: 10})

	if len(rec.reorders) != 1 || rec.reorders[0] != [2]string{"a", "c"} {
		t.Fatalf("reorders = %v, want [[a c]]", rec.reorders)
	}
	if len(rec.selects) != 0 || len(rec.ranges) != 0 || len(rec.crosshair) != 0 {
		t.Fatalf("drag reported side effects: %+v", rec)
	}
}

func TestDragOntoSameTrackDoesNothing(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 50, Y: 10})
	c.Dispatch(PointerEvent{Kind: PointerUp, X: 60, Y: 200})
	if len(rec.reorders) != 0 || len(rec.selects) != 0 {
		t.Fatalf("reorders = %v selects = %v, want none", rec.reorders, rec.selects)
	}
}

func TestClickInBodySelectsTrack(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 150, Y: 200})
	if c.State() != StatePanning {
		t.Fatalf("state = %v, want panning", c.State())
	}
	c.Dispatch(PointerEvent{Kind: PointerUp, X: 151, Y: 201})
	if len(rec.selects) != 1 || rec.selects[0] != "b" {
		t.Fatalf("selects = %v, want [b]", rec.selects)
	}

	// a click past the last track clears the selection
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 390, Y: 200})
	c.Dispatch(PointerEvent{Kind: PointerUp, X: 390, Y: 200})
	if len(rec.selects) != 2 || rec.selects[1] != "" {
		t.Fatalf("selects = %v, want [b \"\"]", rec.selects)
	}
}

func TestClickNeverReordersOrPans(t *testing.T) {
	for x := 0.0; x < 400; x += 37 {
		for y := 0.0; y < 500; y += 41 {
			c, _, rec := newHarness(t, DepthRange{Min: 500, Max: 900})
			c.Dispatch(PointerEvent{Kind: PointerDown, X: x, Y: y})
			c.Dispatch(PointerEvent{Kind: PointerUp, X: x, Y: y})
			if len(rec.selects) != 1 {
				t.Fatalf("click at (%v,%v): selects = %v", x, y, rec.selects)
			}
			if len(rec.reorders) != 0 || len(rec.ranges) != 0 {
				t.Fatalf("click at (%v,%v) reported reorder %v or range %v", x, y, rec.reorders, rec.ranges)
			}
		}
	}
}

func TestPanShiftsRangeAndKeepsWidth(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 50, Y: 200})
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 50, Y: 314})

	if len(rec.ranges) != 1 {
		t.Fatalf("ranges = %v, want one", rec.ranges)
	}
	got := rec.ranges[0]
	if math.Abs(got.Min-950) > 1e-9 || math.Abs(got.Max-1150) > 1e-9 {
		t.Fatalf("pan range = %+v, want 950..1150", got)
	}

	// the controller does not write the config; the next move is still
	// measured from the press
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 50, Y: 86})
	got = rec.ranges[1]
	if math.Abs(got.Min-1050) > 1e-9 || math.Abs(got.Max-1250) > 1e-9 {
		t.Fatalf("pan range = %+v, want 1050..1250", got)
	}
	if len(rec.crosshair) != 0 {
		t.Fatalf("pan reported crosshair %v", rec.crosshair)
	}

	c.Dispatch(PointerEvent{Kind: PointerUp, X: 50, Y: 86})
	if len(rec.selects) != 0 {
		t.Fatalf("pan release selected %v", rec.selects)
	}
}

func TestPanRangePreservesWidth(t *testing.T) {
	ranges := []DepthRange{{Min: 0, Max: 10}, {Min: 10, Max: 210}, {Min: 2500, Max: 7500}}
	for _, rng := range ranges {
		for _, dy := range []float64{-900, -120, -1, 0, 1, 57, 456, 5000} {
			got := PanRange(rng, dy, 456)
			if math.Abs(got.Width()-rng.Width()) > 1e-9 {
				t.Fatalf("PanRange(%+v, %v) width = %v, want %v", rng, dy, got.Width(), rng.Width())
			}
			if got.Min < 0 {
				t.Fatalf("PanRange(%+v, %v) = %+v, min below zero", rng, dy, got)
			}
		}
	}
}

func TestWheelZoomKeepsCursorDepth(t *testing.T) {
	for _, deltaY := range []float64{-120, 120} {
		c, r, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
		y := 272.0
		before := r.YToDepth(y)
		if handled := c.Dispatch(PointerEvent{Kind: Wheel, X: 10, Y: y, DeltaY: deltaY}); !handled {
			t.Fatal("wheel not marked handled")
		}
		if len(rec.ranges) != 1 {
			t.Fatalf("ranges = %v", rec.ranges)
		}
		next := rec.ranges[0]
		wantWidth := 200 * ZoomInFactor
		if deltaY > 0 {
			wantWidth = 200 * ZoomOutFactor
		}
		if math.Abs(next.Width()-wantWidth) > 1e-9 {
			t.Fatalf("zoom width = %v, want %v", next.Width(), wantWidth)
		}

		cfg := r.Config()
		cfg.DepthRange = next
		if after := r.YToDepth(y); math.Abs(after-before) > 1e-9 {
			t.Fatalf("depth under cursor moved from %v to %v", before, after)
		}
	}
}

func TestZoomRangeClamps(t *testing.T) {
	out := ZoomRange(DepthRange{Min: 0, Max: 5000}, 2500, ZoomOutFactor)
	if out.Width() != 5000 {
		t.Fatalf("zoom out width = %v, want 5000", out.Width())
	}
	in := ZoomRange(DepthRange{Min: 100, Max: 110}, 105, ZoomInFactor)
	if in.Width() != 10 {
		t.Fatalf("zoom in width = %v, want 10", in.Width())
	}
	floored := ZoomRange(DepthRange{Min: 1, Max: 101}, 51, ZoomOutFactor)
	if floored.Min != 0 {
		t.Fatalf("zoom min = %v, want 0", floored.Min)
	}
}

func TestIdleMoveReportsCrosshairAndCursor(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 0, Max: 100})
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 50, Y: 10})
	if c.Cursor() != CursorGrab {
		t.Fatalf("cursor over header track = %v, want grab", c.Cursor())
	}
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 390, Y: 10})
	if c.Cursor() != CursorDefault {
		t.Fatalf("cursor over empty header = %v, want default", c.Cursor())
	}
	c.Dispatch(PointerEvent{Kind: PointerMove, X: 50, Y: 300})
	if c.Cursor() != CursorCrosshair {
		t.Fatalf("cursor over body = %v, want crosshair", c.Cursor())
	}
	if len(rec.crosshair) != 3 || rec.crosshair[2] != [2]float64{50, 300} {
		t.Fatalf("crosshair = %v", rec.crosshair)
	}
	if rec.renders == 0 {
		t.Fatal("cursor changes did not request a render")
	}
}

func TestLeaveCancelsGesture(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 50, Y: 10})
	c.Dispatch(PointerEvent{Kind: PointerLeave})
	if c.State() != StateIdle {
		t.Fatalf("state after leave = %v, want idle", c.State())
	}
	if n := len(rec.crosshair); n != 1 || rec.crosshair[0] != [2]float64{-1, -1} {
		t.Fatalf("crosshair = %v, want [[-1 -1]]", rec.crosshair)
	}
	c.Dispatch(PointerEvent{Kind: PointerUp, X: 250, Y: 10})
	if len(rec.selects) != 0 || len(rec.reorders) != 0 {
		t.Fatalf("release after leave reported selects %v reorders %v", rec.selects, rec.reorders)
	}
}

func TestContextMenuReportsTrackAndDepth(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 1000, Max: 1200})
	if !c.Dispatch(PointerEvent{Kind: ContextMenu, X: 150, Y: 272, Button: ButtonSecondary}) {
		t.Fatal("context menu not marked handled")
	}
	if len(rec.menus) != 1 || rec.menus[0] != "b" {
		t.Fatalf("menus = %v, want [b]", rec.menus)
	}
	if math.Abs(rec.depths[0]-1100) > 1e-9 {
		t.Fatalf("depth = %v, want 1100", rec.depths[0])
	}

	c.Dispatch(PointerEvent{Kind: ContextMenu, X: 399, Y: 272})
	if rec.menus[1] != "" {
		t.Fatalf("menu past last track = %q, want none", rec.menus[1])
	}
}

func TestSecondaryButtonDoesNotStartGesture(t *testing.T) {
	c, _, _ := newHarness(t, DepthRange{Min: 0, Max: 100})
	c.Dispatch(PointerEvent{Kind: PointerDown, X: 50, Y: 200, Button: ButtonSecondary})
	if c.State() != StateIdle {
		t.Fatalf("state = %v, want idle", c.State())
	}
}

func TestAttachDetach(t *testing.T) {
	c, _, rec := newHarness(t, DepthRange{Min: 0, Max: 100})
	bus := &EventBus{}

	c.Attach(bus)
	c.Attach(bus)
	if bus.Listeners() != 1 {
		t.Fatalf("listeners = %d, want 1", bus.Listeners())
	}
	bus.Emit(PointerEvent{Kind: PointerMove, X: 10, Y: 300})
	if len(rec.crosshair) != 1 {
		t.Fatalf("crosshair = %v, want one event", rec.crosshair)
	}

	c.Detach()
	c.Detach()
	if bus.Listeners() != 0 || c.Attached() {
		t.Fatalf("listeners = %d after detach", bus.Listeners())
	}
	bus.Emit(PointerEvent{Kind: PointerMove, X: 10, Y: 300})
	if len(rec.crosshair) != 1 {
		t.Fatal("detached controller still received events")
	}
}
