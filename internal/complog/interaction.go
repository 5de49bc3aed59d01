package complog

import (
	"math"
	"sync"
)

// EventKind is the type of a pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	Wheel
	ContextMenu
)

// Button identifies the pressed pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is one raw input in surface pixel coordinates. DeltaY is the
// wheel delta; positive scrolls down (zoom out).
type PointerEvent struct {
	Kind   EventKind
	X, Y   float64
	Button Button
	DeltaY float64
}

// Cursor is the pointer affordance the host should show.
type Cursor string

const (
	CursorDefault   Cursor = "default"
	CursorCrosshair Cursor = "crosshair"
	CursorGrab      Cursor = "grab"
	CursorGrabbing  Cursor = "grabbing"
	CursorColResize Cursor = "col-resize"
)

// GestureState is the controller's state machine position.
type GestureState int

const (
	StateIdle GestureState = iota
	StatePanning
	StateTrackDragging
)

func (s GestureState) String() string {
	switch s {
	case StatePanning:
		return "panning"
	case StateTrackDragging:
		return "trackDragging"
	default:
		return "idle"
	}
}

// Gesture tuning.
const (
	DragThreshold = 5
	ZoomInFactor  = 0.87
	ZoomOutFactor = 1.15
	MinDepthSpan  = 10
	MaxDepthSpan  = 5000
)

// Callbacks receive the edits proposed by a Controller. Nil callbacks are
// skipped. An OnTrackSelect with an empty id clears the selection and an
// OnCrosshairMove at (-1, -1) hides the crosshair.
type Callbacks struct {
	OnDepthRangeChange func(DepthRange)
	OnCrosshairMove    func(x, y float64)
	OnContextMenu      func(ev PointerEvent, track *TrackConfig, depth float64)
	OnTrackReorder     func(sourceID, targetID string)
	OnTrackSelect      func(trackID string)
	OnRequestRender    func()
}

// HitTester exposes the layout a Controller needs. *Renderer implements it.
type HitTester interface {
	FindTrackAtX(x float64) *TrackConfig
	Mapper() Mapper
}

var _ HitTester = (*Renderer)(nil)

// InputSource delivers pointer events to listeners. The returned function
// removes the listener.
type InputSource interface {
	AddListener(fn func(PointerEvent) bool) (remove func())
}

// Controller turns pointer input on one surface into proposed edits. It
// never writes to the config it reads.
type Controller struct {
	config    *CompositeLogConfig
	hits      HitTester
	callbacks Callbacks

	state      GestureState
	cursor     Cursor
	down       point
	downValid  bool
	panStart   DepthRange
	dragSource string

	detach func()
}

// NewController binds a controller to the caller's config and a hit tester.
func NewController(config *CompositeLogConfig, hits HitTester, callbacks Callbacks) *Controller {
	return &Controller{
		config:    config,
		hits:      hits,
		callbacks: callbacks,
		cursor:    CursorCrosshair,
	}
}

// UpdateConfig replaces the borrowed config.
func (c *Controller) UpdateConfig(config *CompositeLogConfig) { c.config = config }

// State returns the current gesture state.
func (c *Controller) State() GestureState { return c.state }

// Cursor returns the current pointer affordance.
func (c *Controller) Cursor() Cursor { return c.cursor }

// Attach subscribes to src. A previous subscription is released first.
func (c *Controller) Attach(src InputSource) {
	c.Detach()
	c.detach = src.AddListener(c.Dispatch)
}

// Detach releases the input subscription and resets any gesture. It is safe
// to call more than once.
func (c *Controller) Detach() {
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
	c.reset()
}

// Attached reports whether the controller holds a subscription.
func (c *Controller) Attached() bool { return c.detach != nil }

// Dispatch feeds one event through the state machine. It reports whether
// the host's default handling of the event should be suppressed.
func (c *Controller) Dispatch(ev PointerEvent) bool {
	if c.config == nil || c.hits == nil {
		return false
	}
	switch ev.Kind {
	case Wheel:
		c.wheel(ev)
		return true
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
	case PointerUp:
		c.pointerUp(ev)
	case PointerLeave:
		c.reset()
		c.setCursor(CursorCrosshair)
		c.crosshair(-1, -1)
	case ContextMenu:
		c.contextMenu(ev)
		return true
	}
	return false
}

func (c *Controller) mapper() Mapper {
	m := c.hits.Mapper()
	m.Range = c.config.DepthRange
	return m
}

func (c *Controller) wheel(ev PointerEvent) {
	m := c.mapper()
	rng := m.Range
	width := rng.Width()
	if width <= 0 {
		return
	}
	center := m.YToDepth(ev.Y)
	factor := ZoomInFactor
	if ev.DeltaY > 0 {
		factor = ZoomOutFactor
	}
	next := ZoomRange(rng, center, factor)
	c.rangeChange(next)
}

// ZoomRange scales the width of rng by factor, clamped to
// [MinDepthSpan, MaxDepthSpan], keeping center at the same relative
// position. The new minimum is floored at zero.
func ZoomRange(rng DepthRange, center, factor float64) DepthRange {
	width := rng.Width()
	next := clamp(width*factor, MinDepthSpan, MaxDepthSpan)
	ratio := (center - rng.Min) / width
	return DepthRange{
		Min: math.Max(0, center-next*ratio),
		Max: center + next*(1-ratio),
	}
}

// PanRange shifts rng by the depth equivalent of a dy pixel drag over a body
// of bodyHeight pixels. Dragging down moves towards shallower depths. The
// width is always preserved; a shift past zero pins the top at zero.
func PanRange(rng DepthRange, dy, bodyHeight float64) DepthRange {
	if bodyHeight <= 0 {
		return rng
	}
	width := rng.Width()
	shift := -dy / bodyHeight * width
	next := DepthRange{Min: rng.Min + shift, Max: rng.Max + shift}
	if next.Min < 0 {
		next = DepthRange{Min: 0, Max: width}
	}
	return next
}

func (c *Controller) pointerDown(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	m := c.mapper()
	c.down = point{ev.X, ev.Y}
	c.downValid = true
	if ev.Y < m.Top {
		if t := c.hits.FindTrackAtX(ev.X); t != nil {
			c.state = StateTrackDragging
			c.dragSource = t.ID
			c.setCursor(CursorGrabbing)
			return
		}
	}
	c.state = StatePanning
	c.panStart = c.config.DepthRange
	c.setCursor(CursorGrabbing)
}

func (c *Controller) pointerMove(ev PointerEvent) {
	switch c.state {
	case StateTrackDragging:
		if t := c.hits.FindTrackAtX(ev.X); t != nil && t.ID != c.dragSource {
			c.setCursor(CursorColResize)
		} else {
			c.setCursor(CursorGrabbing)
		}
	case StatePanning:
		dy := ev.Y - c.down.Y
		c.rangeChange(PanRange(c.panStart, dy, c.mapper().BodyHeight()))
	default:
		if ev.Y < c.mapper().Top {
			if c.hits.FindTrackAtX(ev.X) != nil {
				c.setCursor(CursorGrab)
			} else {
				c.setCursor(CursorDefault)
			}
		} else {
			c.setCursor(CursorCrosshair)
		}
		c.crosshair(ev.X, ev.Y)
	}
}

func (c *Controller) pointerUp(ev PointerEvent) {
	defer c.reset()
	if c.state == StateIdle {
		return
	}
	defer c.setCursor(CursorCrosshair)

	click := c.downValid &&
		math.Abs(ev.X-c.down.X) < DragThreshold &&
		math.Abs(ev.Y-c.down.Y) < DragThreshold
	target := c.hits.FindTrackAtX(ev.X)
	if click {
		id := ""
		if target != nil {
			id = target.ID
		}
		if c.callbacks.OnTrackSelect != nil {
			c.callbacks.OnTrackSelect(id)
		}
		return
	}
	if c.state == StateTrackDragging && target != nil && target.ID != c.dragSource {
		if c.callbacks.OnTrackReorder != nil {
			c.callbacks.OnTrackReorder(c.dragSource, target.ID)
		}
	}
}

func (c *Controller) contextMenu(ev PointerEvent) {
	if c.callbacks.OnContextMenu == nil {
		return
	}
	depth := c.mapper().YToDepth(ev.Y)
	c.callbacks.OnContextMenu(ev, c.hits.FindTrackAtX(ev.X), depth)
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.downValid = false
	c.dragSource = ""
}

func (c *Controller) setCursor(cur Cursor) {
	if c.cursor == cur {
		return
	}
	c.cursor = cur
	if c.callbacks.OnRequestRender != nil {
		c.callbacks.OnRequestRender()
	}
}

func (c *Controller) crosshair(x, y float64) {
	if c.callbacks.OnCrosshairMove != nil {
		c.callbacks.OnCrosshairMove(x, y)
	}
}

func (c *Controller) rangeChange(r DepthRange) {
	if c.callbacks.OnDepthRangeChange != nil {
		c.callbacks.OnDepthRangeChange(r)
	}
}

// EventBus is an InputSource fed by the host through Emit.
type EventBus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(PointerEvent) bool
}

// AddListener registers fn and returns its remover.
func (b *EventBus) AddListener(fn func(PointerEvent) bool) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listeners == nil {
		b.listeners = make(map[int]func(PointerEvent) bool)
	}
	id := b.next
	b.next++
	b.listeners[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Emit delivers ev to every listener and reports whether any of them
// suppressed default handling.
func (b *EventBus) Emit(ev PointerEvent) bool {
	b.mu.Lock()
	fns := make([]func(PointerEvent) bool, 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	handled := false
	for _, fn := range fns {
		if fn(ev) {
			handled = true
		}
	}
	return handled
}

// Listeners returns the number of registered listeners.
func (b *EventBus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
