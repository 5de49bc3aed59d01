package ui

import (
	"image"
	"strings"

	"github.com/muesli/termenv"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/state"
)

// Surface pixels per terminal cell. A cell is roughly twice as tall as it
// is wide, and the half-block encoding shows two pixel rows per cell.
const (
	cellPxW = 6
	cellPxH = 12
)

// menuRequest is a context menu the controller asked for.
type menuRequest struct {
	trackID string
	depth   float64
	col     int
	row     int
}

// chartView owns the off-screen surface, the renderer and the gesture
// controller for the chart area. Controller callbacks write proposed edits
// straight to the store; the model picks them up with the next snapshot.
type chartView struct {
	store   *state.Store
	profile termenv.Profile

	cols, rows int
	surface    *complog.Surface
	renderer   *complog.Renderer
	controller *complog.Controller
	bus        *complog.EventBus

	config   complog.CompositeLogConfig
	data     *complog.CompositeLogData
	revision uint64
	synced   bool

	base      *image.RGBA
	crosshair state.Crosshair
	lines     []string

	dirty        bool
	overlayDirty bool
	menu         *menuRequest
	closed       bool
}

func newChartView(store *state.Store, profile termenv.Profile, tf *complog.Typeface) *chartView {
	c := &chartView{
		store:   store,
		profile: profile,
		bus:     &complog.EventBus{},
		cols:    1,
		rows:    1,
	}
	c.surface = complog.NewSurface(cellPxW, cellPxH)
	c.renderer = complog.NewRenderer(c.surface, &c.config, nil, complog.WithTypeface(tf))
	c.controller = complog.NewController(&c.config, c.renderer, complog.Callbacks{
		OnDepthRangeChange: func(r complog.DepthRange) {
			c.store.SetDepthRange(r)
		},
		OnCrosshairMove: func(x, y float64) {
			if x < 0 || y < 0 {
				c.store.SetCrosshair(-1, -1, 0)
				return
			}
			c.store.SetCrosshair(x, y, c.renderer.YToDepth(y))
		},
		OnContextMenu: func(ev complog.PointerEvent, track *complog.TrackConfig, depth float64) {
			req := &menuRequest{depth: depth, col: int(ev.X) / cellPxW, row: int(ev.Y) / cellPxH}
			if track != nil {
				req.trackID = track.ID
			}
			c.menu = req
		},
		OnTrackReorder: func(sourceID, targetID string) {
			c.store.ReorderTracks(sourceID, targetID)
		},
		OnTrackSelect: func(trackID string) {
			c.store.SelectTrack(trackID)
		},
		OnRequestRender: func() {
			c.overlayDirty = true
		},
	})
	c.controller.Attach(c.bus)
	c.dirty = true
	return c
}

// close detaches the controller from the event bus and drops cached
// pattern tiles. Further events are ignored. It is safe to call twice.
func (c *chartView) close() {
	if c.closed {
		return
	}
	c.closed = true
	c.controller.Detach()
	c.renderer.Patterns().Clear()
	c.menu = nil
}

// resize rebinds the renderer to a surface covering cols x rows cells.
func (c *chartView) resize(cols, rows int) {
	cols, rows = max(1, cols), max(1, rows)
	if cols == c.cols && rows == c.rows && c.base != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.surface = complog.NewSurface(cols*cellPxW, rows*cellPxH)
	c.renderer.SetSurface(c.surface)
	c.dirty = true
	if c.closed {
		return
	}
	c.controller.Detach()
	c.controller.Attach(c.bus)
}

// sync adopts a store snapshot. The chart is only re-rendered when the
// revision moved; a crosshair change only redraws the overlay.
func (c *chartView) sync(snap state.Snapshot) {
	if !c.synced || snap.Revision != c.revision {
		c.config = snap.Config
		c.data = snap.Data
		c.revision = snap.Revision
		c.synced = true
		c.renderer.UpdateConfig(&c.config)
		c.renderer.UpdateData(c.data)
		c.renderer.SetSelectedTrack(snap.SelectedTrack)
		c.controller.UpdateConfig(&c.config)
		c.dirty = true
	}
	if snap.Crosshair != c.crosshair {
		c.crosshair = snap.Crosshair
		c.overlayDirty = true
	}
}

// refresh redraws whatever sync or the controller invalidated.
func (c *chartView) refresh() {
	switch {
	case c.dirty || c.base == nil:
		c.renderer.Render()
		img := c.surface.Image()
		if c.base == nil || c.base.Bounds() != img.Bounds() {
			c.base = image.NewRGBA(img.Bounds())
		}
		copy(c.base.Pix, img.Pix)
	case c.overlayDirty:
		copy(c.surface.Image().Pix, c.base.Pix)
	default:
		return
	}
	if c.crosshair.Active {
		c.renderer.DrawCrosshair(c.crosshair.X, c.crosshair.Y)
	}
	c.lines = halfBlocks(downscale(c.surface.Image(), c.cols, c.rows), c.profile)
	c.dirty, c.overlayDirty = false, false
}

// emit forwards a pointer event to the controller and reports whether it
// was consumed.
func (c *chartView) emit(ev complog.PointerEvent) bool {
	return c.bus.Emit(ev)
}

// takeMenu returns and clears a pending context menu request.
func (c *chartView) takeMenu() *menuRequest {
	req := c.menu
	c.menu = nil
	return req
}

// view returns the encoded chart, one string per terminal row.
func (c *chartView) view() string {
	if len(c.lines) == 0 {
		return strings.Repeat("\n", max(0, c.rows-1))
	}
	return strings.Join(c.lines, "\n")
}

// cellCenter maps a chart-relative cell to the surface pixel at its centre.
func cellCenter(col, row int) (float64, float64) {
	return float64(col*cellPxW + cellPxW/2), float64(row*cellPxH + cellPxH/2)
}

// zoom scales the depth window about its middle.
func (c *chartView) zoom(factor float64) {
	rng := c.config.DepthRange
	if !rng.Valid() {
		return
	}
	c.store.SetDepthRange(complog.ZoomRange(rng, (rng.Min+rng.Max)/2, factor))
}

// pan shifts the window by a fraction of its height; positive moves deeper.
func (c *chartView) pan(fraction float64) {
	rng := c.config.DepthRange
	if !rng.Valid() {
		return
	}
	const body = 1000.0
	c.store.SetDepthRange(complog.PanRange(rng, -fraction*body, body))
}
