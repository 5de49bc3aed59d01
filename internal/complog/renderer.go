package complog

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

const (
	trackGap       = 1
	depthTickMajor = 50
	depthTickMinor = 10
)

// Placeholder texts drawn in place of missing content.
const (
	NoTracksMessage   = "Select a well to display the composite log"
	NoMineralsMessage = "No mineral curves configured"
	NoTextMessage     = "No text segments configured"
)

var (
	white          = color.RGBA{0xff, 0xff, 0xff, 0xff}
	inkDark        = hex("#333")
	inkMuted       = hex("#999")
	selectionColor = hex("#409eff")
)

// TrackRect is the horizontal extent of one visible track.
type TrackRect struct {
	TrackID string
	X       float64
	Width   float64
}

// Contains reports whether x falls in [X, X+Width).
func (r TrackRect) Contains(x float64) bool {
	return x >= r.X && x < r.X+r.Width
}

// Metrics is the layout computed by the most recent Render.
type Metrics struct {
	HeaderHeight float64
	BodyTop      float64
	BodyHeight   float64
	TotalWidth   float64
	Tracks       []TrackRect
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithPatternCache makes the Renderer use an injected pattern cache.
func WithPatternCache(cache *PatternCache) Option {
	return func(r *Renderer) {
		if cache != nil {
			r.patterns = cache
		}
	}
}

// WithTypeface draws labels with tf, falling back to the bitmap face for
// runes it lacks. A nil typeface keeps the bitmap face.
func WithTypeface(tf *Typeface) Option {
	return func(r *Renderer) {
		if tf != nil {
			r.face = tf.newFace()
		}
	}
}

// Renderer draws a composite log onto a Surface. Config and data are
// borrowed from the caller and never modified.
type Renderer struct {
	surface      *Surface
	config       *CompositeLogConfig
	data         *CompositeLogData
	patterns     *PatternCache
	metrics      *Metrics
	headerHeight float64
	selected     string
	face         font.Face
}

// NewRenderer binds a renderer to a surface and the caller's config and data.
func NewRenderer(surface *Surface, config *CompositeLogConfig, data *CompositeLogData, opts ...Option) *Renderer {
	r := &Renderer{
		surface:      surface,
		config:       config,
		data:         data,
		patterns:     NewPatternCache(),
		headerHeight: minHeaderHeight,
		face:         bitmapFace,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// UpdateConfig replaces the borrowed config.
func (r *Renderer) UpdateConfig(config *CompositeLogConfig) { r.config = config }

// UpdateData replaces the borrowed data.
func (r *Renderer) UpdateData(data *CompositeLogData) { r.data = data }

// Config returns the bound config.
func (r *Renderer) Config() *CompositeLogConfig { return r.config }

// SetSelectedTrack marks a track as selected; empty clears the selection.
func (r *Renderer) SetSelectedTrack(id string) { r.selected = id }

// SelectedTrack returns the selected track id.
func (r *Renderer) SelectedTrack() string { return r.selected }

// SetSurface rebinds the renderer to a new surface. Cached pattern tiles
// belong to the previous surface and are discarded.
func (r *Renderer) SetSurface(surface *Surface) {
	r.surface = surface
	r.patterns.Clear()
	r.metrics = nil
}

// Surface returns the bound surface.
func (r *Renderer) Surface() *Surface { return r.surface }

// Patterns returns the pattern cache used for lithology fills.
func (r *Renderer) Patterns() *PatternCache { return r.patterns }

// Metrics returns the layout of the last render, or nil before the first.
func (r *Renderer) Metrics() *Metrics { return r.metrics }

// HeaderHeight returns the header height computed by the last render.
func (r *Renderer) HeaderHeight() float64 { return r.headerHeight }

// Mapper returns the depth mapper for the current range and header height.
func (r *Renderer) Mapper() Mapper {
	m := Mapper{Top: r.headerHeight, SurfaceHeight: r.surface.Height()}
	if r.config != nil {
		m.Range = r.config.DepthRange
	}
	return m
}

// DepthToY maps depth to surface y using the last computed header height.
func (r *Renderer) DepthToY(depth float64) float64 { return r.Mapper().DepthToY(depth) }

// YToDepth maps surface y to depth using the last computed header height.
func (r *Renderer) YToDepth(y float64) float64 { return r.Mapper().YToDepth(y) }

// FindTrackAtX returns the visible track under x in the last layout.
func (r *Renderer) FindTrackAtX(x float64) *TrackConfig {
	if r.metrics == nil {
		return nil
	}
	for _, rect := range r.metrics.Tracks {
		if rect.Contains(x) {
			return r.config.Track(rect.TrackID)
		}
	}
	return nil
}

// Render redraws the whole chart. It never fails: missing data is skipped
// and an empty layout produces a placeholder message.
func (r *Renderer) Render() {
	img := r.surface.Image()
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	c := r.canvas(img, image.Point{})
	width, height := r.surface.Width(), r.surface.Height()

	visible := r.config.VisibleTracks()
	if len(visible) == 0 {
		r.headerHeight = minHeaderHeight
		r.metrics = &Metrics{HeaderHeight: minHeaderHeight, BodyTop: minHeaderHeight, BodyHeight: height - minHeaderHeight}
		c.text(NoTracksMessage, width/2, height/2, inkMuted, alignCenter, alignMiddle, width)
		return
	}

	r.headerHeight = HeaderHeight(visible)
	hh := r.headerHeight
	rects := make([]TrackRect, 0, len(visible))
	x := 0.0
	for _, t := range visible {
		rects = append(rects, TrackRect{TrackID: t.ID, X: x, Width: t.Width})
		x += t.Width + trackGap
	}
	r.metrics = &Metrics{
		HeaderHeight: hh,
		BodyTop:      hh,
		BodyHeight:   height - hh,
		TotalWidth:   x,
		Tracks:       rects,
	}

	m := r.Mapper()
	if m.Range.Valid() && m.BodyHeight() > 0 {
		r.drawDepthGrid(c, m, rects)
		for i, t := range visible {
			r.drawTrackBody(t, rects[i], m)
		}
	}

	for i, t := range visible {
		if t.ID == r.selected {
			c.strokeRect(rects[i].X, 0, rects[i].Width, height, selectionColor, 2)
		}
	}

	for i, t := range visible {
		r.drawTrackHeader(c, t, rects[i], hh)
	}
}

// canvas returns a drawing context on img using the renderer's label face.
func (r *Renderer) canvas(img *image.RGBA, origin image.Point) *canvas {
	c := newCanvas(img, origin)
	c.face = r.face
	return c
}

// DrawCrosshair overlays a depth cursor on the last render. It does nothing
// when y is outside the body.
func (r *Renderer) DrawCrosshair(x, y float64) {
	m := r.Mapper()
	if !m.InBody(y) || !m.Range.Valid() {
		return
	}
	c := r.canvas(r.surface.Image(), image.Point{})
	width := r.surface.Width()
	ink := color.NRGBA{R: 0xff, A: 0x80}
	dash := []float64{4, 3}
	c.line(0, y, width, y, ink, 0.8, dash)
	c.line(x, m.Top, x, m.SurfaceHeight, ink, 0.8, dash)

	label := fmt.Sprintf("%.1f m", m.YToDepth(y))
	lx, ly := x+8, y-16
	c.fillRect(lx-2, ly-2, textWidth(c.face, label)+8, 16, color.NRGBA{R: 0xff, A: 0xcc})
	c.text(label, lx+2, ly, white, alignLeft, alignTop, 0)
}

// drawDepthGrid draws horizontal rules across the full track span.
func (r *Renderer) drawDepthGrid(c *canvas, m Mapper, rects []TrackRect) {
	if len(rects) == 0 {
		return
	}
	grid := r.config.GridOrDefault()
	x0 := rects[0].X
	last := rects[len(rects)-1]
	w := last.X + last.Width - x0

	majorColor, majorWidth := hex("#eaeaea"), 0.3
	minorColor, minorWidth := hex("#f5f5f5"), 0.2
	if grid.Enabled {
		majorColor, majorWidth = parseColor(grid.MajorColor, majorColor), grid.MajorWidth
		minorColor, minorWidth = parseColor(grid.MinorColor, minorColor), grid.MinorWidth
	}
	for _, d := range depthTicks(m.Range, depthTickMajor) {
		c.hline(x0, m.DepthToY(d), w, majorColor, majorWidth)
	}
	for _, d := range depthTicks(m.Range, depthTickMinor) {
		if isMajorTick(d) {
			continue
		}
		c.hline(x0, m.DepthToY(d), w, minorColor, minorWidth)
	}
}

// depthTicks lists the multiples of step inside the range.
func depthTicks(rng DepthRange, step float64) []float64 {
	var ticks []float64
	for k := math.Ceil(rng.Min / step); k*step <= rng.Max; k++ {
		ticks = append(ticks, k*step)
	}
	return ticks
}

func isMajorTick(d float64) bool {
	return math.Mod(d, depthTickMajor) == 0
}

// drawTrackBody draws one track on its own layer, which clips it to the
// track rectangle, then composites the layer over the surface.
func (r *Renderer) drawTrackBody(t *TrackConfig, rect TrackRect, m Mapper) {
	b := body{x: rect.X, y: m.Top, w: rect.Width, h: m.BodyHeight()}
	bounds := image.Rect(
		int(math.Floor(b.x)), int(math.Floor(b.y)),
		int(math.Ceil(b.x+b.w)), int(math.Ceil(b.y+b.h)),
	)
	if bounds.Empty() {
		return
	}
	layer := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	c := r.canvas(layer, bounds.Min)

	if t.BgColor != "" {
		c.fillRect(b.x, b.y, b.w, b.h, parseColor(t.BgColor, white))
	}
	c.strokeRect(b.x, b.y, b.w, b.h, hex("#ccc"), 0.5)

	switch t.Type {
	case TrackFormation:
		r.drawFormation(c, m, b)
	case TrackDepth:
		r.drawDepth(c, m, b)
	case TrackLithology:
		r.drawLithology(c, m, b)
	case TrackCurve:
		r.drawCurves(c, m, b, t)
	case TrackDiscrete:
		r.drawDiscrete(c, m, b, t)
	case TrackInterpretation:
		r.drawInterpretation(c, m, b)
	case TrackMineral:
		r.drawMineral(c, m, b, t)
	case TrackText:
		r.drawText(c, m, b, t)
	}

	draw.Draw(r.surface.Image(), bounds, layer, image.Point{}, draw.Over)
}
