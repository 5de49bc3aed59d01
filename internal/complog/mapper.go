package complog

import "math"

// Header layout, in pixels.
const (
	headerTitleHeight = 18
	headerCurveHeight = 24
	headerPadding     = 6
	minHeaderHeight   = 44
)

// HeaderHeight returns the header height needed by the given tracks: room
// for the title row plus one legend row per curve of the busiest visible
// curve or discrete track.
func HeaderHeight(tracks []*TrackConfig) float64 {
	maxCurves := 0
	for _, t := range tracks {
		if t.Visible && t.Type.HasCurves() {
			maxCurves = max(maxCurves, len(t.Curves))
		}
	}
	return math.Max(minHeaderHeight, headerTitleHeight+float64(maxCurves)*headerCurveHeight+2*headerPadding)
}

// Mapper converts between depth and surface y for one render pass. The body
// starts at Top (the header height) and extends to the surface bottom.
type Mapper struct {
	Range         DepthRange
	Top           float64
	SurfaceHeight float64
}

// BodyHeight returns the height of the depth body in pixels.
func (m Mapper) BodyHeight() float64 {
	return m.SurfaceHeight - m.Top
}

// DepthToY maps a depth to a surface y coordinate.
func (m Mapper) DepthToY(depth float64) float64 {
	return m.Top + (depth-m.Range.Min)/m.Range.Width()*m.BodyHeight()
}

// YToDepth maps a surface y coordinate back to depth.
func (m Mapper) YToDepth(y float64) float64 {
	return m.Range.Min + (y-m.Top)/m.BodyHeight()*m.Range.Width()
}

// InBody reports whether y lies inside the depth body.
func (m Mapper) InBody(y float64) bool {
	return y >= m.Top && y <= m.SurfaceHeight
}

// valueScale maps curve values to x inside a track.
type valueScale struct {
	min, max    float64
	logarithmic bool
	x, w        float64
}

// newValueScale returns false when the curve domain is degenerate.
// Logarithmic scaling applies only to strictly positive domains.
func newValueScale(cs CurveStyle, x, w float64) (valueScale, bool) {
	if cs.Degenerate() {
		return valueScale{}, false
	}
	return valueScale{
		min:         cs.Min,
		max:         cs.Max,
		logarithmic: cs.Logarithmic && cs.Min > 0,
		x:           x,
		w:           w,
	}, true
}

// X maps v to a track x clamped to the track bounds.
func (s valueScale) X(v float64) float64 {
	var frac float64
	if s.logarithmic {
		lo, hi := math.Log10(s.min), math.Log10(s.max)
		frac = (math.Log10(math.Max(v, s.min)) - lo) / (hi - lo)
	} else {
		frac = (v - s.min) / (s.max - s.min)
	}
	return clamp(s.x+frac*s.w, s.x, s.x+s.w)
}
