package complog

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/image/font"
)

// body is a track's rectangle below the header.
type body struct {
	x, y, w, h float64
}

func (b body) bottom() float64 { return b.y + b.h }

// span clips the depth interval [top, bottom] to the body. ok is false when
// the interval lies entirely outside.
func (b body) span(m Mapper, top, bottom float64) (y1, y2 float64, ok bool) {
	y1, y2 = m.DepthToY(top), m.DepthToY(bottom)
	if y2 < b.y || y1 > b.bottom() {
		return 0, 0, false
	}
	return math.Max(y1, b.y), math.Min(y2, b.bottom()), true
}

var formationPalette = []string{
	"#E8F5E9", "#E3F2FD", "#FFF3E0", "#F3E5F5", "#FFFDE7", "#FCE4EC",
	"#E0F7FA", "#FBE9E7", "#F1F8E9", "#EDE7F6", "#FFF8E1", "#EFEBE9",
}

const (
	formationMinLabelHeight = 14
	formationNarrowWidth    = 60
	formationVerticalRunes  = 3
	formationCharStep       = 11
	interpMinLabelHeight    = 12
	interpAccentWidth       = 4
	curveMargin             = 2
	mineralMinSegment       = 0.3
	mineralMinBar           = 0.5
	mineralDepthTolerance   = 0.5
	mineralGuideStep        = 50
	textPadding             = 3
)

func (r *Renderer) drawFormation(c *canvas, m Mapper, b body) {
	if r.data == nil || len(r.data.Layers) == 0 {
		return
	}
	boundary := hex("#888")
	layers := r.data.Layers
	for i, layer := range layers {
		y1, y2, ok := b.span(m, layer.TopDepth, layer.BottomDepth)
		if !ok {
			continue
		}
		c.fillRect(b.x, y1, b.w, y2-y1, hex(formationPalette[i%len(formationPalette)]))
		c.hline(b.x, y1, b.w, boundary, 0.7)

		if y2-y1 <= formationMinLabelHeight {
			continue
		}
		mid := (y1 + y2) / 2
		name := []rune(layer.Formation)
		if b.w < formationNarrowWidth && len(name) > formationVerticalRunes {
			for ci, ch := range name {
				cy := mid - float64(len(name)-1)*formationCharStep/2 + float64(ci)*formationCharStep
				if cy > y1+2 && cy < y2-2 {
					c.text(string(ch), b.x+b.w/2, cy, inkDark, alignCenter, alignMiddle, 0)
				}
			}
			continue
		}
		c.text(layer.Formation, b.x+b.w/2, mid, inkDark, alignCenter, alignMiddle, b.w-4)
	}

	lastY := m.DepthToY(layers[len(layers)-1].BottomDepth)
	if lastY >= b.y && lastY <= b.bottom() {
		c.hline(b.x, lastY, b.w, boundary, 0.7)
	}
}

func (r *Renderer) drawDepth(c *canvas, m Mapper, b body) {
	major, minor := inkDark, hex("#aaa")
	for _, d := range depthTicks(m.Range, depthTickMajor) {
		y := m.DepthToY(d)
		c.hline(b.x, y, 6, major, 1)
		c.hline(b.x+b.w-6, y, 6, major, 1)
		c.text(formatDepth(d), b.x+b.w/2, y, inkDark, alignCenter, alignMiddle, 0)
	}
	for _, d := range depthTicks(m.Range, depthTickMinor) {
		if isMajorTick(d) {
			continue
		}
		y := m.DepthToY(d)
		c.hline(b.x, y, 3, minor, 0.5)
		c.hline(b.x+b.w-3, y, 3, minor, 0.5)
	}
}

func (r *Renderer) drawLithology(c *canvas, m Mapper, b body) {
	if r.data == nil {
		return
	}
	boundary := hex("#999")
	for _, li := range r.data.Lithology {
		y1, y2, ok := b.span(m, li.TopDepth, li.BottomDepth)
		if !ok {
			continue
		}
		if def := MatchLithology(li.Description); def != nil {
			c.fillImage(b.x, y1, b.w, y2-y1, r.patterns.Pattern(def.Kind, hex(def.Color), DefaultTileSize))
		} else {
			c.fillRect(b.x, y1, b.w, y2-y1, lithologyFallback)
		}
		c.hline(b.x, y1, b.w, boundary, 0.3)
	}
}

// curvePoints maps the valid samples of a curve into the track. Samples
// that land more than curveMargin pixels outside the body are dropped.
func (r *Renderer) curvePoints(m Mapper, b body, cs CurveStyle) []point {
	if r.data == nil {
		return nil
	}
	samples := r.data.Curve(cs.CurveName)
	if len(samples) == 0 {
		return nil
	}
	scale, ok := newValueScale(cs, b.x, b.w)
	if !ok {
		return nil
	}
	pts := make([]point, 0, len(samples))
	for _, s := range samples {
		if !s.Valid() {
			continue
		}
		y := m.DepthToY(s.Depth)
		if y < b.y-curveMargin || y > b.bottom()+curveMargin {
			continue
		}
		pts = append(pts, point{X: scale.X(s.Value), Y: y})
	}
	return pts
}

func (r *Renderer) drawCurves(c *canvas, m Mapper, b body, t *TrackConfig) {
	if len(t.Curves) == 0 {
		return
	}
	r.drawVerticalGrid(c, b)
	for _, cs := range t.Curves {
		pts := r.curvePoints(m, b, cs)
		if len(pts) < 2 {
			continue
		}
		col := parseColor(cs.Color, inkDark)
		if cs.Fill != nil {
			baseX := b.x + b.w
			if cs.Fill.Direction == FillLeft {
				baseX = b.x
			}
			poly := make([]point, 0, len(pts)+2)
			poly = append(poly, point{baseX, pts[0].Y})
			poly = append(poly, pts...)
			poly = append(poly, point{baseX, pts[len(pts)-1].Y})
			c.fillPolygon(poly, withAlpha(parseColor(cs.Fill.Color, col), 0.25))
		}
		if cs.Mode() == DrawBar {
			c.segments(bars(b.x, pts), col, cs.LineWidth, cs.LineStyle.dash())
			continue
		}
		c.polyline(pts, col, cs.LineWidth, cs.LineStyle.dash())
	}
}

func (r *Renderer) drawDiscrete(c *canvas, m Mapper, b body, t *TrackConfig) {
	if len(t.Curves) == 0 {
		return
	}
	r.drawVerticalGrid(c, b)
	for _, cs := range t.Curves {
		pts := r.curvePoints(m, b, cs)
		if len(pts) < 2 {
			continue
		}
		col := parseColor(cs.Color, inkDark)
		if cs.Mode() == DrawBar {
			c.segments(bars(b.x, pts), col, cs.LineWidth, cs.LineStyle.dash())
			continue
		}
		c.polyline(staircase(pts), col, cs.LineWidth, cs.LineStyle.dash())
	}
}

// bars returns one horizontal segment per point, from the left edge.
func bars(left float64, pts []point) [][2]point {
	out := make([][2]point, len(pts))
	for i, p := range pts {
		out[i] = [2]point{{left, p.Y}, p}
	}
	return out
}

// staircase inserts a corner before each point so the trace keeps the
// previous value until the next sample depth.
func staircase(pts []point) []point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]point, 0, len(pts)*2-1)
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		out = append(out, point{pts[i-1].X, pts[i].Y}, pts[i])
	}
	return out
}

// drawVerticalGrid subdivides a curve track by the configured value grid.
func (r *Renderer) drawVerticalGrid(c *canvas, b body) {
	grid := r.config.GridOrDefault()
	if !grid.Enabled || grid.MajorInterval < 2 {
		return
	}
	major := float64(grid.MajorInterval)
	majorColor := parseColor(grid.MajorColor, hex("#e0e0e0"))
	for i := 1; i < grid.MajorInterval; i++ {
		x := b.x + b.w*float64(i)/major
		c.line(x, b.y, x, b.bottom(), majorColor, grid.MajorWidth, nil)
	}
	if grid.MinorInterval <= 0 {
		return
	}
	minor := float64(grid.MinorInterval)
	minorColor := parseColor(grid.MinorColor, hex("#f0f0f0"))
	segW := b.w / major
	for i := 0; i < grid.MajorInterval; i++ {
		start := b.x + segW*float64(i)
		for j := 1; j < grid.MinorInterval; j++ {
			x := start + segW*float64(j)/minor
			c.line(x, b.y, x, b.bottom(), minorColor, grid.MinorWidth, nil)
		}
	}
}

func (r *Renderer) drawInterpretation(c *canvas, m Mapper, b body) {
	if r.data == nil {
		return
	}
	boundary := hex("#999")
	for _, in := range r.data.Interpretations {
		y1, y2, ok := b.span(m, in.TopDepth, in.BottomDepth)
		if !ok {
			continue
		}
		key := in.Label()
		fill := interpretationColor(key)
		c.fillRect(b.x+1, y1, b.w-2, y2-y1, withAlpha(fill, 0.5))
		c.fillRect(b.x, y1, interpAccentWidth, y2-y1, fill)
		c.hline(b.x, y1, b.w, boundary, 0.5)
		if y2-y1 > interpMinLabelHeight {
			c.text(key, b.x+b.w/2, (y1+y2)/2, inkDark, alignCenter, alignMiddle, b.w-8)
		}
	}
}

func (r *Renderer) drawMineral(c *canvas, m Mapper, b body, t *TrackConfig) {
	if len(t.MineralCurves) == 0 {
		c.text(NoMineralsMessage, b.x+b.w/2, b.y+b.h/2, inkMuted, alignCenter, alignMiddle, b.w)
		return
	}
	if r.data == nil {
		return
	}
	first := r.data.Curve(t.MineralCurves[0].CurveName)
	if len(first) > 0 {
		r.drawMineralRows(c, m, b, t.MineralCurves, first)
	}

	guide := hex("#ccc")
	for _, d := range depthTicks(m.Range, mineralGuideStep) {
		y := m.DepthToY(d)
		if y >= b.y && y <= b.bottom() {
			c.hline(b.x, y, b.w, guide, 0.3)
		}
	}
}

func (r *Renderer) drawMineralRows(c *canvas, m Mapper, b body, minerals []MineralCurve, first []Sample) {
	type part struct {
		value float64
		color string
	}
	parts := make([]part, 0, len(minerals))
	for i, s := range first {
		y := m.DepthToY(s.Depth)
		if y < b.y-1 || y > b.bottom()+1 {
			continue
		}
		next := s.Depth + mineralMinBar
		if i+1 < len(first) {
			next = first[i+1].Depth
		}
		barH := math.Max(m.DepthToY(next)-y, mineralMinBar)

		parts = parts[:0]
		total := 0.0
		for _, mc := range minerals {
			samples := r.data.Curve(mc.CurveName)
			if samples == nil {
				continue
			}
			v := 0.0
			if sample, ok := sampleAt(samples, i, s.Depth); ok && sample.Valid() {
				v = math.Max(0, sample.Value)
			}
			parts = append(parts, part{value: v, color: mc.Color})
			total += v
		}
		if total <= 0 {
			continue
		}
		x := b.x
		for _, p := range parts {
			w := p.value / total * b.w
			if w >= mineralMinSegment {
				c.fillRect(x, y, w, barH, parseColor(p.color, inkMuted))
			}
			x += w
		}
	}
}

// sampleAt returns samples[i] when it sits at depth, otherwise the sample
// nearest to depth within mineralDepthTolerance. samples must be ordered by
// depth.
func sampleAt(samples []Sample, i int, depth float64) (Sample, bool) {
	if i < len(samples) && math.Abs(samples[i].Depth-depth) < mineralDepthTolerance {
		return samples[i], true
	}
	j := sort.Search(len(samples), func(k int) bool { return samples[k].Depth >= depth })
	best, bestDist := -1, mineralDepthTolerance
	for _, k := range []int{j - 1, j} {
		if k < 0 || k >= len(samples) {
			continue
		}
		if d := math.Abs(samples[k].Depth - depth); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best < 0 {
		return Sample{}, false
	}
	return samples[best], true
}

func (r *Renderer) drawText(c *canvas, m Mapper, b body, t *TrackConfig) {
	if len(t.TextContent) == 0 {
		c.text(NoTextMessage, b.x+b.w/2, b.y+b.h/2, inkMuted, alignCenter, alignMiddle, b.w)
		return
	}
	rule := hex("#ccc")
	lh := lineHeight(c.face)
	for _, seg := range t.TextContent {
		y1, y2, ok := b.span(m, seg.TopDepth, seg.BottomDepth)
		if !ok {
			continue
		}
		c.hline(b.x, y1, b.w, rule, 0.5)
		ink := parseColor(seg.Color, inkDark)
		y := y1 + textPadding
		for _, line := range wrapText(c.face, seg.Text, b.w-2*textPadding) {
			if y+lh > y2 {
				break
			}
			c.text(line, b.x+textPadding, y, ink, alignLeft, alignTop, 0)
			y += lh
		}
	}
}

// wrapText greedily breaks s into lines no wider than maxW. Lines break at
// the last space when one exists, otherwise between runes. Newlines in s
// always start a new line.
func wrapText(face font.Face, s string, maxW float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line []rune
		for _, ch := range para {
			candidate := append(line, ch)
			if len(line) == 0 || textWidth(face, string(candidate)) <= maxW {
				line = candidate
				continue
			}
			cut := len(line)
			if sp := lastSpace(line); sp > 0 && !unicode.IsSpace(ch) {
				cut = sp
			}
			lines = append(lines, strings.TrimRightFunc(string(line[:cut]), unicode.IsSpace))
			rest := []rune(strings.TrimLeftFunc(string(line[cut:]), unicode.IsSpace))
			if !unicode.IsSpace(ch) {
				rest = append(rest, ch)
			}
			line = rest
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
