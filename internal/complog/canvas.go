package complog

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is an off-screen RGBA raster the Renderer draws into.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a w×h surface. Non-positive sizes are raised to 1.
func NewSurface(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))}
}

// Image exposes the backing raster.
func (s *Surface) Image() *image.RGBA { return s.img }

// Width returns the surface width in pixels.
func (s *Surface) Width() float64 { return float64(s.img.Bounds().Dx()) }

// Height returns the surface height in pixels.
func (s *Surface) Height() float64 { return float64(s.img.Bounds().Dy()) }

type hAlign int

const (
	alignLeft hAlign = iota
	alignCenter
)

type vAlign int

const (
	alignTop vAlign = iota
	alignMiddle
)

type point struct{ X, Y float64 }

// bitmapFace is the label face when no typeface is configured. basicfont
// keeps no per-draw state, so it is shared.
var bitmapFace font.Face = newLabelFace(nil, nil)

// canvas draws in surface coordinates onto an image whose top-left corner
// sits at origin. Path drawing goes through the go-chart raster context;
// text goes through an x/image font.Drawer with face.
type canvas struct {
	img    *image.RGBA
	origin image.Point
	gc     *drawing.RasterGraphicContext
	face   font.Face
}

func newCanvas(img *image.RGBA, origin image.Point) *canvas {
	gc := drawing.NewRasterGraphicContextWithPainter(img, raster.NewRGBAPainter(img))
	gc.Translate(-float64(origin.X), -float64(origin.Y))
	return &canvas{img: img, origin: origin, gc: gc, face: bitmapFace}
}

func (c *canvas) stroke(col color.Color, width float64, dash []float64) {
	c.gc.SetStrokeColor(col)
	c.gc.SetLineWidth(width)
	c.gc.SetLineDash(dash, 0)
	c.gc.Stroke()
	c.gc.SetLineDash(nil, 0)
}

func (c *canvas) line(x1, y1, x2, y2 float64, col color.Color, width float64, dash []float64) {
	c.gc.BeginPath()
	c.gc.MoveTo(x1, y1)
	c.gc.LineTo(x2, y2)
	c.stroke(col, width, dash)
}

// hline draws a horizontal rule from x to x+w.
func (c *canvas) hline(x, y, w float64, col color.Color, width float64) {
	c.line(x, y, x+w, y, col, width, nil)
}

func (c *canvas) polyline(pts []point, col color.Color, width float64, dash []float64) {
	if len(pts) < 2 {
		return
	}
	c.gc.BeginPath()
	c.gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.gc.LineTo(p.X, p.Y)
	}
	c.stroke(col, width, dash)
}

// segments strokes independent two-point segments as one path.
func (c *canvas) segments(pairs [][2]point, col color.Color, width float64, dash []float64) {
	if len(pairs) == 0 {
		return
	}
	c.gc.BeginPath()
	for _, s := range pairs {
		c.gc.MoveTo(s[0].X, s[0].Y)
		c.gc.LineTo(s[1].X, s[1].Y)
	}
	c.stroke(col, width, dash)
}

func (c *canvas) fillPolygon(pts []point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.gc.BeginPath()
	c.gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.gc.LineTo(p.X, p.Y)
	}
	c.gc.Close()
	c.gc.SetFillColor(col)
	c.gc.Fill()
}

func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fillPolygon([]point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, col)
}

func (c *canvas) strokeRect(x, y, w, h float64, col color.Color, width float64) {
	c.gc.BeginPath()
	c.gc.MoveTo(x, y)
	c.gc.LineTo(x+w, y)
	c.gc.LineTo(x+w, y+h)
	c.gc.LineTo(x, y+h)
	c.gc.Close()
	c.stroke(col, width, nil)
}

func (c *canvas) circle(cx, cy, r float64, col color.Color, fill bool, width float64) {
	c.gc.BeginPath()
	c.gc.ArcTo(cx, cy, r, r, 0, 2*math.Pi)
	c.gc.Close()
	if fill {
		c.gc.SetFillColor(col)
		c.gc.Fill()
		return
	}
	c.stroke(col, width, nil)
}

// fillImage copies src into the surface rectangle, sampling src in surface
// coordinates so tiled patterns stay anchored across tracks and frames.
func (c *canvas) fillImage(x, y, w, h float64, src image.Image) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	local := r.Sub(c.origin).Intersect(c.img.Bounds())
	if local.Empty() {
		return
	}
	draw.Draw(c.img, local, src, local.Min.Add(c.origin), draw.Src)
}

// text draws s with its anchor at (x, y). When maxW is positive the string
// is cut to fit.
func (c *canvas) text(s string, x, y float64, col color.Color, h hAlign, v vAlign, maxW float64) {
	if s == "" {
		return
	}
	if maxW > 0 {
		s = fitText(c.face, s, maxW)
	}
	w := textWidth(c.face, s)
	if h == alignCenter {
		x -= w / 2
	}
	m := c.face.Metrics()
	baseline := y + float64(m.Ascent.Ceil())
	if v == alignMiddle {
		baseline = y + float64(m.Ascent.Ceil()-m.Descent.Ceil())/2
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(math.Round(x)) - c.origin.X),
			Y: fixed.I(int(math.Round(baseline)) - c.origin.Y),
		},
	}
	d.DrawString(s)
}

// textWidth measures s in pixels with face.
func textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

// lineHeight is the advance between stacked text lines.
func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height.Ceil())
}

// fitText drops trailing runes until s fits in maxW pixels.
func fitText(face font.Face, s string, maxW float64) string {
	if textWidth(face, s) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && textWidth(face, string(runes)) > maxW {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// parseColor reads a #rgb or #rrggbb string, returning fallback on failure.
func parseColor(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// withAlpha returns c at the given opacity.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp(alpha, 0, 1) * 255))}
}

func hex(s string) color.RGBA {
	return parseColor(s, color.RGBA{A: 0xff})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
