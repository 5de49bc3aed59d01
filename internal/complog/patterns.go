package complog

import (
	"image"
	"image/color"
)

// DefaultTileSize is the edge length of a lithology tile in pixels.
const DefaultTileSize = 16

// Pattern is a repeating fill. It implements image.Image over the whole
// plane so it can be sampled at surface coordinates. A Pattern without a
// tile is a flat fill of Color.
type Pattern struct {
	Kind  PatternKind
	Color color.RGBA
	Size  int
	tile  *image.RGBA
}

// Flat reports whether the pattern degrades to a plain colour.
func (p *Pattern) Flat() bool { return p.tile == nil }

// Tile returns the generated tile, or nil for flat patterns.
func (p *Pattern) Tile() *image.RGBA { return p.tile }

func (p *Pattern) ColorModel() color.Model { return color.RGBAModel }

func (p *Pattern) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (p *Pattern) At(x, y int) color.Color {
	if p.tile == nil {
		return p.Color
	}
	return p.tile.RGBAAt(mod(x, p.Size), mod(y, p.Size))
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

type patternKey struct {
	kind  PatternKind
	color color.RGBA
	size  int
}

// PatternCache memoizes generated tiles by (kind, colour, size). It is owned
// by one Renderer and is not safe for concurrent use.
type PatternCache struct {
	entries   map[patternKey]*Pattern
	generated int
}

// NewPatternCache returns an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{entries: make(map[patternKey]*Pattern)}
}

// Pattern returns the cached pattern for the inputs, generating the tile on
// first use. Unknown kinds yield a flat pattern of base.
func (c *PatternCache) Pattern(kind PatternKind, base color.RGBA, size int) *Pattern {
	if size <= 0 {
		size = DefaultTileSize
	}
	key := patternKey{kind: kind, color: base, size: size}
	if p, ok := c.entries[key]; ok {
		return p
	}
	p := &Pattern{Kind: kind, Color: base, Size: size}
	if drawer, ok := patternDrawers[kind]; ok {
		p.tile = image.NewRGBA(image.Rect(0, 0, size, size))
		drawer(newCanvas(p.tile, image.Point{}), float64(size), base)
		c.generated++
	}
	c.entries[key] = p
	return p
}

// Clear discards every cached pattern.
func (c *PatternCache) Clear() {
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *PatternCache) Len() int { return len(c.entries) }

// Generated counts tile rasters produced over the cache's lifetime.
func (c *PatternCache) Generated() int { return c.generated }

type patternDrawer func(c *canvas, s float64, bg color.RGBA)

var patternDrawers = map[PatternKind]patternDrawer{
	PatternSandstone:       drawSandstone,
	PatternSandstoneCoarse: drawSandstoneCoarse,
	PatternSandstoneMedium: drawSandstoneMedium,
	PatternSandstoneFine:   drawSandstoneFine,
	PatternSiltstone:       drawSiltstone,
	PatternMudstone:        drawMudstone,
	PatternShale:           drawShale,
	PatternSandyMudstone:   drawSandyMudstone,
	PatternMuddySandstone:  drawMuddySandstone,
	PatternLimestone:       drawLimestone,
	PatternDolomite:        drawDolomite,
	PatternMarl:            drawMarl,
	PatternConglomerate:    drawConglomerate,
	PatternCoal:            drawCoal,
}

var (
	grainBrown = hex("#8B7355")
	grainDark  = hex("#8B6914")
	grainPale  = hex("#9E8B6E")
)

func background(c *canvas, s float64, bg color.RGBA) {
	c.fillRect(0, 0, s, s, bg)
}

func dots(c *canvas, pts [][2]float64, r float64, col color.RGBA) {
	for _, p := range pts {
		c.circle(p[0], p[1], r, col, true, 0)
	}
}

func dotGrid(c *canvas, s, start, step, r float64, col color.RGBA) {
	for y := start; y < s; y += step {
		for x := start; x < s; x += step {
			c.circle(x, y, r, col, true, 0)
		}
	}
}

var fiveDots = [][2]float64{{4, 4}, {12, 4}, {8, 8}, {4, 12}, {12, 12}}

func drawSandstone(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	dots(c, fiveDots, 1.0, grainBrown)
}

func drawSandstoneCoarse(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	dots(c, [][2]float64{{4, 4}, {12, 4}, {8, 9}, {4, 13}, {12, 13}}, 1.5, grainDark)
}

func drawSandstoneMedium(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	dots(c, fiveDots, 1.2, grainBrown)
}

func drawSandstoneFine(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	dotGrid(c, s, 3, 5, 0.7, grainPale)
}

func drawSiltstone(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	dotGrid(c, s, 2, 3, 0.5, grainBrown)
}

func drawMudstone(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	for y := 4.0; y < s; y += 4 {
		c.hline(0, y, s, hex("#666"), 0.6)
	}
}

func drawShale(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	for y := 3.0; y < s; y += 4 {
		for x := 0.0; x < s; x += 5 {
			c.hline(x, y, 3, hex("#555"), 0.5)
		}
	}
}

func drawSandyMudstone(c *canvas, s float64, bg color.RGBA) {
	drawMudstone(c, s, bg)
	dots(c, [][2]float64{{4, 6}, {12, 10}, {8, 14}}, 0.8, grainBrown)
}

func drawMuddySandstone(c *canvas, s float64, bg color.RGBA) {
	drawSandstone(c, s, bg)
	c.hline(0, s/2, s, hex("#888"), 0.4)
}

func drawLimestone(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	ink := hex("#4682B4")
	c.line(0, s/2, s, s/2, ink, 0.6, nil)
	c.line(s/2, 0, s/2, s/2, ink, 0.6, nil)
	c.line(0, 0, 0, s/2, ink, 0.6, nil)
	c.line(s/4, s/2, s/4, s, ink, 0.6, nil)
	c.line(s*3/4, s/2, s*3/4, s, ink, 0.6, nil)
}

func drawDolomite(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	h := s / 2
	c.polyline([]point{{h, 1}, {s - 1, h}, {h, s - 1}, {1, h}, {h, 1}}, hex("#8B008B"), 0.6, nil)
}

func drawMarl(c *canvas, s float64, bg color.RGBA) {
	drawLimestone(c, s, bg)
	dash := []float64{1.5, 1.5}
	c.line(0, s/4, s, s/4, hex("#777"), 0.3, dash)
	c.line(0, s*3/4, s, s*3/4, hex("#777"), 0.3, dash)
}

func drawConglomerate(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	for _, p := range [][3]float64{{5, 5, 2.5}, {12, 8, 2}, {7, 13, 1.8}} {
		c.circle(p[0], p[1], p[2], hex("#8B4513"), false, 0.7)
	}
}

func drawCoal(c *canvas, s float64, bg color.RGBA) {
	background(c, s, bg)
	ink := color.RGBA{A: 0xff}
	for i := -s; i < s*2; i += 4 {
		c.line(i, 0, i+s, s, ink, 0.7, nil)
		c.line(i+s, 0, i, s, ink, 0.7, nil)
	}
}

