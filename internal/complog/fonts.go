package complog

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the label size in pixels for outline typefaces.
const DefaultFontSize = 12

// SystemFontCandidates are CJK-capable fonts tried in order when no label
// font is configured.
var SystemFontCandidates = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/wqy-microhei/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/STHeiti Medium.ttc",
	`C:\Windows\Fonts\msyh.ttc`,
	`C:\Windows\Fonts\simsun.ttc`,
}

// Typeface is a parsed outline font for chart labels. It may be shared by
// any number of renderers; each renderer draws through its own face.
type Typeface struct {
	font *sfnt.Font
	size float64
}

// LoadTypeface reads a TrueType or OpenType font, or the first font of a
// .ttc/.otc collection, from path. A non-positive size uses DefaultFontSize.
func LoadTypeface(path string, size float64) (*Typeface, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tf, err := ParseTypeface(raw, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tf, nil
}

// FindTypeface loads the first path that holds a font covering Chinese
// text. It returns nil and an empty path when none does.
func FindTypeface(paths []string, size float64) (*Typeface, string) {
	for _, path := range paths {
		tf, err := LoadTypeface(path, size)
		if err != nil || !tf.Covers('层') {
			continue
		}
		return tf, path
	}
	return nil, ""
}

// ParseTypeface parses font data the way LoadTypeface does. raw must not be
// modified while the typeface is in use.
func ParseTypeface(raw []byte, size float64) (*Typeface, error) {
	coll, err := opentype.ParseCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("parse font: empty collection")
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return &Typeface{font: f, size: size}, nil
}

// Covers reports whether the typeface has a glyph for r.
func (t *Typeface) Covers(r rune) bool {
	var buf sfnt.Buffer
	idx, err := t.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// newFace returns a label face that draws with t and falls back to the
// bitmap face for runes t lacks. A nil typeface yields the bitmap face.
func (t *Typeface) newFace() font.Face {
	if t == nil {
		return newLabelFace(nil, nil)
	}
	outline, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    t.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return newLabelFace(nil, nil)
	}
	var buf sfnt.Buffer
	return newLabelFace(outline, func(r rune) bool {
		idx, err := t.font.GlyphIndex(&buf, r)
		return err == nil && idx != 0
	})
}

// labelFace draws each rune with the outline face when it covers the rune
// and with basicfont otherwise. basicfont itself renders U+FFFD for runes
// outside its ranges, so every rune keeps a width.
type labelFace struct {
	outline font.Face
	covers  func(rune) bool
	basic   font.Face
}

func newLabelFace(outline font.Face, covers func(rune) bool) *labelFace {
	return &labelFace{outline: outline, covers: covers, basic: basicfont.Face7x13}
}

func (f *labelFace) pick(r rune) font.Face {
	if f.outline != nil && f.covers(r) {
		return f.outline
	}
	return f.basic
}

func (f *labelFace) Close() error { return nil }

func (f *labelFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return f.pick(r).Glyph(dot, r)
}

func (f *labelFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return f.pick(r).GlyphBounds(r)
}

func (f *labelFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.pick(r).GlyphAdvance(r)
}

func (f *labelFace) Kern(r0, r1 rune) fixed.Int26_6 {
	if face := f.pick(r0); face == f.pick(r1) {
		return face.Kern(r0, r1)
	}
	return 0
}

// Metrics are the outline face's when one is loaded so mixed runs share a
// baseline.
func (f *labelFace) Metrics() font.Metrics {
	if f.outline != nil {
		return f.outline.Metrics()
	}
	return f.basic.Metrics()
}
