package complog

import (
	"bytes"
	"image"
	"os"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ideographFace draws every rune as a 12x12 block whose pixels spell out
// the rune's bits, so distinct runes leave distinct marks.
type ideographFace struct{}

func (ideographFace) Close() error { return nil }

func (ideographFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	mask := image.NewAlpha(image.Rect(0, 0, 12, 12))
	for i := range mask.Pix {
		if (int(r)>>(i%16))&1 == 1 {
			mask.Pix[i] = 0xff
		}
	}
	x, y := dot.X.Round(), dot.Y.Round()
	return image.Rect(x, y-10, x+12, y+2), mask, image.Point{}, fixed.I(12), true
}

func (ideographFace) GlyphBounds(rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.R(0, -10, 12, 2), fixed.I(12), true
}

func (ideographFace) GlyphAdvance(rune) (fixed.Int26_6, bool) { return fixed.I(12), true }

func (ideographFace) Kern(rune, rune) fixed.Int26_6 { return 0 }

func (ideographFace) Metrics() font.Metrics {
	return font.Metrics{Height: fixed.I(13), Ascent: fixed.I(10), Descent: fixed.I(2)}
}

func isIdeograph(r rune) bool { return r >= 0x4e00 && r <= 0x9fff }

// renderFormationLabel draws a single formation layer named name and
// returns the raster.
func renderFormationLabel(name string, opts ...Option) []byte {
	cfg := &CompositeLogConfig{
		DepthRange: DepthRange{Min: 0, Max: 100},
		Tracks:     []TrackConfig{{ID: "f", Type: TrackFormation, Width: 120, Visible: true}},
	}
	data := &CompositeLogData{Layers: []Layer{{Formation: name, TopDepth: 0, BottomDepth: 100}}}
	s := NewSurface(120, 300)
	NewRenderer(s, cfg, data, opts...).Render()
	return s.Image().Pix
}

func TestParseTypeface(t *testing.T) {
	if _, err := ParseTypeface([]byte("not a font"), 0); err == nil {
		t.Fatal("ParseTypeface accepted garbage")
	}
	tf, err := ParseTypeface(goregular.TTF, 0)
	if err != nil {
		t.Fatalf("ParseTypeface: %v", err)
	}
	if tf.size != DefaultFontSize {
		t.Fatalf("size = %v, want %v", tf.size, DefaultFontSize)
	}
	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'—', true},
		{'Б', true},
		{'油', false},
	}
	for _, tt := range tests {
		if got := tf.Covers(tt.r); got != tt.want {
			t.Fatalf("Covers(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestLoadTypefaceMissingFile(t *testing.T) {
	if _, err := LoadTypeface(t.TempDir()+"/missing.ttf", 12); err == nil {
		t.Fatal("LoadTypeface succeeded for a missing file")
	}
}

func TestLabelFaceFallsBackToBitmap(t *testing.T) {
	tf, err := ParseTypeface(goregular.TTF, 12)
	if err != nil {
		t.Fatalf("ParseTypeface: %v", err)
	}
	face := tf.newFace().(*labelFace)
	if face.pick('A') != face.outline {
		t.Fatal("Latin rune not drawn with the typeface")
	}
	if face.pick('油') != face.basic {
		t.Fatal("uncovered rune not drawn with the bitmap face")
	}
	if adv, ok := face.GlyphAdvance('油'); !ok || adv <= 0 {
		t.Fatalf("GlyphAdvance(油) = %v, %v, want a positive advance", adv, ok)
	}

	var nilTypeface *Typeface
	if f := nilTypeface.newFace().(*labelFace); f.outline != nil {
		t.Fatal("nil typeface produced an outline face")
	}
}

func TestTypefaceLabelsRasteriseDistinctly(t *testing.T) {
	tf, err := ParseTypeface(goregular.TTF, 12)
	if err != nil {
		t.Fatalf("ParseTypeface: %v", err)
	}
	a := renderFormationLabel("Пласт А", WithTypeface(tf))
	b := renderFormationLabel("Пласт Б", WithTypeface(tf))
	if bytes.Equal(a, b) {
		t.Fatal("different Cyrillic labels produced identical rasters")
	}
}

func TestIdeographLabelsRasteriseDistinctly(t *testing.T) {
	withIdeographs := func(r *Renderer) { r.face = newLabelFace(ideographFace{}, isIdeograph) }

	shahejie := renderFormationLabel("沙河街组", withIdeographs)
	dongying := renderFormationLabel("东营组一", withIdeographs)
	unknown := renderFormationLabel("????", withIdeographs)
	if bytes.Equal(shahejie, dongying) {
		t.Fatal("沙河街组 and 东营组一 rasterise identically")
	}
	if bytes.Equal(shahejie, unknown) {
		t.Fatal("沙河街组 rasterises like ????")
	}
}

// cjkFont returns a CJK-capable system font, or skips the test.
func cjkFont(t *testing.T) string {
	t.Helper()
	candidates := []string{os.Getenv("STRATA_CJK_FONT")}
	candidates = append(candidates, SystemFontCandidates...)
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("no CJK font installed")
	return ""
}

func TestChineseLabelsWithSystemFont(t *testing.T) {
	tf, err := LoadTypeface(cjkFont(t), 12)
	if err != nil {
		t.Fatalf("LoadTypeface: %v", err)
	}
	if !tf.Covers('油') {
		t.Fatal("system CJK font does not cover 油")
	}
	oil := renderFormationLabel("油层", WithTypeface(tf))
	water := renderFormationLabel("水层", WithTypeface(tf))
	if bytes.Equal(oil, water) {
		t.Fatal("油层 and 水层 rasterise identically")
	}
}

func TestFindTypefaceSkipsFontsWithoutChinese(t *testing.T) {
	dir := t.TempDir()
	latin := dir + "/goregular.ttf"
	if err := os.WriteFile(latin, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	broken := dir + "/broken.ttf"
	if err := os.WriteFile(broken, []byte("nope"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	if tf, path := FindTypeface([]string{dir + "/missing.ttc", broken, latin}, 12); tf != nil || path != "" {
		t.Fatalf("FindTypeface = %v, %q, want nothing", tf, path)
	}
}
