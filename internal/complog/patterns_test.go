package complog

import (
	"bytes"
	"image/color"
	"testing"
)

func TestMatchLithologyPrecedence(t *testing.T) {
	tests := []struct {
		desc string
		want PatternKind
	}{
		{"灰黑色泥页岩", PatternShale},
		{"深灰色泥岩", PatternMudstone},
		{"浅灰色泥质砂岩", PatternMuddySandstone},
		{"灰色砂质泥岩", PatternSandyMudstone},
		{"褐灰色细砂岩", PatternSandstoneFine},
		{"灰白色砂岩", PatternSandstone},
		{"泥灰岩", PatternMarl},
		{"灰岩", PatternLimestone},
		{"钙质砂岩", PatternLimestone},
		{"煤", PatternCoal},
		{"Dark grey SHALE", PatternShale},
		{"sandy mudstone with shells", PatternSandyMudstone},
		{"Medium Sandstone", PatternSandstoneMedium},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			def := MatchLithology(tt.desc)
			if def == nil {
				t.Fatalf("MatchLithology(%q) = nil, want %s", tt.desc, tt.want)
			}
			if def.Kind != tt.want {
				t.Fatalf("MatchLithology(%q) = %s, want %s", tt.desc, def.Kind, tt.want)
			}
		})
	}

	for _, desc := range []string{"", "玄武岩", "granite"} {
		if def := MatchLithology(desc); def != nil {
			t.Fatalf("MatchLithology(%q) = %s, want nil", desc, def.Kind)
		}
	}
}

func TestPatternCacheStable(t *testing.T) {
	cache := NewPatternCache()
	base := hex("#FFFACD")

	first := cache.Pattern(PatternSandstone, base, 16)
	second := cache.Pattern(PatternSandstone, base, 16)
	if first != second {
		t.Fatal("identical inputs returned different patterns")
	}
	if cache.Generated() != 1 {
		t.Fatalf("Generated = %d, want 1", cache.Generated())
	}

	if cache.Pattern(PatternSandstone, base, 32) == first {
		t.Fatal("different tile size shared a pattern")
	}
	if cache.Pattern(PatternSandstone, hex("#000"), 16) == first {
		t.Fatal("different colour shared a pattern")
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", cache.Len())
	}
	fresh := cache.Pattern(PatternSandstone, base, 16)
	if fresh == first {
		t.Fatal("Clear did not discard the cached pattern")
	}
	if !bytes.Equal(fresh.Tile().Pix, first.Tile().Pix) {
		t.Fatal("regenerated tile differs from the original")
	}
}

func TestPatternUnknownKindIsFlat(t *testing.T) {
	cache := NewPatternCache()
	base := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	p := cache.Pattern(PatternKind("basalt"), base, 16)
	if !p.Flat() {
		t.Fatal("unknown kind produced a tile")
	}
	if got := p.At(123, -7); got != base {
		t.Fatalf("flat At = %v, want %v", got, base)
	}
	if cache.Generated() != 0 {
		t.Fatalf("Generated = %d, want 0", cache.Generated())
	}
	if cache.Pattern(PatternKind("basalt"), base, 16) != p {
		t.Fatal("flat pattern not cached")
	}
}

func TestPatternTilesRepeat(t *testing.T) {
	p := NewPatternCache().Pattern(PatternCoal, hex("#2F4F4F"), 16)
	for _, pt := range [][2]int{{0, 0}, {5, 9}, {15, 15}} {
		want := p.At(pt[0], pt[1])
		for _, shift := range [][2]int{{16, 0}, {0, 32}, {-16, -48}} {
			if got := p.At(pt[0]+shift[0], pt[1]+shift[1]); got != want {
				t.Fatalf("At(%d,%d) shifted by %v = %v, want %v", pt[0], pt[1], shift, got, want)
			}
		}
	}
}

func TestEveryKnownKindDrawsATile(t *testing.T) {
	cache := NewPatternCache()
	for _, def := range LithologyTable {
		p := cache.Pattern(def.Kind, hex(def.Color), DefaultTileSize)
		if p.Flat() {
			t.Fatalf("%s has no drawer", def.Kind)
		}
	}
}
