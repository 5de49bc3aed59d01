package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestDownscaleSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 60, 120))
	got := downscale(src, 10, 10).Bounds()
	if got.Dx() != 10 || got.Dy() != 20 {
		t.Fatalf("downscale bounds = %v, want 10x20", got)
	}
}

func TestHalfBlocksAscii(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	lines := halfBlocks(img, termenv.Ascii)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 for 3 pixel rows", len(lines))
	}
	for i, line := range lines {
		if line != strings.Repeat("▀", 4) {
			t.Fatalf("line %d = %q, want four bare half blocks", i, line)
		}
	}
}

func TestHalfBlocksTrueColorMergesRuns(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for x := range 3 {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	img.SetRGBA(2, 1, red)

	lines := halfBlocks(img, termenv.TrueColor)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	want := termenv.CSI + "38;2;255;0;0;48;2;0;0;255m" + "▀▀" +
		termenv.CSI + "38;2;255;0;0;48;2;255;0;0m" + "▀" +
		termenv.CSI + termenv.ResetSeq + "m"
	if lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}); got != "#123456" {
		t.Fatalf("hexColor = %q, want #123456", got)
	}
}
