package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
)

// Each terminal cell shows two vertically stacked pixels: the upper half
// block is painted in the foreground colour and the lower half in the
// background colour.
const upperHalf = '▀'

// downscale resamples src to cols x 2*rows pixels.
func downscale(src image.Image, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// halfBlocks encodes img as one line of upper-half blocks per pixel row
// pair. Colour sequences are only emitted when a colour changes. An odd
// final row is paired with itself.
func halfBlocks(img *image.RGBA, profile termenv.Profile) []string {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		var lastFg, lastBg string
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			fg, bg := hexColor(top), hexColor(bottom)
			if fg != lastFg || bg != lastBg {
				writeColors(&sb, profile, fg, bg)
				lastFg, lastBg = fg, bg
			}
			sb.WriteRune(upperHalf)
		}
		if lastFg != "" && profile != termenv.Ascii {
			sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func writeColors(sb *strings.Builder, profile termenv.Profile, fg, bg string) {
	var seqs []string
	if s := profile.Color(fg).Sequence(false); s != "" {
		seqs = append(seqs, s)
	}
	if s := profile.Color(bg).Sequence(true); s != "" {
		seqs = append(seqs, s)
	}
	if len(seqs) == 0 {
		return
	}
	sb.WriteString(termenv.CSI + strings.Join(seqs, ";") + "m")
}

func hexColor(c color.RGBA) string {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return col.Hex()
}
