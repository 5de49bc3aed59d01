package complog

import (
	"fmt"
	"math"
	"strconv"
)

var (
	headerBackground         = hex("#f5f5f5")
	selectedHeaderBackground = hex("#e8f0fe")
	headerBorder             = hex("#bbb")
)

func (r *Renderer) drawTrackHeader(c *canvas, t *TrackConfig, rect TrackRect, hh float64) {
	x, w := rect.X, rect.Width
	if t.ID == r.selected {
		c.fillRect(x, 0, w, hh, selectedHeaderBackground)
		c.strokeRect(x, 0, w, hh, selectionColor, 1.5)
	} else {
		c.fillRect(x, 0, w, hh, headerBackground)
		c.strokeRect(x, 0, w, hh, headerBorder, 0.5)
	}
	c.text(t.Title, x+w/2, headerPadding, inkDark, alignCenter, alignTop, w-6)

	if !t.Type.HasCurves() {
		return
	}
	y := float64(headerTitleHeight + headerPadding)
	for _, cs := range t.Curves {
		c.text(cs.Legend(), x+w/2, y, inkDark, alignCenter, alignTop, w-8)
		y += 13
		c.line(x+4, y+2, x+w-4, y+2, parseColor(cs.Color, inkDark), math.Max(cs.LineWidth, 1.5), cs.LineStyle.dash())
		y += 10
	}
}

// formatNumber prints v the shortest way that round-trips, so 3.0 is "3".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDepth(d float64) string {
	return fmt.Sprintf("%.0f", d)
}
