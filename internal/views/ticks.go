package views

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// tickLabel is a chart.ValueFormatter that labels go-chart's generated
// ticks with formatTick.
func tickLabel(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return formatTick(n)
	case float32:
		return formatTick(float64(n))
	case int:
		return formatTick(float64(n))
	case int64:
		return formatTick(float64(n))
	default:
		return ""
	}
}

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}

// seriesColor parses a #rrggbb colour, falling back to go-chart's blue.
func seriesColor(s string) drawing.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return chart.ColorBlue
	}
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
