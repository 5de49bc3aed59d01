package views

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// Chart size used when the caller leaves Width or Height at zero.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

// ErrNoValues is returned when nothing is left to plot after filtering.
var ErrNoValues = errors.New("no valid samples to plot")

// HistogramOptions controls the histogram picture.
type HistogramOptions struct {
	Unit   string
	Color  string
	Width  int
	Height int
}

// RenderHistogram writes d as a PNG bar chart.
func RenderHistogram(w io.Writer, d Distribution, opts HistogramOptions) error {
	if len(d.Bins) == 0 {
		return fmt.Errorf("histogram %s: %w", d.Curve, ErrNoValues)
	}
	width, height := chartSize(opts.Width, opts.Height)

	barColor := seriesColor(opts.Color)
	labelEvery := max(1, len(d.Bins)/8)
	bars := make([]chart.Value, len(d.Bins))
	for i, b := range d.Bins {
		label := ""
		if i%labelEvery == 0 {
			label = formatTick(b.Min)
		}
		bars[i] = chart.Value{
			Value: float64(b.Count),
			Label: label,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 1},
		}
	}

	plotWidth := width - 120
	barWidth := max(2, plotWidth/len(bars)-2)
	peak := float64(max(1, d.MaxCount()))

	bc := chart.BarChart{
		Title:      histogramTitle(d, opts.Unit),
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: 2,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{StrokeWidth: 1},
		YAxis: chart.YAxis{
			Name:           "count",
			Range:          &chart.ContinuousRange{Min: 0, Max: peak},
			ValueFormatter: tickLabel,
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render histogram %s: %w", d.Curve, err)
	}
	return nil
}

func histogramTitle(d Distribution, unit string) string {
	name := d.Curve
	if unit != "" {
		name += " (" + unit + ")"
	}
	s := d.Summary
	title := fmt.Sprintf("%s  n=%d  mean=%s  median=%s  sd=%s", name, s.Count,
		formatTick(s.Mean), formatTick(s.Median), formatTick(s.StdDev))
	if d.Clip != nil {
		title += fmt.Sprintf("  [%s, dropped %d]", d.Method.Label(), d.Dropped())
	}
	return title
}

func chartSize(w, h int) (int, int) {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}
