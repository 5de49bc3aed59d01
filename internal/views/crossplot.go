package views

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/stats"
)

// Crossplot pairs two curves sampled at the same depths.
type Crossplot struct {
	X, Y        string
	Method      stats.Method
	XValues     []float64
	YValues     []float64
	Paired      int
	Correlation float64
}

// Dropped returns how many paired points the outlier method removed.
func (c Crossplot) Dropped() int {
	return c.Paired - len(c.XValues)
}

// NewCrossplot pairs the valid samples of xs and ys that share a depth
// inside window, then drops points that either axis's outlier range
// rejects. Correlation is Pearson's r of the kept points, or NaN when
// fewer than two remain.
func NewCrossplot(xName string, xs []complog.Sample, yName string, ys []complog.Sample, window complog.DepthRange, method stats.Method) Crossplot {
	byDepth := make(map[float64]float64, len(ys))
	for _, s := range ys {
		if s.Valid() {
			byDepth[s.Depth] = s.Value
		}
	}

	var px, py []float64
	for _, s := range xs {
		if !s.Valid() {
			continue
		}
		if window.Valid() && (s.Depth < window.Min || s.Depth > window.Max) {
			continue
		}
		y, ok := byDepth[s.Depth]
		if !ok {
			continue
		}
		px = append(px, s.Value)
		py = append(py, y)
	}

	cp := Crossplot{X: xName, Y: yName, Method: method, Paired: len(px), Correlation: math.NaN()}
	xClip := stats.ComputeClipRange(px, method)
	yClip := stats.ComputeClipRange(py, method)
	for i := range px {
		if xClip != nil && !xClip.Contains(px[i]) {
			continue
		}
		if yClip != nil && !yClip.Contains(py[i]) {
			continue
		}
		cp.XValues = append(cp.XValues, px[i])
		cp.YValues = append(cp.YValues, py[i])
	}
	if len(cp.XValues) >= 2 {
		cp.Correlation = stat.Correlation(cp.XValues, cp.YValues, nil)
	}
	return cp
}

// CrossplotOptions controls the crossplot picture.
type CrossplotOptions struct {
	XUnit  string
	YUnit  string
	Color  string
	Width  int
	Height int
}

// pointStyle renders points only, without connecting lines.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

// RenderCrossplot writes c as a PNG scatter chart.
func RenderCrossplot(w io.Writer, c Crossplot, opts CrossplotOptions) error {
	if len(c.XValues) == 0 {
		return fmt.Errorf("crossplot %s/%s: %w", c.X, c.Y, ErrNoValues)
	}
	width, height := chartSize(opts.Width, opts.Height)

	xMin, xMax := paddedRange(c.XValues)
	yMin, yMax := paddedRange(c.YValues)

	xs, ys := c.XValues, c.YValues
	st := pointStyle(seriesColor(opts.Color))
	if len(xs) == 1 {
		st.DotWidth = 6
		xs = []float64{xs[0], xs[0]}
		ys = []float64{ys[0], ys[0]}
	}

	title := fmt.Sprintf("%s vs %s  n=%d", c.Y, c.X, len(c.XValues))
	if !math.IsNaN(c.Correlation) {
		title += fmt.Sprintf("  r=%.3f", c.Correlation)
	}
	if c.Dropped() > 0 {
		title += fmt.Sprintf("  [%s, dropped %d]", c.Method.Label(), c.Dropped())
	}

	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           axisName(c.X, opts.XUnit),
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: tickLabel,
		},
		YAxis: chart.YAxis{
			Name:           axisName(c.Y, opts.YUnit),
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: tickLabel,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: c.Y, XValues: xs, YValues: ys, Style: st},
		},
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render crossplot %s/%s: %w", c.X, c.Y, err)
	}
	return nil
}

// paddedRange returns the extent of values widened by 5% on each side,
// or by one unit when every value is equal.
func paddedRange(values []float64) (float64, float64) {
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func axisName(name, unit string) string {
	if unit == "" {
		return name
	}
	return name + " (" + unit + ")"
}
