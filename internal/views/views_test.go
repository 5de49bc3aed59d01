package views

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/stats"
)

func ramp(n int, value func(i int) float64) []complog.Sample {
	out := make([]complog.Sample, n)
	for i := range out {
		out[i] = complog.Sample{Depth: 1000 + float64(i), Value: value(i)}
	}
	return out
}

func TestWindowValues(t *testing.T) {
	samples := []complog.Sample{
		{Depth: 10, Value: 1},
		{Depth: 11, Null: true},
		{Depth: 12, Value: complog.MissingValue},
		{Depth: 13, Value: 4},
		{Depth: 20, Value: 5},
	}
	if got := WindowValues(samples, complog.DepthRange{}); len(got) != 3 {
		t.Fatalf("WindowValues(all) = %v, want 3 values", got)
	}
	got := WindowValues(samples, complog.DepthRange{Min: 10, Max: 15})
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("WindowValues(10-15) = %v, want [1 4]", got)
	}
}

func TestNewDistributionClipsSpike(t *testing.T) {
	samples := ramp(20, func(i int) float64 { return float64(i % 5) })
	samples = append(samples, complog.Sample{Depth: 2000, Value: 500})

	d := NewDistribution("GR", samples, complog.DepthRange{}, stats.MethodIQR, 5)
	if d.Total != 21 {
		t.Fatalf("Total = %d, want 21", d.Total)
	}
	if d.Dropped() != 1 {
		t.Fatalf("Dropped = %d, want 1", d.Dropped())
	}
	if d.Summary.Max != 4 {
		t.Fatalf("Summary.Max = %v, want 4", d.Summary.Max)
	}
	if len(d.Bins) != 5 || d.MaxCount() != 4 {
		t.Fatalf("bins = %+v, want 5 bins peaking at 4", d.Bins)
	}

	none := NewDistribution("GR", samples, complog.DepthRange{}, stats.MethodNone, 0)
	if none.Clip != nil || none.Dropped() != 0 || len(none.Bins) != DefaultBins {
		t.Fatalf("unclipped distribution = clip %v dropped %d bins %d", none.Clip, none.Dropped(), len(none.Bins))
	}
}

func TestNewCrossplotPairsByDepth(t *testing.T) {
	xs := ramp(10, func(i int) float64 { return float64(i) })
	ys := ramp(10, func(i int) float64 { return 2 * float64(i) })
	ys[3].Null = true
	ys = append(ys, complog.Sample{Depth: 5000, Value: 1})

	cp := NewCrossplot("GR", xs, "AC", ys, complog.DepthRange{}, stats.MethodNone)
	if cp.Paired != 9 || len(cp.XValues) != 9 {
		t.Fatalf("Paired = %d kept = %d, want 9", cp.Paired, len(cp.XValues))
	}
	if math.Abs(cp.Correlation-1) > 1e-9 {
		t.Fatalf("Correlation = %v, want 1", cp.Correlation)
	}

	windowed := NewCrossplot("GR", xs, "AC", ys, complog.DepthRange{Min: 1000, Max: 1002}, stats.MethodNone)
	if windowed.Paired != 3 {
		t.Fatalf("windowed Paired = %d, want 3", windowed.Paired)
	}

	single := NewCrossplot("GR", xs[:1], "AC", ys, complog.DepthRange{}, stats.MethodNone)
	if !math.IsNaN(single.Correlation) {
		t.Fatalf("single point Correlation = %v, want NaN", single.Correlation)
	}
}

func TestRenderHistogramPNG(t *testing.T) {
	d := NewDistribution("GR", ramp(200, func(i int) float64 { return math.Sin(float64(i)/10) * 50 }), complog.DepthRange{}, stats.MethodIQR, 20)

	var buf bytes.Buffer
	if err := RenderHistogram(&buf, d, HistogramOptions{Unit: "API", Color: "#008000", Width: 640, Height: 400}); err != nil {
		t.Fatalf("RenderHistogram: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 400 {
		t.Fatalf("size = %v, want 640x400", b)
	}
}

func TestRenderCrossplotPNG(t *testing.T) {
	xs := ramp(50, func(i int) float64 { return float64(i) })
	ys := ramp(50, func(i int) float64 { return float64(i*i) / 10 })
	cp := NewCrossplot("GR", xs, "AC", ys, complog.DepthRange{}, stats.MethodSigma3)

	var buf bytes.Buffer
	if err := RenderCrossplot(&buf, cp, CrossplotOptions{}); err != nil {
		t.Fatalf("RenderCrossplot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Fatalf("size = %v, want default", b)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	empty := NewDistribution("GR", nil, complog.DepthRange{}, stats.MethodNone, 10)
	if err := RenderHistogram(&buf, empty, HistogramOptions{}); !errors.Is(err, ErrNoValues) {
		t.Fatalf("RenderHistogram(empty) err = %v, want ErrNoValues", err)
	}
	if err := RenderCrossplot(&buf, Crossplot{X: "a", Y: "b"}, CrossplotOptions{}); !errors.Is(err, ErrNoValues) {
		t.Fatalf("RenderCrossplot(empty) err = %v, want ErrNoValues", err)
	}
}

func TestTickLabel(t *testing.T) {
	tests := []struct {
		v    interface{}
		want string
	}{
		{0.0, "0"},
		{150.0, "150"},
		{-12.34, "-12.3"},
		{2.5, "2.50"},
		{0.0456, "0.0456"},
		{float32(40), "40.0"},
		{7, "7.00"},
		{int64(300), "300"},
		{"GR", ""},
	}
	for _, tt := range tests {
		if got := tickLabel(tt.v); got != tt.want {
			t.Fatalf("tickLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
