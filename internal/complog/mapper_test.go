package complog

import (
	"math"
	"testing"
)

func TestMapperRoundTrip(t *testing.T) {
	ranges := []DepthRange{
		{Min: 0, Max: 10},
		{Min: 1500, Max: 1750.5},
		{Min: 2999.9, Max: 3000.1},
		{Min: 0.5, Max: 5000},
	}
	for _, rng := range ranges {
		m := Mapper{Range: rng, Top: 62, SurfaceHeight: 780}
		for i := 0; i <= 100; i++ {
			d := rng.Min + rng.Width()*float64(i)/100
			got := m.YToDepth(m.DepthToY(d))
			if math.Abs(got-d) > 1e-9*math.Max(1, math.Abs(d)) {
				t.Fatalf("YToDepth(DepthToY(%v)) = %v for range %+v", d, got, rng)
			}
		}
	}
}

func TestMapperEndpoints(t *testing.T) {
	m := Mapper{Range: DepthRange{Min: 100, Max: 200}, Top: 44, SurfaceHeight: 444}
	if got := m.DepthToY(100); got != 44 {
		t.Fatalf("DepthToY(min) = %v, want 44", got)
	}
	if got := m.DepthToY(200); got != 444 {
		t.Fatalf("DepthToY(max) = %v, want 444", got)
	}
	if got := m.BodyHeight(); got != 400 {
		t.Fatalf("BodyHeight = %v, want 400", got)
	}
	if m.InBody(43) || !m.InBody(44) || !m.InBody(444) || m.InBody(445) {
		t.Fatalf("InBody boundaries wrong")
	}
}

func TestHeaderHeight(t *testing.T) {
	curves := func(n int) []CurveStyle { return make([]CurveStyle, n) }
	tests := []struct {
		name   string
		tracks []*TrackConfig
		want   float64
	}{
		{"no tracks", nil, 44},
		{"no curve tracks", []*TrackConfig{{Type: TrackDepth, Visible: true}}, 44},
		{"one curve", []*TrackConfig{{Type: TrackCurve, Visible: true, Curves: curves(1)}}, 54},
		{"busiest wins", []*TrackConfig{
			{Type: TrackCurve, Visible: true, Curves: curves(1)},
			{Type: TrackDiscrete, Visible: true, Curves: curves(3)},
		}, 102},
		{"hidden ignored", []*TrackConfig{
			{Type: TrackCurve, Visible: false, Curves: curves(4)},
			{Type: TrackCurve, Visible: true, Curves: curves(2)},
		}, 78},
		{"mineral curves do not count", []*TrackConfig{
			{Type: TrackMineral, Visible: true, Curves: curves(4)},
		}, 44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeaderHeight(tt.tracks); got != tt.want {
				t.Fatalf("HeaderHeight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueScale(t *testing.T) {
	lin, ok := newValueScale(CurveStyle{Min: 0, Max: 200}, 10, 100)
	if !ok {
		t.Fatal("linear scale rejected")
	}
	for _, tc := range []struct{ v, want float64 }{
		{0, 10}, {100, 60}, {200, 110}, {-50, 10}, {400, 110},
	} {
		if got := lin.X(tc.v); got != tc.want {
			t.Fatalf("linear X(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}

	logScale, ok := newValueScale(CurveStyle{Min: 0.1, Max: 1000, Logarithmic: true}, 0, 100)
	if !ok {
		t.Fatal("log scale rejected")
	}
	if got := logScale.X(10); math.Abs(got-50) > 1e-9 {
		t.Fatalf("log X(10) = %v, want 50", got)
	}
	if got := logScale.X(-5); got != 0 {
		t.Fatalf("log X(below min) = %v, want 0", got)
	}

	if _, ok := newValueScale(CurveStyle{Min: 5, Max: 5}, 0, 100); ok {
		t.Fatal("degenerate domain accepted")
	}

	// log with a non-positive minimum falls back to linear
	fallback, _ := newValueScale(CurveStyle{Min: 0, Max: 100, Logarithmic: true}, 0, 100)
	if got := fallback.X(25); got != 25 {
		t.Fatalf("fallback X(25) = %v, want 25", got)
	}
}
