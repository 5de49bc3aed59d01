package views

import (
	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/stats"
)

// DefaultBins is the histogram bucket count used when none is requested.
const DefaultBins = 30

// Distribution is the outlier-filtered value distribution of one curve.
type Distribution struct {
	Curve   string
	Method  stats.Method
	Clip    *stats.ClipRange
	Total   int
	Values  []float64
	Bins    []stats.Bin
	Summary stats.Summary
}

// Dropped returns how many valid samples the outlier method removed.
func (d Distribution) Dropped() int {
	return d.Total - len(d.Values)
}

// WindowValues returns the valid sample values whose depth lies inside
// window. An invalid window keeps every depth.
func WindowValues(samples []complog.Sample, window complog.DepthRange) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if !s.Valid() {
			continue
		}
		if window.Valid() && (s.Depth < window.Min || s.Depth > window.Max) {
			continue
		}
		values = append(values, s.Value)
	}
	return values
}

// NewDistribution filters samples through window and method and buckets
// what is left into bins buckets. bins <= 0 selects DefaultBins.
func NewDistribution(curve string, samples []complog.Sample, window complog.DepthRange, method stats.Method, bins int) Distribution {
	if bins <= 0 {
		bins = DefaultBins
	}
	values := WindowValues(samples, window)
	clip := stats.ComputeClipRange(values, method)
	kept := stats.ClipValues(values, clip)
	return Distribution{
		Curve:   curve,
		Method:  method,
		Clip:    clip,
		Total:   len(values),
		Values:  kept,
		Bins:    stats.Histogram(kept, bins),
		Summary: stats.Summarize(kept),
	}
}

// MaxCount returns the largest bucket count.
func (d Distribution) MaxCount() int {
	peak := 0
	for _, b := range d.Bins {
		peak = max(peak, b.Count)
	}
	return peak
}
