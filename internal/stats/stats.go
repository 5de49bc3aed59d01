package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Method selects an outlier rejection algorithm.
type Method string

const (
	MethodNone       Method = "none"
	MethodIQR        Method = "iqr"
	MethodIQR3       Method = "iqr3"
	MethodPercentile Method = "percentile"
	MethodSigma2     Method = "sigma2"
	MethodSigma3     Method = "sigma3"
	MethodMAD        Method = "mad"
)

// Methods lists every method in display order.
var Methods = []Method{
	MethodNone,
	MethodIQR,
	MethodIQR3,
	MethodPercentile,
	MethodSigma2,
	MethodSigma3,
	MethodMAD,
}

// Label returns a short human-readable name.
func (m Method) Label() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodIQR:
		return "IQR x1.5"
	case MethodIQR3:
		return "IQR x3"
	case MethodPercentile:
		return "P1-P99"
	case MethodSigma2:
		return "2 sigma"
	case MethodSigma3:
		return "3 sigma"
	case MethodMAD:
		return "MAD"
	default:
		return string(m)
	}
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return slices.Contains(Methods, m)
}

// Next returns the method after m in Methods, wrapping around.
func (m Method) Next() Method {
	i := slices.Index(Methods, m)
	return Methods[(i+1)%len(Methods)]
}

// ParseMethod maps a config string to a Method, falling back to none.
func ParseMethod(s string) Method {
	m := Method(s)
	if m.Valid() {
		return m
	}
	return MethodNone
}

const (
	minClipSamples = 4
	percentileTail = 0.01
	madScale       = 1.4826
	madK           = 3
)

// ClipRange is the inclusive interval of values kept after outlier removal.
type ClipRange struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the range.
func (r ClipRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ComputeClipRange returns the kept interval for values under method m.
// It returns nil when no clipping applies: method none, an unknown method,
// or fewer than four samples.
func ComputeClipRange(values []float64, m Method) *ClipRange {
	if len(values) < minClipSamples {
		return nil
	}
	switch m {
	case MethodIQR:
		return iqrRange(values, 1.5)
	case MethodIQR3:
		return iqrRange(values, 3)
	case MethodPercentile:
		s := sorted(values)
		return &ClipRange{Min: quantile(s, percentileTail), Max: quantile(s, 1-percentileTail)}
	case MethodSigma2:
		return sigmaRange(values, 2)
	case MethodSigma3:
		return sigmaRange(values, 3)
	case MethodMAD:
		return madRange(values)
	default:
		return nil
	}
}

// ClipValues keeps the values inside r, preserving order. A nil range
// returns values unchanged.
func ClipValues(values []float64, r *ClipRange) []float64 {
	if r == nil {
		return values
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if r.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func iqrRange(values []float64, k float64) *ClipRange {
	s := sorted(values)
	q1 := quantile(s, 0.25)
	q3 := quantile(s, 0.75)
	iqr := q3 - q1
	return &ClipRange{Min: q1 - k*iqr, Max: q3 + k*iqr}
}

func sigmaRange(values []float64, n float64) *ClipRange {
	mean, variance := stat.PopMeanVariance(values, nil)
	sd := math.Sqrt(variance)
	return &ClipRange{Min: mean - n*sd, Max: mean + n*sd}
}

func madRange(values []float64) *ClipRange {
	s := sorted(values)
	med := median(s)
	dev := make([]float64, len(s))
	for i, v := range s {
		dev[i] = math.Abs(v - med)
	}
	slices.Sort(dev)
	threshold := madK * madScale * median(dev)
	return &ClipRange{Min: med - threshold, Max: med + threshold}
}

func sorted(values []float64) []float64 {
	s := slices.Clone(values)
	slices.Sort(s)
	return s
}

// quantile interpolates linearly between the order statistics around
// position (n-1)*q of an ascending slice.
func quantile(s []float64, q float64) float64 {
	pos := float64(len(s)-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return s[lo]
	}
	return s[lo] + (s[hi]-s[lo])*(pos-float64(lo))
}

func median(s []float64) float64 {
	n := len(s)
	if n%2 == 0 {
		return (s[n/2-1] + s[n/2]) / 2
	}
	return s[n/2]
}

// Bin is one histogram bucket. Count covers [Min, Max), except the last
// bucket which also includes Max.
type Bin struct {
	Min   float64
	Max   float64
	Count int
}

// Histogram buckets values into bins equal-width intervals over their
// range. When every value is equal a single bucket holds them all.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return []Bin{{Min: lo, Max: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Min: lo + float64(i)*width, Max: lo + float64(i+1)*width}
	}
	for _, v := range values {
		idx := int(math.Floor((v - lo) / width))
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// Summary describes a sample of values.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Count  int
}

// Summarize computes the summary of values. StdDev is the population
// standard deviation. An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := sorted(values)
	mean, variance := stat.PopMeanVariance(s, nil)
	return Summary{
		Mean:   mean,
		Median: median(s),
		StdDev: math.Sqrt(variance),
		Min:    s[0],
		Max:    s[len(s)-1],
		Count:  len(s),
	}
}
