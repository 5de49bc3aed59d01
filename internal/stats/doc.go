// Package stats holds the small statistics toolkit used by the curve
// statistics views.
//
// # Outlier Rejection
//
// Well log curves carry instrument spikes and washout artefacts that
// flatten histograms and crossplots. ComputeClipRange derives the interval
// of meaningful values for one of the Methods:
//
//   - iqr, iqr3: Q1 - k*IQR to Q3 + k*IQR with k = 1.5 or 3
//   - percentile: P1 to P99
//   - sigma2, sigma3: mean +/- n population standard deviations
//   - mad: median +/- 3 * 1.4826 * MAD
//
// Quantiles interpolate linearly at position (n-1)*q of the sorted
// sample. Fewer than four values are never clipped, and ClipValues with a
// nil range returns its input unchanged.
//
// # Summaries
//
// Histogram buckets values into equal-width bins over [min, max] with the
// last bin closed on the right. Summarize reports mean, median, population
// standard deviation, extremes and count.
//
// Callers are expected to drop missing samples before calling into this
// package; every function treats its input as valid measurements.
package stats
