// Package views renders the auxiliary curve statistics charts that sit
// beside the composite log: a value histogram and a two-curve crossplot.
//
// Both views start from raw curve samples. Missing samples are dropped,
// the remaining values are limited to a depth window when one is given,
// and an outlier method from package stats trims instrument spikes before
// anything is counted or plotted. The trimmed data is kept in a
// Distribution (histogram) or a Crossplot (paired points) so callers can
// show the numbers as well as the picture.
//
// Rendering uses go-chart and always produces PNG. The terminal viewer
// draws the same Distribution with braille characters instead and only
// shares the data preparation with this package.
package views
