package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used
	// and the side pane is hidden.
	LayoutCompactWidth = 100

	// SidePaneWidth is the width of the statistics and track pane.
	SidePaneWidth = 34
)

// Fixed rows around the chart: header and command bar above, readout below.
const (
	chromeTop    = 2
	chromeBottom = 1
)

// Timing constants.
const (
	// DefaultUIInterval is how often the model re-reads the store to pick
	// up poller updates.
	DefaultUIInterval = 500 * time.Millisecond

	// NoticeTTL is how long a transient notice stays in the readout line.
	NoticeTTL = 4 * time.Second
)

// paneSizes splits the terminal into chart and side pane columns.
func paneSizes(width, height int, showSide bool) (chartCols, chartRows, sideCols int) {
	chartRows = max(1, height-chromeTop-chromeBottom)
	if showSide && width >= LayoutCompactWidth {
		sideCols = SidePaneWidth
	}
	chartCols = max(1, width-sideCols)
	return chartCols, chartRows, sideCols
}
