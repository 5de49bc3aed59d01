package app

import (
	"context"
	"fmt"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/config"
	"github.com/five82/strata/internal/layout"
	"github.com/five82/strata/internal/welldata"
)

// defaultWindow is the depth span shown when the layout leaves the range
// open.
const defaultWindow = 200.0

// Session is a chart layout together with its first batch of data.
type Session struct {
	Config complog.CompositeLogConfig
	Data   *complog.CompositeLogData
}

// OpenSession resolves the layout for cfg.Well and fetches its data. A
// valid window overrides the layout's depth range and limits the curve
// request to it; otherwise the whole well is fetched and an open range is
// placed at the top of the data.
func OpenSession(ctx context.Context, fetcher welldata.Fetcher, cfg config.Config, window complog.DepthRange) (Session, error) {
	chart, err := resolveLayout(ctx, fetcher, cfg)
	if err != nil {
		return Session{}, err
	}

	filter := welldata.DepthFilter{}
	if window.Valid() {
		chart.DepthRange = window
		filter = welldata.FilterFor(window)
	}

	data, err := fetcher.FetchCompositeData(ctx, cfg.Workarea, cfg.Well, chart.CurveNames(), filter)
	if err != nil {
		return Session{}, fmt.Errorf("fetch well %s: %w", cfg.Well, err)
	}

	if !chart.DepthRange.Valid() {
		chart.DepthRange = initialRange(data)
	}
	return Session{Config: chart, Data: data}, nil
}

// resolveLayout loads the configured layout file, or suggests one from the
// curves the well carries.
func resolveLayout(ctx context.Context, fetcher welldata.Fetcher, cfg config.Config) (complog.CompositeLogConfig, error) {
	if cfg.LayoutPath != "" {
		chart, err := layout.Load(cfg.LayoutPath)
		if err != nil {
			return complog.CompositeLogConfig{}, err
		}
		if chart.WellName == "" {
			chart.WellName = cfg.Well
		}
		return chart, nil
	}

	curves, err := fetcher.ListCurves(ctx, cfg.Workarea, cfg.Well)
	if err != nil {
		return complog.CompositeLogConfig{}, fmt.Errorf("list curves of %s: %w", cfg.Well, err)
	}
	names := make([]string, 0, len(curves))
	for _, c := range curves {
		names = append(names, c.Name)
	}
	chart := complog.EmptyConfig(cfg.Well, complog.DepthRange{})
	chart.Tracks = complog.SuggestedTracks(names)
	return chart, nil
}

// initialRange opens the chart at the top of the data, at most
// defaultWindow deep.
func initialRange(data *complog.CompositeLogData) complog.DepthRange {
	extent, ok := data.Extent()
	if !ok {
		return complog.DepthRange{Min: 0, Max: defaultWindow}
	}
	return complog.DepthRange{Min: extent.Min, Max: min(extent.Max, extent.Min+defaultWindow)}
}
