package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/config"
	"github.com/five82/strata/internal/stats"
	"github.com/five82/strata/internal/views"
	"github.com/five82/strata/internal/welldata"
)

// CurveSource is the part of the welldata client the stats command uses.
type CurveSource interface {
	ListCurves(ctx context.Context, workarea, well string) ([]welldata.CurveInfo, error)
	FetchCurveData(ctx context.Context, workarea, well string, curves []string, filter welldata.DepthFilter) (map[string][]complog.Sample, error)
}

var _ CurveSource = (*welldata.Client)(nil)

// StatsOptions select the curve statistics to print or plot. Setting both
// CrossX and CrossY requests a crossplot instead of a histogram.
type StatsOptions struct {
	Curve   string
	CrossX  string
	CrossY  string
	Window  complog.DepthRange
	Method  stats.Method
	Bins    int
	PNGPath string
	Width   int
	Height  int
}

// Stats prints a summary of one curve, or of a curve pair, to out and
// optionally writes the matching chart to opts.PNGPath.
func Stats(ctx context.Context, src CurveSource, cfg config.Config, out io.Writer, opts StatsOptions) error {
	names := []string{opts.Curve}
	if opts.CrossX != "" || opts.CrossY != "" {
		if opts.CrossX == "" || opts.CrossY == "" {
			return fmt.Errorf("crossplot needs both an x and a y curve")
		}
		names = []string{opts.CrossX, opts.CrossY}
	}
	if strings.TrimSpace(names[0]) == "" {
		return fmt.Errorf("no curve selected")
	}

	units, err := curveUnits(ctx, src, cfg)
	if err != nil {
		return err
	}
	filter := welldata.DepthFilter{}
	if opts.Window.Valid() {
		filter = welldata.FilterFor(opts.Window)
	}
	curves, err := src.FetchCurveData(ctx, cfg.Workarea, cfg.Well, names, filter)
	if err != nil {
		return fmt.Errorf("fetch curves: %w", err)
	}
	for _, name := range names {
		if _, ok := curves[name]; !ok {
			return fmt.Errorf("well %s has no curve %q", cfg.Well, name)
		}
	}

	if len(names) == 2 {
		cp := views.NewCrossplot(names[0], curves[names[0]], names[1], curves[names[1]], opts.Window, opts.Method)
		printCrossplot(out, cp)
		if opts.PNGPath == "" {
			return nil
		}
		return writeChart(opts.PNGPath, func(w io.Writer) error {
			return views.RenderCrossplot(w, cp, views.CrossplotOptions{
				XUnit: units[cp.X], YUnit: units[cp.Y],
				Color: complog.DefaultCurveStyle(cp.Y).Color,
				Width: opts.Width, Height: opts.Height,
			})
		})
	}

	d := views.NewDistribution(names[0], curves[names[0]], opts.Window, opts.Method, opts.Bins)
	printDistribution(out, d, units[d.Curve])
	if opts.PNGPath == "" {
		return nil
	}
	return writeChart(opts.PNGPath, func(w io.Writer) error {
		return views.RenderHistogram(w, d, views.HistogramOptions{
			Unit:  units[d.Curve],
			Color: complog.DefaultCurveStyle(d.Curve).Color,
			Width: opts.Width, Height: opts.Height,
		})
	})
}

func curveUnits(ctx context.Context, src CurveSource, cfg config.Config) (map[string]string, error) {
	infos, err := src.ListCurves(ctx, cfg.Workarea, cfg.Well)
	if err != nil {
		return nil, fmt.Errorf("list curves of %s: %w", cfg.Well, err)
	}
	units := make(map[string]string, len(infos))
	for _, info := range infos {
		units[info.Name] = info.Unit
	}
	return units, nil
}

func printDistribution(out io.Writer, d views.Distribution, unit string) {
	s := d.Summary
	fmt.Fprintf(out, "curve    %s %s\n", d.Curve, unit)
	fmt.Fprintf(out, "method   %s\n", d.Method.Label())
	if d.Clip != nil {
		fmt.Fprintf(out, "kept     %.4g .. %.4g (dropped %d of %d)\n", d.Clip.Min, d.Clip.Max, d.Dropped(), d.Total)
	}
	fmt.Fprintf(out, "count    %d\n", s.Count)
	fmt.Fprintf(out, "min      %.4g\n", s.Min)
	fmt.Fprintf(out, "max      %.4g\n", s.Max)
	fmt.Fprintf(out, "mean     %.4g\n", s.Mean)
	fmt.Fprintf(out, "median   %.4g\n", s.Median)
	fmt.Fprintf(out, "stddev   %.4g\n", s.StdDev)
}

func printCrossplot(out io.Writer, cp views.Crossplot) {
	fmt.Fprintf(out, "x        %s\n", cp.X)
	fmt.Fprintf(out, "y        %s\n", cp.Y)
	fmt.Fprintf(out, "method   %s\n", cp.Method.Label())
	fmt.Fprintf(out, "pairs    %d (dropped %d)\n", len(cp.XValues), cp.Dropped())
	if math.IsNaN(cp.Correlation) {
		fmt.Fprintln(out, "r        n/a")
		return
	}
	fmt.Fprintf(out, "r        %.4f\n", cp.Correlation)
}

func writeChart(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
