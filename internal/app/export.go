package app

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/config"
	"github.com/five82/strata/internal/welldata"
)

const (
	defaultExportHeight = 1200
	emptyExportWidth    = 800
)

// RenderOptions control a one-shot PNG export.
type RenderOptions struct {
	Window complog.DepthRange // invalid uses the layout's range
	Width  int                // zero fits the visible tracks
	Height int                // zero uses 1200 px
	Out    string             // empty derives a name from the well and range
}

// Render loads the chart for cfg and writes it as a PNG. It returns the
// path written.
func Render(ctx context.Context, fetcher welldata.Fetcher, cfg config.Config, opts RenderOptions) (string, error) {
	tf, err := loadTypeface(cfg, complog.SystemFontCandidates)
	if err != nil {
		return "", err
	}
	session, err := OpenSession(ctx, fetcher, cfg, opts.Window)
	if err != nil {
		return "", err
	}
	out := opts.Out
	if out == "" {
		out = exportName(session.Config)
	}
	if err := writePNG(out, session.Config, session.Data, opts.Width, opts.Height, complog.WithTypeface(tf)); err != nil {
		return "", err
	}
	return out, nil
}

// snapshotExporter returns the viewer's export action: it writes the chart
// as currently shown to a PNG in the working directory and returns the file
// name.
func snapshotExporter(tf *complog.Typeface) func(complog.CompositeLogConfig, *complog.CompositeLogData) (string, error) {
	return func(chart complog.CompositeLogConfig, data *complog.CompositeLogData) (string, error) {
		out := exportName(chart)
		if err := writePNG(out, chart, data, 0, 0, complog.WithTypeface(tf)); err != nil {
			return "", err
		}
		return out, nil
	}
}

func writePNG(path string, chart complog.CompositeLogConfig, data *complog.CompositeLogData, width, height int, opts ...complog.Option) error {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, chart, data, width, height, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderPNG draws chart and data onto a fresh surface and encodes it.
func RenderPNG(w io.Writer, chart complog.CompositeLogConfig, data *complog.CompositeLogData, width, height int, opts ...complog.Option) error {
	if width <= 0 {
		width = fitWidth(chart)
	}
	if height <= 0 {
		height = defaultExportHeight
	}
	surface := complog.NewSurface(width, height)
	complog.NewRenderer(surface, &chart, data, opts...).Render()
	if err := png.Encode(w, surface.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// fitWidth is the width that shows every visible track with its gap.
func fitWidth(chart complog.CompositeLogConfig) int {
	visible := chart.VisibleTracks()
	if len(visible) == 0 {
		return emptyExportWidth
	}
	total := 0.0
	for _, t := range visible {
		total += t.Width + 1
	}
	return int(total)
}

func exportName(chart complog.CompositeLogConfig) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, chart.WellName)
	if name == "" {
		name = "well"
	}
	return fmt.Sprintf("%s_%.0f-%.0f.png", name, chart.DepthRange.Min, chart.DepthRange.Max)
}
