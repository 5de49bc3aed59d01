package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/strata/internal/config"
	"github.com/five82/strata/internal/logtail"
	"github.com/five82/strata/internal/welldata"
)

// WellSource is the part of the welldata client the listing commands use.
type WellSource interface {
	ListWells(ctx context.Context, workarea string) ([]welldata.Well, error)
	ListCurves(ctx context.Context, workarea, well string) ([]welldata.CurveInfo, error)
}

var _ WellSource = (*welldata.Client)(nil)

// Wells prints the wells of the configured workarea as a table.
func Wells(ctx context.Context, src WellSource, cfg config.Config, out io.Writer) error {
	wells, err := src.ListWells(ctx, cfg.Workarea)
	if err != nil {
		return fmt.Errorf("list wells: %w", err)
	}
	rows := make([][]string, 0, len(wells))
	for _, w := range wells {
		rows = append(rows, []string{w.Name, optional(w.X), optional(w.Y), optional(w.KB), optional(w.TD)})
	}
	_, err = fmt.Fprintln(out, listTable([]string{"WELL", "X", "Y", "KB", "TD"}, rows))
	return err
}

// Curves prints the curves stored for the configured well.
func Curves(ctx context.Context, src WellSource, cfg config.Config, out io.Writer) error {
	infos, err := src.ListCurves(ctx, cfg.Workarea, cfg.Well)
	if err != nil {
		return fmt.Errorf("list curves of %s: %w", cfg.Well, err)
	}
	rows := make([][]string, 0, len(infos))
	for _, c := range infos {
		rows = append(rows, []string{c.Name, c.Unit, optional(c.SampleInterval)})
	}
	_, err = fmt.Fprintln(out, listTable([]string{"CURVE", "UNIT", "STEP"}, rows))
	return err
}

// Logs prints the last lines of the strata log that contain every term.
func Logs(cfg config.Config, out io.Writer, lines int, terms ...string) error {
	tail, err := logtail.Read(cfg.LogPath, lines)
	if err != nil {
		return err
	}
	for _, line := range logtail.Filter(tail, terms...) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func listTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		}).
		String()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
