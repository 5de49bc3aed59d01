package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/views"
)

// histogramRows is the height of the braille histogram in the side pane.
const histogramRows = 8

// statsCurveName picks the curve the side pane describes: an explicit
// choice from the context menu, then the selected track's first curve,
// then the first visible curve track.
func statsCurveName(cfg *complog.CompositeLogConfig, selected, explicit string) string {
	if explicit != "" {
		for _, name := range cfg.CurveNames() {
			if name == explicit {
				return explicit
			}
		}
	}
	if t := cfg.Track(selected); t != nil && t.Visible {
		if name := firstCurve(t); name != "" {
			return name
		}
	}
	for _, t := range cfg.VisibleTracks() {
		if name := firstCurve(t); name != "" {
			return name
		}
	}
	return ""
}

func firstCurve(t *complog.TrackConfig) string {
	switch {
	case t.Type.HasCurves() && len(t.Curves) > 0:
		return t.Curves[0].CurveName
	case t.Type == complog.TrackMineral && len(t.MineralCurves) > 0:
		return t.MineralCurves[0].CurveName
	}
	return ""
}

// refreshStats recomputes the side pane distribution for the visible window.
func (m *Model) refreshStats() {
	cfg := &m.snapshot.Config
	name := statsCurveName(cfg, m.snapshot.SelectedTrack, m.statsCurve)
	if name == "" || m.snapshot.Data == nil {
		m.dist = nil
		return
	}
	d := views.NewDistribution(name, m.snapshot.Data.Curve(name), cfg.DepthRange, m.method, m.bins)
	m.dist = &d
}

// histogramPlot draws bucket counts as a braille line plot.
func histogramPlot(d *views.Distribution, width, height int) string {
	if d == nil || len(d.Bins) == 0 || width < 4 || height < 2 {
		return ""
	}
	counts := make([]float64, len(d.Bins))
	for i, b := range d.Bins {
		counts[i] = float64(b.Count)
	}

	var line plot.Color
	if lipgloss.HasDarkBackground() {
		line = plot.Red
	} else {
		line = plot.Black
	}

	p := plot.NewCanvas(width, height)
	p.NumDataPoints = len(counts)
	p.ShowAxis = false
	p.LineColors = []plot.Color{line}
	p.Fill([][]float64{counts})
	return p.String()
}

// renderSidePane renders the statistics block above the track list.
func (m Model) renderSidePane(width, height int) string {
	styles := m.theme.Styles()
	inner := max(1, width-2)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Statistics"))
	b.WriteString("\n")

	statsLines := 1
	if m.dist == nil || m.dist.Total == 0 {
		b.WriteString(styles.FaintText.Render("no curve data in window"))
		b.WriteString("\n")
		statsLines++
	} else {
		d := m.dist
		b.WriteString(styles.Text.Render(fit(d.Curve, inner-12)))
		b.WriteString(styles.StatusStyle("outliers").Render(truncate(d.Method.Label(), 10)))
		b.WriteString("\n")
		statsLines++

		if chart := histogramPlot(d, inner, histogramRows); chart != "" {
			b.WriteString(chart)
			b.WriteString("\n")
			statsLines += strings.Count(chart, "\n") + 1
		}

		s := d.Summary
		rows := []struct{ label, value string }{
			{"n", fmt.Sprintf("%d of %d", s.Count, d.Total)},
			{"min", fmt.Sprintf("%.4g", s.Min)},
			{"max", fmt.Sprintf("%.4g", s.Max)},
			{"mean", fmt.Sprintf("%.4g", s.Mean)},
			{"median", fmt.Sprintf("%.4g", s.Median)},
			{"stddev", fmt.Sprintf("%.4g", s.StdDev)},
		}
		if d.Clip != nil {
			rows = append(rows, struct{ label, value string }{"kept", fmt.Sprintf("%.4g .. %.4g", d.Clip.Min, d.Clip.Max)})
		}
		for _, r := range rows {
			b.WriteString(styles.MutedText.Render(padRight(r.label, 8)))
			b.WriteString(styles.Text.Render(r.value))
			b.WriteString("\n")
			statsLines++
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Tracks"))
	b.WriteString("\n")
	statsLines += 2

	vp := m.tracks
	vp.Width = inner
	vp.Height = max(1, height-statsLines)
	vp.SetContent(m.trackListContent(inner))
	if idx := m.selectedTrackIndex(); idx >= 0 && (idx < vp.YOffset || idx >= vp.YOffset+vp.Height) {
		vp.SetYOffset(max(0, idx-vp.Height/2))
	}
	b.WriteString(vp.View())

	return lipgloss.NewStyle().
		Width(inner).
		Height(height).
		MaxHeight(height).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Render(b.String())
}

// trackListContent lists every track with its visibility.
func (m Model) trackListContent(width int) string {
	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.snapshot.Config.Tracks))
	for _, t := range m.snapshot.Config.Tracks {
		mark := "●"
		style := styles.Text
		if !t.Visible {
			mark = "○"
			style = styles.FaintText
		}
		title := t.Title
		if title == "" {
			title = string(t.Type)
		}
		line := fit(mark+" "+title, width)
		if t.ID == m.snapshot.SelectedTrack {
			style = styles.Selected
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) selectedTrackIndex() int {
	for i, t := range m.snapshot.Config.Tracks {
		if t.ID == m.snapshot.SelectedTrack {
			return i
		}
	}
	return -1
}

func newTrackViewport() viewport.Model {
	vp := viewport.New(SidePaneWidth, 1)
	vp.MouseWheelEnabled = false
	return vp
}
