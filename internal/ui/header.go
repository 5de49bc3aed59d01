package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/strata/internal/complog"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasData {
		return m.renderConnectingHeader(styles, bg)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxHeight(1).
		Render(m.buildStatusContent(styles, bg))
}

// renderConnectingHeader shows the loading/error state before any data.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render("strata", styles.Logo),
			bg.Render("WELL DATA "+classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("strata", styles.Logo) + sep +
			bg.Render("Loading well data...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	cfg := m.snapshot.Config

	var parts []string
	parts = append(parts, bg.Render("strata", styles.Logo))

	well := cfg.WellName
	if cfg.Title != "" && !compact {
		well = cfg.Title
	}
	if well != "" {
		parts = append(parts, bg.Render(truncate(well, 24), styles.Text.Bold(true)))
	}

	// Connection badge
	parts = append(parts, styles.StatusStyle(m.connectionStatus()).Render(strings.ToUpper(m.connectionStatus())))

	// Gesture badge while a drag is in progress
	if gesture := m.chart.controller.State(); gesture != complog.StateIdle {
		status := "panning"
		if gesture == complog.StateTrackDragging {
			status = "dragging"
		}
		parts = append(parts, styles.StatusStyle(status).Render(strings.ToUpper(status)))
	}

	// Depth window
	if rng := cfg.DepthRange; rng.Valid() {
		parts = append(parts,
			bg.Render("Depth:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%.1f-%.1f m", rng.Min, rng.Max), styles.InfoText),
		)
		if !compact && cfg.Scale > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("1:%.0f", cfg.Scale), styles.MutedText))
		}
	}

	// Track count
	parts = append(parts,
		bg.Render("Tracks:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(cfg.VisibleTracks()), len(cfg.Tracks)), styles.Text),
	)

	if timeStr := formatTimestamp(m.snapshot.LastUpdated, time.Now()); timeStr != "" && !compact {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	if err := m.snapshot.LastError; err != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render(classifyConnectionError(err), styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(err.Error(), maxErr), styles.DangerText),
		)
	}

	return bg.Join(parts, "  ")
}

// connectionStatus names the freshness of the data on screen.
func (m Model) connectionStatus() string {
	switch {
	case m.snapshot.IsOffline():
		return "offline"
	case m.snapshot.LastError != nil:
		return "stale"
	default:
		return "live"
	}
}

// formatTimestamp formats the last update time with relative indicator.
func formatTimestamp(last, now time.Time) string {
	if last.IsZero() {
		return ""
	}

	since := now.Sub(last)
	timeStr := last.Format("15:04:05")

	switch {
	case since < time.Minute:
		timeStr += " (now)"
	case since < time.Hour:
		timeStr += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		timeStr += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"+/-", "Zoom"},
		{"j/k", "Pan"},
		{"Tab", "Track"},
		{"</>", "Move"},
		{"v", "Hide"},
		{"o", m.method.Label()},
		{"s", "Stats"},
		{"x", "Export"},
		{"?", "More"},
	}
	if m.width < LayoutCompactWidth {
		h := help.New()
		h.Width = m.width
		h.ShortSeparator = " • "
		h.Styles.ShortKey = styles.AccentText
		h.Styles.ShortDesc = styles.MutedText
		h.Styles.ShortSeparator = styles.FaintText
		return styles.Header.Width(m.width).MaxHeight(1).Render(h.ShortHelpView(m.keys.ShortHelp()))
	}

	colon := bg.Render(":", styles.FaintText)
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(segments, sep))
}

// renderReadout renders the line under the chart: the crosshair depth and
// curve values there, or a transient notice.
func (m Model) renderReadout() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	var content string
	switch {
	case m.notice != "":
		style := styles.SuccessText
		if m.noticeErr {
			style = styles.DangerText
		}
		content = bg.Render(m.notice, style)
	case m.snapshot.Crosshair.Active:
		content = m.crosshairReadout(styles, bg)
	default:
		content = bg.Render("right click a track for options", styles.FaintText)
	}
	return bg.FillLine(content, m.width)
}

// crosshairReadout lists the depth under the cursor followed by the values
// of the visible curves nearest to it.
func (m Model) crosshairReadout(styles Styles, bg BgStyle) string {
	depth := m.snapshot.Crosshair.Depth
	parts := []string{
		bg.Render(fmt.Sprintf("%.2f m", depth), styles.AccentText.Bold(true)),
	}
	cfg := m.snapshot.Config
	seen := make(map[string]bool)
	budget := max(0, m.width-14)
	for _, t := range cfg.VisibleTracks() {
		if !t.Type.HasCurves() {
			continue
		}
		for _, cs := range t.Curves {
			if seen[cs.CurveName] {
				continue
			}
			seen[cs.CurveName] = true
			v, ok := sampleAt(m.snapshot.Data.Curve(cs.CurveName), depth)
			if !ok {
				continue
			}
			part := bg.Render(cs.CurveName, styles.MutedText) + bg.Space() +
				bg.Render(fmt.Sprintf("%.4g", v), styles.Text)
			if budget -= len(cs.CurveName) + 10; budget < 0 {
				return bg.Join(parts, "  ")
			}
			parts = append(parts, part)
		}
	}
	return bg.Join(parts, "  ")
}

// sampleDepthTolerance is how far the nearest sample may sit from the
// cursor and still be reported.
const sampleDepthTolerance = 1.0

// sampleAt returns the valid value nearest to depth. samples must be sorted
// by depth.
func sampleAt(samples []complog.Sample, depth float64) (float64, bool) {
	i := sort.Search(len(samples), func(i int) bool { return samples[i].Depth >= depth })
	best, bestDist := -1, sampleDepthTolerance
	for _, j := range []int{i - 1, i} {
		if j < 0 || j >= len(samples) || !samples[j].Valid() {
			continue
		}
		if d := math.Abs(samples[j].Depth - depth); d <= bestDist {
			best, bestDist = j, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return samples[best].Value, true
}
