package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/strata/internal/complog"
)

type menuAction int

const (
	actionSelect menuAction = iota
	actionHide
	actionStats
	actionCenter
	actionReset
	actionClose
)

type menuItem struct {
	label  string
	action menuAction
	curve  string
}

// menuActionMsg carries the chosen context menu entry back to the model.
type menuActionMsg struct {
	action  menuAction
	trackID string
	curve   string
	depth   float64
}

// trackMenu is the context menu opened by a right click on the chart.
type trackMenu struct {
	title   string
	trackID string
	depth   float64
	items   []menuItem
	cursor  int
}

func newTrackMenu(req *menuRequest, track *complog.TrackConfig) *trackMenu {
	menu := &trackMenu{depth: req.depth, title: fmt.Sprintf("%.1f m", req.depth)}
	if track != nil {
		menu.trackID = track.ID
		name := track.Title
		if name == "" {
			name = string(track.Type)
		}
		menu.title = fmt.Sprintf("%s @ %.1f m", name, req.depth)
		menu.items = append(menu.items,
			menuItem{label: "Select track", action: actionSelect},
			menuItem{label: "Hide track", action: actionHide},
		)
		for _, cs := range track.Curves {
			menu.items = append(menu.items, menuItem{label: "Statistics: " + cs.CurveName, action: actionStats, curve: cs.CurveName})
		}
		for _, mc := range track.MineralCurves {
			menu.items = append(menu.items, menuItem{label: "Statistics: " + mc.CurveName, action: actionStats, curve: mc.CurveName})
		}
	}
	menu.items = append(menu.items,
		menuItem{label: "Center on this depth", action: actionCenter},
		menuItem{label: "Reset depth range", action: actionReset},
		menuItem{label: "Close", action: actionClose},
	)
	return menu
}

// Update implements Modal.
func (t *trackMenu) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Quit):
		return t, nil, true
	case key.Matches(keyMsg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if t.cursor < len(t.items)-1 {
			t.cursor++
		}
	case key.Matches(keyMsg, keys.Confirm):
		item := t.items[t.cursor]
		if item.action == actionClose {
			return t, nil, true
		}
		out := menuActionMsg{action: item.action, trackID: t.trackID, curve: item.curve, depth: t.depth}
		return t, func() tea.Msg { return out }, true
	}
	return t, nil, false
}

// View implements Modal.
func (t *trackMenu) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	innerWidth := 30
	for _, item := range t.items {
		innerWidth = max(innerWidth, len(item.label)+4)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(t.title, innerWidth)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", innerWidth)))
	b.WriteString("\n")
	for i, item := range t.items {
		line := fit("  "+item.label, innerWidth)
		if i == t.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		if i < len(t.items)-1 {
			b.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(0, 1).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
