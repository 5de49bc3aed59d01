package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	// Help content
	sections := []helpSection{
		{
			title: "Depth window",
			items: []helpItem{
				{"+/-", "Zoom in/out"},
				{"j/k", "Pan down/up"},
				{"ctrl+d/u", "Page down/up"},
				{"wheel", "Zoom about cursor"},
				{"drag", "Pan the body"},
			},
		},
		{
			title: "Tracks",
			items: []helpItem{
				{"tab/shift+tab", "Select next/prev"},
				{"</>", "Move selected"},
				{"v", "Hide selected"},
				{"V", "Show all"},
				{"drag header", "Reorder"},
				{"right click", "Track menu"},
			},
		},
		{
			title: "Statistics",
			items: []helpItem{
				{"o", "Cycle outlier method"},
				{"s", "Toggle side pane"},
				{"esc", "Clear selection"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"x", "Export PNG"},
				{"S", "Save layout"},
				{"r", "Refresh now"},
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	// Build help content
	var b strings.Builder

	// Title
	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		// Section title
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			// Key
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(15)
			b.WriteString(keyStyle.Render(item.key))
			// Description
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	// Build the modal
	content := b.String()

	// Calculate modal dimensions
	modalWidth := 46

	// Modal style
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	// Center the modal
	modalContent := modal.Render(content)

	// Create overlay
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
