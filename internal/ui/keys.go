package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Confirm    key.Binding

	// Depth window
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Tracks
	NextTrack     key.Binding
	PrevTrack     key.Binding
	MoveLeft      key.Binding
	MoveRight     key.Binding
	ToggleVisible key.Binding
	ShowAll       key.Binding

	// Statistics and output
	CycleOutliers key.Binding
	ToggleSide    key.Binding
	Export        key.Binding
	SaveLayout    key.Binding
	Refresh       key.Binding

	// Menu navigation
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Zoom out"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Pan down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		NextTrack: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "Select next track"),
		),
		PrevTrack: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "Select previous track"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "Move track left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "Move track right"),
		),
		ToggleVisible: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Hide selected track"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "Show all tracks"),
		),

		CycleOutliers: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Cycle outlier method"),
		),
		ToggleSide: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle side pane"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export PNG"),
		),
		SaveLayout: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Save layout"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh data"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.PanDown, k.NextTrack, k.CycleOutliers, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.PanUp, k.PanDown, k.PageUp, k.PageDown},
		{k.NextTrack, k.PrevTrack, k.MoveLeft, k.MoveRight, k.ToggleVisible, k.ShowAll},
		{k.CycleOutliers, k.ToggleSide, k.Export, k.SaveLayout, k.Refresh},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
