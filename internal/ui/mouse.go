package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/strata/internal/complog"
)

// translateMouse converts a terminal mouse event at a chart-relative cell
// into a pointer event in surface pixels. ok is false for events the
// controller has no use for.
func translateMouse(msg tea.MouseMsg, col, row int) (ev complog.PointerEvent, ok bool) {
	x, y := cellCenter(col, row)
	ev = complog.PointerEvent{X: x, Y: y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			ev.Kind, ev.DeltaY = complog.Wheel, -1
		case tea.MouseButtonWheelDown:
			ev.Kind, ev.DeltaY = complog.Wheel, 1
		case tea.MouseButtonLeft:
			ev.Kind, ev.Button = complog.PointerDown, complog.ButtonPrimary
		case tea.MouseButtonMiddle:
			ev.Kind, ev.Button = complog.PointerDown, complog.ButtonMiddle
		case tea.MouseButtonRight:
			ev.Kind, ev.Button = complog.ContextMenu, complog.ButtonSecondary
		default:
			return ev, false
		}
	case tea.MouseActionRelease:
		ev.Kind, ev.Button = complog.PointerUp, complog.ButtonPrimary
	case tea.MouseActionMotion:
		ev.Kind = complog.PointerMove
	default:
		return ev, false
	}
	return ev, true
}

// handleMouse routes a mouse event to the chart. Leaving the chart area
// is reported to the controller as a pointer leave.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil || m.showHelp {
		return m, nil
	}
	col := msg.X - m.chartX
	row := msg.Y - m.chartY
	inside := col >= 0 && row >= 0 && col < m.chart.cols && row < m.chart.rows
	if !inside {
		if m.hover {
			m.hover = false
			m.chart.emit(complog.PointerEvent{Kind: complog.PointerLeave})
			return m.afterChartInput()
		}
		return m, nil
	}
	m.hover = true

	ev, ok := translateMouse(msg, col, row)
	if !ok {
		return m, nil
	}
	m.chart.emit(ev)
	return m.afterChartInput()
}

// afterChartInput pulls the edits the controller wrote to the store and
// opens a context menu if one was requested.
func (m Model) afterChartInput() (tea.Model, tea.Cmd) {
	m.syncSnapshot(m.store.Snapshot())
	if req := m.chart.takeMenu(); req != nil {
		m.modal = newTrackMenu(req, m.snapshot.Config.Track(req.trackID))
	}
	return m, nil
}
