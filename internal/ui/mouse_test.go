package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/strata/internal/complog"
)

func TestTranslateMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		ok     bool
		kind   complog.EventKind
		button complog.Button
		deltaY float64
	}{
		{"wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, true, complog.Wheel, complog.ButtonPrimary, -1},
		{"wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, true, complog.Wheel, complog.ButtonPrimary, 1},
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, complog.PointerDown, complog.ButtonPrimary, 0},
		{"middle press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, true, complog.PointerDown, complog.ButtonMiddle, 0},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true, complog.ContextMenu, complog.ButtonSecondary, 0},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, true, complog.PointerUp, complog.ButtonPrimary, 0},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, true, complog.PointerMove, complog.ButtonPrimary, 0},
		{"back button", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonBackward}, false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateMouse(tt.msg, 2, 3)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.kind || ev.Button != tt.button || ev.DeltaY != tt.deltaY {
				t.Fatalf("event = %+v, want kind %v button %v delta %v", ev, tt.kind, tt.button, tt.deltaY)
			}
			if ev.X != 15 || ev.Y != 42 {
				t.Fatalf("position = (%v, %v), want cell centre (15, 42)", ev.X, ev.Y)
			}
		})
	}
}
