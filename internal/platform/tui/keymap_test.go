package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runeKey("j"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim right", runeKey("l"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionMark},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionMark},
		{"start", runeKey("s"), core.ActionStart},
		{"reset", runeKey("r"), core.ActionReset},
		{"slower", runeKey("-"), core.ActionSlower},
		{"faster plus", runeKey("+"), core.ActionFaster},
		{"faster equals", runeKey("="), core.ActionFaster},
		{"quit", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"screenshot is not an action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   core.Event
		wantOK bool
	}{
		{
			name:   "left press",
			msg:    tea.MouseMsg{X: 4, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			want:   core.PointerDown(4, 7),
			wantOK: true,
		},
		{
			name:   "left drag",
			msg:    tea.MouseMsg{X: 5, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
			want:   core.PointerHeld(5, 7),
			wantOK: true,
		},
		{
			name: "left release",
			msg:  tea.MouseMsg{X: 5, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
		},
		{
			name: "right press",
			msg:  tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
		},
		{
			name: "motion without button",
			msg:  tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion},
		},
		{
			name: "wheel",
			msg:  tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointerEvent(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("PointerEvent() ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("PointerEvent() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}
