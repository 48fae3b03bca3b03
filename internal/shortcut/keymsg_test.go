package shortcut

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromKeyMsgMapsTerminalModifier(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		cmd  CmdKey
		want string
	}{
		{"ctrl as cmd", tea.KeyMsg{Type: tea.KeyCtrlW}, CmdFromCtrl, "Cmd+W"},
		{"ctrl kept when alt is cmd", tea.KeyMsg{Type: tea.KeyCtrlW}, CmdFromAlt, "Ctrl+W"},
		{"alt as cmd", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Alt: true}, CmdFromAlt, "Cmd+W"},
		{"alt kept when ctrl is cmd", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}, Alt: true}, CmdFromCtrl, "Alt+W"},
		{"upper case implies shift", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}, Alt: true}, CmdFromAlt, "Cmd+Shift+N"},
		{"alt and ctrl", tea.KeyMsg{Type: tea.KeyCtrlH, Alt: true}, CmdFromCtrl, "Cmd+Alt+H"},
		{"ctrl space", tea.KeyMsg{Type: tea.KeyCtrlAt}, CmdFromCtrl, "Cmd+space"},
		{"plain key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, CmdFromCtrl, "Q"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromKeyMsg(tc.msg, tc.cmd)
			if !ok {
				t.Fatalf("expected chord for %q", tc.msg.String())
			}
			if got.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.String())
			}
		})
	}
}

func TestFromKeyMsgIgnoresPaste(t *testing.T) {
	if _, ok := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true}, CmdFromCtrl); ok {
		t.Fatalf("expected paste to be ignored")
	}
}

func TestCmdKeyValid(t *testing.T) {
	if !CmdFromCtrl.Valid() || !CmdFromAlt.Valid() || CmdKey("meta").Valid() {
		t.Fatalf("unexpected CmdKey validity")
	}
}
