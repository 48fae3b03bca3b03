package shortcut

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// CmdKey names the terminal modifier that stands in for Command, which
// terminals cannot deliver.
type CmdKey string

const (
	CmdFromCtrl CmdKey = "ctrl"
	CmdFromAlt  CmdKey = "alt"
)

// Valid reports whether k is a supported mapping.
func (k CmdKey) Valid() bool {
	return k == CmdFromCtrl || k == CmdFromAlt
}

// FromKeyMsg normalises a terminal key press into a chord. The modifier
// selected by cmd is read as Cmd; an upper-case letter implies Shift.
func FromKeyMsg(msg tea.KeyMsg, cmd CmdKey) (Chord, bool) {
	if msg.Paste {
		return Chord{}, false
	}
	text := msg.String()
	if text == "" {
		return Chord{}, false
	}
	tokens := splitTokens(text)
	key := tokens[len(tokens)-1]
	var mods Modifier
	for _, tok := range tokens[:len(tokens)-1] {
		switch tok {
		case "ctrl":
			if cmd == CmdFromCtrl {
				mods |= ModCmd
			} else {
				mods |= ModCtrl
			}
		case "alt":
			if cmd == CmdFromAlt {
				mods |= ModCmd
			} else {
				mods |= ModAlt
			}
		case "shift":
			mods |= ModShift
		}
	}
	// ctrl+space arrives as ctrl+@.
	if key == "@" && strings.Contains(text, "ctrl+") {
		key = "space"
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if unicode.IsUpper(r) {
			mods |= ModShift
		}
	}
	return New(mods, key), true
}
