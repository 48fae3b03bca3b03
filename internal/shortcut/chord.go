package shortcut

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModCmd Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModShift
)

// modifierOrder fixes the canonical rendering order.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCmd, "Cmd"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

var modifierNames = map[string]Modifier{
	"cmd":     ModCmd,
	"command": ModCmd,
	"meta":    ModCmd,
	"super":   ModCmd,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"opt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
}

var modifierSymbols = strings.NewReplacer(
	"⌘", "Cmd+",
	"⌃", "Ctrl+",
	"⌥", "Alt+",
	"⇧", "Shift+",
)

var keyAliases = map[string]string{
	" ":          "space",
	"spacebar":   "space",
	"escape":     "esc",
	"return":     "enter",
	"del":        "delete",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

// Chord is a normalised modifier set plus one primary key. Chords are
// comparable, so equality is plain ==.
type Chord struct {
	Mods Modifier
	Key  string
}

// Has reports whether every modifier in mod is held.
func (c Chord) Has(mod Modifier) bool {
	return c.Mods&mod == mod
}

// IsZero reports whether the chord has no key.
func (c Chord) IsZero() bool {
	return c.Key == ""
}

// String renders the chord canonically, e.g. "Cmd+Alt+H".
func (c Chord) String() string {
	if c.IsZero() {
		return ""
	}
	var b strings.Builder
	for _, m := range modifierOrder {
		if c.Mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.Key)
	return b.String()
}

// Symbol renders the chord the way menus display it, e.g. "⌥⌘H".
func (c Chord) Symbol() string {
	if c.IsZero() {
		return ""
	}
	var b strings.Builder
	if c.Has(ModCtrl) {
		b.WriteString("⌃")
	}
	if c.Has(ModAlt) {
		b.WriteString("⌥")
	}
	if c.Has(ModShift) {
		b.WriteString("⇧")
	}
	if c.Has(ModCmd) {
		b.WriteString("⌘")
	}
	b.WriteString(c.Key)
	return b.String()
}

// New builds a chord from a modifier set and a key name.
func New(mods Modifier, key string) Chord {
	return Chord{Mods: mods, Key: normalizeKey(key)}
}

// ParseChord parses strings such as "Cmd+Shift+N", "ctrl+alt+delete" or
// "⌥⌘H". Modifier names are case-insensitive and may appear in any order.
func ParseChord(text string) (Chord, error) {
	raw := strings.TrimSpace(modifierSymbols.Replace(text))
	if raw == "" {
		return Chord{}, fmt.Errorf("empty chord")
	}
	tokens := splitTokens(raw)
	var mods Modifier
	for _, tok := range tokens[:len(tokens)-1] {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(tok))]
		if !ok {
			return Chord{}, fmt.Errorf("chord %q: unknown modifier %q", text, tok)
		}
		mods |= mod
	}
	key := strings.TrimSpace(tokens[len(tokens)-1])
	if key == "" {
		return Chord{}, fmt.Errorf("chord %q: missing key", text)
	}
	if _, isMod := modifierNames[strings.ToLower(key)]; isMod {
		return Chord{}, fmt.Errorf("chord %q: missing key", text)
	}
	return New(mods, key), nil
}

// MustParse is ParseChord for static tables; it panics on malformed input.
func MustParse(text string) Chord {
	c, err := ParseChord(text)
	if err != nil {
		panic(err)
	}
	return c
}

// splitTokens splits on '+' while letting a trailing "+" act as the key.
func splitTokens(raw string) []string {
	if raw == "+" {
		return []string{"+"}
	}
	if strings.HasSuffix(raw, "++") {
		head := strings.Split(strings.TrimSuffix(raw, "++"), "+")
		return append(head, "+")
	}
	return strings.Split(raw, "+")
}

// normalizeKey returns the canonical key name: single letters upper-case,
// named keys lower-case with common aliases folded.
func normalizeKey(key string) string {
	if key != " " {
		key = strings.TrimSpace(key)
	}
	lower := strings.ToLower(key)
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return string(unicode.ToUpper(r))
	}
	return lower
}
