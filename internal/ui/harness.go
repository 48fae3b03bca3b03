package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model    *Model
	quitting bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			return
		case tea.QuitMsg:
			h.quitting = true
			return
		case tea.BatchMsg:
			for _, sub := range msg {
				h.processCmd(sub)
			}
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Key sends a key press given in Bubble Tea's string form, e.g. "alt+w",
// "enter" or a run of plain characters.
func (h *Harness) Key(text string) {
	h.Send(keyMsg(text))
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Click presses and releases the left button at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Hover moves the pointer to (x, y) with no button held.
func (h *Harness) Hover(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

// Drag presses at from, moves to to with the button held, and releases.
func (h *Harness) Drag(fromX, fromY, toX, toY int) {
	h.Send(tea.MouseMsg{X: fromX, Y: fromY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Quitting reports whether the model asked the program to exit.
func (h *Harness) Quitting() bool {
	return h.quitting
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"tab":       tea.KeyTab,
	"f10":       tea.KeyF10,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+w":    tea.KeyCtrlW,
	"ctrl+m":    tea.KeyEnter,
	"ctrl+@":    tea.KeyCtrlAt,
	" ":         tea.KeySpace,
}

// keyMsg builds the KeyMsg a terminal would deliver for text. Only "alt+"
// prefixes and the named keys above are understood.
func keyMsg(text string) tea.KeyMsg {
	alt := false
	if len(text) > len("alt+") && text[:4] == "alt+" {
		alt = true
		text = text[4:]
	}
	if t, ok := namedKeys[text]; ok {
		return tea.KeyMsg{Type: t, Alt: alt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Alt: alt}
}
