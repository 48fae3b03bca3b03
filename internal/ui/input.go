package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/shell"
	"github.com/atomicstack/termdesk/internal/shortcut"
)

type keyMap struct {
	Quit     key.Binding
	OpenMenu key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	OpenMenu: key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu bar")),
	Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous menu")),
	Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next menu")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous item")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next item")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, keys.Quit) {
		m.shell.RequestQuit()
		return nil
	}
	if m.shell.Screen() == shell.ScreenLocked {
		m.shell.Unlock()
		return nil
	}
	if m.shell.SpotlightOpen() {
		return m.handleSpotlightKey(keyMsg)
	}
	if chord, ok := shortcut.FromKeyMsg(keyMsg, m.cmdKey); ok && m.shell.KeyDown(chord) {
		return nil
	}
	if m.shell.MenuBar().Open {
		m.handleMenuKey(keyMsg)
		return nil
	}
	if key.Matches(keyMsg, keys.OpenMenu) {
		labels := menu.Labels(m.shell.Menus())
		if len(labels) > 0 {
			m.shell.ClickMenu(labels[0])
			m.highlightFirst()
		}
	}
	return nil
}

func (m *Model) handleSpotlightKey(msg tea.KeyMsg) tea.Cmd {
	if chord, ok := shortcut.FromKeyMsg(msg, m.cmdKey); ok && chord.Has(shortcut.ModCmd) {
		if m.shell.KeyDown(chord) {
			return nil
		}
	}
	switch {
	case key.Matches(msg, keys.Cancel):
		m.shell.CloseSpotlight()
		return nil
	case key.Matches(msg, keys.Select):
		if app, ok := m.spot.selected(); ok {
			m.shell.Launch(app.ID)
		}
		return nil
	case key.Matches(msg, keys.Up):
		m.spot.move(-1)
		return nil
	case key.Matches(msg, keys.Down):
		m.spot.move(1)
		return nil
	}
	return m.spot.update(msg, m.shell.Catalog())
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) {
	open, ok := m.shell.OpenMenu()
	if !ok {
		return
	}
	switch {
	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.OpenMenu):
		m.shell.CloseMenu()
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		labels := menu.Labels(m.shell.Menus())
		idx := indexOf(labels, open.Label)
		if idx < 0 {
			return
		}
		step := 1
		if key.Matches(msg, keys.Left) {
			step = -1
		}
		m.shell.HoverMenu(labels[(idx+step+len(labels))%len(labels)])
		m.highlightFirst()
	case key.Matches(msg, keys.Up):
		m.menuCursor = nextSelectable(open, m.menuCursor, -1)
	case key.Matches(msg, keys.Down):
		m.menuCursor = nextSelectable(open, m.menuCursor, 1)
	case key.Matches(msg, keys.Select):
		if m.menuCursor >= 0 {
			m.shell.SelectEntry(open.Label, m.menuCursor)
		}
	}
}

// highlightFirst points the cursor at the first selectable entry of the
// open menu and pins it across the label change.
func (m *Model) highlightFirst() {
	open, ok := m.shell.OpenMenu()
	if !ok {
		return
	}
	m.menuLabel = open.Label
	m.menuCursor = nextSelectable(open, -1, 1)
}

// nextSelectable walks from index in direction step, wrapping, and returns
// the first selectable entry, or -1 when there is none.
func nextSelectable(m menu.Menu, from, step int) int {
	n := len(m.Entries)
	if n == 0 {
		return -1
	}
	idx := from
	if idx < 0 && step < 0 {
		idx = n
	}
	for i := 0; i < n; i++ {
		idx = (idx + step + n) % n
		if m.Entries[idx].Selectable() {
			return idx
		}
	}
	return -1
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
