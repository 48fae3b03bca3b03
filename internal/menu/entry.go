package menu

import (
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/wm"
)

// Action is a callable bound to a menu entry. Shortcuts invoke the same
// callables.
type Action = shortcut.Action

// Actions supplies the callables that decoration binds to entries.
type Actions interface {
	// Command resolves a named command such as "window.close".
	Command(name string) (Action, bool)
	// OpenApp returns an action opening the app, or false for unknown ids.
	OpenApp(id string) (Action, bool)
	// ToggleWindow returns the action used by Window menu rows.
	ToggleWindow(id wm.WindowID) Action
}

// Entry is a renderable menu row: a static Item decorated with state read
// from a store snapshot.
type Entry struct {
	ID        string
	Label     string
	Chord     shortcut.Chord
	Separator bool
	Disabled  bool
	Active    bool
	Minimized bool
	Action    Action
}

// Selectable reports whether choosing the entry runs an action.
func (e Entry) Selectable() bool {
	return !e.Separator && !e.Disabled && e.Action != nil
}

// Menu is a resolved top-level menu.
type Menu struct {
	Label   string
	Entries []Entry
}

// Find returns the menu with the given label.
func Find(menus []Menu, label string) (Menu, bool) {
	for _, m := range menus {
		if m.Label == label {
			return m, true
		}
	}
	return Menu{}, false
}

// Labels lists the top-level labels in display order.
func Labels(menus []Menu) []string {
	labels := make([]string, len(menus))
	for i, m := range menus {
		labels[i] = m.Label
	}
	return labels
}
