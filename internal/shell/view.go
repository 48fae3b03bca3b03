package shell

import (
	"github.com/atomicstack/termdesk/internal/catalog"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/menubar"
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/wm"
)

// Snapshot returns the current window state.
func (s *Shell) Snapshot() wm.Snapshot {
	return s.store.Snapshot()
}

// Menus returns the resolved top-level menus for the current context.
func (s *Shell) Menus() []menu.Menu {
	out := make([]menu.Menu, len(s.menus))
	copy(out, s.menus)
	return out
}

// OpenMenu returns the menu currently dropped down.
func (s *Shell) OpenMenu() (menu.Menu, bool) {
	label := s.bar.OpenLabel()
	if label == "" {
		return menu.Menu{}, false
	}
	return s.findMenu(label)
}

func (s *Shell) findMenu(label string) (menu.Menu, bool) {
	return menu.Find(s.menus, label)
}

// MenuBar returns the menu-bar state.
func (s *Shell) MenuBar() menubar.State {
	return s.bar.State()
}

// Screen returns the presentation mode.
func (s *Shell) Screen() Screen {
	return s.screen
}

// SpotlightOpen reports whether the launcher is showing.
func (s *Shell) SpotlightOpen() bool {
	return s.spotlight
}

// QuitRequested reports whether a quit command ran.
func (s *Shell) QuitRequested() bool {
	return s.quit
}

// Catalog returns the app catalog the shell was built with.
func (s *Shell) Catalog() *catalog.Catalog {
	return s.catalog
}

// Bindings returns the registered shortcut bindings.
func (s *Shell) Bindings() []shortcut.Binding {
	return s.shortcuts.Bindings()
}

// Executed returns how many commands the shell has run.
func (s *Shell) Executed() int {
	return s.bus.Executed()
}
