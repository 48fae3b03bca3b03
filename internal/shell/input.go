package shell

import (
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/wm"
)

// ClickDock opens (or restores and focuses) the app behind a dock icon.
func (s *Shell) ClickDock(id string) {
	if !s.interactive() {
		return
	}
	s.bar.ClickOutside()
	s.source = events.SourceDock
	s.open(id)
	s.sync()
}

// Launch opens an app chosen in Spotlight and dismisses Spotlight.
func (s *Shell) Launch(id string) {
	if !s.interactive() {
		return
	}
	s.setSpotlight(false, id)
	s.source = events.SourceSpotlight
	s.open(id)
	s.sync()
}

// ClickMenu handles a click on a top-level menu title.
func (s *Shell) ClickMenu(label string) {
	if !s.interactive() {
		return
	}
	s.bar.Click(label)
}

// HoverMenu handles the pointer entering a top-level menu title.
func (s *Shell) HoverMenu(label string) {
	if !s.interactive() {
		return
	}
	s.bar.Hover(label)
}

// ClickOutside handles a click that hit no menu surface.
func (s *Shell) ClickOutside() {
	s.bar.ClickOutside()
}

// CloseMenu closes the open menu without a pointer event.
func (s *Shell) CloseMenu() {
	s.bar.Close()
}

// SelectEntry chooses the entry at index in the open menu labelled label.
// It reports whether an action ran.
func (s *Shell) SelectEntry(label string, index int) bool {
	if !s.interactive() || s.bar.OpenLabel() != label {
		return false
	}
	m, ok := s.findMenu(label)
	if !ok || index < 0 || index >= len(m.Entries) {
		return false
	}
	s.source = events.SourceMenu
	ran := s.bar.Select(m.Entries[index])
	s.sync()
	return ran
}

// KeyDown offers chord to the shortcut dispatcher. It reports whether the
// key was consumed.
func (s *Shell) KeyDown(chord shortcut.Chord) bool {
	if !s.interactive() {
		return false
	}
	s.source = events.SourceShortcut
	if !s.shortcuts.Dispatch(chord) {
		return false
	}
	s.bar.Close()
	s.sync()
	return true
}

// ClickWindow focuses a window hit by the pointer.
func (s *Shell) ClickWindow(id wm.WindowID) {
	if !s.interactive() {
		return
	}
	s.bar.ClickOutside()
	if s.store.IsOpen(id) && s.store.Active() != id {
		events.Window.Focus(id, events.SourcePointer)
	}
	s.store.Focus(id)
	s.sync()
}

// TitleBar handles a click on one of a window's title-bar buttons.
func (s *Shell) TitleBar(id wm.WindowID, button Button) {
	if !s.interactive() {
		return
	}
	s.bar.ClickOutside()
	switch button {
	case ButtonClose:
		events.Window.Close(id, events.SourceTitleBar)
		s.store.Close(id)
	case ButtonMinimize:
		events.Window.Minimize(id, events.SourceTitleBar)
		s.store.Minimize(id)
	case ButtonZoom:
		events.Window.Maximize(id, events.SourceTitleBar)
		s.store.Maximize(id)
	}
	s.sync()
}

// Move repositions a window; used by title-bar drags.
func (s *Shell) Move(id wm.WindowID, pos wm.Point) {
	if !s.interactive() {
		return
	}
	s.store.Move(id, pos)
}

// Lock shows the lock screen. Menus, Spotlight and shortcuts go inert until
// Unlock.
func (s *Shell) Lock() {
	if s.screen == ScreenLocked {
		return
	}
	s.bar.Close()
	s.setSpotlight(false, "")
	s.screen = ScreenLocked
	events.Screen.Lock()
}

// Unlock dismisses the lock screen. No credentials are involved.
func (s *Shell) Unlock() {
	if s.screen == ScreenDesktop {
		return
	}
	s.screen = ScreenDesktop
	events.Screen.Unlock()
}

// ToggleSpotlight shows or hides the Spotlight launcher.
func (s *Shell) ToggleSpotlight() {
	if !s.interactive() {
		return
	}
	s.bar.Close()
	s.setSpotlight(!s.spotlight, "")
}

// CloseSpotlight hides the launcher.
func (s *Shell) CloseSpotlight() {
	s.setSpotlight(false, "")
}

func (s *Shell) setSpotlight(open bool, query string) {
	if s.spotlight == open {
		return
	}
	s.spotlight = open
	events.Screen.Spotlight(open, query)
}

// RequestQuit asks the presentation layer to exit.
func (s *Shell) RequestQuit() {
	s.quit = true
}
