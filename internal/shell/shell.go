// Package shell is the composition root of the desktop. It owns the single
// window store, the menu registry, the menu-bar controller and the shortcut
// dispatcher, and it is the only thing the presentation layer talks to.
//
// Every input method runs to completion before returning. After each input
// the shell re-resolves the menus; when the active window has changed it
// also retires the shortcuts contributed by the previous app's menus and
// registers the new ones.
package shell

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/termdesk/internal/catalog"
	"github.com/atomicstack/termdesk/internal/command"
	"github.com/atomicstack/termdesk/internal/logging"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/menubar"
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/wm"
)

// MenuScope owns the shortcuts derived from the current menus.
const MenuScope = "menu"

// Screen is the top-level presentation mode.
type Screen int

const (
	ScreenLocked Screen = iota
	ScreenDesktop
)

func (s Screen) String() string {
	if s == ScreenLocked {
		return "locked"
	}
	return "desktop"
}

// Button identifies a title-bar control.
type Button int

const (
	ButtonClose Button = iota
	ButtonMinimize
	ButtonZoom
)

// Options configures a Shell.
type Options struct {
	Catalog  *catalog.Catalog
	Unlocked bool
	// Clipboard receives Edit > Copy text; nil uses the system clipboard.
	Clipboard func(text string) error
}

// Shell wires user input to the desktop core.
type Shell struct {
	catalog   *catalog.Catalog
	store     *wm.Store
	registry  *menu.Registry
	bar       *menubar.Controller
	shortcuts *shortcut.Dispatcher
	bus       *command.Bus
	commands  *command.Table
	clipboard func(string) error

	screen    Screen
	spotlight bool
	quit      bool
	source    events.WindowSource

	menus      []menu.Menu
	lastActive wm.WindowID
	bound      bool
}

// New builds a shell over cat. A nil catalog yields an empty desktop.
func New(opts Options) *Shell {
	cat := opts.Catalog
	if cat == nil {
		cat, _ = catalog.Parse(nil)
	}
	s := &Shell{
		catalog:   cat,
		store:     wm.NewStore(cat),
		registry:  menu.NewRegistry(menu.BaseMenus(), cat.Title),
		bar:       menubar.New(),
		shortcuts: shortcut.NewDispatcher(),
		bus:       command.New(),
		commands:  command.NewTable(),
		clipboard: opts.Clipboard,
		screen:    ScreenLocked,
		source:    events.SourceMenu,
	}
	if s.clipboard == nil {
		s.clipboard = clipboard.WriteAll
	}
	for _, app := range cat.Apps() {
		s.registry.SetOverride(app.ID, app.Menus)
	}
	s.registerCommands()
	s.registerGlobalShortcuts()
	if opts.Unlocked {
		s.screen = ScreenDesktop
	}
	s.sync()
	return s
}

func (s *Shell) registerCommands() {
	s.commands.Register(menu.CmdClose, func() {
		if id := s.store.Active(); id != "" {
			events.Window.Close(id, s.source)
			s.store.Close(id)
		}
	})
	s.commands.Register(menu.CmdMinimize, func() {
		if id := s.store.Active(); id != "" {
			events.Window.Minimize(id, s.source)
			s.store.Minimize(id)
		}
	})
	s.commands.Register(menu.CmdZoom, func() {
		if id := s.store.Active(); id != "" {
			events.Window.Maximize(id, s.source)
			s.store.Maximize(id)
		}
	})
	s.commands.Register(menu.CmdMinimizeAll, func() {
		events.Window.Bulk(menu.CmdMinimizeAll)
		s.store.MinimizeAll()
	})
	s.commands.Register(menu.CmdHideOthers, func() {
		events.Window.Bulk(menu.CmdHideOthers)
		s.store.HideAllExceptActive()
	})
	s.commands.Register(menu.CmdBringAll, func() {
		events.Window.Bulk(menu.CmdBringAll)
		s.bringAllToFront()
	})
	s.commands.Register(menu.CmdCopy, func() {
		if id := s.store.Active(); id != "" {
			s.copyWindow(id)
		}
	})
	s.commands.Register(menu.CmdLock, s.Lock)
	s.commands.Register(menu.CmdSpotlight, s.ToggleSpotlight)
	s.commands.Register(menu.CmdAbout, func() { s.open("about") })
	s.commands.Register(menu.CmdQuit, func() { s.quit = true })
}

// Global shortcuts survive app context changes.
func (s *Shell) registerGlobalShortcuts() {
	for _, g := range []struct{ chord, cmd string }{
		{"Cmd+Space", menu.CmdSpotlight},
		{"Cmd+L", menu.CmdLock},
	} {
		if action, ok := s.command(g.cmd); ok {
			s.shortcuts.Register(shortcut.MustParse(g.chord), action)
		}
	}
}

// bringAllToFront raises every visible window, keeping their relative order
// and leaving the active window on top.
func (s *Shell) bringAllToFront() {
	snap := s.store.Snapshot()
	for _, id := range snap.ZOrder {
		if id == snap.Active || snap.IsMinimized(id) {
			continue
		}
		s.store.BringToTop(id)
	}
	if snap.Active != "" {
		s.store.BringToTop(snap.Active)
	}
}

// copyWindow puts the app's body on the clipboard, or its title when the
// app has no static body.
func (s *Shell) copyWindow(id wm.WindowID) {
	text := ""
	if app, ok := s.catalog.Lookup(id); ok {
		text = strings.TrimSpace(app.Body)
	}
	if text == "" {
		rec, _ := s.store.Record(id)
		text = rec.Title
	}
	events.Window.Copy(id, len(text))
	if err := s.clipboard(text); err != nil {
		logging.Error(fmt.Errorf("copy %s: %w", id, err))
	}
}

func (s *Shell) command(name string) (menu.Action, bool) {
	handler, ok := s.commands.Lookup(name)
	if !ok {
		return nil, false
	}
	return menu.Action(s.bus.Bind(name, name, handler)), true
}

func (s *Shell) open(id string) {
	if !s.catalog.Has(id) {
		return
	}
	events.Window.Open(id, s.source)
	s.store.Open(id)
}

// toggleWindow restores a minimized window, otherwise focuses it.
func (s *Shell) toggleWindow(id wm.WindowID) {
	if s.store.IsMinimized(id) {
		events.Window.Minimize(id, s.source)
		s.store.Minimize(id)
		return
	}
	events.Window.Focus(id, s.source)
	s.store.Focus(id)
}

// sync refreshes the resolved menus and rebinds menu shortcuts when the app
// context changed.
func (s *Shell) sync() {
	snap := s.store.Snapshot()
	s.menus = s.registry.Resolve(snap, shellActions{s})
	if label := s.bar.OpenLabel(); label != "" {
		if _, ok := menu.Find(s.menus, label); !ok {
			s.bar.Close()
		}
	}
	if s.bound && snap.Active == s.lastActive {
		return
	}
	if s.bound {
		events.Window.ActiveChanged(s.lastActive, snap.Active)
	}
	s.lastActive = snap.Active
	s.bound = true
	s.shortcuts.ReleaseScope(MenuScope)
	for _, m := range s.menus {
		for _, entry := range m.Entries {
			if entry.Selectable() && !entry.Chord.IsZero() {
				s.shortcuts.RegisterScoped(MenuScope, entry.Chord, entry.Action)
			}
		}
	}
}

func (s *Shell) interactive() bool {
	return s.screen == ScreenDesktop
}

type shellActions struct {
	s *Shell
}

func (a shellActions) Command(name string) (menu.Action, bool) {
	return a.s.command(name)
}

func (a shellActions) OpenApp(id string) (menu.Action, bool) {
	if !a.s.catalog.Has(id) {
		return nil, false
	}
	return menu.Action(a.s.bus.Bind("app.open", id, func() { a.s.open(id) })), true
}

func (a shellActions) ToggleWindow(id wm.WindowID) menu.Action {
	return menu.Action(a.s.bus.Bind("window.toggle", id, func() { a.s.toggleWindow(id) }))
}
