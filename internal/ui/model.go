package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/backend"
	"github.com/atomicstack/termdesk/internal/catalog"
	"github.com/atomicstack/termdesk/internal/shell"
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the presentation layer.
type Options struct {
	// Width and Height pin the screen size; zero follows the terminal.
	Width  int
	Height int
	// CmdKey is the terminal modifier read as Cmd.
	CmdKey    shortcut.CmdKey
	ShowClock bool
	Watcher   *backend.Watcher
	Now       func() time.Time
}

// dragState tracks a title-bar drag; the offsets keep the grab point
// under the pointer.
type dragState struct {
	id         string
	offX, offY int
}

// Model implements the Bubble Tea model for the desktop. It owns no desktop
// state of its own: every paint reads a fresh snapshot from the shell.
type Model struct {
	shell     *shell.Shell
	renderers map[string]catalog.Renderer
	cmdKey    shortcut.CmdKey

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	backend   *backend.Watcher
	now       func() time.Time
	clock     time.Time
	showClock bool

	// menuCursor indexes the highlighted entry of the open menu, -1 for none.
	menuCursor int
	menuLabel  string
	spot       spotlight
	drag       *dragState

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model around sh.
func NewModel(sh *shell.Shell, opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cmdKey := opts.CmdKey
	if !cmdKey.Valid() {
		cmdKey = shortcut.CmdFromAlt
	}
	m := &Model{
		shell:      sh,
		renderers:  sh.Catalog().Renderers(now),
		cmdKey:     cmdKey,
		backend:    opts.Watcher,
		now:        now,
		clock:      now().Truncate(time.Minute),
		showClock:  opts.ShowClock,
		menuCursor: -1,
		spot:       newSpotlight(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, m.finishUpdate(cmd)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate reconciles view-only state with the shell after any message.
func (m *Model) finishUpdate(cmd tea.Cmd) tea.Cmd {
	if label := m.shell.MenuBar().Label; label != m.menuLabel {
		m.menuLabel = label
		m.menuCursor = -1
	}
	if open := m.shell.SpotlightOpen(); open != m.spot.shown {
		m.spot.shown = open
		if open {
			m.spot.reset(m.shell.Catalog())
		}
	}
	if m.shell.Screen() != shell.ScreenDesktop {
		m.drag = nil
	}
	if m.shell.QuitRequested() {
		if m.backend != nil {
			m.backend.Stop()
		}
		return tea.Quit
	}
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// Shell exposes the shell driven by the model.
func (m *Model) Shell() *shell.Shell {
	return m.shell
}
