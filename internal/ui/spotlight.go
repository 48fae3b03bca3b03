package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/catalog"
)

const spotlightPlaceholder = "Spotlight Search"

// spotlight is the view state of the launcher. Whether it is showing is
// owned by the shell; shown mirrors that so a reopen starts fresh.
type spotlight struct {
	input   textinput.Model
	results []catalog.App
	cursor  int
	shown   bool
}

func newSpotlight() spotlight {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = spotlightPlaceholder
	ti.CharLimit = 64
	// the view draws its own cursor; a blinking one would schedule ticks
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return spotlight{input: ti}
}

func (s *spotlight) reset(cat *catalog.Catalog) {
	s.input.SetValue("")
	s.input.CursorStart()
	s.cursor = 0
	s.refresh(cat)
}

func (s *spotlight) refresh(cat *catalog.Catalog) {
	s.results = cat.Search(s.input.Value())
	if len(s.results) > maxSpotlightResults {
		s.results = s.results[:maxSpotlightResults]
	}
	s.move(0)
}

func (s *spotlight) move(delta int) {
	if len(s.results) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = (s.cursor + delta + len(s.results)) % len(s.results)
}

func (s *spotlight) selected() (catalog.App, bool) {
	if s.cursor < 0 || s.cursor >= len(s.results) {
		return catalog.App{}, false
	}
	return s.results[s.cursor], true
}

func (s *spotlight) update(msg tea.KeyMsg, cat *catalog.Catalog) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.cursor = 0
		s.refresh(cat)
	}
	return cmd
}
