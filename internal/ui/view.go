package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/shell"
	"github.com/atomicstack/termdesk/internal/wm"
)

const clockLayout = "Mon 2 Jan 15:04"

// View paints the whole screen from a fresh shell snapshot.
func (m *Model) View() string {
	w, h := m.size()
	c := newCanvas(w, h, styles.Desktop)
	if m.shell.Screen() == shell.ScreenLocked {
		m.paintLock(c)
		return c.String()
	}
	m.paintWindows(c)
	m.paintMenuBar(c)
	m.paintDock(c)
	m.paintDropdown(c)
	if m.shell.SpotlightOpen() {
		m.paintSpotlight(c)
	}
	return c.String()
}

func (m *Model) currentTime() time.Time {
	if m.clock.IsZero() {
		return m.now()
	}
	return m.clock
}

func (m *Model) paintLock(c *canvas) {
	now := m.currentTime()
	lines := []struct {
		text  string
		style *lipgloss.Style
	}{
		{now.Format("15:04"), styles.LockClock},
		{now.Format("Monday, 2 January"), styles.LockText},
		{"", nil},
		{"termdesk", styles.LockClock},
		{"press any key or click to unlock", styles.LockText},
	}
	top := max((c.h-len(lines))/2, 0)
	for i, line := range lines {
		x := max((c.w-lipgloss.Width(line.text))/2, 0)
		c.text(x, top+i, line.text, line.style)
	}
}

func (m *Model) paintMenuBar(c *canvas) {
	c.fill(rect{x: 0, y: menuBarRow, w: c.w, h: 1}, ' ', styles.MenuBar)
	open := m.shell.MenuBar().Label
	for _, s := range menuBarSpans(menu.Labels(m.shell.Menus())) {
		style := styles.MenuBarLabel
		if s.key == open {
			style = styles.MenuBarOpen
		}
		c.text(s.x0, menuBarRow, s.text, style)
	}
	if m.showClock {
		text := m.currentTime().Format(clockLayout)
		c.text(c.w-lipgloss.Width(text)-1, menuBarRow, text, styles.MenuBarClock)
	}
}

func (m *Model) paintDock(c *canvas) {
	row := m.dockRow()
	c.fill(rect{x: 0, y: row, w: c.w, h: 1}, ' ', styles.Dock)
	snap := m.shell.Snapshot()
	for _, s := range dockSpans(m.shell.Catalog().DockApps(), c.w) {
		style := styles.DockItem
		switch {
		case snap.IsMinimized(s.key):
			style = styles.DockMinimized
		case snap.IsOpen(s.key):
			style = styles.DockRunning
		}
		c.text(s.x0, row, s.text, style)
	}
}

func (m *Model) paintWindows(c *canvas) {
	snap := m.shell.Snapshot()
	desk := m.desktopRect()
	for _, id := range snap.ZOrder {
		if snap.IsMinimized(id) {
			continue
		}
		m.paintWindow(c, snap.Records[id], windowRect(snap.Records[id], snap.IsMaximized(id), desk), id == snap.Active)
	}
}

func (m *Model) paintWindow(c *canvas, rec wm.Record, r rect, active bool) {
	border, frame, titleStyle := lipgloss.NormalBorder(), styles.Window, styles.WindowTitle
	if active {
		border, frame, titleStyle = lipgloss.DoubleBorder(), styles.WindowActive, styles.WindowTitleActive
	}
	c.fill(r, ' ', styles.WindowBody)
	c.box(r, border, frame)
	for _, b := range titleButtons {
		c.text(r.x+b.offset, r.y, b.glyph, styles.WindowButton)
	}
	if room := r.w - titleOffset - 2; room > 2 {
		title := " " + rec.Title + " "
		if lipgloss.Width(title) > room {
			title = truncate.StringWithTail(title, uint(room), "… ")
		}
		c.text(r.x+titleOffset, r.y, title, titleStyle)
	}
	renderer, ok := m.renderers[rec.ID]
	if !ok {
		return
	}
	for i, line := range renderer.Render(r.w-2, r.h-2) {
		c.text(r.x+1, r.y+1+i, line, styles.WindowBody)
	}
}

func (m *Model) paintDropdown(c *canvas) {
	d, _, ok := m.openDropdown()
	if !ok {
		return
	}
	open, _ := m.shell.OpenMenu()
	c.fill(d.rect, ' ', styles.Dropdown)
	c.box(d.rect, lipgloss.RoundedBorder(), styles.Dropdown)
	inner := d.rect.w - 2
	for i, row := range d.rows {
		y := d.rect.y + 1 + i
		if row.separator {
			c.text(d.rect.x+1, y, strings.Repeat("─", inner), styles.Dropdown)
			continue
		}
		style := styles.DropdownItem
		switch {
		case open.Entries[i].Disabled:
			style = styles.DropdownDisabled
		case i == m.menuCursor:
			style = styles.DropdownSelected
		}
		c.text(d.rect.x+1, y, padRight(row.text, inner), style)
	}
}

func (m *Model) paintSpotlight(c *canvas) {
	r := m.spotlightRect()
	inner := r.w - 2
	c.fill(r, ' ', styles.Spotlight)
	c.box(r, lipgloss.RoundedBorder(), styles.Spotlight)
	if inner <= 0 {
		return
	}

	x := c.text(r.x+1, r.y+1, " > ", styles.SpotlightPrompt)
	value := []rune(m.spot.input.Value())
	pos := m.spot.input.Position()
	if len(value) == 0 {
		c.text(x+1, r.y+1, spotlightPlaceholder, styles.Spotlight)
	}
	for i, ch := range value {
		c.set(x+i, r.y+1, ch, styles.SpotlightResult)
	}
	c.set(x+pos, r.y+1, cursorRune(value, pos), styles.SpotlightSelected)
	c.text(r.x+1, r.y+2, strings.Repeat("─", inner), styles.Spotlight)

	if len(m.spot.results) == 0 {
		c.text(r.x+2, r.y+3, "No results", styles.Spotlight)
		return
	}
	for i, app := range m.spot.results {
		style := styles.SpotlightResult
		if i == m.spot.cursor {
			style = styles.SpotlightSelected
		}
		line := padRight(" "+app.Icon+"  "+app.Title, inner)
		c.text(r.x+1, r.y+3+i, truncate.String(line, uint(inner)), style)
	}
}

func cursorRune(value []rune, pos int) rune {
	if pos >= 0 && pos < len(value) {
		return value[pos]
	}
	return ' '
}

// padRight pads text to width cells; a non-positive width leaves it as is.
func padRight(text string, width int) string {
	if gap := width - lipgloss.Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
