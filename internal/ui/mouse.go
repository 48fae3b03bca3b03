package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/shell"
	"github.com/atomicstack/termdesk/internal/wm"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			m.press(ev.X, ev.Y)
		}
	case tea.MouseActionMotion:
		m.motion(ev.X, ev.Y, ev.Button == tea.MouseButtonLeft)
	case tea.MouseActionRelease:
		m.drag = nil
	}
	return nil
}

func (m *Model) press(x, y int) {
	if m.shell.Screen() == shell.ScreenLocked {
		m.shell.Unlock()
		return
	}
	h := m.hitTest(x, y)
	if m.shell.SpotlightOpen() {
		switch h.kind {
		case hitSpotlightResult:
			m.shell.Launch(h.key)
		case hitSpotlight:
		default:
			m.shell.CloseSpotlight()
		}
		return
	}
	switch h.kind {
	case hitDropdownEntry:
		m.shell.SelectEntry(h.key, h.index)
	case hitDropdown:
	case hitMenuLabel:
		m.shell.ClickMenu(h.key)
	case hitDock:
		m.shell.ClickDock(h.key)
	case hitWindowButton:
		m.shell.TitleBar(h.key, h.button)
	case hitWindowTitle:
		m.shell.ClickWindow(h.key)
		if !m.shell.Snapshot().IsMaximized(h.key) {
			m.drag = &dragState{id: h.key, offX: x - h.rect.x, offY: y - h.rect.y}
		}
	case hitWindowBody:
		m.shell.ClickWindow(h.key)
	default:
		m.shell.ClickOutside()
	}
}

func (m *Model) motion(x, y int, leftHeld bool) {
	if m.drag != nil {
		if !leftHeld {
			m.drag = nil
			return
		}
		desk := m.desktopRect()
		pos := wm.Point{X: max(x-m.drag.offX-desk.x, 0), Y: max(y-m.drag.offY-desk.y, 0)}
		// keep the title bar reachable
		pos.X = min(pos.X, max(desk.w-minWindowWidth, 0))
		pos.Y = min(pos.Y, max(desk.h-1, 0))
		m.shell.Move(m.drag.id, pos)
		return
	}
	if !m.shell.MenuBar().Open {
		return
	}
	h := m.hitTest(x, y)
	switch h.kind {
	case hitMenuLabel:
		m.shell.HoverMenu(h.key)
	case hitDropdownEntry:
		if open, ok := m.shell.OpenMenu(); ok && open.Entries[h.index].Selectable() {
			m.menuCursor = h.index
		}
	}
}
