package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/termdesk/internal/catalog"
	"github.com/atomicstack/termdesk/internal/format/table"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/shell"
	"github.com/atomicstack/termdesk/internal/wm"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	menuBarRow = 0
	desktopTop = 1

	minWindowWidth  = 14
	minWindowHeight = 3

	maxSpotlightResults = 6
)

// Title-bar controls sit at fixed offsets from the window's left edge.
var titleButtons = []struct {
	button shell.Button
	glyph  string
	offset int
}{
	{shell.ButtonClose, "x", 2},
	{shell.ButtonMinimize, "-", 4},
	{shell.ButtonZoom, "+", 6},
}

const titleOffset = 8

type span struct {
	key    string
	text   string
	x0, x1 int
}

func (s span) contains(x int) bool {
	return x >= s.x0 && x < s.x1
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// desktopRect is the area between the menu bar and the dock.
func (m *Model) desktopRect() rect {
	w, h := m.size()
	return rect{x: 0, y: desktopTop, w: w, h: max(h-2, 1)}
}

func (m *Model) dockRow() int {
	_, h := m.size()
	return h - 1
}

func menuBarSpans(labels []string) []span {
	spans := make([]span, 0, len(labels))
	x := 1
	for _, label := range labels {
		text := " " + label + " "
		w := lipgloss.Width(text)
		spans = append(spans, span{key: label, text: text, x0: x, x1: x + w})
		x += w
	}
	return spans
}

// dockSpans centres the dock items, falling back to icons only when the
// titled layout does not fit.
func dockSpans(apps []catalog.App, width int) []span {
	build := func(withTitle bool) ([]span, int) {
		spans := make([]span, 0, len(apps))
		x := 0
		for i, app := range apps {
			if i > 0 {
				x++
			}
			text := " " + app.Icon + " "
			if withTitle {
				text = " " + app.Icon + " " + app.Title + " "
			}
			w := lipgloss.Width(text)
			spans = append(spans, span{key: app.ID, text: text, x0: x, x1: x + w})
			x += w
		}
		return spans, x
	}
	spans, total := build(true)
	if total > width {
		spans, total = build(false)
	}
	offset := max((width-total)/2, 0)
	for i := range spans {
		spans[i].x0 += offset
		spans[i].x1 += offset
	}
	return spans
}

// windowRect places a record on screen. Maximized windows fill the desktop.
func windowRect(rec wm.Record, maximized bool, desk rect) rect {
	if maximized {
		return desk
	}
	return rect{
		x: desk.x + rec.Position.X,
		y: desk.y + rec.Position.Y,
		w: max(rec.Size.Width, minWindowWidth),
		h: max(rec.Size.Height, minWindowHeight),
	}
}

type dropRow struct {
	text      string
	separator bool
}

type dropdown struct {
	rect rect
	rows []dropRow
}

func (d dropdown) entryAt(x, y int) (int, bool) {
	if !d.rect.contains(x, y) {
		return -1, false
	}
	idx := y - d.rect.y - 1
	if idx < 0 || idx >= len(d.rows) || x == d.rect.x || x == d.rect.right() {
		return -1, false
	}
	return idx, true
}

func entryMark(e menu.Entry) string {
	switch {
	case e.Active:
		return "✓"
	case e.Minimized:
		return "◇"
	default:
		return " "
	}
}

// layoutDropdown aligns labels left and shortcut symbols right under the
// menu title at anchor.
func layoutDropdown(m menu.Menu, anchor, screenW int) dropdown {
	cells := make([][]string, len(m.Entries))
	for i, e := range m.Entries {
		if e.Separator {
			cells[i] = []string{"", ""}
			continue
		}
		chord := ""
		if !e.Chord.IsZero() {
			chord = e.Chord.Symbol()
		}
		cells[i] = []string{entryMark(e) + " " + e.Label, chord}
	}
	lines := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight})
	inner := 0
	for _, line := range lines {
		inner = max(inner, lipgloss.Width(line))
	}
	inner += 2
	rows := make([]dropRow, len(m.Entries))
	for i, e := range m.Entries {
		if e.Separator {
			rows[i] = dropRow{separator: true}
			continue
		}
		rows[i] = dropRow{text: " " + lines[i] + " "}
	}
	w := inner + 2
	x := anchor
	if x+w > screenW {
		x = max(screenW-w, 0)
	}
	return dropdown{rect: rect{x: x, y: desktopTop, w: w, h: len(rows) + 2}, rows: rows}
}

func (m *Model) openDropdown() (dropdown, menu.Menu, bool) {
	open, ok := m.shell.OpenMenu()
	if !ok {
		return dropdown{}, menu.Menu{}, false
	}
	anchor := 0
	for _, s := range menuBarSpans(menu.Labels(m.shell.Menus())) {
		if s.key == open.Label {
			anchor = s.x0
		}
	}
	w, _ := m.size()
	return layoutDropdown(open, anchor, w), open, true
}

func (m *Model) spotlightRect() rect {
	w, _ := m.size()
	bw := max(min(50, w-4), 0)
	rows := max(min(len(m.spot.results), maxSpotlightResults), 1)
	return rect{x: max((w-bw)/2, 0), y: desktopTop + 2, w: bw, h: rows + 4}
}

type hitKind int

const (
	hitNone hitKind = iota
	hitMenuLabel
	hitMenuBar
	hitDropdownEntry
	hitDropdown
	hitDock
	hitWindowButton
	hitWindowTitle
	hitWindowBody
	hitSpotlightResult
	hitSpotlight
)

type hit struct {
	kind   hitKind
	key    string
	index  int
	button shell.Button
	rect   rect
}

// hitTest maps a screen cell to the topmost surface under it.
func (m *Model) hitTest(x, y int) hit {
	if m.shell.SpotlightOpen() {
		r := m.spotlightRect()
		if r.contains(x, y) {
			idx := y - r.y - 3
			if idx >= 0 && idx < len(m.spot.results) && idx < maxSpotlightResults {
				return hit{kind: hitSpotlightResult, key: m.spot.results[idx].ID, index: idx}
			}
			return hit{kind: hitSpotlight}
		}
	}
	if d, open, ok := m.openDropdown(); ok && d.rect.contains(x, y) {
		if idx, ok := d.entryAt(x, y); ok {
			return hit{kind: hitDropdownEntry, key: open.Label, index: idx}
		}
		return hit{kind: hitDropdown, key: open.Label}
	}
	if y == menuBarRow {
		for _, s := range menuBarSpans(menu.Labels(m.shell.Menus())) {
			if s.contains(x) {
				return hit{kind: hitMenuLabel, key: s.key}
			}
		}
		return hit{kind: hitMenuBar}
	}
	if y == m.dockRow() {
		w, _ := m.size()
		for _, s := range dockSpans(m.shell.Catalog().DockApps(), w) {
			if s.contains(x) {
				return hit{kind: hitDock, key: s.key}
			}
		}
		return hit{kind: hitNone}
	}
	snap := m.shell.Snapshot()
	desk := m.desktopRect()
	for i := len(snap.ZOrder) - 1; i >= 0; i-- {
		id := snap.ZOrder[i]
		if snap.IsMinimized(id) {
			continue
		}
		r := windowRect(snap.Records[id], snap.IsMaximized(id), desk)
		if !r.contains(x, y) {
			continue
		}
		if y == r.y {
			for _, b := range titleButtons {
				if x >= r.x+b.offset-1 && x <= r.x+b.offset {
					return hit{kind: hitWindowButton, key: id, button: b.button, rect: r}
				}
			}
			return hit{kind: hitWindowTitle, key: id, rect: r}
		}
		return hit{kind: hitWindowBody, key: id, rect: r}
	}
	return hit{kind: hitNone}
}
