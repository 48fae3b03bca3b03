package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/wm"
)

func TestDockClickOpensWindow(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	clickDock(t, h, "notes")
	snap := h.Model().Shell().Snapshot()
	if snap.Active != "notes" {
		t.Fatalf("expected notes active, got %q", snap.Active)
	}
	view := h.View()
	if !strings.Contains(view, " Notes ") || !strings.Contains(view, "- ship the lock screen") {
		t.Fatalf("expected notes window in view:\n%s", view)
	}
	if !strings.Contains(view, "╔") {
		t.Fatalf("active window should have a double border")
	}
}

func TestHelpIsNotDocked(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	for _, s := range dockSpans(h.Model().Shell().Catalog().DockApps(), testWidth) {
		if s.key == "help" {
			t.Fatalf("help should not appear in the dock")
		}
	}
}

func TestDockFallsBackToIcons(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	apps := h.Model().Shell().Catalog().DockApps()
	narrow := dockSpans(apps, 30)
	for _, s := range narrow {
		if len([]rune(s.text)) != 3 {
			t.Fatalf("narrow dock should show icons only, got %q", s.text)
		}
	}
	wide := dockSpans(apps, 200)
	if !strings.Contains(wide[0].text, "Finder") {
		t.Fatalf("wide dock should show titles, got %q", wide[0].text)
	}
}

func TestMenuClickHoverAndOutside(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	sh := h.Model().Shell()
	file := labelSpan(t, h, menu.LabelFile)
	edit := labelSpan(t, h, menu.LabelEdit)

	h.Hover(file.x0, 0)
	if sh.MenuBar().Open {
		t.Fatalf("hover while closed must not open a menu")
	}
	h.Click(file.x0, 0)
	if got := sh.MenuBar().String(); got != "open(File)" {
		t.Fatalf("state = %s", got)
	}
	if !strings.Contains(h.View(), "Close Window") {
		t.Fatalf("expected File dropdown in view")
	}
	h.Hover(edit.x0+1, 0)
	if got := sh.MenuBar().String(); got != "open(Edit)" {
		t.Fatalf("hover should follow to Edit, got %s", got)
	}
	h.Click(testWidth-5, testHeight/2)
	if sh.MenuBar().Open {
		t.Fatalf("click on the desktop should close the menu")
	}
}

func TestClickingOpenLabelCloses(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	file := labelSpan(t, h, menu.LabelFile)
	h.Click(file.x0, 0)
	h.Click(file.x0, 0)
	if h.Model().Shell().MenuBar().Open {
		t.Fatalf("second click should close the menu")
	}
}

func TestDropdownClickSelectsEntry(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	clickDock(t, h, "notes")
	h.Click(labelSpan(t, h, menu.LabelFile).x0, 0)
	d, open, ok := h.Model().openDropdown()
	if !ok {
		t.Fatalf("expected an open dropdown")
	}
	idx := -1
	for i, e := range open.Entries {
		if e.Label == "Close Window" {
			idx = i
		}
	}
	// disabled rows swallow the click without closing
	h.Click(d.rect.x+2, d.rect.y+1)
	if !h.Model().Shell().MenuBar().Open {
		t.Fatalf("clicking a disabled entry must keep the menu open")
	}
	h.Click(d.rect.x+2, d.rect.y+1+idx)
	sh := h.Model().Shell()
	if sh.MenuBar().Open || sh.Snapshot().IsOpen("notes") {
		t.Fatalf("Close Window should close notes and the menu")
	}
}

func TestDropdownHoverHighlights(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	h.Click(labelSpan(t, h, menu.LabelGo).x0, 0)
	d, _, _ := h.Model().openDropdown()
	h.Hover(d.rect.x+2, d.rect.y+2)
	if h.Model().menuCursor != 1 {
		t.Fatalf("hover should highlight row 1, got %d", h.Model().menuCursor)
	}
}

func TestWindowMenuListsOpenWindows(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	clickDock(t, h, "finder")
	clickDock(t, h, "notes")
	h.Key("alt+m")
	h.Click(labelSpan(t, h, menu.LabelWindow).x0, 0)
	view := h.View()
	if !strings.Contains(view, "✓ Finder") || !strings.Contains(view, "◇ Notes") {
		t.Fatalf("expected window rows with marks:\n%s", view)
	}
}

func TestClickFocusesWindowBehind(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	clickDock(t, h, "finder")
	clickDock(t, h, "notes")
	h.Click(3, 5)
	snap := h.Model().Shell().Snapshot()
	if snap.Active != "finder" || snap.ZOrder[len(snap.ZOrder)-1] != "finder" {
		t.Fatalf("click should raise finder, got active=%q zorder=%v", snap.Active, snap.ZOrder)
	}
}

func TestTitleBarButtons(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	clickDock(t, h, "notes")
	rec := h.Model().Shell().Snapshot().Records["notes"]
	x, y := rec.Position.X, rec.Position.Y+desktopTop

	h.Click(x+6, y)
	if !h.Model().Shell().Snapshot().IsMaximized("notes") {
		t.Fatalf("zoom button should maximize")
	}
	// maximized windows fill the desktop, so the buttons move to the corner
	h.Click(4, desktopTop)
	if !h.Model().Shell().Snapshot().IsMinimized("notes") {
		t.Fatalf("minimize button should minimize")
	}
	clickDock(t, h, "notes")
	h.Click(2, desktopTop)
	if h.Model().Shell().Snapshot().IsOpen("notes") {
		t.Fatalf("close button should close")
	}
}

func TestTitleBarDragMovesWindow(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	clickDock(t, h, "notes")
	rec := h.Model().Shell().Snapshot().Records["notes"]
	grabX, grabY := rec.Position.X+10, rec.Position.Y+desktopTop
	h.Drag(grabX, grabY, grabX+2, grabY+1)
	moved := h.Model().Shell().Snapshot().Records["notes"]
	want := wm.Point{X: rec.Position.X + 2, Y: rec.Position.Y + 1}
	if moved.Position != want {
		t.Fatalf("expected %+v, got %+v", want, moved.Position)
	}
	if moved.Size != rec.Size {
		t.Fatalf("drag must not resize")
	}
	if h.Model().drag != nil {
		t.Fatalf("release should end the drag")
	}
}

func TestSpotlightClickLaunches(t *testing.T) {
	h := newTestHarness(t, true, shortcut.CmdFromAlt)
	h.Key("alt+ ")
	r := h.Model().spotlightRect()
	want := h.Model().spot.results[1].ID
	h.Click(r.x+3, r.y+4)
	sh := h.Model().Shell()
	if sh.SpotlightOpen() || sh.Snapshot().Active != want {
		t.Fatalf("clicking result should launch %s", want)
	}

	h.Key("alt+ ")
	h.Click(0, testHeight-1)
	if sh.SpotlightOpen() {
		t.Fatalf("clicking outside should dismiss Spotlight")
	}
}
