package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// rect is a screen rectangle; x and y are the top-left cell.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) right() int  { return r.x + r.w - 1 }
func (r rect) bottom() int { return r.y + r.h - 1 }

type cell struct {
	r     rune
	style *lipgloss.Style
}

// wideTail occupies the cell to the right of a double-width rune.
const wideTail rune = -1

// narrow measures ambiguous-width runes as one cell, as lipgloss does.
var narrow = runewidth.NewCondition()

// canvas is a fixed grid of cells. Later writes overwrite earlier ones, so
// painting bottom to top yields correct overlap. A double-width rune takes
// its cell plus a wideTail; overwriting either half blanks the other.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int, style *lipgloss.Style) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: style}
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	if !c.inside(x, y) {
		return
	}
	c.release(x, y)
	c.cells[y*c.w+x] = cell{r: r, style: style}
}

// release blanks the other half of a double-width rune at (x, y).
func (c *canvas) release(x, y int) {
	i := y*c.w + x
	switch {
	case c.cells[i].r == wideTail && x > 0:
		c.cells[i-1].r = ' '
	case narrow.RuneWidth(c.cells[i].r) == 2 && x+1 < c.w && c.cells[i+1].r == wideTail:
		c.cells[i+1].r = ' '
	}
}

// text writes s from (x, y) and returns the column after the last rune.
// Zero-width runes are dropped; a double-width rune cut by the canvas edge
// is replaced by a space.
func (c *canvas) text(x, y int, s string, style *lipgloss.Style) int {
	for _, r := range s {
		switch narrow.RuneWidth(r) {
		case 0:
			continue
		case 2:
			if !c.inside(x, y) || !c.inside(x+1, y) {
				c.set(x, y, ' ', style)
				c.set(x+1, y, ' ', style)
				x += 2
				continue
			}
			c.release(x+1, y)
			c.set(x, y, r, style)
			c.cells[y*c.w+x+1] = cell{r: wideTail, style: style}
			x += 2
		default:
			c.set(x, y, r, style)
			x++
		}
	}
	return x
}

func (c *canvas) fill(r rect, ch rune, style *lipgloss.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			c.set(x, y, ch, style)
		}
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func (c *canvas) box(r rect, border lipgloss.Border, style *lipgloss.Style) {
	if r.w < 2 || r.h < 2 {
		return
	}
	top, bottom := firstRune(border.Top), firstRune(border.Bottom)
	left, right := firstRune(border.Left), firstRune(border.Right)
	for x := r.x + 1; x < r.right(); x++ {
		c.set(x, r.y, top, style)
		c.set(x, r.bottom(), bottom, style)
	}
	for y := r.y + 1; y < r.bottom(); y++ {
		c.set(r.x, y, left, style)
		c.set(r.right(), y, right, style)
	}
	c.set(r.x, r.y, firstRune(border.TopLeft), style)
	c.set(r.right(), r.y, firstRune(border.TopRight), style)
	c.set(r.x, r.bottom(), firstRune(border.BottomLeft), style)
	c.set(r.right(), r.bottom(), firstRune(border.BottomRight), style)
}

// String renders the grid, styling each run of cells that share a style.
func (c *canvas) String() string {
	rows := make([]string, c.h)
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		var line strings.Builder
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			style := row[x].style
			run.Reset()
			for x < len(row) && row[x].style == style {
				if row[x].r != wideTail {
					run.WriteRune(row[x].r)
				}
				x++
			}
			if style == nil {
				line.WriteString(run.String())
				continue
			}
			line.WriteString(style.Render(run.String()))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
