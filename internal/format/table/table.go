// Package table lays out small text tables for app windows.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gap = "  "

// Format returns the rows padded according to the widest entry in each
// column. Short rows are padded with empty cells.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - lipgloss.Width(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < colCount-1 {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		out[i] = b.String()
	}
	return out
}

// WithHeader formats header and rows together and inserts a rule under the
// header sized to the widest line.
func WithHeader(header []string, rows [][]string, alignments []Alignment) []string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)
	lines := Format(all, alignments)
	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[0], strings.Repeat("─", width))
	return append(out, lines[1:]...)
}

// Clip truncates each line to width cells, marking cut lines with an
// ellipsis.
func Clip(lines []string, width int) []string {
	if width <= 0 {
		return make([]string, len(lines))
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		out[i] = line
	}
	return out
}
