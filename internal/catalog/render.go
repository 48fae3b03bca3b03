package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/termdesk/internal/format/table"
	"github.com/atomicstack/termdesk/internal/logging"
)

// Renderer draws an app's content into a window body of the given size.
// Lines never exceed width cells and there are never more than height of
// them.
type Renderer interface {
	Render(width, height int) []string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(width, height int) []string

func (f RendererFunc) Render(width, height int) []string {
	return f(width, height)
}

type rendererFactory func(c *Catalog, app App, now func() time.Time) Renderer

const (
	RendererText     = "text"
	RendererMarkdown = "markdown"
	RendererFinder   = "finder"
	RendererCalendar = "calendar"
	RendererTerminal = "terminal"
)

var rendererKinds = map[string]rendererFactory{
	RendererText:     newTextRenderer,
	RendererMarkdown: newMarkdownRenderer,
	RendererFinder:   newFinderRenderer,
	RendererCalendar: newCalendarRenderer,
	RendererTerminal: newTerminalRenderer,
}

func rendererKind(app App) string {
	if app.Renderer == "" {
		return RendererText
	}
	return app.Renderer
}

// Renderers resolves the content renderer for every app. now feeds
// time-dependent apps; nil means time.Now.
func (c *Catalog) Renderers(now func() time.Time) map[string]Renderer {
	if now == nil {
		now = time.Now
	}
	out := make(map[string]Renderer, len(c.apps))
	for _, app := range c.apps {
		factory := rendererKinds[rendererKind(app)]
		out[app.ID] = factory(c, app, now)
	}
	return out
}

func fit(lines []string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return table.Clip(lines, width)
}

func newTextRenderer(_ *Catalog, app App, _ func() time.Time) Renderer {
	body := strings.TrimRight(app.Body, "\n")
	return RendererFunc(func(width, height int) []string {
		if body == "" {
			return fit([]string{""}, width, height)
		}
		wrapped := wordwrap.String(body, width)
		return fit(strings.Split(wrapped, "\n"), width, height)
	})
}

// newMarkdownRenderer renders the body as Markdown without colour. Output is
// cached per width since glamour is slow relative to a frame.
func newMarkdownRenderer(_ *Catalog, app App, _ func() time.Time) Renderer {
	body := strings.TrimSpace(app.Body)
	cache := map[int][]string{}
	return RendererFunc(func(width, height int) []string {
		if width <= 0 || height <= 0 {
			return nil
		}
		lines, ok := cache[width]
		if !ok {
			lines = renderMarkdown(app.ID, body, width)
			cache[width] = lines
		}
		return fit(lines, width, height)
	})
}

func renderMarkdown(id, body string, width int) []string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.NoTTYStyle),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(body); err == nil {
			return trimBlank(strings.Split(ansi.Strip(out), "\n"))
		}
	}
	logging.Error(fmt.Errorf("render %s markdown: %w", id, err))
	return strings.Split(wordwrap.String(body, width), "\n")
}

// trimBlank drops trailing padding and leading/trailing empty lines.
func trimBlank(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, " ")
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func newFinderRenderer(c *Catalog, _ App, _ func() time.Time) Renderer {
	rows := make([][]string, 0, len(c.apps))
	for _, app := range c.apps {
		title, _ := c.Title(app.ID)
		rows = append(rows, []string{app.Icon, title, app.ID})
	}
	lines := table.WithHeader([]string{"", "Name", "Kind"}, rows, nil)
	footer := fmt.Sprintf("%d items", len(rows))
	return RendererFunc(func(width, height int) []string {
		out := append([]string(nil), lines...)
		if height > len(out) {
			out = append(out, "", footer)
		}
		return fit(out, width, height)
	})
}

func newCalendarRenderer(_ *Catalog, _ App, now func() time.Time) Renderer {
	return RendererFunc(func(width, height int) []string {
		return fit(monthGrid(now()), width, height)
	})
}

// monthGrid lays out the month containing day, weeks starting on Sunday.
func monthGrid(day time.Time) []string {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	days := first.AddDate(0, 1, -1).Day()
	const gridWidth = 20

	heading := fmt.Sprintf("%s %d", first.Month(), first.Year())
	pad := (gridWidth - len(heading)) / 2
	lines := []string{strings.Repeat(" ", max(pad, 0)) + heading, "Su Mo Tu We Th Fr Sa"}

	var week strings.Builder
	offset := int(first.Weekday())
	week.WriteString(strings.Repeat("   ", offset))
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&week, "%2d", d)
		if (offset+d)%7 == 0 {
			lines = append(lines, week.String())
			week.Reset()
			continue
		}
		if d < days {
			week.WriteByte(' ')
		}
	}
	if week.Len() > 0 {
		lines = append(lines, week.String())
	}
	lines = append(lines, "", "Today: "+day.Format("Mon 2 Jan"))
	return lines
}

func newTerminalRenderer(c *Catalog, _ App, _ func() time.Time) Renderer {
	ids := make([]string, len(c.apps))
	for i, app := range c.apps {
		ids[i] = app.ID
	}
	listing := strings.Join(ids, "  ")
	const prompt = "guest@termdesk ~ % "
	return RendererFunc(func(width, height int) []string {
		lines := []string{"Last login: today on ttys000", prompt + "ls apps"}
		lines = append(lines, strings.Split(wordwrap.String(listing, width), "\n")...)
		lines = append(lines, prompt+"█")
		// keep the prompt visible when the window is short
		if len(lines) > height && height > 0 {
			lines = lines[len(lines)-height:]
		}
		return fit(lines, width, height)
	})
}
