// Package catalog holds the static table of apps a desktop can open: their
// titles, dock icons, default geometry, content and specialised menus.
//
// A catalog is read-only once loaded. The window manager resolves ids
// against it and never learns anything else about an app.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/wm"
)

//go:embed apps.yaml
var defaultApps []byte

// App describes one catalog entry.
type App struct {
	ID       string            `yaml:"id"`
	Title    string            `yaml:"title"`
	Icon     string            `yaml:"icon"`
	Renderer string            `yaml:"renderer,omitempty"`
	Dock     *bool             `yaml:"dock,omitempty"`
	Position wm.Point          `yaml:"position"`
	Size     wm.Size           `yaml:"size"`
	Body     string            `yaml:"body,omitempty"`
	Menus    []menu.Descriptor `yaml:"menus,omitempty"`
}

// InDock reports whether the app gets a dock icon. Apps are docked unless
// they opt out.
func (a App) InDock() bool {
	return a.Dock == nil || *a.Dock
}

type document struct {
	Apps []App `yaml:"apps"`
}

// Catalog is an ordered, id-indexed app table.
type Catalog struct {
	apps []App
	byID map[string]int
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultApps)
}

// Load returns the embedded catalog overlaid with the file at overlayPath.
// An empty path returns the defaults unchanged.
func Load(overlayPath string) (*Catalog, error) {
	cat, err := Default()
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	if strings.TrimSpace(overlayPath) == "" {
		return cat, nil
	}
	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return nil, fmt.Errorf("read app catalog: %w", err)
	}
	overlay, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", overlayPath, err)
	}
	return cat.Merge(overlay), nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode app catalog: %w", err)
	}
	cat := &Catalog{byID: make(map[string]int, len(doc.Apps))}
	for i, app := range doc.Apps {
		if err := validate(app); err != nil {
			return nil, fmt.Errorf("app %d: %w", i, err)
		}
		if _, dup := cat.byID[app.ID]; dup {
			return nil, fmt.Errorf("app %d: duplicate id %q", i, app.ID)
		}
		cat.byID[app.ID] = len(cat.apps)
		cat.apps = append(cat.apps, app)
	}
	return cat, nil
}

func validate(app App) error {
	if strings.TrimSpace(app.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if app.Size.Width <= 0 || app.Size.Height <= 0 {
		return fmt.Errorf("%s: size must be positive (got %dx%d)", app.ID, app.Size.Width, app.Size.Height)
	}
	if app.Position.X < 0 || app.Position.Y < 0 {
		return fmt.Errorf("%s: position must not be negative", app.ID)
	}
	if _, ok := rendererKinds[rendererKind(app)]; !ok {
		return fmt.Errorf("%s: unknown renderer %q", app.ID, app.Renderer)
	}
	return validateTitle(app)
}

// validateTitle rejects titles that would give the app menu the same label
// as another top-level menu while the app is active.
func validateTitle(app App) error {
	title := app.Title
	if title == "" {
		title = app.ID
	}
	if menu.Reserved(title) {
		return fmt.Errorf("%s: title %q clashes with a base menu", app.ID, title)
	}
	for _, desc := range app.Menus {
		if desc.Label == title {
			return fmt.Errorf("%s: title %q clashes with its own %q menu", app.ID, title, desc.Label)
		}
	}
	return nil
}

// Merge returns a new catalog: entries of overlay replace same-id entries in
// place, new ids are appended.
func (c *Catalog) Merge(overlay *Catalog) *Catalog {
	out := &Catalog{byID: make(map[string]int, len(c.apps))}
	for _, app := range c.apps {
		out.byID[app.ID] = len(out.apps)
		out.apps = append(out.apps, app)
	}
	if overlay == nil {
		return out
	}
	for _, app := range overlay.apps {
		if idx, ok := out.byID[app.ID]; ok {
			out.apps[idx] = app
			continue
		}
		out.byID[app.ID] = len(out.apps)
		out.apps = append(out.apps, app)
	}
	return out
}

// Lookup returns the app for id.
func (c *Catalog) Lookup(id string) (App, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return App{}, false
	}
	return c.apps[idx], true
}

// Has reports whether id is a known app.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Title returns the display title for id.
func (c *Catalog) Title(id string) (string, bool) {
	app, ok := c.Lookup(id)
	if !ok {
		return "", false
	}
	if app.Title == "" {
		return app.ID, true
	}
	return app.Title, true
}

// Defaults implements wm.Resolver.
func (c *Catalog) Defaults(id string) (wm.Defaults, bool) {
	app, ok := c.Lookup(id)
	if !ok {
		return wm.Defaults{}, false
	}
	title, _ := c.Title(id)
	return wm.Defaults{
		Title:    title,
		Icon:     app.Icon,
		Position: app.Position,
		Size:     app.Size,
	}, true
}

// Apps returns every app in catalog order.
func (c *Catalog) Apps() []App {
	dup := make([]App, len(c.apps))
	copy(dup, c.apps)
	return dup
}

// DockApps returns the apps shown in the dock, in catalog order.
func (c *Catalog) DockApps() []App {
	out := make([]App, 0, len(c.apps))
	for _, app := range c.apps {
		if app.InDock() {
			out = append(out, app)
		}
	}
	return out
}

// Len returns the number of apps.
func (c *Catalog) Len() int {
	return len(c.apps)
}
