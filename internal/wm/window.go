package wm

// WindowID identifies one running app instance. termdesk runs at most one
// instance per app, so the id is the catalog app id.
type WindowID = string

// Point is a window origin in desktop cells.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Size is a window extent in desktop cells.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Defaults describes how a window looks the first time it opens.
type Defaults struct {
	Title    string
	Icon     string
	Position Point
	Size     Size
}

// Resolver looks up the static defaults for an app id. The store never
// mutates what it resolves.
type Resolver interface {
	Defaults(id string) (Defaults, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(id string) (Defaults, bool)

// Defaults implements Resolver.
func (f ResolverFunc) Defaults(id string) (Defaults, bool) {
	return f(id)
}

// Record is the shell state of one open window.
type Record struct {
	ID        WindowID `json:"id"`
	Title     string   `json:"title"`
	Icon      string   `json:"icon"`
	Position  Point    `json:"position"`
	Size      Size     `json:"size"`
	Minimized bool     `json:"minimized"`
	Maximized bool     `json:"maximized"`
}

func newRecord(id WindowID, d Defaults) *Record {
	return &Record{
		ID:       id,
		Title:    d.Title,
		Icon:     d.Icon,
		Position: d.Position,
		Size:     d.Size,
	}
}
