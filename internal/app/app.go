package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/backend"
	"github.com/atomicstack/termdesk/internal/catalog"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/shell"
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/ui"
)

const clockInterval = 5 * time.Second

// Config describes user-provided application options.
type Config struct {
	Width     int
	Height    int
	AppsPath  string
	CmdKey    shortcut.CmdKey
	Unlocked  bool
	ShowClock bool
}

// NewModel loads the catalog and assembles the shell and UI model without
// starting a program. A nil watcher disables the clock feed.
func NewModel(cfg Config, watcher *backend.Watcher) (*ui.Model, error) {
	cat, err := catalog.Load(cfg.AppsPath)
	if err != nil {
		return nil, fmt.Errorf("load app catalog: %w", err)
	}
	events.App.Catalog(cat.Len(), cfg.AppsPath)
	sh := shell.New(shell.Options{Catalog: cat, Unlocked: cfg.Unlocked})
	return ui.NewModel(sh, ui.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		CmdKey:    cfg.CmdKey,
		ShowClock: cfg.ShowClock,
		Watcher:   watcher,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	var watcher *backend.Watcher
	if cfg.ShowClock {
		watcher = backend.NewWatcher(ctx, clockInterval, nil)
		defer watcher.Stop()
	}
	model, err := NewModel(cfg, watcher)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
