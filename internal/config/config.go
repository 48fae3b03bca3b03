package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/termdesk/internal/app"
	"github.com/atomicstack/termdesk/internal/shortcut"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth    = "TERMDESK_WIDTH"
	envHeight   = "TERMDESK_HEIGHT"
	envApps     = "TERMDESK_APPS"
	envCmdKey   = "TERMDESK_CMD_KEY"
	envUnlocked = "TERMDESK_UNLOCKED"
	envClock    = "TERMDESK_CLOCK"
	envTrace    = "TERMDESK_TRACE"
	envLogFile  = "TERMDESK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termdesk", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired screen width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired screen height in rows (0 uses terminal height)")
	apps := fs.String("apps", envOrDefault(env, envApps, ""), "YAML file overlaid on the built-in app catalog")
	cmdKey := fs.String("cmd-key", envOrDefault(env, envCmdKey, string(shortcut.CmdFromAlt)), "terminal modifier read as Cmd (ctrl or alt)")
	unlocked := fs.Bool("unlocked", envOrBool(env, envUnlocked, false), "skip the lock screen")
	clock := fs.Bool("clock", envOrBool(env, envClock, true), "show the clock in the menu bar")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	key := shortcut.CmdKey(strings.ToLower(strings.TrimSpace(*cmdKey)))
	if !key.Valid() {
		return Config{}, fmt.Errorf("cmd-key must be ctrl or alt (got %q)", *cmdKey)
	}

	cfg := Config{
		App: app.Config{
			Width:     *width,
			Height:    *height,
			AppsPath:  strings.TrimSpace(*apps),
			CmdKey:    key,
			Unlocked:  *unlocked,
			ShowClock: *clock,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"apps":     *apps,
			"cmdKey":   string(key),
			"unlocked": strconv.FormatBool(*unlocked),
			"clock":    strconv.FormatBool(*clock),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks configuration that depends on the filesystem.
func Validate(cfg Config) error {
	if cfg.App.AppsPath == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.AppsPath)
	if err != nil {
		return fmt.Errorf("apps: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("apps: %s is a directory", cfg.App.AppsPath)
	}
	return nil
}
