package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/tmux-emoji-popup/internal/app"
	"github.com/atomicstack/tmux-emoji-popup/internal/inject"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
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
	envSocketPath  = "TMUX_EMOJI_POPUP_SOCKET"
	envTarget      = "TMUX_EMOJI_POPUP_TARGET"
	envWidth       = "TMUX_EMOJI_POPUP_WIDTH"
	envHeight      = "TMUX_EMOJI_POPUP_HEIGHT"
	envPerRow      = "TMUX_EMOJI_POPUP_PER_ROW"
	envInject      = "TMUX_EMOJI_POPUP_INJECT"
	envInjectDelay = "TMUX_EMOJI_POPUP_INJECT_DELAY"
	envCatalog     = "TMUX_EMOJI_POPUP_CATALOG"
	envState       = "TMUX_EMOJI_POPUP_STATE"
	envShowFooter  = "TMUX_EMOJI_POPUP_FOOTER"
	envTrace       = "TMUX_EMOJI_POPUP_TRACE"
	envLogFile     = "TMUX_EMOJI_POPUP_LOG_FILE"
)

// DefaultInjectDelay is the pause between emitting a glyph and quitting.
const DefaultInjectDelay = 60 * time.Millisecond

// MaxPerRow caps the emojis per row.
const MaxPerRow = 16

// Binding holds flag values registered on a flag set by Bind.
type Binding struct {
	socket      *string
	target      *string
	width       *int
	height      *int
	perRow      *int
	injectMode  *string
	injectDelay *time.Duration
	catalog     *string
	state       *string
	footer      *bool
	trace       *bool
	logFile     *string
}

// Bind registers the popup flags on fs, with defaults taken from environ.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	getenv := func(k string) string { return env[k] }
	return &Binding{
		socket:      fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)"),
		target:      fs.String("target", envOrDefault(env, envTarget, ""), "pane that receives the emoji (defaults to the focused pane)"),
		width:       fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:      fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		perRow:      fs.Int("per-row", envOrInt(env, envPerRow, 0), "emojis per grid row (0 fits the width)"),
		injectMode:  fs.String("inject", envOrDefault(env, envInject, string(inject.ModeTmux)), "where to send the emoji: tmux, clipboard or stdout"),
		injectDelay: fs.Duration("inject-delay", envOrDuration(env, envInjectDelay, DefaultInjectDelay), "delay between sending the emoji and closing"),
		catalog:     fs.String("catalog", envOrDefault(env, envCatalog, ""), "YAML emoji catalog replacing the built-in one"),
		state:       fs.String("state", envOrDefault(env, envState, session.DefaultPath(getenv)), "session state file (\"none\" disables persistence)"),
		footer:      fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config assembles and validates the configuration after parsing.
func (b *Binding) Config(args []string) (Config, error) {
	mode, err := inject.ParseMode(*b.injectMode)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		App: app.Config{
			SocketPath:  *b.socket,
			Target:      *b.target,
			Width:       *b.width,
			Height:      *b.height,
			PerRow:      *b.perRow,
			InjectMode:  mode,
			InjectDelay: *b.injectDelay,
			CatalogPath: *b.catalog,
			StatePath:   *b.state,
			ShowFooter:  *b.footer,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"socket":      *b.socket,
			"target":      *b.target,
			"width":       strconv.Itoa(*b.width),
			"height":      strconv.Itoa(*b.height),
			"perRow":      strconv.Itoa(*b.perRow),
			"inject":      string(mode),
			"injectDelay": b.injectDelay.String(),
			"catalog":     *b.catalog,
			"state":       *b.state,
			"footer":      strconv.FormatBool(*b.footer),
			"trace":       strconv.FormatBool(*b.trace),
			"logFile":     *b.logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tmux-emoji-popup", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	b := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return b.Config(args)
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the popup cannot work with.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.PerRow < 0 || a.PerRow > MaxPerRow {
		return fmt.Errorf("per-row must be between 0 and %d (got %d)", MaxPerRow, a.PerRow)
	}
	if a.InjectDelay < 0 {
		return fmt.Errorf("inject-delay must be >= 0 (got %s)", a.InjectDelay)
	}
	if _, err := inject.ParseMode(string(a.InjectMode)); err != nil {
		return err
	}
	return nil
}
