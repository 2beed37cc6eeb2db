package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/inject"
	"github.com/atomicstack/tmux-emoji-popup/internal/logging"
	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
	"github.com/atomicstack/tmux-emoji-popup/internal/search"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
	"github.com/atomicstack/tmux-emoji-popup/internal/tmux"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath  string
	Target      string
	Width       int
	Height      int
	PerRow      int
	InjectMode  inject.Mode
	InjectDelay time.Duration
	CatalogPath string
	StatePath   string
	ShowFooter  bool
}

var (
	runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		return tea.NewProgram(m, opts...).Run()
	}
	openTTY = func() (*os.File, error) {
		return os.OpenFile("/dev/tty", os.O_RDWR, 0)
	}
	stdout io.Writer = os.Stdout
)

// Run bootstraps and executes the Bubble Tea program, then persists the
// session and releases any output the injector deferred.
func Run(cfg Config) error {
	ctx := context.Background()
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		if cfg.InjectMode == inject.ModeTmux || cfg.InjectMode == "" {
			return fmt.Errorf("resolve socket path: %w", err)
		}
		socketPath = ""
	}
	defer tmux.Shutdown()

	store := OpenStore(ctx, cfg.StatePath)
	defer store.Close()
	sess, err := store.Load(ctx)
	if err != nil {
		logging.Error(fmt.Errorf("load session: %w", err))
		sess = session.Context{}
	}

	injector, err := inject.New(inject.Options{
		Mode:       cfg.InjectMode,
		SocketPath: socketPath,
		Target:     cfg.Target,
		Stdout:     stdout,
	})
	if err != nil {
		return err
	}

	model := ui.NewModel(search.New(cat).Search, &sess, injector, ui.Config{
		Width:       cfg.Width,
		Height:      cfg.Height,
		PerRow:      cfg.PerRow,
		ShowFooter:  cfg.ShowFooter,
		InjectDelay: cfg.InjectDelay,
	})
	var opts []tea.ProgramOption
	if cfg.InjectMode == inject.ModeStdout {
		// stdout carries the glyph, so the popup draws on the terminal
		if tty, err := openTTY(); err == nil {
			defer tty.Close()
			opts = append(opts, tea.WithInput(tty), tea.WithOutput(tty))
		} else {
			logging.Error(fmt.Errorf("open tty: %w", err))
		}
	}
	_, err = runProgram(model, opts...)
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		err = nil
	}

	finish(ctx, store, model)
	if f, ok := injector.(inject.Flusher); ok {
		if ferr := f.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write glyph: %w", ferr)
		}
	}
	return err
}

// OpenStore opens the session store, degrading to a disabled store when the
// file cannot be used.
func OpenStore(ctx context.Context, path string) *session.Store {
	store, err := session.Open(ctx, path)
	if err != nil {
		logging.Error(fmt.Errorf("open session store: %w", err))
		return nil
	}
	return store
}

func finish(ctx context.Context, store *session.Store, model *ui.Model) {
	sess := model.Session()
	if err := store.Save(ctx, *sess); err != nil {
		logging.Error(fmt.Errorf("save session: %w", err))
	}
	if glyph := model.Emitted(); glyph != "" {
		if err := store.RecordPick(ctx, glyph, sess.LastName); err != nil {
			logging.Error(fmt.Errorf("record pick: %w", err))
		}
		events.App.Exit("picked")
		return
	}
	events.App.Exit("cancelled")
}
