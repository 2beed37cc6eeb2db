// Package inject delivers a confirmed glyph to where the user wants it: the
// tmux pane that was focused when the popup opened, the system clipboard or
// standard output.
package inject

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
	"github.com/atomicstack/tmux-emoji-popup/internal/tmux"
)

// Mode names an injector.
type Mode string

const (
	ModeTmux      Mode = "tmux"
	ModeClipboard Mode = "clipboard"
	ModeStdout    Mode = "stdout"
)

// Modes lists the supported modes.
func Modes() []Mode {
	return []Mode{ModeTmux, ModeClipboard, ModeStdout}
}

var (
	// ErrNoTarget means no pane could be found to type into.
	ErrNoTarget = errors.New("inject: no target pane")
	// ErrUnknownMode is returned by ParseMode for unsupported names.
	ErrUnknownMode = errors.New("inject: unknown mode")
)

var (
	currentPane    = tmux.CurrentPane
	sendLiteral    = tmux.SendLiteral
	writeClipboard = clipboard.WriteAll
)

// ParseMode validates a mode name.
func ParseMode(value string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, value)
}

// Injector inserts text. It is called once per confirmed selection.
type Injector interface {
	Mode() Mode
	Inject(ctx context.Context, glyph string) error
}

// Flusher is implemented by injectors that defer output until the popup has
// exited.
type Flusher interface {
	Flush() error
}

// Options configures New.
type Options struct {
	Mode       Mode
	SocketPath string
	Target     string
	Stdout     io.Writer
}

// New returns the injector for opts.Mode.
func New(opts Options) (Injector, error) {
	switch opts.Mode {
	case ModeTmux, "":
		return &Tmux{SocketPath: opts.SocketPath, Target: opts.Target}, nil
	case ModeClipboard:
		return Clipboard{}, nil
	case ModeStdout:
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		return &Stdout{w: w}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, opts.Mode)
}

// Tmux types the glyph into a pane with send-keys -l.
type Tmux struct {
	SocketPath string
	Target     string
}

func (t *Tmux) Mode() Mode { return ModeTmux }

func (t *Tmux) Inject(ctx context.Context, glyph string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := currentPane(t.SocketPath, t.Target)
	if err != nil {
		if errors.Is(err, tmux.ErrNoPane) {
			err = ErrNoTarget
		}
		events.Inject.Failed(string(ModeTmux), err)
		return err
	}
	if err := sendLiteral(t.SocketPath, target, glyph); err != nil {
		if errors.Is(err, tmux.ErrNoPane) {
			err = ErrNoTarget
		}
		events.Inject.Failed(string(ModeTmux), err)
		return err
	}
	events.Inject.Sent(string(ModeTmux), target, glyph)
	return nil
}

// Clipboard copies the glyph to the system clipboard.
type Clipboard struct{}

func (Clipboard) Mode() Mode { return ModeClipboard }

func (Clipboard) Inject(ctx context.Context, glyph string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeClipboard(glyph); err != nil {
		err = fmt.Errorf("copy to clipboard: %w", err)
		events.Inject.Failed(string(ModeClipboard), err)
		return err
	}
	events.Inject.Sent(string(ModeClipboard), "", glyph)
	return nil
}

// Stdout holds the glyph until Flush, which runs after the terminal has been
// released by the popup.
type Stdout struct {
	mu      sync.Mutex
	w       io.Writer
	pending string
}

func (s *Stdout) Mode() Mode { return ModeStdout }

func (s *Stdout) Inject(ctx context.Context, glyph string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.pending = glyph
	s.mu.Unlock()
	return nil
}

// Pending returns the glyph waiting to be written.
func (s *Stdout) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *Stdout) Flush() error {
	s.mu.Lock()
	glyph := s.pending
	s.pending = ""
	s.mu.Unlock()
	if glyph == "" {
		return nil
	}
	if _, err := fmt.Fprintln(s.w, glyph); err != nil {
		events.Inject.Failed(string(ModeStdout), err)
		return err
	}
	events.Inject.Sent(string(ModeStdout), "", glyph)
	return nil
}
