package command

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
)

// Request encapsulates a unit of asynchronous work.
type Request struct {
	ID      string
	Label   string
	Handler func() tea.Msg
}

// Bus coordinates asynchronous work and traces picker commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Dispatch records a picker command before it is applied.
func (b *Bus) Dispatch(cmd Command) {
	events.Command.Dispatch(string(cmd.Name), cmd.Arg)
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
