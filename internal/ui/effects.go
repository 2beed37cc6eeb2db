package ui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-emoji-popup/internal/logging"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/command"
)

type injectResultMsg struct {
	glyph string
	err   error
}

type closeMsg struct{}

// effects turns what the controller asked for into commands: injection
// first, then the delayed close.
func (m *Model) effects() tea.Cmd {
	if m.quitting {
		return nil
	}
	if m.emitted != "" && !m.injected {
		if m.injecting {
			return nil
		}
		if m.injector == nil {
			m.injected = true
			return m.closeAfterDelay()
		}
		m.injecting = true
		return m.injectCmd(m.emitted)
	}
	if m.closing && !m.injecting {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) injectCmd(glyph string) tea.Cmd {
	injector := m.injector
	return m.bus.Execute(command.Request{
		ID:    "inject:" + string(injector.Mode()),
		Label: glyph,
		Handler: func() tea.Msg {
			return injectResultMsg{glyph: glyph, err: injector.Inject(context.Background(), glyph)}
		},
	})
}

func (m *Model) closeAfterDelay() tea.Cmd {
	if m.injectDelay <= 0 {
		return func() tea.Msg { return closeMsg{} }
	}
	return tea.Tick(m.injectDelay, func(time.Time) tea.Msg { return closeMsg{} })
}

func (m *Model) handleInjectResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(injectResultMsg)
	if !ok {
		return nil
	}
	m.injecting = false
	m.injected = true
	if result.err != nil {
		logging.Error(result.err)
		m.errMsg = result.err.Error()
	}
	return m.closeAfterDelay()
}

func (m *Model) handleCloseMsg(tea.Msg) tea.Cmd {
	if m.quitting {
		return nil
	}
	m.quitting = true
	return tea.Quit
}
