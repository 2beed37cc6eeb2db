package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-emoji-popup/internal/tone"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/command"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

const (
	defaultPerRow = 8
	maxPerRow     = 16
	cellWidth     = 4
	// prompt, status and tab bar
	chromeLines  = 3
	overlayLines = 4
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	lookup := m.keymap.Lookup
	if m.ctrl.Overlay() != nil {
		lookup = m.keymap.LookupOverlay
	}
	if cmd, ok := lookup(keyMsg); ok {
		m.apply(cmd)
		return m.effects()
	}
	if m.handleTextInput(keyMsg) {
		m.grid().EnsureCursorVisible(m.maxGridLines())
	}
	return m.effects()
}

// apply runs a named command against the controller.
func (m *Model) apply(cmd command.Command) {
	m.bus.Dispatch(cmd)
	grid := m.grid()
	switch cmd.Name {
	case command.MoveUp:
		m.ctrl.OnMove(state.Up)
	case command.MoveDown:
		m.ctrl.OnMove(state.Down)
	case command.MoveLeft:
		m.ctrl.OnMove(state.Left)
	case command.MoveRight:
		m.ctrl.OnMove(state.Right)
	case command.MoveHome:
		m.ctrl.Navigate((*state.Grid).MoveHome)
	case command.MoveEnd:
		m.ctrl.Navigate((*state.Grid).MoveEnd)
	case command.PageUp:
		lines := m.maxGridLines()
		m.ctrl.Navigate(func(g *state.Grid) bool { return g.MovePageUp(lines) })
	case command.PageDown:
		lines := m.maxGridLines()
		m.ctrl.Navigate(func(g *state.Grid) bool { return g.MovePageDown(lines) })
	case command.SelectCurrent:
		m.ctrl.OnConfirm(false)
	case command.OpenSecondary:
		if m.ctrl.Overlay() == nil {
			m.ctrl.OnConfirm(true)
		}
	case command.FocusSearch:
		m.moveQueryCursor("end", grid.MoveQueryCursorEnd)
	case command.Cancel:
		m.ctrl.Cancel()
	case command.RotateTonesForward:
		m.ctrl.RotateTones(tone.Forward)
	case command.RotateTonesBackward:
		m.ctrl.RotateTones(tone.Backward)
	case command.JumpToSection:
		m.ctrl.JumpToSection(cmd.Arg)
	case command.PickTone:
		m.ctrl.PickOverlay(cmd.Arg)
	}
	m.grid().EnsureCursorVisible(m.maxGridLines())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.grid().SetPerRow(m.perRow())
	m.grid().EnsureCursorVisible(m.maxGridLines())
	return nil
}

// perRow is the fixed row width when configured, otherwise as many cells as
// fit the viewport.
func (m *Model) perRow() int {
	if m.fixedPerRow > 0 {
		return state.ClampPerRow(m.fixedPerRow)
	}
	if m.width <= 0 {
		return defaultPerRow
	}
	n := m.width / cellWidth
	if n > maxPerRow {
		n = maxPerRow
	}
	return state.ClampPerRow(n)
}

// maxGridLines is the number of grid lines that fit below the tab bar and
// above the overlay, status and prompt lines. Zero means unbounded.
func (m *Model) maxGridLines() int {
	if m.height <= 0 {
		return 0
	}
	lines := m.height - chromeLines
	if m.showFooter {
		lines--
	}
	if m.ctrl != nil && m.ctrl.Overlay() != nil {
		lines -= overlayLines
	}
	if lines < 1 {
		return 1
	}
	return lines
}
