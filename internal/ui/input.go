package ui

import (
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

// handleTextInput edits the query for keys the keymap left unbound.
func (m *Model) handleTextInput(msg tea.KeyPressMsg) bool {
	grid := m.grid()
	switch msg.String() {
	case "ctrl+u":
		if grid.Query == "" {
			return false
		}
		m.editQuery("clear", (*state.Grid).ClearQuery)
		events.Filter.Cleared()
		return true
	case "ctrl+w":
		return m.editQuery("word-backspace", (*state.Grid).DeleteQueryWordBackward)
	case "backspace", "ctrl+h":
		return m.editQuery("backspace", (*state.Grid).DeleteQueryRuneBackward)
	case "ctrl+a":
		return m.moveQueryCursor("start", grid.MoveQueryCursorStart)
	case "ctrl+e":
		return m.moveQueryCursor("end", grid.MoveQueryCursorEnd)
	case "alt+b":
		return m.moveQueryCursor("word-backward", grid.MoveQueryCursorWordBackward)
	case "alt+f":
		return m.moveQueryCursor("word-forward", grid.MoveQueryCursorWordForward)
	case "ctrl+b":
		return m.moveQueryCursor("backward", grid.MoveQueryCursorRuneBackward)
	case "ctrl+f":
		return m.moveQueryCursor("forward", grid.MoveQueryCursorRuneForward)
	case "space":
		return m.appendToQuery(" ")
	}
	if msg.Mod&(tea.ModAlt|tea.ModCtrl) != 0 || msg.Text == "" {
		return false
	}
	for _, r := range msg.Text {
		if unicode.IsControl(r) {
			return false
		}
	}
	return m.appendToQuery(msg.Text)
}

func (m *Model) appendToQuery(text string) bool {
	if text == "" {
		return false
	}
	return m.editQuery("append", func(g *state.Grid) bool {
		return g.InsertQueryText(text)
	})
}

func (m *Model) editQuery(action string, edit func(*state.Grid) bool) bool {
	changed := m.ctrl.EditQuery(edit)
	if !changed {
		return false
	}
	m.errMsg = ""
	grid := m.grid()
	events.Filter.Edit(action, grid.Query, grid.QueryCursorPos())
	return true
}

func (m *Model) moveQueryCursor(action string, move func() bool) bool {
	if !move() {
		return false
	}
	events.Filter.Cursor(action, m.grid().QueryCursorPos())
	return true
}

// queryPrompt renders the search line with a block caret at the query cursor.
func (m *Model) queryPrompt() string {
	prompt := render(styles.FilterPrompt, "» ")
	grid := m.grid()
	if grid.Query == "" {
		runes := []rune("(type to search)")
		return prompt + render(styles.Cursor, string(runes[0])) + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(grid.Query)
	pos := grid.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + render(styles.Cursor, caret) + after
}
