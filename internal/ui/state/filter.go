package state

import (
	"strings"
	"unicode"
)

// SetQuery updates the query text and its cursor. The result set is rebuilt
// only when the trimmed query changes; SetQuery reports whether it was.
func (g *Grid) SetQuery(query string, cursor int) bool {
	prev := strings.TrimSpace(g.Query)
	g.Query = query
	runes := []rune(g.Query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	g.QueryCursor = cursor
	if strings.TrimSpace(query) == prev {
		return false
	}
	g.ApplyQuery()
	return true
}

// QueryCursorPos returns the rune offset of the query cursor.
func (g *Grid) QueryCursorPos() int {
	runes := []rune(g.Query)
	if g.QueryCursor < 0 {
		return 0
	}
	if g.QueryCursor > len(runes) {
		return len(runes)
	}
	return g.QueryCursor
}

// InsertQueryText inserts text at the cursor.
func (g *Grid) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(g.Query)
	pos := g.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	g.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the cursor.
func (g *Grid) DeleteQueryRuneBackward() bool {
	runes := []rune(g.Query)
	pos := g.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	g.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (g *Grid) DeleteQueryWordBackward() bool {
	runes := []rune(g.Query)
	pos := g.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	g.SetQuery(string(updated), i)
	return true
}

// ClearQuery empties the query.
func (g *Grid) ClearQuery() bool {
	if g.Query == "" {
		return false
	}
	g.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (g *Grid) MoveQueryCursorStart() bool {
	if g.QueryCursorPos() == 0 {
		return false
	}
	g.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (g *Grid) MoveQueryCursorEnd() bool {
	end := len([]rune(g.Query))
	if g.QueryCursorPos() == end {
		return false
	}
	g.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the query cursor one word backward.
func (g *Grid) MoveQueryCursorWordBackward() bool {
	runes := []rune(g.Query)
	pos := g.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStartBefore(runes, pos)
	if i == pos {
		return false
	}
	g.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the query cursor one word forward.
func (g *Grid) MoveQueryCursorWordForward() bool {
	runes := []rune(g.Query)
	pos := g.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	g.QueryCursor = i
	return true
}

func wordStartBefore(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (g *Grid) MoveQueryCursorRuneBackward() bool {
	if g.QueryCursorPos() == 0 {
		return false
	}
	g.QueryCursor = g.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (g *Grid) MoveQueryCursorRuneForward() bool {
	pos := g.QueryCursorPos()
	if pos >= len([]rune(g.Query)) {
		return false
	}
	g.QueryCursor = pos + 1
	return true
}
