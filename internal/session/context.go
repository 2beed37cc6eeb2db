// Package session holds the state that survives popup show/hide cycles: the
// active tone and the last confirmed selection, plus a pick history kept in
// SQLite.
package session

import (
	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/tone"
)

// Context is owned by the host and handed to the picker by pointer.
type Context struct {
	ToneIndex tone.Index
	LastGlyph string
	LastName  string
}

// Remember records e (inserted as glyph) as the last selection.
func (c *Context) Remember(e *catalog.Entry, glyph string) {
	if c == nil || e == nil {
		return
	}
	c.LastGlyph = glyph
	c.LastName = e.Name
}

// HasLast reports whether a previous selection is known.
func (c *Context) HasLast() bool {
	return c != nil && c.LastGlyph != ""
}
