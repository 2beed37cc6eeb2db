package picker

import (
	"strings"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
	"github.com/atomicstack/tmux-emoji-popup/internal/tone"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

var _ Delegate = (*Controller)(nil)

// Controller implements Delegate over a state.Grid.
type Controller struct {
	grid        *state.Grid
	host        Host
	session     *session.Context
	applied     string
	highlighted *catalog.Entry
	overlay     *Overlay
	done        bool
}

// New builds a controller. A nil session gets a fresh context; a nil host
// discards side effects.
func New(grid *state.Grid, host Host, ctx *session.Context) *Controller {
	if ctx == nil {
		ctx = &session.Context{}
	}
	ctx.ToneIndex = tone.Normalize(int(ctx.ToneIndex))
	c := &Controller{
		grid:    grid,
		host:    host,
		session: ctx,
		applied: strings.TrimSpace(grid.Query),
	}
	c.highlighted = grid.Entry()
	return c
}

// Grid exposes the underlying grid for rendering.
func (c *Controller) Grid() *state.Grid { return c.grid }

// Session returns the context the controller mutates.
func (c *Controller) Session() *session.Context { return c.session }

// ToneIndex returns the active tone.
func (c *Controller) ToneIndex() tone.Index { return c.session.ToneIndex }

// Highlighted returns the entry most recently moved to or pointed at.
func (c *Controller) Highlighted() *catalog.Entry { return c.highlighted }

// Overlay returns the open tone overlay, or nil.
func (c *Controller) Overlay() *Overlay { return c.overlay }

// Done reports whether the controller has asked the host to close.
func (c *Controller) Done() bool { return c.done }

// Glyph returns e as it should be displayed under the active tone.
func (c *Controller) Glyph(e *catalog.Entry) string {
	return tone.Resolve(e, c.session.ToneIndex)
}

func (c *Controller) Sections() []state.Section { return c.grid.Sections }

func (c *Controller) RowsIn(section int) int { return c.grid.RowsIn(section) }

func (c *Controller) EntryAt(p *state.IndexPath) *catalog.Entry { return c.grid.EntryAt(p) }

// OnQuery replaces the query, placing the caret at its end.
func (c *Controller) OnQuery(query string) bool {
	return c.EditQuery(func(g *state.Grid) bool {
		before := g.Query
		g.SetQuery(query, len([]rune(query)))
		return before != g.Query
	})
}

// EditQuery runs an editing operation against the grid's query and applies
// the query-change policy when the effective query changed.
func (c *Controller) EditQuery(edit func(*state.Grid) bool) bool {
	changed := edit(c.grid)
	trimmed := strings.TrimSpace(c.grid.Query)
	if trimmed == c.applied {
		return changed
	}
	c.applied = trimmed
	c.closeOverlay()
	c.highlighted = c.grid.Entry()
	events.Picker.Query(trimmed, len(c.grid.Sections), state.CountEntries(c.grid.Sections))
	c.scrollTo(0, state.ScrollNearest)
	return true
}

// OnMove steps the cursor, or the overlay selection when one is open.
func (c *Controller) OnMove(dir state.Direction) bool {
	if c.overlay != nil {
		switch dir {
		case state.Left:
			return c.MoveOverlay(-1)
		case state.Right:
			return c.MoveOverlay(1)
		}
		return false
	}
	return c.Navigate(func(g *state.Grid) bool { return g.Move(dir) })
}

// Navigate runs a cursor operation and, when it moved, refreshes the
// highlight and asks the host to keep the cursor in view.
func (c *Controller) Navigate(move func(*state.Grid) bool) bool {
	if c.overlay != nil {
		return false
	}
	if !move(c.grid) {
		return false
	}
	c.afterCursor()
	if cur := c.grid.Cursor; cur != nil {
		c.scrollTo(cur.Section, state.ScrollNearest)
	}
	return true
}

func (c *Controller) afterCursor() {
	c.highlight(c.grid.Entry())
	if cur := c.grid.Cursor; cur != nil {
		events.Picker.Cursor(cur.Section, cur.Row, cur.Column)
	} else {
		events.Picker.Cursor(-1, -1, -1)
	}
}

func (c *Controller) highlight(e *catalog.Entry) {
	c.highlighted = e
	if e != nil {
		events.Picker.Highlight(e.Name, c.Glyph(e))
	}
}

// JumpToSection moves to the first entry of section n and centres it.
func (c *Controller) JumpToSection(n int) bool {
	if !c.grid.JumpToSection(n) {
		return false
	}
	c.closeOverlay()
	c.afterCursor()
	events.Picker.Jump(n, c.grid.Sections[n].Group.String())
	c.scrollTo(n, state.ScrollCenter)
	return true
}

// SelectAt points at p: the cursor and highlight follow, nothing is
// confirmed. Invalid paths are ignored.
func (c *Controller) SelectAt(p *state.IndexPath) bool {
	if p == nil {
		if !c.grid.SetCursor(nil) {
			return false
		}
		c.afterCursor()
		return true
	}
	e := c.grid.EntryAt(p)
	if e == nil {
		return false
	}
	c.grid.SetCursor(p)
	if c.overlay != nil && c.overlay.Entry != e {
		c.closeOverlay()
	}
	c.afterCursor()
	return true
}

// Click handles a pointer press on p. A primary click confirms the entry;
// a secondary click opens its tone overlay. Clicking the entry whose overlay
// is already open does nothing.
func (c *Controller) Click(p *state.IndexPath, secondary bool) bool {
	e := c.grid.EntryAt(p)
	if e == nil {
		return false
	}
	if c.overlay != nil && c.overlay.Entry == e {
		return false
	}
	c.SelectAt(p)
	return c.OnConfirm(secondary)
}

// OnConfirm confirms the highlighted entry. With secondary set and a toned
// entry, the tone overlay opens instead. With the overlay open, its current
// variant is confirmed.
func (c *Controller) OnConfirm(secondary bool) bool {
	if c.done {
		return false
	}
	if c.overlay != nil {
		v, ok := c.overlay.Current()
		if !ok {
			return false
		}
		c.emit(c.overlay.Entry, v.Glyph)
		return true
	}
	e := c.target()
	if e == nil {
		return false
	}
	if secondary && e.HasTones() {
		return c.openOverlay(e)
	}
	c.emit(e, c.Glyph(e))
	return true
}

func (c *Controller) target() *catalog.Entry {
	if c.highlighted != nil {
		return c.highlighted
	}
	return c.grid.Entry()
}

func (c *Controller) emit(e *catalog.Entry, glyph string) {
	c.session.Remember(e, glyph)
	c.overlay = nil
	c.done = true
	events.Picker.Confirm(e.Name, glyph)
	if c.host != nil {
		c.host.Emit(glyph)
		c.host.Close()
	}
}

// Cancel closes the overlay if one is open, otherwise asks the host to close
// without emitting anything.
func (c *Controller) Cancel() bool {
	if c.overlay != nil {
		c.closeOverlay()
		return true
	}
	if c.done {
		return false
	}
	c.done = true
	events.Picker.Cancel("user")
	if c.host != nil {
		c.host.Close()
	}
	return true
}

// RotateTones changes the active tone.
func (c *Controller) RotateTones(dir tone.Direction) tone.Index {
	c.session.ToneIndex = c.session.ToneIndex.Rotate(dir)
	events.Tone.Rotate(dir.String(), int(c.session.ToneIndex))
	return c.session.ToneIndex
}

func (c *Controller) openOverlay(e *catalog.Entry) bool {
	idx := int(c.session.ToneIndex)
	if idx >= len(e.Tones) {
		idx = 0
	}
	c.overlay = &Overlay{Entry: e, Index: idx}
	events.Picker.Overlay(e.Name, true)
	return true
}

func (c *Controller) closeOverlay() {
	if c.overlay == nil {
		return
	}
	events.Picker.Overlay(c.overlay.Entry.Name, false)
	c.overlay = nil
}

// MoveOverlay steps the overlay selection by delta, saturating at the ends.
func (c *Controller) MoveOverlay(delta int) bool {
	if c.overlay == nil {
		return false
	}
	next := c.overlay.Index + delta
	if next < 0 || next >= len(c.overlay.Variants()) {
		return false
	}
	c.overlay.Index = next
	return true
}

// PickOverlay confirms variant n (1-based) of the open overlay.
func (c *Controller) PickOverlay(n int) bool {
	if c.overlay == nil || n < 1 || n > len(c.overlay.Variants()) {
		return false
	}
	c.overlay.Index = n - 1
	return c.OnConfirm(false)
}

func (c *Controller) scrollTo(section int, strategy state.ScrollStrategy) {
	if c.host != nil {
		c.host.ScrollTo(section, strategy)
	}
}
