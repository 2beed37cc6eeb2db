// Package picker is the selection controller: it owns the query, the grid
// cursor, the highlighted entry and the tone overlay, and talks to the host
// (render surface, viewport and injector) through small interfaces.
package picker

import (
	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

// Delegate is the surface a rendering layer drives.
type Delegate interface {
	Sections() []state.Section
	RowsIn(section int) int
	EntryAt(p *state.IndexPath) *catalog.Entry
	OnQuery(query string) bool
	OnMove(dir state.Direction) bool
	OnConfirm(secondary bool) bool
}

// Host receives the controller's side effects. Emit is always called before
// Close.
type Host interface {
	Emit(glyph string)
	ScrollTo(section int, strategy state.ScrollStrategy)
	Close()
}

// Overlay is the open tone sub-selection for one entry. Index addresses
// Entry.Tones and lines up with tone.Index.
type Overlay struct {
	Entry *catalog.Entry
	Index int
}

// Variants returns the choices shown by the overlay.
func (o *Overlay) Variants() []catalog.Variant {
	if o == nil || o.Entry == nil {
		return nil
	}
	return o.Entry.Tones
}

// Current returns the highlighted variant.
func (o *Overlay) Current() (catalog.Variant, bool) {
	vs := o.Variants()
	if o == nil || o.Index < 0 || o.Index >= len(vs) {
		return catalog.Variant{}, false
	}
	return vs[o.Index], true
}
