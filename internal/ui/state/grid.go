package state

import (
	"strings"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
)

// SearchFunc produces the ranked entries for a query.
type SearchFunc func(query string) []*catalog.Entry

// Grid holds the sectioned result set, the 2-D cursor, the query being
// edited and the viewport offset (in layout lines).
type Grid struct {
	Query          string
	QueryCursor    int
	Sections       []Section
	PerRow         int
	Cursor         *IndexPath
	ViewportOffset int

	search SearchFunc
}

// NewGrid builds a grid showing the results for the empty query. The cursor
// starts unselected.
func NewGrid(perRow int, search SearchFunc) *Grid {
	g := &Grid{PerRow: ClampPerRow(perRow), search: search}
	g.Sections = g.run("")
	return g
}

func (g *Grid) run(query string) []Section {
	if g.search == nil {
		return nil
	}
	return GroupEntries(g.search(query))
}

// ApplyQuery rebuilds the sections for the current query and re-anchors the
// cursor: (0,0,0) when there is anything to show, nil otherwise.
func (g *Grid) ApplyQuery() {
	g.Sections = g.run(strings.TrimSpace(g.Query))
	g.ViewportOffset = 0
	if len(g.Sections) == 0 {
		g.Cursor = nil
		return
	}
	g.Cursor = Path(0, 0, 0)
}

// Searching reports whether a non-blank query is active.
func (g *Grid) Searching() bool {
	return strings.TrimSpace(g.Query) != ""
}

// Entry returns the entry under the cursor, or nil.
func (g *Grid) Entry() *catalog.Entry {
	return EntryAt(g.Sections, g.PerRow, g.Cursor)
}

// EntryAt resolves an arbitrary path against the current sections.
func (g *Grid) EntryAt(p *IndexPath) *catalog.Entry {
	return EntryAt(g.Sections, g.PerRow, p)
}

// RowsIn returns the row count of section i, zero when out of range.
func (g *Grid) RowsIn(section int) int {
	if section < 0 || section >= len(g.Sections) {
		return 0
	}
	return g.Sections[section].RowCount(g.PerRow)
}

// Move steps the cursor and reports whether it changed.
func (g *Grid) Move(dir Direction) bool {
	next := Move(g.Sections, g.PerRow, g.Cursor, dir)
	return g.setCursor(next)
}

// SetCursor overwrites the cursor. Paths that do not address an entry are
// ignored; nil clears the selection.
func (g *Grid) SetCursor(p *IndexPath) bool {
	if p != nil && !Valid(g.Sections, g.PerRow, p) {
		return false
	}
	return g.setCursor(p)
}

func (g *Grid) setCursor(p *IndexPath) bool {
	if samePath(g.Cursor, p) {
		return false
	}
	if p != nil {
		cp := *p
		p = &cp
	}
	g.Cursor = p
	return true
}

// JumpToSection moves the cursor to the first entry of section n.
func (g *Grid) JumpToSection(n int) bool {
	if n < 0 || n >= len(g.Sections) {
		return false
	}
	g.setCursor(Path(n, 0, 0))
	return true
}

// SetPerRow changes the row width, keeping the cursor on the same entry.
func (g *Grid) SetPerRow(perRow int) bool {
	perRow = ClampPerRow(perRow)
	if perRow == g.PerRow {
		return false
	}
	if Valid(g.Sections, g.PerRow, g.Cursor) {
		flat := g.Cursor.Row*g.PerRow + g.Cursor.Column
		g.Cursor = PathOf(g.Cursor.Section, flat, perRow)
	} else {
		g.Cursor = nil
	}
	g.PerRow = perRow
	return true
}

func samePath(a, b *IndexPath) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
