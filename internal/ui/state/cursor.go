package state

import (
	"fmt"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
)

// IndexPath addresses one cell of the grid. A nil *IndexPath means nothing
// is selected.
type IndexPath struct {
	Section int
	Row     int
	Column  int
}

func (p IndexPath) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Section, p.Row, p.Column)
}

// Path is a convenience constructor for a selected cursor.
func Path(section, row, column int) *IndexPath {
	return &IndexPath{Section: section, Row: row, Column: column}
}

// Direction is a grid movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid reports whether p addresses an entry in sections.
func Valid(sections []Section, perRow int, p *IndexPath) bool {
	if p == nil || p.Section < 0 || p.Section >= len(sections) {
		return false
	}
	s := sections[p.Section]
	if p.Row < 0 || p.Row >= s.RowCount(perRow) {
		return false
	}
	return p.Column >= 0 && p.Column < s.RowLen(p.Row, perRow)
}

// EntryAt resolves p, returning nil when it is nil or out of range.
func EntryAt(sections []Section, perRow int, p *IndexPath) *catalog.Entry {
	if !Valid(sections, perRow, p) {
		return nil
	}
	return sections[p.Section].Entries[p.Row*ClampPerRow(perRow)+p.Column]
}

// PathOf returns the path of the flat entry index within section.
func PathOf(section, flat, perRow int) *IndexPath {
	perRow = ClampPerRow(perRow)
	return Path(section, flat/perRow, flat%perRow)
}

// Move computes the cursor after one step in dir. Moves saturate at the ends
// of the grid and never return an out-of-range path. A nil cursor steps onto
// the first entry when there is one.
func Move(sections []Section, perRow int, cur *IndexPath, dir Direction) *IndexPath {
	if len(sections) == 0 {
		return nil
	}
	perRow = ClampPerRow(perRow)
	if cur == nil {
		return Path(0, 0, 0)
	}
	p := clampPath(sections, perRow, *cur)
	s := sections[p.Section]
	switch dir {
	case Right:
		flat := p.Row*perRow + p.Column
		if flat+1 < s.Len() {
			return PathOf(p.Section, flat+1, perRow)
		}
		if p.Section+1 < len(sections) {
			return Path(p.Section+1, 0, 0)
		}
	case Left:
		if p.Column > 0 {
			return Path(p.Section, p.Row, p.Column-1)
		}
		if p.Row > 0 {
			return Path(p.Section, p.Row-1, perRow-1)
		}
		if p.Section > 0 {
			prev := sections[p.Section-1]
			return PathOf(p.Section-1, prev.Len()-1, perRow)
		}
	case Down:
		if next := p.Row + 1; next*perRow < s.Len() {
			return Path(p.Section, next, minInt(p.Column, s.RowLen(next, perRow)-1))
		}
		if p.Section+1 < len(sections) {
			next := sections[p.Section+1]
			col := minInt(p.Column, minInt(next.Len()-1, perRow-1))
			return Path(p.Section+1, 0, col)
		}
	case Up:
		if p.Row > 0 {
			return Path(p.Section, p.Row-1, p.Column)
		}
		if p.Section > 0 {
			prev := sections[p.Section-1]
			last := prev.RowCount(perRow) - 1
			return Path(p.Section-1, last, minInt(p.Column, prev.RowLen(last, perRow)-1))
		}
	}
	return Path(p.Section, p.Row, p.Column)
}

// clampPath pulls a stale path back inside sections, which must be non-empty.
func clampPath(sections []Section, perRow int, p IndexPath) IndexPath {
	p.Section = clampInt(p.Section, 0, len(sections)-1)
	s := sections[p.Section]
	p.Row = clampInt(p.Row, 0, s.RowCount(perRow)-1)
	p.Column = clampInt(p.Column, 0, s.RowLen(p.Row, perRow)-1)
	return p
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
