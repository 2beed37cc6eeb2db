package state

import "github.com/atomicstack/tmux-emoji-popup/internal/catalog"

// ClampPerRow guards against non-positive row widths.
func ClampPerRow(perRow int) int {
	if perRow < 1 {
		return 1
	}
	return perRow
}

// RowCount returns ceil(len/perRow).
func (s Section) RowCount(perRow int) int {
	perRow = ClampPerRow(perRow)
	return (s.Len() + perRow - 1) / perRow
}

// RowLen returns the number of entries in row i, zero when out of range.
func (s Section) RowLen(i, perRow int) int {
	perRow = ClampPerRow(perRow)
	if i < 0 {
		return 0
	}
	start := i * perRow
	if start >= s.Len() {
		return 0
	}
	if rest := s.Len() - start; rest < perRow {
		return rest
	}
	return perRow
}

// Row returns the entries in row i. The slice aliases the section.
func (s Section) Row(i, perRow int) []*catalog.Entry {
	n := s.RowLen(i, perRow)
	if n == 0 {
		return nil
	}
	start := i * ClampPerRow(perRow)
	return s.Entries[start : start+n]
}
