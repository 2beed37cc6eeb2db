package state

// ScrollStrategy says where a scroll target should land in the viewport.
type ScrollStrategy int

const (
	// ScrollNearest scrolls the minimum needed to show the target.
	ScrollNearest ScrollStrategy = iota
	// ScrollCenter places the target in the middle of the viewport.
	ScrollCenter
)

func (s ScrollStrategy) String() string {
	if s == ScrollCenter {
		return "center"
	}
	return "nearest"
}

// Line is one rendered line of the grid: a section header (Row < 0) or a
// row of entries.
type Line struct {
	Section int
	Row     int
}

// Header reports whether the line is a section header.
func (l Line) Header() bool {
	return l.Row < 0
}

// Lines lays out every section. Headers are omitted while searching.
func (g *Grid) Lines() []Line {
	headers := !g.Searching()
	var out []Line
	for si, s := range g.Sections {
		if headers {
			out = append(out, Line{Section: si, Row: -1})
		}
		for r := 0; r < s.RowCount(g.PerRow); r++ {
			out = append(out, Line{Section: si, Row: r})
		}
	}
	return out
}

// LineOf returns the layout index of (section,row), or -1. Row -1 addresses
// the section header, falling back to the first row when headers are hidden.
func (g *Grid) LineOf(section, row int) int {
	if section < 0 || section >= len(g.Sections) {
		return -1
	}
	headers := !g.Searching()
	line := 0
	for si := 0; si < section; si++ {
		if headers {
			line++
		}
		line += g.Sections[si].RowCount(g.PerRow)
	}
	if row < 0 {
		return line
	}
	if row >= g.Sections[section].RowCount(g.PerRow) {
		return -1
	}
	if headers {
		line++
	}
	return line + row
}

// VisibleLines returns the window of lines starting at ViewportOffset.
func (g *Grid) VisibleLines(maxVisible int) []Line {
	lines := g.Lines()
	if maxVisible <= 0 || len(lines) <= maxVisible {
		g.ViewportOffset = 0
		return lines
	}
	g.clampOffset(len(lines), maxVisible)
	return lines[g.ViewportOffset : g.ViewportOffset+maxVisible]
}

// EnsureCursorVisible adjusts the viewport offset so the cursor row stays
// visible. The header is kept in view when the cursor is on a section's first
// row.
func (g *Grid) EnsureCursorVisible(maxVisible int) {
	total := len(g.Lines())
	if total == 0 || maxVisible <= 0 {
		g.ViewportOffset = 0
		return
	}
	g.clampOffset(total, maxVisible)
	if !Valid(g.Sections, g.PerRow, g.Cursor) {
		return
	}
	line := g.LineOf(g.Cursor.Section, g.Cursor.Row)
	top := line
	if g.Cursor.Row == 0 && !g.Searching() {
		top = line - 1
	}
	if top < g.ViewportOffset {
		g.ViewportOffset = top
	}
	if upper := g.ViewportOffset + maxVisible - 1; line > upper {
		g.ViewportOffset = line - maxVisible + 1
	}
	g.clampOffset(total, maxVisible)
}

// ScrollToSection brings section into view using strategy.
func (g *Grid) ScrollToSection(section, maxVisible int, strategy ScrollStrategy) {
	line := g.LineOf(section, -1)
	if line < 0 || maxVisible <= 0 {
		return
	}
	total := len(g.Lines())
	switch strategy {
	case ScrollCenter:
		g.ViewportOffset = line - maxVisible/2
	default:
		if line < g.ViewportOffset {
			g.ViewportOffset = line
		} else if line > g.ViewportOffset+maxVisible-1 {
			g.ViewportOffset = line - maxVisible + 1
		}
	}
	g.clampOffset(total, maxVisible)
}

func (g *Grid) clampOffset(total, maxVisible int) {
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	g.ViewportOffset = clampInt(g.ViewportOffset, 0, maxOffset)
}
