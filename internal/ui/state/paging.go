package state

// MoveHome moves the cursor to the first entry.
func (g *Grid) MoveHome() bool {
	if len(g.Sections) == 0 {
		return false
	}
	return g.setCursor(Path(0, 0, 0))
}

// MoveEnd moves the cursor to the last entry.
func (g *Grid) MoveEnd() bool {
	n := len(g.Sections)
	if n == 0 {
		return false
	}
	last := g.Sections[n-1]
	return g.setCursor(PathOf(n-1, last.Len()-1, g.PerRow))
}

// MovePageUp moves the cursor up by roughly one screen of rows.
func (g *Grid) MovePageUp(maxVisible int) bool {
	return g.moveBy(Up, g.pageSize(maxVisible))
}

// MovePageDown moves the cursor down by roughly one screen of rows.
func (g *Grid) MovePageDown(maxVisible int) bool {
	return g.moveBy(Down, g.pageSize(maxVisible))
}

func (g *Grid) moveBy(dir Direction, steps int) bool {
	moved := false
	for i := 0; i < steps; i++ {
		if !g.Move(dir) {
			break
		}
		moved = true
	}
	return moved
}

func (g *Grid) pageSize(maxVisible int) int {
	size := maxVisible - 1
	if size < 1 {
		size = 1
	}
	return size
}
