package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

const wheelStep = 3

type targetKind int

const (
	targetCell targetKind = iota
	targetTab
	targetVariant
)

// target is what a marked zone of the last frame points at.
type target struct {
	kind    targetKind
	path    state.IndexPath
	section int
	variant int
}

type mark struct {
	id     string
	target target
}

func (m *Model) resetMarks() {
	m.marks = m.marks[:0]
}

// mark wraps s in a zone and remembers what it points at.
func (m *Model) mark(t target, s string) string {
	id := fmt.Sprintf("%s%d", m.zoneID, len(m.marks))
	m.marks = append(m.marks, mark{id: id, target: t})
	return m.zones.Mark(id, s)
}

// hit returns the target under (x, y) in the last rendered frame.
func (m *Model) hit(x, y int) (target, bool) {
	for _, mk := range m.marks {
		z := m.zones.Get(mk.id)
		if z == nil || z.IsZero() {
			continue
		}
		if y < z.StartY || y > z.EndY {
			continue
		}
		if x < z.StartX || x > z.EndX {
			continue
		}
		return mk.target, true
	}
	return target{}, false
}

func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok {
		return nil
	}
	mouse := click.Mouse()
	if mouse.Button != tea.MouseLeft && mouse.Button != tea.MouseRight {
		return nil
	}
	t, ok := m.hit(mouse.X, mouse.Y)
	if !ok {
		return nil
	}
	switch t.kind {
	case targetCell:
		path := t.path
		m.ctrl.Click(&path, mouse.Button == tea.MouseRight)
	case targetTab:
		m.ctrl.JumpToSection(t.section)
	case targetVariant:
		m.ctrl.PickOverlay(t.variant + 1)
	}
	m.grid().EnsureCursorVisible(m.maxGridLines())
	return m.effects()
}

func (m *Model) handleMouseWheelMsg(msg tea.Msg) tea.Cmd {
	wheel, ok := msg.(tea.MouseWheelMsg)
	if !ok {
		return nil
	}
	grid := m.grid()
	switch wheel.Mouse().Button {
	case tea.MouseWheelUp:
		grid.ViewportOffset -= wheelStep
		if grid.ViewportOffset < 0 {
			grid.ViewportOffset = 0
		}
	case tea.MouseWheelDown:
		grid.ViewportOffset += wheelStep
		limit := len(grid.Lines()) - m.maxGridLines()
		if limit < 0 {
			limit = 0
		}
		if grid.ViewportOffset > limit {
			grid.ViewportOffset = limit
		}
	}
	return nil
}
