package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/tone"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

// glyphWidth is the column count every glyph is padded to.
const glyphWidth = 2

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes or zone markers
}

// View renders the popup.
func (m *Model) View() tea.View {
	v := tea.NewView(m.view())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) view() string {
	m.resetMarks()
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.tabBar(), raw: true})
	lines = append(lines, m.gridLines()...)
	if m.ctrl.Overlay() != nil {
		for _, line := range strings.Split(m.overlayBox(), "\n") {
			lines = append(lines, styledLine{text: line, raw: true})
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: render(styles.Footer, m.help.ShortHelpView(m.keymap.ShortHelp())), raw: true})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottom := applyWidth([]styledLine{
		m.statusLine(),
		{text: m.queryPrompt(), raw: true},
	}, m.width)
	lines = append(lines, bottom...)
	return m.zones.Scan(renderLines(lines))
}

func (m *Model) tabBar() string {
	grid := m.grid()
	tabs := make([]string, 0, len(grid.Sections))
	for i, s := range grid.Sections {
		icon := ""
		if len(s.Entries) > 0 {
			icon = padGlyph(s.Entries[0].Glyph)
		}
		style := styles.Tab
		if cur := grid.Cursor; cur != nil && cur.Section == i {
			style = styles.ActiveTab
		}
		tabs = append(tabs, m.mark(target{kind: targetTab, section: i}, render(style, icon)))
	}
	return strings.Join(tabs, "")
}

func (m *Model) gridLines() []styledLine {
	grid := m.grid()
	if len(grid.Sections) == 0 {
		msg := "(no emojis)"
		if grid.Searching() {
			msg = fmt.Sprintf("No matches for %q", strings.TrimSpace(grid.Query))
		}
		return []styledLine{{text: msg, style: styles.Empty}}
	}
	visible := grid.VisibleLines(m.maxGridLines())
	out := make([]styledLine, 0, len(visible))
	for _, line := range visible {
		section := grid.Sections[line.Section]
		if line.Header() {
			out = append(out, styledLine{text: section.Group.Title(), style: styles.SectionHeader})
			continue
		}
		out = append(out, styledLine{text: m.rowLine(line.Section, line.Row, section.Row(line.Row, grid.PerRow)), raw: true})
	}
	return out
}

func (m *Model) rowLine(section, row int, entries []*catalog.Entry) string {
	cur := m.grid().Cursor
	var b strings.Builder
	for col, e := range entries {
		style := styles.Cell
		if cur != nil && cur.Section == section && cur.Row == row && cur.Column == col {
			style = styles.SelectedCell
		}
		cell := render(style, padGlyph(m.ctrl.Glyph(e)))
		b.WriteString(m.mark(target{kind: targetCell, path: state.IndexPath{Section: section, Row: row, Column: col}}, cell))
	}
	return b.String()
}

func (m *Model) overlayBox() string {
	o := m.ctrl.Overlay()
	items := make([]string, 0, len(o.Variants()))
	for i, v := range o.Variants() {
		style := styles.OverlayItem
		if i == o.Index {
			style = styles.OverlaySelected
		}
		items = append(items, m.mark(target{kind: targetVariant, variant: i}, render(style, padGlyph(v.Glyph))))
	}
	title := render(styles.OverlayTitle, o.Entry.Name)
	return render(styles.Overlay, title+"\n"+strings.Join(items, ""))
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if e := m.ctrl.Highlighted(); e != nil {
		name := e.Name
		if v, ok := tone.Variant(e, m.ctrl.ToneIndex()); ok {
			name = v.Name
		}
		text := m.ctrl.Glyph(e) + " " + render(styles.StatusName, name)
		if len(e.Shortcodes) > 0 {
			text += " " + render(styles.Status, ":"+e.Shortcodes[0]+":")
		}
		return styledLine{text: text, raw: true}
	}
	if ctx := m.ctrl.Session(); ctx.HasLast() {
		return styledLine{text: render(styles.Info, "last:") + " " + ctx.LastGlyph + " " + render(styles.StatusName, ctx.LastName), raw: true}
	}
	return styledLine{}
}

// padGlyph pads a glyph to glyphWidth display columns.
func padGlyph(glyph string) string {
	if w := uniseg.StringWidth(glyph); w < glyphWidth {
		return glyph + strings.Repeat(" ", glyphWidth-w)
	}
	return glyph
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || uniseg.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(text, width, "…")
}
