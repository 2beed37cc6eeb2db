package events

import "github.com/atomicstack/tmux-emoji-popup/internal/logging"

type PickerTracer struct{}

type ToneTracer struct{}

type SearchTracer struct{}

var (
	Picker = PickerTracer{}
	Tone   = ToneTracer{}
	Search = SearchTracer{}
)

func (PickerTracer) Query(query string, sections, entries int) {
	logging.Trace("picker.query", map[string]interface{}{
		"query":    query,
		"sections": sections,
		"entries":  entries,
	})
}

// Cursor logs the cursor position; section is -1 when nothing is selected.
func (PickerTracer) Cursor(section, row, column int) {
	logging.Trace("picker.cursor", map[string]interface{}{"section": section, "row": row, "column": column})
}

func (PickerTracer) Jump(section int, group string) {
	logging.Trace("picker.jump", map[string]interface{}{"section": section, "group": group})
}

func (PickerTracer) Highlight(name, glyph string) {
	logging.Trace("picker.highlight", map[string]interface{}{"name": name, "glyph": glyph})
}

func (PickerTracer) Overlay(name string, open bool) {
	logging.Trace("picker.overlay", map[string]interface{}{"name": name, "open": open})
}

func (PickerTracer) Confirm(name, glyph string) {
	logging.Trace("picker.confirm", map[string]interface{}{"name": name, "glyph": glyph})
}

func (PickerTracer) Cancel(reason string) {
	logging.Trace("picker.cancel", map[string]interface{}{"reason": reason})
}

func (ToneTracer) Rotate(direction string, index int) {
	logging.Trace("tone.rotate", map[string]interface{}{"direction": direction, "index": index})
}

func (SearchTracer) Recovered(query string, recovered interface{}) {
	logging.Trace("search.recovered", map[string]interface{}{"query": query, "panic": recovered})
}
