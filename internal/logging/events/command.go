package events

import "github.com/atomicstack/tmux-emoji-popup/internal/logging"

type CommandTracer struct{}

type FilterTracer struct{}

var (
	Command = CommandTracer{}
	Filter  = FilterTracer{}
)

func (CommandTracer) Dispatch(name string, arg int) {
	logging.Trace("command.dispatch", map[string]interface{}{"command": name, "arg": arg})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Edit(action, filter string, cursor int) {
	logging.Trace("filter.edit", map[string]interface{}{"action": action, "filter": filter, "cursor": cursor})
}

func (FilterTracer) Cursor(action string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"action": action, "cursor": pos})
}
