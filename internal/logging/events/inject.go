package events

import "github.com/atomicstack/tmux-emoji-popup/internal/logging"

type InjectTracer struct{}

type SessionTracer struct{}

var (
	Inject  = InjectTracer{}
	Session = SessionTracer{}
)

func (InjectTracer) Sent(mode, target, glyph string) {
	logging.Trace("inject.sent", map[string]interface{}{"mode": mode, "target": target, "glyph": glyph})
}

func (InjectTracer) Failed(mode string, err error) {
	if err == nil {
		return
	}
	logging.Trace("inject.failed", map[string]interface{}{"mode": mode, "error": err.Error()})
}

func (SessionTracer) Load(path string, toneIndex int, last string) {
	logging.Trace("session.load", map[string]interface{}{"path": path, "tone": toneIndex, "last": last})
}

func (SessionTracer) Save(path string, toneIndex int, last string) {
	logging.Trace("session.save", map[string]interface{}{"path": path, "tone": toneIndex, "last": last})
}

func (SessionTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.error", map[string]interface{}{"op": op, "error": err.Error()})
}
