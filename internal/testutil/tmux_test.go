package testutil

import (
	"strings"
	"testing"
)

func TestStartTmuxServerLifecycle(t *testing.T) {
	socket := StartTmuxServer(t)
	out, err := Tmux(t, socket, "list-sessions", "-F", "#{session_name}")
	if err != nil {
		t.Skipf("skipping: list-sessions failed: %v", err)
	}
	if strings.TrimSpace(out) != TestSession {
		t.Fatalf("expected session %q, got %q", TestSession, out)
	}
}
