package tmux

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoPane is returned when no target pane can be determined.
var ErrNoPane = errors.New("tmux: no target pane")

// CurrentPane resolves the pane that should receive input: hint when set,
// then $TMUX_PANE, then the active pane reported by the server.
func CurrentPane(socketPath, hint string) (string, error) {
	if target := strings.TrimSpace(hint); target != "" {
		return target, nil
	}
	if target := strings.TrimSpace(os.Getenv("TMUX_PANE")); target != "" {
		return target, nil
	}
	c, err := client(socketPath)
	if err != nil {
		return "", err
	}
	id, err := c.DisplayMessage("", "#{pane_id}")
	if err != nil {
		return "", fmt.Errorf("query active pane: %w", err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNoPane
	}
	return id, nil
}

// SendLiteral types text into target without key-name lookup.
func SendLiteral(socketPath, target, text string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrNoPane
	}
	if text == "" {
		return nil
	}
	c, err := client(socketPath)
	if err != nil {
		return err
	}
	if _, err := c.Command("send-keys", "-t", target, "-l", text); err != nil {
		return fmt.Errorf("send-keys to %s: %w", target, err)
	}
	return nil
}
