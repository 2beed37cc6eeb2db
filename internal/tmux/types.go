package tmux

import (
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type tmuxClient interface {
	DisplayMessage(target, format string) (string, error)
	Command(parts ...string) (string, error)
	Close() error
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

// client returns the shared control-mode connection for socketPath, opening
// it on first use.
func client(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
	}
	c, err := newTmux(socketPath)
	if err != nil {
		return nil, err
	}
	cachedClient = c
	cachedSocket = socketPath
	return c, nil
}

// Shutdown closes the shared connection, if any.
func Shutdown() error {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient == nil {
		return nil
	}
	err := cachedClient.Close()
	cachedClient = nil
	cachedSocket = ""
	return err
}
