package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "popup.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	path := withLogFile(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("picker.query", map[string]interface{}{"query": "dog"})
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected a trace line")
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("decode trace line: %v", err)
	}
	if entry.Event != "picker.query" {
		t.Fatalf("expected event picker.query, got %q", entry.Event)
	}
	if entry.Payload["query"] != "dog" {
		t.Fatalf("expected query payload dog, got %v", entry.Payload["query"])
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := withLogFile(t)
	Error(nil)
	Error(errors.New("send-keys failed"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "send-keys failed") {
		t.Fatalf("expected error text in log, got %q", string(data))
	}
}

func TestConfigureEmptyRestoresDefault(t *testing.T) {
	withLogFile(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path %q, got %q", defaultLogFile, Path())
	}
}
