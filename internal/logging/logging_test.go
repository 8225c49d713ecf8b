package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "switcher.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	SetTraceEnabled(true)
	Trace("filter.append", map[string]interface{}{"filter": "te"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single trace line, got %d: %q", len(lines), data)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON entry, got %q: %v", lines[0], err)
	}
	if entry.Event != "filter.append" || entry.Payload["filter"] != "te" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAndWarnAppendLines(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	Warn(errors.New("fallback"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "error: boom") || !strings.Contains(text, "warn: fallback") {
		t.Fatalf("expected both entries in log, got %q", text)
	}
}

func TestConfigureEmptyRestoresDefault(t *testing.T) {
	useTempLog(t)
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default log path, got %q", Path())
	}
}
