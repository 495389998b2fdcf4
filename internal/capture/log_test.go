package capture

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNDJSONLoggerWritesParseableLines(t *testing.T) {
	var buf bytes.Buffer
	l := newNDJSONLogger(&buf)
	l.info("browser", "navigating", map[string]any{"url": "http://localhost:5173/design-preview"})
	l.warn("tab", "control absent, skipping", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first logLine
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line not valid JSON: %v", err)
	}
	if first.Level != "info" || first.Scope != "browser" || first.Msg != "navigating" {
		t.Fatalf("unexpected first line: %+v", first)
	}
	if first.Meta["url"] != "http://localhost:5173/design-preview" {
		t.Fatalf("unexpected meta: %+v", first.Meta)
	}
	if first.TS.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	var second logLine
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line not valid JSON: %v", err)
	}
	if second.Level != "warn" || second.Scope != "tab" {
		t.Fatalf("unexpected second line: %+v", second)
	}
}

func TestNDJSONLoggerNilWriter(t *testing.T) {
	l := newNDJSONLogger(nil)
	l.info("browser", "navigating", nil)
	l.warn("tab", "control absent, skipping", map[string]any{"tab": "Other"})
}
