package capture

import (
	"bufio"
	"encoding/json"
	"io"
	"time"
)

type ndjsonLogger struct {
	w *bufio.Writer
}

type logLine struct {
	TS    time.Time      `json:"ts"`
	Level string         `json:"level"`
	Scope string         `json:"scope"`
	Msg   string         `json:"msg"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// newNDJSONLogger wraps w as an event log. A nil writer yields a logger
// that drops every event.
func newNDJSONLogger(w io.Writer) *ndjsonLogger {
	if w == nil {
		return &ndjsonLogger{}
	}
	return &ndjsonLogger{w: bufio.NewWriter(w)}
}

func (l *ndjsonLogger) write(level, scope, msg string, meta map[string]any) {
	if l.w == nil {
		return
	}
	line := logLine{TS: time.Now(), Level: level, Scope: scope, Msg: msg, Meta: meta}
	b, _ := json.Marshal(line)
	l.w.Write(b)
	l.w.WriteByte('\n')
	l.w.Flush()
}

func (l *ndjsonLogger) info(scope, msg string, meta map[string]any) {
	l.write("info", scope, msg, meta)
}
func (l *ndjsonLogger) warn(scope, msg string, meta map[string]any) {
	l.write("warn", scope, msg, meta)
}
