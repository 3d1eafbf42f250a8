package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug msg", nil)
	l.Info("info msg", nil)
	l.Warn("warn msg", nil)
	l.Error("error msg", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2 (warn and error): %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "warn msg") || !strings.Contains(lines[1], "boom") {
		t.Errorf("unexpected log lines: %v", lines)
	}
}

func TestLoggerJSONShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("fetched events", Fields{"count": 47, "source": "values"})

	var decoded struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Fields    map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if decoded.Level != "INFO" || decoded.Message != "fetched events" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Fields["count"].(float64) != 47 {
		t.Errorf("fields = %v", decoded.Fields)
	}
	if decoded.Timestamp == "" {
		t.Error("timestamp missing")
	}
}
