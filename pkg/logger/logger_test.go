package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.InfoLevel)

	l.Debug("hidden")
	l.Warn("fetch failed", String("ticker", "AAPL"), Int("status", 502), Error(errors.New("boom")))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}
	var m map[string]interface{}
	if err := json.Unmarshal(lines[0], &m); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if m["level"] != "warn" || m["message"] != "fetch failed" {
		t.Errorf("unexpected entry %v", m)
	}
	if m["ticker"] != "AAPL" || m["status"] != float64(502) || m["error"] != "boom" {
		t.Errorf("missing fields %v", m)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.DebugLevel).With(String("component", "session"))
	l.Info("ok")

	var m map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if m["component"] != "session" {
		t.Errorf("expected component field, got %v", m)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}
