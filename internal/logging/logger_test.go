package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"WARN":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"info":    logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for raw, want := range tests {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var out bytes.Buffer
	logger := newLogger(&out, "info", "json")
	logger.WithField("user_id", 7).Info("summary built")

	payload := map[string]any{}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", out.String(), err)
	}
	if payload["msg"] != "summary built" {
		t.Fatalf("expected msg field, got %v", payload["msg"])
	}
	if payload["user_id"] != float64(7) {
		t.Fatalf("expected user_id 7, got %v", payload["user_id"])
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	logger := newLogger(&out, "warn", "text")
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(out.String(), "hidden") {
		t.Fatalf("expected info line to be filtered, got %q", out.String())
	}
	if !strings.Contains(out.String(), "shown") {
		t.Fatalf("expected warn line, got %q", out.String())
	}
}
