package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/flock-backend/internal/config"
	"github.com/heartmarshall/flock-backend/pkg/ctxutil"
)

func TestNewHandler_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"}))

	logger.Info("test message", slog.String("k", "v"))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("JSON handler should produce valid JSON: %v", err)
	}
	if m["msg"] != "test message" || m["k"] != "v" {
		t.Errorf("unexpected record: %v", m)
	}
}

func TestNewHandler_TextFormatHasSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "debug", Format: "text"}))

	logger.Debug("source test")

	if !strings.Contains(buf.String(), "source=") {
		t.Errorf("text format should include source information, got %q", buf.String())
	}
}

func TestNewHandler_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"})).
		With("service", "contribution")

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	logger.InfoContext(ctx, "with id")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", m["request_id"])
	}
	if m["service"] != "contribution" {
		t.Errorf("service attr lost through With: %v", m)
	}
}

func TestNewHandler_NoRequestIDWithoutContextValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"}))

	logger.InfoContext(context.Background(), "plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in %q", buf.String())
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.level); got != tt.wantSlog {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.wantSlog)
		}
	}
}
