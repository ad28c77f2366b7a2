package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/oggyb/matchbot/internal/config"
)

func initBuffer(t *testing.T, c Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	c.Output = &buf
	Init(&c)
	t.Cleanup(func() { Init(&Config{Level: "info", Format: FormatText}) })
	return &buf
}

func TestLogger_TextFormat(t *testing.T) {
	out := initBuffer(t, Config{Level: "debug", Format: FormatText, Component: "test"})

	Info("hello matchbot", "key", "value")

	s := out.String()
	if !strings.Contains(s, "hello matchbot") {
		t.Errorf("expected message, got: %s", s)
	}
	if !strings.Contains(s, "component=test") {
		t.Errorf("expected component field, got: %s", s)
	}
	if !strings.Contains(s, "key=value") {
		t.Errorf("expected structured field, got: %s", s)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	out := initBuffer(t, Config{Level: "info", Format: FormatJSON, Component: "json_test"})

	Info("json log", "foo", "bar")

	s := out.String()
	if !strings.Contains(s, `"msg":"json log"`) {
		t.Errorf("expected JSON message, got: %s", s)
	}
	if !strings.Contains(s, `"component":"json_test"`) {
		t.Errorf("expected component in JSON, got: %s", s)
	}
	if !strings.Contains(s, `"foo":"bar"`) {
		t.Errorf("expected structured field in JSON, got: %s", s)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	out := initBuffer(t, Config{Level: "error", Format: FormatText})

	Info("should not appear")
	Error("should appear")

	s := out.String()
	if strings.Contains(s, "should not appear") {
		t.Errorf("info log should not appear, got: %s", s)
	}
	if !strings.Contains(s, "should appear") {
		t.Errorf("error log should appear, got: %s", s)
	}
}

func TestLogger_ComponentAddsSubsystem(t *testing.T) {
	out := initBuffer(t, Config{Level: "debug", Format: FormatText})

	Component("session").Info("advanced", "user_id", 42)

	s := out.String()
	if !strings.Contains(s, "subsystem=session") || !strings.Contains(s, "user_id=42") {
		t.Errorf("expected subsystem and user_id fields, got: %s", s)
	}
}

func TestLogger_InitFromConfigNil(t *testing.T) {
	InitFromConfig(nil)
	if L() == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestLogger_InitFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "JSON"
	cfg.Log.Component = "cfg_test"

	InitFromConfig(cfg)
	t.Cleanup(func() { Init(&Config{Level: "info", Format: FormatText}) })

	if !L().Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
}
