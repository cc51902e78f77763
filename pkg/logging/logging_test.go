package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ekskog/blog-site/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "DEBUG")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{Level: logging.LevelWarn}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"bad level", logging.Config{Level: "loud"}},
		{"bad format", logging.Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() should fail")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
}

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       logging.Config
		wantLine  string
		debugShow bool
	}{
		{"text info", logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, "msg=hello", false},
		{"json debug", logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}, `"msg":"hello"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewWithWriter(&tt.cfg, &buf)

			logger.Debug("hidden")
			logger.Info("hello")

			out := buf.String()
			if !strings.Contains(out, tt.wantLine) {
				t.Errorf("output %q does not contain %q", out, tt.wantLine)
			}
			if strings.Contains(out, "hidden") != tt.debugShow {
				t.Errorf("debug visible = %v, want %v", !tt.debugShow, tt.debugShow)
			}
		})
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
