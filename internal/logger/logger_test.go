package logger

import (
	"log/slog"
	"testing"
)

func TestNew_DefaultsToInfoLevel(t *testing.T) {
	log := New()

	if log == nil {
		t.Fatal("expected logger to be created")
	}
	if log.logger == nil {
		t.Error("expected slog.Logger to be set")
	}
	if log.level.Level() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", log.level.Level())
	}
}

func TestNewWithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		name  string
	}{
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewWithLevel(tt.level)
			if log == nil {
				t.Fatal("expected logger to be created")
			}
			if log.level.Level() != tt.level {
				t.Errorf("expected %v, got %v", tt.level, log.level.Level())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // Default
		{"", slog.LevelInfo},        // Default
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSetLevel_ChangesLevelDynamically(t *testing.T) {
	log := New()

	log.SetLevel(slog.LevelDebug)
	if log.level.Level() != slog.LevelDebug {
		t.Errorf("expected debug after SetLevel, got %v", log.level.Level())
	}

	log.SetLevel(slog.LevelError)
	if log.level.Level() != slog.LevelError {
		t.Errorf("expected error after SetLevel, got %v", log.level.Level())
	}
}

func TestHTTPLogging_DisabledByDefault(t *testing.T) {
	log := New()

	if log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging disabled by default")
	}

	log.EnableHTTPLogging()
	if !log.IsHTTPLoggingEnabled() {
		t.Error("expected HTTP logging enabled after EnableHTTPLogging")
	}
}
