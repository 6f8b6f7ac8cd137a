package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Addr != ":8090" {
		t.Errorf("expected default addr :8090, got %q", cfg.Addr)
	}
	if cfg.DBPath != "futstats.db" {
		t.Errorf("expected default db path futstats.db, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.HTTPLog {
		t.Error("expected HTTP logging disabled by default")
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("FUTSTATS_ADDR", ":9000")
	t.Setenv("FUTSTATS_DB", "/tmp/match.db")
	t.Setenv("FUTSTATS_LOG_LEVEL", "debug")
	t.Setenv("FUTSTATS_HTTP_LOG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Errorf("expected :9000, got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/match.db" {
		t.Errorf("expected /tmp/match.db, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
	if !cfg.HTTPLog {
		t.Error("expected HTTP logging enabled")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("FUTSTATS_HTTP_LOG", "not-a-bool")

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed boolean, got nil")
	}
}
