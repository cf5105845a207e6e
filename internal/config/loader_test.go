package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadWritesAndReadsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	disabledLogger := zerolog.New(nil)

	cfg, resolved, err := Load(&disabledLogger, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}

	want := Default()
	if cfg != want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}

	// The default config file was written for next time.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("addr: \":9090\"\ndatabase_path: /tmp/chat.db\nspeaker_count: 4\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	disabledLogger := zerolog.New(nil)
	cfg, _, err := Load(&disabledLogger, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "/tmp/chat.db" {
		t.Errorf("expected database path /tmp/chat.db, got %q", cfg.DatabasePath)
	}
	if cfg.SpeakerCount != 4 {
		t.Errorf("expected 4 speakers, got %d", cfg.SpeakerCount)
	}
	// Unset keys keep their defaults.
	if cfg.ShutdownTimeout != Default().ShutdownTimeout {
		t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestUpdateFrom(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":7070", ShutdownTimeout: 10 * time.Second})

	if cfg.Addr != ":7070" {
		t.Errorf("expected addr :7070, got %q", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	// Zero-valued fields in the override leave the receiver alone.
	if cfg.DatabasePath != Default().DatabasePath {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
}
