package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tally/internal/platform/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "tally.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if cfg.Location != time.UTC {
		t.Fatalf("default location must be UTC, got %v", cfg.Location)
	}
}

func TestLoadReadsTimezoneAndDB(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	payload := "timezone: Europe/Paris\ndb: work.db\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Location.String() != "Europe/Paris" {
		t.Fatalf("expected Europe/Paris, got %v", cfg.Location)
	}
	if cfg.DBPath != filepath.Join(dir, "work.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("timezone: Mars/Olympus\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(dir); err == nil {
		t.Fatalf("unknown timezone must fail")
	}
}

func TestLoadRequiresDataPath(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(""); err == nil {
		t.Fatalf("empty data path must fail")
	}
}
