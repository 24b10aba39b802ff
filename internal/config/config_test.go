package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DataDir != "" || cfg.PollIntervalMs != 0 {
		t.Errorf("missing file should yield the zero config, got %+v", cfg)
	}
	if cfg.PollInterval() != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want default %v", cfg.PollInterval(), DefaultPollInterval)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/remind-test"
poll_interval_ms = 250

[ui]
accent = "#FF8800"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DataDir != "/tmp/remind-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.PollInterval() != 250*time.Millisecond {
		t.Errorf("PollInterval = %v, want 250ms", cfg.PollInterval())
	}
	if cfg.UI.Accent != "#FF8800" {
		t.Errorf("Accent = %q", cfg.UI.Accent)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data_dir = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("invalid TOML should fail to load")
	}
}
