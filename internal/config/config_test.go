package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Editor.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.Editor.HistoryLimit, DefaultHistoryLimit)
	}
	if cfg.Editor.ScrollOff != DefaultScrollOff {
		t.Errorf("ScrollOff = %d, want %d", cfg.Editor.ScrollOff, DefaultScrollOff)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, "info")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Editor.ScrollOff = -5
	cfg.Editor.HistoryLimit = 0
	cfg.Editor.StatusBarHeight = -1

	cfg.validate()

	if cfg.Editor.ScrollOff != DefaultScrollOff {
		t.Errorf("ScrollOff = %d, want %d", cfg.Editor.ScrollOff, DefaultScrollOff)
	}
	if cfg.Editor.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.Editor.HistoryLimit, DefaultHistoryLimit)
	}
	if cfg.Editor.StatusBarHeight != StatusBarHeight {
		t.Errorf("StatusBarHeight = %d, want %d", cfg.Editor.StatusBarHeight, StatusBarHeight)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[logger]
log_level = "debug"

[editor]
scroll_off = 7
history_limit = 50
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if cfg.Logger.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, "debug")
	}
	if cfg.Editor.ScrollOff != 7 {
		t.Errorf("ScrollOff = %d, want 7", cfg.Editor.ScrollOff)
	}
	if cfg.Editor.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.Editor.HistoryLimit)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadFromFile() on missing file error = %v, want nil", err)
	}
	if cfg == nil {
		t.Fatalf("loadFromFile() = nil config")
	}
}
