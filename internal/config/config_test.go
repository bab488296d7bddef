package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultFormat != defaultFormat {
		t.Fatalf("DefaultFormat = %q, want %q", cfg.DefaultFormat, defaultFormat)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.SQLMaxRows != defaultSQLMaxRows {
		t.Fatalf("SQLMaxRows = %d, want %d", cfg.SQLMaxRows, defaultSQLMaxRows)
	}
}

func TestLoad_ParsesAndExpandsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
watch_patterns = ["~/logs/*.log", "/var/log/app/*.log"]
recursive = true
follow_rotation = true
default_format = "syslog"
poll_interval = "2s"
theme = "Nord"
sql_max_rows = 500
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Recursive || !cfg.FollowRotation {
		t.Fatalf("Recursive/FollowRotation = %v/%v, want true/true", cfg.Recursive, cfg.FollowRotation)
	}
	if cfg.DefaultFormat != "syslog" {
		t.Fatalf("DefaultFormat = %q, want syslog", cfg.DefaultFormat)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Fatalf("PollInterval = %v, want 2s", cfg.PollInterval)
	}
	if cfg.Theme != "Nord" {
		t.Fatalf("Theme = %q, want Nord", cfg.Theme)
	}
	if cfg.SQLMaxRows != 500 {
		t.Fatalf("SQLMaxRows = %d, want 500", cfg.SQLMaxRows)
	}
	if len(cfg.WatchPatterns) != 2 || !strings.HasPrefix(cfg.WatchPatterns[0], home) {
		t.Fatalf("WatchPatterns[0] = %q, want it expanded under HOME %q", cfg.WatchPatterns[0], home)
	}
	if cfg.WatchPatterns[1] != "/var/log/app/*.log" {
		t.Fatalf("WatchPatterns[1] = %q, want unchanged absolute pattern", cfg.WatchPatterns[1])
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
default_format = ""
theme = "   "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultFormat != defaultFormat {
		t.Fatalf("DefaultFormat = %q, want %q", cfg.DefaultFormat, defaultFormat)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`watch_patterns = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidPollIntervalFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`poll_interval = "not-a-duration"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want a poll_interval parse error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
