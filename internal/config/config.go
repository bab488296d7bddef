package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is chronoview's resolved configuration: every field defaulted,
// every path expanded, ready to hand to internal/logwatch and
// internal/sqlengine without further lookups.
type Config struct {
	WatchPatterns  []string
	Recursive      bool
	FollowRotation bool
	DefaultFormat  string
	PollInterval   time.Duration
	Theme          string
	SQLMaxRows     int
}

const (
	defaultConfigPath   = "~/.config/chronoview/config.toml"
	defaultFormat       = "generic"
	defaultPollInterval = time.Second
	defaultTheme        = "Dracula"
	defaultSQLMaxRows   = 10000
)

// Load locates and parses chronoview's config, falling back to defaults
// for any field the file omits. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		WatchPatterns  []string `toml:"watch_patterns"`
		Recursive      bool     `toml:"recursive"`
		FollowRotation bool     `toml:"follow_rotation"`
		DefaultFormat  string   `toml:"default_format"`
		PollInterval   string   `toml:"poll_interval"`
		Theme          string   `toml:"theme"`
		SQLMaxRows     int      `toml:"sql_max_rows"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.WatchPatterns) > 0 {
		cfg.WatchPatterns = make([]string, len(raw.WatchPatterns))
		for i, p := range raw.WatchPatterns {
			cfg.WatchPatterns[i] = mustExpand(p)
		}
	}
	cfg.Recursive = raw.Recursive
	cfg.FollowRotation = raw.FollowRotation

	cfg.DefaultFormat = strings.TrimSpace(raw.DefaultFormat)
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = defaultFormat
	}

	cfg.Theme = strings.TrimSpace(raw.Theme)
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	if strings.TrimSpace(raw.PollInterval) != "" {
		d, err := time.ParseDuration(raw.PollInterval)
		if err != nil {
			return Config{}, fmt.Errorf("parse poll_interval: %w", err)
		}
		cfg.PollInterval = d
	}

	if raw.SQLMaxRows > 0 {
		cfg.SQLMaxRows = raw.SQLMaxRows
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		DefaultFormat: defaultFormat,
		PollInterval:  defaultPollInterval,
		Theme:         defaultTheme,
		SQLMaxRows:    defaultSQLMaxRows,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
