// Package prefs handles chronoview user preferences persistence.
// Preferences are stored in ~/.config/chronoview/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// FilterPref is one saved filter entry: enough to reconstruct a
// logindex.TextFilter without importing that package here.
type FilterPref struct {
	Kind    string `toml:"kind"` // "in" or "out"
	Pattern string `toml:"pattern"`
	Enabled bool   `toml:"enabled"`
}

// Prefs holds user preferences for chronoview: the active theme, the
// last-used view, which files were open, and the filter stack, so
// reopening chronoview on the same log set restores where the user left
// off.
type Prefs struct {
	Theme     string       `toml:"theme"`
	LastView  string       `toml:"last_view"`
	OpenFiles []string     `toml:"open_files"`
	Filters   []FilterPref `toml:"filters"`
	MinLevel  string       `toml:"min_level"`
}

const (
	defaultPrefsPath = "~/.config/chronoview/prefs.toml"
	defaultTheme     = "Dracula"
	defaultLastView  = "log"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return defaults(), nil
	}

	prefs := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults(), nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	if strings.TrimSpace(prefs.LastView) == "" {
		prefs.LastView = defaultLastView
	}

	return prefs, nil
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, LastView: defaultLastView}
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
