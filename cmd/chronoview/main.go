package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/five82/chronoview/internal/applog"
	"github.com/five82/chronoview/internal/command"
	"github.com/five82/chronoview/internal/config"
	"github.com/five82/chronoview/internal/history"
	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/logwatch"
	"github.com/five82/chronoview/internal/prefs"
	"github.com/five82/chronoview/internal/sqlengine"
	"github.com/five82/chronoview/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config file path (defaults to ~/.config/chronoview/config.toml)")
	prefsPath := flag.String("prefs", "", "override preferences file path")
	theme := flag.String("theme", "", "override the configured theme")
	recursive := flag.Bool("recursive", false, "watch directories recursively")
	rotated := flag.Bool("rotated", true, "follow name.* rotated log siblings")
	jsonLog := flag.Bool("json-log", false, "emit chronoview's own diagnostics as JSON instead of the default styled log")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chronoview: load config: %v\n", err)
		return 1
	}

	p, err := prefs.Load(*prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chronoview: load preferences: %v\n", err)
		return 1
	}
	resolvedPrefsPath := *prefsPath
	if resolvedPrefsPath == "" {
		resolvedPrefsPath = prefs.DefaultPath()
	}

	logger := applog.New(os.Stderr, slog.LevelInfo)
	if *jsonLog {
		logger = applog.NewJSON(os.Stderr, slog.LevelInfo)
	}

	patterns := watchPatterns(flag.Args(), cfg, *recursive, *rotated)
	watch := logwatch.New(patterns)

	idx := logindex.New(nil)
	for _, filter := range p.Filters {
		kind := logindex.FilterInclude
		if filter.Kind == "out" {
			kind = logindex.FilterExclude
		}
		matcher, err := logindex.NewRegexMatcher(filter.Pattern)
		if err != nil {
			logger.Warn("skipping saved filter with invalid pattern", "pattern", filter.Pattern, "error", err)
			continue
		}
		tf, err := idx.Filters.Add(kind, filter.Pattern, matcher)
		if err != nil {
			logger.Warn("skipping saved filter", "pattern", filter.Pattern, "error", err)
			continue
		}
		idx.Filters.SetEnabled(tf.Pattern, filter.Enabled)
	}

	sql, err := sqlengine.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chronoview: open sql engine: %v\n", err)
		return 1
	}

	histDir, err := historyDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chronoview: resolve history directory: %v\n", err)
		return 1
	}
	histories := map[history.Class]*history.Store{}
	for _, class := range []history.Class{history.Command, history.SQL, history.Search, history.Script} {
		store, err := history.Open(class, filepath.Join(histDir, class.String()+"_history.db"))
		if err != nil {
			logger.Warn("open history store failed", "class", class.String(), "error", err)
			continue
		}
		histories[class] = store
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := ui.Options{
		Context:    ctx,
		Logger:     logger,
		Config:     cfg,
		Prefs:      p,
		PrefsPath:  resolvedPrefsPath,
		Index:      idx,
		Watch:      watch,
		SQL:        sql,
		Dispatcher: command.NewDispatcher(),
		Histories:  histories,
		ThemeName:  *theme,
	}

	if err := ui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "chronoview: %v\n", err)
		return 1
	}
	return 0
}

// watchPatterns turns the command-line file arguments (or, absent any,
// the config file's configured set) into logwatch.Patterns, applying the
// --recursive/--rotated flags uniformly across all of them.
func watchPatterns(args []string, cfg config.Config, recursive, rotated bool) []logwatch.Pattern {
	globs := args
	if len(globs) == 0 {
		globs = cfg.WatchPatterns
	}
	if !recursive {
		recursive = cfg.Recursive
	}
	patterns := make([]logwatch.Pattern, 0, len(globs))
	for _, g := range globs {
		patterns = append(patterns, logwatch.Pattern{
			Glob:      g,
			Recursive: recursive,
			Rotated:   rotated,
		})
	}
	return patterns
}

// historyDir returns (creating if necessary) the directory chronoview
// stores its per-class history databases in, alongside config.toml and
// prefs.toml.
func historyDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "chronoview")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
