// Package config handles loading and parsing chronoview's configuration file.
//
// # Overview
//
// This package reads chronoview's TOML configuration to discover which log
// files to watch, how to watch them, the default line format to assume
// before auto-detection runs, the theme to apply, and the SQL engine's row
// limit.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/chronoview/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/chronoview/config.toml
//   - Default format: "generic"
//   - Poll interval: 1s
//   - Theme: "Dracula"
//   - SQL max rows: 10000
//
// # Configuration Fields
//
//   - WatchPatterns: glob patterns handed to internal/logwatch
//   - Recursive: whether glob expansion descends into subdirectories
//   - FollowRotation: whether rotated files are tracked across rename/truncate
//   - DefaultFormat: the internal/logformat name assumed before detection
//   - PollInterval: how often the watcher rescans when fsnotify isn't available
//   - Theme: the internal/prefs theme name used until overridden
//   - SQLMaxRows: the row cap internal/sqlengine.Query enforces
//
// # TOML Format
//
// Example config.toml:
//
//	watch_patterns = ["/var/log/app/*.log", "~/logs/*.log"]
//	recursive = false
//	follow_rotation = true
//	default_format = "generic"
//	poll_interval = "2s"
//	theme = "Dracula"
//	sql_max_rows = 50000
//
// Every field is optional. Tilde expansion is performed automatically on
// the config path and on each watch pattern.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - An unparseable poll_interval duration string
//
// Missing config files are NOT an error - defaults are used instead, so
// chronoview works out-of-the-box without configuration.
package config
