// Package applog wraps log/slog with chronoview's two output handlers: a
// colorized single-line console handler for interactive use, grounded on
// the pack's console-slog handler design (level-tagged, timestamped,
// attrs trailing the message), and slog's own JSON handler for the
// -json-log flag. Rescan and rebuild failures, each newly opened file,
// sampling/indexing failures, and an unavailable fsnotify watch are logged
// through this package; per-path watcher errors are shown only as a count
// in the header, and renames and rebuild results are not logged.
package applog
