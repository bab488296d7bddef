package applog

import (
	"io"
	"log/slog"
)

// New returns a *slog.Logger writing colorized console records to w at the
// given minimum level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &HandlerOptions{Level: level}))
}

// NewJSON returns a *slog.Logger writing slog's standard JSON records to
// w, for the -json-log flag.
func NewJSON(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
