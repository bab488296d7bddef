package applog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HandlerOptions configures the console Handler. A zero HandlerOptions is
// valid and matches NewHandler(nil, nil)'s defaults.
type HandlerOptions struct {
	// Level reports the minimum record level the handler emits. Nil means
	// slog.LevelInfo, matching the console-slog handler this is grounded on.
	Level slog.Leveler

	// NoColor disables ANSI styling, for output piped to a file or a
	// terminal without color support.
	NoColor bool

	// TimeFormat is the layout used for each record's timestamp.
	TimeFormat string
}

// levelStyles maps each slog level to the lipgloss style its abbreviation
// renders with, reusing the teacher's lipgloss-based coloring approach
// (internal/ui/theme.go) rather than hand-rolling ANSI escapes.
var levelStyles = map[slog.Level]lipgloss.Style{
	slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

func levelAbbrev(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DBG"
	case l < slog.LevelWarn:
		return "INF"
	case l < slog.LevelError:
		return "WRN"
	default:
		return "ERR"
	}
}

func styleFor(l slog.Level) lipgloss.Style {
	switch {
	case l < slog.LevelInfo:
		return levelStyles[slog.LevelDebug]
	case l < slog.LevelWarn:
		return levelStyles[slog.LevelInfo]
	case l < slog.LevelError:
		return levelStyles[slog.LevelWarn]
	default:
		return levelStyles[slog.LevelError]
	}
}

// Handler is a slog.Handler that writes one colorized line per record:
// "TIME LVL message key=value ...". Groups are flattened into
// dotted-prefix keys. The prefix is applied to every attribute the record
// carries, including ones added through WithAttrs before WithGroup opened
// the group.
type Handler struct {
	opts   HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	prefix string // dotted group prefix for WithGroup
	attrs  []slog.Attr
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler that writes to w. A nil opts uses level
// Info, color enabled, and time.DateTime's layout.
func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	resolved := *opts
	if resolved.Level == nil {
		resolved.Level = slog.LevelInfo
	}
	if resolved.TimeFormat == "" {
		resolved.TimeFormat = time.DateTime
	}
	return &Handler{opts: resolved, out: w, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString(rec.Time.Format(h.opts.TimeFormat))
	buf.WriteByte(' ')

	lvl := levelAbbrev(rec.Level)
	if h.opts.NoColor {
		buf.WriteString(lvl)
	} else {
		buf.WriteString(styleFor(rec.Level).Render(lvl))
	}
	buf.WriteByte(' ')
	buf.WriteString(rec.Message)

	attrs := make([]slog.Attr, len(h.attrs))
	copy(attrs, h.attrs)
	rec.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	for _, a := range attrs {
		writeAttr(&buf, h.prefix, a)
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := a.Key
		if prefix != "" {
			groupPrefix = prefix + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			writeAttr(buf, groupPrefix, ga)
		}
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + a.Key
	}
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\"") {
		fmt.Fprintf(buf, "%q", val)
	} else {
		buf.WriteString(val)
	}
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if next.prefix == "" {
		next.prefix = name
	} else {
		next.prefix = next.prefix + "." + name
	}
	return &next
}
