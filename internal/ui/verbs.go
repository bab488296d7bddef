package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/chronoview/internal/command"
	"github.com/five82/chronoview/internal/logindex"
)

// registerVerbs wires the stable subset of command.Builtins() whose effect
// is expressible purely against m's shared collaborators (the log index's
// filter stack and bookmark sets, the SQL engine, the file watcher) into
// m.dispatcher's Registry. Verbs whose effect is view-local UI state
// (:switch-to-view, :zoom-to, :spectrogram, :rebuild) are special-cased by
// prompt.go's confirm handling instead, since a command.Handler has no way
// to reach the bubbletea Model the runtime is currently rendering — only
// the long-lived pointers (m.idx, m.watch, m.sql) a Model value carries
// forward across Update's per-frame copies. File-I/O and session-
// persistence verbs (:open, :write-*-to, :save-session, ...) are left as
// command.Builtins()'s HelpText-only stubs per SPEC_FULL.md §5's Non-goal
// on session serialization.
func registerVerbs(m *Model) {
	help := command.Builtins()
	byName := make(map[string]command.HelpText, len(help))
	for _, h := range help {
		byName[h.Name] = h
	}

	register := func(name string, run command.Handler) {
		h, ok := byName[name]
		if !ok {
			return
		}
		m.dispatcher.Registry.Register(command.Verb{Help: h, Run: run})
	}

	register("filter-in", func(_ context.Context, args []string) (string, error) {
		return m.addFilter(logindex.FilterInclude, args)
	})
	register("filter-out", func(_ context.Context, args []string) (string, error) {
		return m.addFilter(logindex.FilterExclude, args)
	})
	register("delete-filter", func(_ context.Context, args []string) (string, error) {
		if len(args) == 0 || !m.idx.Filters.Delete(args[0]) {
			return "", command.NewErrorf("delete-filter: no filter matches %q", stringArg(args))
		}
		return fmt.Sprintf("deleted filter %q", args[0]), nil
	})
	register("enable-filter", func(_ context.Context, args []string) (string, error) {
		return m.setFilterEnabled(args, true)
	})
	register("disable-filter", func(_ context.Context, args []string) (string, error) {
		return m.setFilterEnabled(args, false)
	})

	register("mark", func(_ context.Context, _ []string) (string, error) {
		m.toggleBookmark()
		return "toggled bookmark", nil
	})
	register("next-mark", func(_ context.Context, _ []string) (string, error) {
		m.jumpBookmark(1)
		return "", nil
	})
	register("prev-mark", func(_ context.Context, _ []string) (string, error) {
		m.jumpBookmark(-1)
		return "", nil
	})

	register("hide-file", func(_ context.Context, args []string) (string, error) {
		return m.setFileHidden(args, true)
	})
	register("show-file", func(_ context.Context, args []string) (string, error) {
		return m.setFileHidden(args, false)
	})

	register("goto", func(_ context.Context, args []string) (string, error) {
		return m.gotoLine(args)
	})
	register("relative-goto", func(_ context.Context, args []string) (string, error) {
		return m.relativeGoto(args)
	})
}

func stringArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (m *Model) addFilter(kind logindex.FilterKind, args []string) (string, error) {
	if len(args) == 0 {
		return "", command.NewError("filter: missing pattern")
	}
	pattern := strings.Join(args, " ")
	matcher, err := logindex.NewRegexMatcher(pattern)
	if err != nil {
		return "", command.NewErrorf("filter: %v", err)
	}
	if _, err := m.idx.Filters.Add(kind, pattern, matcher); err != nil {
		return "", command.NewErrorf("filter: %v", err)
	}
	return fmt.Sprintf("added filter %q", pattern), nil
}

func (m *Model) setFilterEnabled(args []string, enabled bool) (string, error) {
	if len(args) == 0 {
		return "", command.NewError("filter: missing pattern")
	}
	if !m.idx.Filters.SetEnabled(args[0], enabled) {
		return "", command.NewErrorf("no filter matches %q", args[0])
	}
	return fmt.Sprintf("filter %q enabled=%v", args[0], enabled), nil
}

func (m *Model) setFileHidden(args []string, hidden bool) (string, error) {
	if len(args) == 0 {
		return "", command.NewError("file: missing path")
	}
	n := 0
	for _, f := range m.idx.Files {
		for _, want := range args {
			if f.Path == want {
				f.Hidden = hidden
				n++
			}
		}
	}
	if n == 0 {
		return "", command.NewErrorf("no open file matches the given path(s)")
	}
	return fmt.Sprintf("updated %d file(s)", n), nil
}

func (m *Model) gotoLine(args []string) (string, error) {
	if len(args) == 0 {
		return "", command.NewError("goto: missing destination")
	}
	var line int
	if _, err := fmt.Sscanf(args[0], "%d", &line); err != nil {
		return "", command.NewErrorf("goto: invalid line %q", args[0])
	}
	m.logCursor = line
	m.logFollow = false
	m.syncViewportToCursor()
	return fmt.Sprintf("moved to line %d", line), nil
}

func (m *Model) relativeGoto(args []string) (string, error) {
	if len(args) == 0 {
		return "", command.NewError("relative-goto: missing offset")
	}
	var offset int
	if _, err := fmt.Sscanf(args[0], "%d", &offset); err != nil {
		return "", command.NewErrorf("relative-goto: invalid offset %q", args[0])
	}
	m.logCursor += offset
	if m.logCursor < 0 {
		m.logCursor = 0
	}
	m.logFollow = false
	m.syncViewportToCursor()
	return fmt.Sprintf("moved by %d lines", offset), nil
}
