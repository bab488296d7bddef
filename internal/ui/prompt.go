package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/history"
	"github.com/five82/chronoview/internal/spectro"
)

// sqlCompletions backs the `;` prompt's Tab-triggered completion popup. The
// real keyword/function/column catalog a full SQL engine would expose is
// out of scope here; this is the small, stable subset of the logline
// table and common SQL keywords a user is actually likely to type.
var sqlCompletions = history.NewCompletionSet([]history.SqlItem{
	{Kind: history.ItemColumn, Key: "file", Display: "file"},
	{Kind: history.ItemColumn, Key: "line", Display: "line"},
	{Kind: history.ItemColumn, Key: "time", Display: "time"},
	{Kind: history.ItemColumn, Key: "time_ns", Display: "time_ns"},
	{Kind: history.ItemColumn, Key: "level", Display: "level"},
	{Kind: history.ItemColumn, Key: "opid", Display: "opid"},
	{Kind: history.ItemColumn, Key: "body", Display: "body"},
	{Kind: history.ItemTable, Key: "logline", Display: "logline"},
	{Kind: history.ItemKeyword, Key: "select", Display: "SELECT"},
	{Kind: history.ItemKeyword, Key: "from", Display: "FROM"},
	{Kind: history.ItemKeyword, Key: "where", Display: "WHERE"},
	{Kind: history.ItemKeyword, Key: "order", Display: "ORDER BY"},
	{Kind: history.ItemKeyword, Key: "group", Display: "GROUP BY"},
	{Kind: history.ItemKeyword, Key: "limit", Display: "LIMIT"},
})

// openPrompt opens the single-line command/SQL/search prompt, the entry
// point for `:`, `;`, and `/` keys across every view.
func (m *Model) openPrompt(kind byte, class history.Class) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	switch kind {
	case ':':
		ti.Placeholder = "command"
	case ';':
		ti.Placeholder = "select ... from logline"
	case '/':
		ti.Placeholder = "search"
	}
	ti.Focus()
	m.prompt = promptState{active: true, kind: kind, input: ti, class: class, histIdx: -1}
}

func (m *Model) closePrompt() {
	m.prompt = promptState{}
}

// handlePromptKey drives the active prompt: Escape cancels (or closes an
// open completion popup first), Enter confirms and dispatches (or accepts
// the popup's selection), Up/Down recall history, Tab opens/cycles the
// `;` prompt's completion popup.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Escape):
		if m.prompt.popup != nil {
			m.prompt.popup = nil
			return m, nil
		}
		m.closePrompt()
		return m, nil
	case keyMatches(msg, m.keys.Confirm):
		if m.prompt.popup != nil {
			m.acceptCompletion()
			return m, nil
		}
		return m.confirmPrompt()
	case keyMatches(msg, m.keys.Tab):
		if m.prompt.kind == ';' {
			m.cycleCompletion()
			return m, nil
		}
	case keyMatches(msg, m.keys.Up):
		if m.prompt.popup != nil {
			m.prompt.popup.MoveUp()
			return m, nil
		}
		m.recallHistory(1)
		return m, nil
	case keyMatches(msg, m.keys.Down):
		if m.prompt.popup != nil {
			m.prompt.popup.MoveDown()
			return m, nil
		}
		m.recallHistory(-1)
		return m, nil
	}

	m.prompt.popup = nil
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

// cycleCompletion opens the completion popup for the word currently being
// typed, or advances its selection if already open.
func (m *Model) cycleCompletion() {
	if m.prompt.popup != nil {
		m.prompt.popup.MoveDown()
		return
	}
	prefix := lastWord(m.prompt.input.Value())
	if prefix == "" {
		return
	}
	matches := sqlCompletions.Lookup(prefix)
	if len(matches) == 0 {
		return
	}
	m.prompt.popup = history.NewPopup(matches, len(m.prompt.input.Value()), 8)
}

// acceptCompletion replaces the in-progress word with the popup's
// selected item and closes the popup.
func (m *Model) acceptCompletion() {
	item, ok := m.prompt.popup.Selected()
	m.prompt.popup = nil
	if !ok {
		return
	}
	value := m.prompt.input.Value()
	trimmed := strings.TrimSuffix(value, lastWord(value))
	m.prompt.input.SetValue(trimmed + item.Display + item.ReplaceSuffix)
	m.prompt.input.CursorEnd()
}

func lastWord(s string) string {
	idx := strings.LastIndexAny(s, " \t(),")
	return s[idx+1:]
}

// recallHistory steps through the active prompt class's history store,
// dir>0 moving to older entries and dir<0 moving back toward the blank
// line, mirroring a shell's up/down history recall.
func (m *Model) recallHistory(dir int) {
	store := m.histories[m.prompt.class]
	if store == nil {
		return
	}
	entries := store.Recent(50)
	if len(entries) == 0 {
		return
	}
	if dir > 0 {
		if m.prompt.histIdx < len(entries)-1 {
			m.prompt.histIdx++
		}
	} else {
		if m.prompt.histIdx > 0 {
			m.prompt.histIdx--
		} else {
			m.prompt.histIdx = -1
			m.prompt.input.SetValue("")
			return
		}
	}
	m.prompt.input.SetValue(entries[m.prompt.histIdx].Content)
	m.prompt.input.CursorEnd()
}

// confirmPrompt runs the prompt's value through the kind-appropriate
// action, records it to history, and closes the prompt.
func (m Model) confirmPrompt() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.prompt.input.Value())
	kind := m.prompt.kind
	class := m.prompt.class
	m.closePrompt()

	if value == "" {
		return m, nil
	}
	if store := m.histories[class]; store != nil {
		store.InsertPlainContent("ui", value)
	}

	switch kind {
	case '/':
		if err := m.compileSearch(value); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus(searchSummary(value, len(m.searchHits)), false)
		}
	case ';':
		m.runSQLQuery(value)
		m.currentView = ViewSQL
		if m.sqlErr != nil {
			m.setStatus(m.sqlErr.Error(), true)
		}
	case ':':
		if strings.TrimPrefix(strings.Fields(value)[0], ":") == "quit" {
			return m, tea.Quit
		}
		m.dispatchCommand(value)
	}
	return m, nil
}

func searchSummary(query string, hits int) string {
	if hits == 0 {
		return "no matches for " + query
	}
	if hits == 1 {
		return "1 match for " + query
	}
	return fmt.Sprintf("%d matches for %s", hits, query)
}

// dispatchCommand runs a `:<verb> args...` line through the registered
// command.Dispatcher, then applies the handful of verbs whose effect is
// view-local UI state the dispatcher itself cannot reach (see verbs.go's
// registerVerbs doc comment).
func (m *Model) dispatchCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "switch-to-view":
		if len(args) > 0 {
			if v, ok := viewFromName(args[0]); ok {
				m.currentView = v
				m.onViewChanged()
				return
			}
		}
		m.setStatus("switch-to-view: unknown view", true)
		return
	case "zoom-to":
		if len(args) > 0 {
			if d, ok := parseZoomLevel(args[0]); ok {
				m.histGranularity = d
				m.setSpectroField(m.spectroField)
				return
			}
		}
		m.setStatus("zoom-to: unknown granularity", true)
		return
	case "spectrogram":
		if len(args) > 0 {
			m.setSpectroField(args[0])
			m.currentView = ViewSpectrogram
			return
		}
		m.setStatus("spectrogram: missing field name", true)
		return
	case "rebuild":
		m.rebuildTimeline()
		m.setStatus("rebuilt", false)
		return
	case "quit":
		return
	}

	out, err := m.dispatcher.Dispatch(m.ctx, ":"+line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if out != "" {
		m.setStatus(strings.TrimRight(out, "\n"), false)
	}
}

// parseZoomLevel parses a duration string (e.g. "1m", "30s") and snaps it
// to the nearest spectro.ZoomLevels entry, the `:zoom-to` verb's argument
// format.
func parseZoomLevel(s string) (time.Duration, bool) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	best := spectro.ZoomLevels[0]
	bestDiff := diffDuration(best, d)
	for _, z := range spectro.ZoomLevels[1:] {
		if diff := diffDuration(z, d); diff < bestDiff {
			best, bestDiff = z, diff
		}
	}
	return best, true
}

func diffDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a - b
	}
	return b - a
}
