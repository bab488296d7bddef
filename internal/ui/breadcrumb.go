package ui

import (
	"encoding/json"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/docsections"
)

// togglePretty expands the selected log line's full message (joining any
// continuation lines) into a structured, breadcrumb-navigable view when
// its body parses as JSON or brace-delimited code, mirroring lnav's
// pretty-print overlay. A second press (or Escape) collapses it again.
func (m *Model) togglePretty() {
	if m.prettyActive {
		m.prettyActive = false
		m.prettyMeta = nil
		m.prettyLines = nil
		m.prettyLineStarts = nil
		return
	}
	if m.idx == nil {
		return
	}
	content, ok := m.idx.At(m.logCursor)
	if !ok {
		return
	}
	file, lineIdx, ok := m.idx.Find(content)
	if !ok {
		return
	}
	raw, err := file.ReadFullMessage(lineIdx)
	if err != nil || raw == "" {
		m.setStatus("nothing to expand on this line", true)
		return
	}

	text, meta, ok := discoverStructure(raw)
	if !ok {
		m.setStatus("line body has no discoverable structure", true)
		return
	}

	m.prettyActive = true
	m.prettyMeta = meta
	m.prettyLines = strings.Split(text, "\n")
	m.prettyLineStarts = lineStartsOf(text)
	m.prettyCursor = 0
}

// discoverStructure tries JSON first (re-indenting the raw body so its
// nesting is visible), falling back to brace/bracket code discovery over
// the raw text unchanged. It reports ok=false when neither applies.
func discoverStructure(raw string) (text string, meta *docsections.Metadata, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid([]byte(trimmed)) {
		var buf strings.Builder
		if err := json.Indent(&buf, []byte(trimmed), "", "  "); err == nil {
			pretty := buf.String()
			if m, err := docsections.DiscoverJSON(pretty, false); err == nil {
				return pretty, m, true
			}
		}
	}
	if strings.ContainsAny(raw, "{}") {
		return raw, docsections.DiscoverCode(raw), true
	}
	return "", nil, false
}

// lineStartsOf returns the byte offset of the start of each line in text,
// the coordinate space docsections.Metadata.PathForRange expects.
func lineStartsOf(text string) []int {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// renderPrettyView draws the breadcrumb bar for the cursor's current
// nesting location, followed by the expanded body with the cursor line
// highlighted.
func (m Model) renderPrettyView(height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	offset := 0
	if m.prettyCursor < len(m.prettyLineStarts) {
		offset = m.prettyLineStarts[m.prettyCursor]
	}
	path := m.prettyMeta.PathForRange(offset, offset)
	crumb := "(root)"
	if len(path) > 0 {
		parts := make([]string, len(path))
		for i, k := range path {
			parts[i] = k.String()
		}
		crumb = strings.Join(parts, " › ")
	}
	b.WriteString(styles.AccentText.Bold(true).Render(crumb))

	bodyHeight := height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	start := 0
	if len(m.prettyLines) > bodyHeight {
		start = m.prettyCursor - bodyHeight/2
		if start < 0 {
			start = 0
		}
		if start > len(m.prettyLines)-bodyHeight {
			start = len(m.prettyLines) - bodyHeight
		}
	}
	for i := start; i < len(m.prettyLines) && i < start+bodyHeight; i++ {
		b.WriteString("\n")
		if i == m.prettyCursor {
			b.WriteString(styles.Selected.Render(m.prettyLines[i]))
		} else {
			b.WriteString(styles.Text.Render(m.prettyLines[i]))
		}
	}
	return b.String()
}

// handlePrettyKey navigates the expanded body line by line, updating the
// breadcrumb bar to the cursor's new nesting location.
func (m Model) handlePrettyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Escape), keyMatches(msg, m.keys.Pretty):
		m.togglePretty()
		return m, nil
	case keyMatches(msg, m.keys.Down):
		if m.prettyCursor < len(m.prettyLines)-1 {
			m.prettyCursor++
		}
		return m, nil
	case keyMatches(msg, m.keys.Up):
		if m.prettyCursor > 0 {
			m.prettyCursor--
		}
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.prettyCursor = 0
		return m, nil
	case keyMatches(msg, m.keys.Bottom):
		m.prettyCursor = len(m.prettyLines) - 1
		return m, nil
	}
	return m, nil
}
