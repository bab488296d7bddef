package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chronoview/internal/highlight"
	"github.com/five82/chronoview/internal/history"
	"github.com/five82/chronoview/internal/logindex"
)

// resizeLogViewport (re)sizes the log body viewport to the current
// terminal dimensions, matching the header+footer budget renderMain uses.
func (m *Model) resizeLogViewport() {
	w := m.width
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	if !m.logReady {
		m.logViewport = viewport.New(w, h)
		m.logReady = true
	} else {
		m.logViewport.Width = w
		m.logViewport.Height = h
	}
}

// renderLogView renders the merged log stream, gutter-prefixed with line
// number and level chip, into the scrolling viewport.
func (m *Model) renderLogView(height int) string {
	if m.idx == nil {
		return "no files open"
	}
	m.logViewport.Height = height
	m.logViewport.Width = m.width
	m.logViewport.SetContent(m.renderLogContent())
	if m.logFollow {
		m.logViewport.GotoBottom()
	}
	return m.logViewport.View()
}

func (m *Model) renderLogContent() string {
	styles := m.theme.Styles()
	total := m.idx.Len()
	if total == 0 {
		return styles.MutedText.Render("no log lines indexed yet")
	}

	start := 0
	if total > LogBufferLimit {
		start = total - LogBufferLimit
	}

	matchSet := make(map[int]bool, len(m.searchHits))
	for _, v := range m.searchHits {
		matchSet[v] = true
	}
	activeHit := -1
	if len(m.searchHits) > 0 && m.searchIdx < len(m.searchHits) {
		activeHit = m.searchHits[m.searchIdx]
	}

	var b strings.Builder
	for visual := start; visual < total; visual++ {
		content, ok := m.idx.At(visual)
		if !ok {
			continue
		}
		f, li, ok := m.idx.Find(content)
		if !ok {
			continue
		}
		raw, err := f.ReadLineRaw(li)
		if err != nil {
			continue
		}
		line := f.Lines[li]

		gutter := fmt.Sprintf("%6d ", visual+1)
		levelChip := styles.LevelStyle(line.Level.Base().String()).Render(levelAbbrev(line.Level.Base().String()))

		var body string
		if visual == activeHit {
			body = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Background)).
				Background(lipgloss.Color(m.theme.Warning)).
				Render(raw)
		} else if matchSet[visual] {
			body = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Render(raw)
		} else {
			body = renderAttrs(raw, highlight.Generic(raw), m.theme)
		}

		bookmarked := m.lineBookmarked(visual)
		marker := " "
		if bookmarked {
			marker = styles.AccentText.Bold(true).Render("●")
		}

		b.WriteString(styles.FaintText.Render(gutter))
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(levelChip)
		b.WriteString(" ")
		b.WriteString(body)
		if visual < total-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func levelAbbrev(name string) string {
	if name == "" {
		return "????"
	}
	upper := strings.ToUpper(name)
	if len(upper) > 4 {
		return upper[:4]
	}
	return upper
}

// lineBookmarked reports whether visual is in the BMUser bookmark set.
// Bookmarks track visual-line position (per internal/logindex.Set's own
// contract), so a bookmark can drift if an earlier rebuild reorders lines.
func (m *Model) lineBookmarked(visual int) bool {
	if m.idx == nil || m.idx.Bookmarks == nil {
		return false
	}
	set := m.idx.Bookmarks[logindex.BMUser]
	if set == nil {
		return false
	}
	for _, v := range set.Lines() {
		if v == visual {
			return true
		}
	}
	return false
}

// handleLogKey processes navigation, search, and bookmark keys for the
// log view.
func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.ToggleFollow):
		m.logFollow = !m.logFollow
		return m, nil
	case keyMatches(msg, m.keys.Search):
		m.openPrompt('/', history.Search)
		return m, nil
	case keyMatches(msg, m.keys.NextMatch):
		m.advanceSearchHit(1)
		return m, nil
	case keyMatches(msg, m.keys.PrevMatch):
		m.advanceSearchHit(-1)
		return m, nil
	case keyMatches(msg, m.keys.Mark):
		m.toggleBookmark()
		return m, nil
	case keyMatches(msg, m.keys.NextMark):
		m.jumpBookmark(1)
		return m, nil
	case keyMatches(msg, m.keys.PrevMark):
		m.jumpBookmark(-1)
		return m, nil
	case keyMatches(msg, m.keys.Pretty):
		m.togglePretty()
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.logFollow = false
		m.logViewport.GotoTop()
		return m, nil
	case keyMatches(msg, m.keys.Bottom):
		m.logFollow = true
		m.logViewport.GotoBottom()
		return m, nil
	case keyMatches(msg, m.keys.Down):
		m.logFollow = false
		m.logViewport.ScrollDown(1)
		return m, nil
	case keyMatches(msg, m.keys.Up):
		m.logFollow = false
		m.logViewport.ScrollUp(1)
		return m, nil
	case keyMatches(msg, m.keys.HalfPageDown):
		m.logFollow = false
		m.logViewport.HalfPageDown()
		return m, nil
	case keyMatches(msg, m.keys.HalfPageUp):
		m.logFollow = false
		m.logViewport.HalfPageUp()
		return m, nil
	case keyMatches(msg, m.keys.PageDown):
		m.logFollow = false
		m.logViewport.PageDown()
		return m, nil
	case keyMatches(msg, m.keys.PageUp):
		m.logFollow = false
		m.logViewport.PageUp()
		return m, nil
	}
	return m, nil
}

func (m *Model) toggleBookmark() {
	if m.idx == nil || m.idx.Bookmarks == nil {
		return
	}
	if _, ok := m.idx.At(m.logCursor); !ok {
		return
	}
	set := m.idx.Bookmarks[logindex.BMUser]
	if set == nil {
		set = &logindex.Set{}
		m.idx.Bookmarks[logindex.BMUser] = set
	}
	if m.lineBookmarked(m.logCursor) {
		set.Remove(m.logCursor)
	} else {
		set.InsertOnce(m.logCursor)
	}
}

func (m *Model) jumpBookmark(dir int) {
	if m.idx == nil || m.idx.Bookmarks == nil {
		return
	}
	set := m.idx.Bookmarks[logindex.BMUser]
	if set == nil {
		return
	}
	if dir > 0 {
		if n, ok := set.Next(m.logCursor); ok {
			m.logCursor = n
			m.logFollow = false
			m.syncViewportToCursor()
		}
	} else if n, ok := set.Prev(m.logCursor); ok {
		m.logCursor = n
		m.logFollow = false
		m.syncViewportToCursor()
	}
}

// syncViewportToCursor scrolls the viewport so logCursor is roughly
// centered, mirroring the teacher's scrollToSearchMatch.
func (m *Model) syncViewportToCursor() {
	half := m.logViewport.Height / 2
	offset := m.logCursor - half
	if offset < 0 {
		offset = 0
	}
	m.logViewport.SetYOffset(offset)
}

// compileSearch compiles query into a regex matcher and scans every
// indexed line for a hit, the log view's `/` search implementation.
func (m *Model) compileSearch(query string) error {
	m.searchHits = nil
	m.searchIdx = 0
	m.searchQuery = query
	if query == "" || m.idx == nil {
		return nil
	}
	matcher, err := logindex.NewRegexMatcher(query)
	if err != nil {
		return err
	}
	for visual := 0; visual < m.idx.Len(); visual++ {
		content, ok := m.idx.At(visual)
		if !ok {
			continue
		}
		f, li, ok := m.idx.Find(content)
		if !ok {
			continue
		}
		raw, err := f.ReadLineRaw(li)
		if err != nil {
			continue
		}
		hit, err := matcher.Matches(f.Meta[li], raw)
		if err != nil {
			return err
		}
		if hit {
			m.searchHits = append(m.searchHits, visual)
		}
	}
	if len(m.searchHits) > 0 {
		m.logCursor = m.searchHits[0]
		m.logFollow = false
		m.syncViewportToCursor()
	}
	return nil
}

func (m *Model) advanceSearchHit(dir int) {
	if len(m.searchHits) == 0 {
		return
	}
	m.searchIdx = ((m.searchIdx+dir)%len(m.searchHits) + len(m.searchHits)) % len(m.searchHits)
	m.logCursor = m.searchHits[m.searchIdx]
	m.syncViewportToCursor()
	m.logFollow = false
}

// sampleLines reads up to n lines from path for logformat.DetectParser.
func sampleLines(path string, n int) ([]string, error) {
	return readSampleLines(path, n)
}
