package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/highlight"
	"github.com/five82/chronoview/internal/sqlengine"
)

// runSQLQuery syncs the logline table to the current index snapshot and
// runs raw against it, storing the result (or error) for the SQL view —
// the `;<sql>` prompt's confirm action.
func (m *Model) runSQLQuery(raw string) {
	m.sqlQuery = raw
	m.sqlRowCursor = 0
	if m.sql == nil || m.idx == nil {
		m.sqlErr = fmt.Errorf("sql engine not available")
		m.sqlResult = nil
		return
	}
	if err := m.sql.Sync(m.ctx, m.idx); err != nil {
		m.sqlErr = err
		m.sqlResult = nil
		return
	}
	result, err := m.sql.Query(m.ctx, raw)
	if err != nil {
		m.sqlErr = err
		m.sqlResult = nil
		return
	}
	m.sqlErr = nil
	m.sqlResult = result
}

// renderSQLView renders the last-run query (SQL-highlighted) followed by
// its result table, or the error text if the query failed.
func (m Model) renderSQLView(height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	if m.sqlQuery == "" {
		return styles.MutedText.Render("no query run yet (press ; to query the current view)")
	}

	b.WriteString(renderAttrs(m.sqlQuery, highlight.SQLHighlight(m.sqlQuery), m.theme))

	if m.sqlErr != nil {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.sqlErr.Error()))
		return b.String()
	}
	if m.sqlResult == nil || len(m.sqlResult.Columns) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("no results"))
		return b.String()
	}

	widths := columnWidths(m.sqlResult)
	tableHeight := height - 2
	if tableHeight < 1 {
		tableHeight = 1
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render(formatRow(m.sqlResult.Columns, widths)))

	start := 0
	if len(m.sqlResult.Rows) > tableHeight {
		start = m.sqlRowCursor - tableHeight/2
		if start < 0 {
			start = 0
		}
		if start > len(m.sqlResult.Rows)-tableHeight {
			start = len(m.sqlResult.Rows) - tableHeight
		}
	}

	for i := start; i < len(m.sqlResult.Rows) && i < start+tableHeight; i++ {
		line := formatRow(m.sqlResult.Rows[i], widths)
		b.WriteString("\n")
		if i == m.sqlRowCursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
	}

	return b.String()
}

func columnWidths(r *sqlengine.Result) []int {
	widths := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		widths[i] = len(c)
	}
	for _, row := range r.Rows {
		for i, v := range row {
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}
	for i := range widths {
		if widths[i] > 32 {
			widths[i] = 32
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := 10
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = padRight(truncate(c, w), w)
	}
	return strings.Join(parts, " │ ")
}

// handleSQLKey scrolls the result table.
func (m Model) handleSQLKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sqlResult == nil {
		return m, nil
	}
	switch {
	case keyMatches(msg, m.keys.Down):
		if m.sqlRowCursor < len(m.sqlResult.Rows)-1 {
			m.sqlRowCursor++
		}
		return m, nil
	case keyMatches(msg, m.keys.Up):
		if m.sqlRowCursor > 0 {
			m.sqlRowCursor--
		}
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.sqlRowCursor = 0
		return m, nil
	case keyMatches(msg, m.keys.Bottom):
		m.sqlRowCursor = len(m.sqlResult.Rows) - 1
		return m, nil
	}
	return m, nil
}
