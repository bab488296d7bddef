package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/logformat"
	"github.com/five82/chronoview/internal/timeline"
)

// rebuildTimeline rebuilds the operation Gantt rows from the current
// index, the `3`/tab-into-timeline entry point spec.md 4.6 describes as
// "built on demand, not kept incrementally current".
func (m *Model) rebuildTimeline() {
	if m.idx == nil {
		return
	}
	sources := make([]timeline.OpidSource, 0, len(m.idx.Files))
	for _, f := range m.idx.Files {
		format := m.formatByPath[f.Path]
		sources = append(sources, logformat.NewFileOpidSource(f, format))
	}
	m.timelineRows = timeline.Build(sources, m.idx.MinTime, m.idx.MaxTime, &m.idx.Filters)
	m.timelineBounds = timeline.ComputeBounds(m.timelineRows)
	if m.timelineCursor >= len(m.timelineRows) {
		m.timelineCursor = 0
	}
	m.timelineBuilt = time.Now()
	m.refreshTimelinePreview()
}

func (m *Model) refreshTimelinePreview() {
	if m.timelineCursor < 0 || m.timelineCursor >= len(m.timelineRows) {
		m.timelinePreview = nil
		return
	}
	row := m.timelineRows[m.timelineCursor]
	m.timelinePreview = timeline.Preview(m.idx, row, 0)
}

// renderTimelineView draws the Gantt chart: one row per operation, a bar
// spanning its time range, and (below the chart) a preview pane for the
// selected row.
func (m Model) renderTimelineView(height int) string {
	styles := m.theme.Styles()
	if len(m.timelineRows) == 0 {
		return styles.MutedText.Render("no operations found (press enter to rebuild)")
	}

	chartWidth := m.width - m.timelineBounds.OpIDWidth - 4
	if chartWidth < 10 {
		chartWidth = 10
	}
	bars := timeline.Layout(m.timelineRows, m.timelineBounds, chartWidth)

	previewLines := 0
	if len(m.timelinePreview) > 0 {
		previewLines = 6
	}
	chartHeight := height - previewLines - 1
	if chartHeight < 1 {
		chartHeight = height
	}

	start := 0
	if len(bars) > chartHeight {
		start = m.timelineCursor - chartHeight/2
		if start < 0 {
			start = 0
		}
		if start > len(bars)-chartHeight {
			start = len(bars) - chartHeight
		}
	}

	var b strings.Builder
	for i := start; i < len(bars) && i < start+chartHeight; i++ {
		bar := bars[i]
		opid := padRight(truncate(bar.Row.OpID, m.timelineBounds.OpIDWidth), m.timelineBounds.OpIDWidth)

		track := make([]rune, chartWidth)
		for c := range track {
			track[c] = ' '
		}
		for c := bar.StartCol; c < bar.StartCol+bar.WidthCols && c < chartWidth; c++ {
			if c >= 0 {
				track[c] = '█'
			}
		}
		barStr := string(track)
		style := styles.InfoText
		if bar.Row.LevelStats.Error > 0 {
			style = styles.DangerText
		} else if bar.Row.LevelStats.Warn > 0 {
			style = styles.WarningText
		}

		line := fmt.Sprintf("%s %s", styles.MutedText.Render(opid), style.Render(barStr))
		if i == m.timelineCursor {
			line = styles.Selected.Render(fmt.Sprintf("%s %s", opid, barStr))
		}
		b.WriteString(line)
		if i < start+chartHeight-1 && i < len(bars)-1 {
			b.WriteString("\n")
		}
	}

	if previewLines > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render("── preview ──"))
		for i, p := range m.timelinePreview {
			if i >= previewLines-1 {
				break
			}
			b.WriteString("\n")
			b.WriteString(styles.FaintText.Render(p.Time.Format("15:04:05.000")) + " " + truncate(p.Text, m.width-20))
		}
	}

	return b.String()
}

// handleTimelineKey navigates selected operation rows and re-requests
// their preview pane.
func (m Model) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Down):
		if m.timelineCursor < len(m.timelineRows)-1 {
			m.timelineCursor++
			m.refreshTimelinePreview()
		}
		return m, nil
	case keyMatches(msg, m.keys.Up):
		if m.timelineCursor > 0 {
			m.timelineCursor--
			m.refreshTimelinePreview()
		}
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.timelineCursor = 0
		m.refreshTimelinePreview()
		return m, nil
	case keyMatches(msg, m.keys.Bottom):
		m.timelineCursor = len(m.timelineRows) - 1
		m.refreshTimelinePreview()
		return m, nil
	case keyMatches(msg, m.keys.Confirm):
		m.rebuildTimeline()
		return m, nil
	}
	return m, nil
}
