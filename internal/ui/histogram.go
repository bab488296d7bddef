package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/loglevel"
	"github.com/five82/chronoview/internal/spectro"
)

// histBucket tallies, per loglevel.Level severity bucket, how many lines
// fell in one time slice — lnav's histogram view, built on demand from
// the merged index rather than persisted as its own log_index like spec.md
// 4.4's LogIndex collaborators.
type histBucket struct {
	begin                                 time.Time
	errorN, warningN, infoN, otherN, total int
}

// buildHistogram buckets every indexed line by m.histGranularity.
func (m Model) buildHistogram() []histBucket {
	if m.idx == nil || m.idx.Len() == 0 {
		return nil
	}
	buckets := make(map[int64]*histBucket)
	order := make([]int64, 0)

	for visual := 0; visual < m.idx.Len(); visual++ {
		content, ok := m.idx.At(visual)
		if !ok {
			continue
		}
		f, li, ok := m.idx.Find(content)
		if !ok {
			continue
		}
		line := f.Lines[li]
		key := line.Time.Truncate(m.histGranularity).UnixNano()
		b, exists := buckets[key]
		if !exists {
			b = &histBucket{begin: line.Time.Truncate(m.histGranularity)}
			buckets[key] = b
			order = append(order, key)
		}
		switch {
		case line.Level.Base() >= loglevel.Error:
			b.errorN++
		case line.Level.Base() == loglevel.Warning:
			b.warningN++
		case line.Level.Base() == loglevel.Info || line.Level.Base() == loglevel.Notice || line.Level.Base() == loglevel.Stats:
			b.infoN++
		default:
			b.otherN++
		}
		b.total++
	}

	sortInt64s(order)
	rows := make([]histBucket, 0, len(order))
	for _, k := range order {
		rows = append(rows, *buckets[k])
	}
	return rows
}

func sortInt64s(s []int64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// renderHistogramView draws a stacked-bar-per-bucket chart: the bucket
// timestamp, a bar whose error/warning/info/other segments are colored
// with the theme's danger, warning, info and muted text styles, and the
// bucket's total count.
func (m Model) renderHistogramView(height int) string {
	styles := m.theme.Styles()
	rows := m.buildHistogram()
	if len(rows) == 0 {
		return styles.MutedText.Render("no data to chart")
	}

	maxTotal := 1
	for _, r := range rows {
		if r.total > maxTotal {
			maxTotal = r.total
		}
	}

	barWidth := m.width - 28
	if barWidth < 10 {
		barWidth = 10
	}

	start := 0
	if len(rows) > height-1 {
		start = len(rows) - (height - 1)
	}
	if m.histCursor >= start+height-1 {
		start = m.histCursor - height + 2
	}
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for i := start; i < len(rows) && i < start+height; i++ {
		r := rows[i]
		label := r.begin.Format("01-02 15:04:05")

		segErr := scaleBar(r.errorN, r.total, barWidth)
		segWarn := scaleBar(r.warningN, r.total, barWidth)
		segInfo := scaleBar(r.infoN, r.total, barWidth)
		segOther := barWidth - segErr - segWarn - segInfo
		if segOther < 0 {
			segOther = 0
		}

		bar := styles.DangerText.Render(strings.Repeat("█", segErr)) +
			styles.WarningText.Render(strings.Repeat("█", segWarn)) +
			styles.InfoText.Render(strings.Repeat("█", segInfo)) +
			styles.MutedText.Render(strings.Repeat("░", segOther))

		line := fmt.Sprintf("%s %s %4d", label, bar, r.total)
		if i == m.histCursor {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func scaleBar(count, total, width int) int {
	if total == 0 {
		return 0
	}
	n := count * width / total
	if n == 0 && count > 0 {
		n = 1
	}
	return n
}

// handleHistogramKey handles zoom (+/- cycles spectro.ZoomLevels, shared
// with the spectrogram view's granularity) and bucket scrolling.
func (m Model) handleHistogramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "+", "=":
		m.histGranularity = nextZoom(m.histGranularity, 1)
		return m, nil
	case "-", "_":
		m.histGranularity = nextZoom(m.histGranularity, -1)
		return m, nil
	}
	switch {
	case keyMatches(msg, m.keys.Down):
		m.histCursor++
		return m, nil
	case keyMatches(msg, m.keys.Up):
		if m.histCursor > 0 {
			m.histCursor--
		}
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.histCursor = 0
		return m, nil
	}
	return m, nil
}

func nextZoom(current time.Duration, dir int) time.Duration {
	idx := 0
	for i, z := range spectro.ZoomLevels {
		if z == current {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(spectro.ZoomLevels) {
		idx = len(spectro.ZoomLevels) - 1
	}
	return spectro.ZoomLevels[idx]
}
