package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/spectro"
)

// setSpectroField switches the spectrogram's numeric field, rebuilding the
// engine over a fresh fieldValueSource — the `:spectrogram <field>` verb's
// effect.
func (m *Model) setSpectroField(field string) {
	m.spectroField = field
	m.spectroEngine = spectro.NewEngine(newFieldValueSource(m.idx, field), m.histGranularity)
	m.spectroRowOffset = 0
}

// renderSpectrogramView draws the overlay label row followed by one grid
// row per time bucket, each column painted by its PaintRoles role.
func (m Model) renderSpectrogramView(height int) string {
	styles := m.theme.Styles()
	if m.spectroField == "" {
		return styles.MutedText.Render("no field selected (use :spectrogram <field>)")
	}
	if m.spectroEngine == nil {
		return styles.MutedText.Render("spectrogram not initialized")
	}

	lineCount := m.spectroEngine.LineCount()
	if lineCount == 0 {
		return styles.MutedText.Render(fmt.Sprintf("no numeric values found for field %q", m.spectroField))
	}

	width := m.width - 16
	if width < 10 {
		width = 10
	}

	overlay := m.spectroEngine.BuildOverlay()
	var b strings.Builder
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("%-16s", "")))
	b.WriteString(styles.MutedText.Render(overlay.MinLabel))
	b.WriteString("  ")
	b.WriteString(styles.InfoText.Render(overlay.LowLabel))
	b.WriteString("  ")
	b.WriteString(styles.WarningText.Render(overlay.MedLabel))
	b.WriteString("  ")
	b.WriteString(styles.DangerText.Render(overlay.HighLabel))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(overlay.MaxLabel))

	gridHeight := height - 1
	if gridHeight < 1 {
		gridHeight = 1
	}

	start := m.spectroRowOffset
	if start > lineCount-1 {
		start = lineCount - 1
	}
	if start < 0 {
		start = 0
	}

	for row := start; row < lineCount && row < start+gridHeight; row++ {
		b.WriteString("\n")
		t := m.spectroEngine.TimeForRow(row)
		label := styles.FaintText.Render(fmt.Sprintf("%-16s", t.Format("01-02 15:04:05")))

		r := m.spectroEngine.LoadRow(row, width)
		roles := m.spectroEngine.PaintRoles(r)

		var line strings.Builder
		for col, role := range roles {
			ch := "."
			style := styles.MutedText
			switch role {
			case spectro.RoleLow:
				ch = "▁"
				style = styles.InfoText
			case spectro.RoleMed:
				ch = "▄"
				style = styles.WarningText
			case spectro.RoleHigh:
				ch = "█"
				style = styles.DangerText
			}
			if r.Buckets[col].Marked {
				style = styles.AccentText.Bold(true)
			}
			if row == m.spectroEngine.CursorTop && col == m.spectroEngine.CursorColumn {
				style = styles.Selected
			}
			line.WriteString(style.Render(ch))
		}
		b.WriteString(label)
		b.WriteString(line.String())
	}

	return b.String()
}

// handleSpectrogramKey handles cursor movement (wrapping across non-zero
// columns per Engine.MoveCursor), marking the cursor's column, row
// scrolling, and granularity zoom shared with the histogram view.
func (m Model) handleSpectrogramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.spectroEngine == nil {
		return m, nil
	}
	switch msg.String() {
	case "+", "=":
		m.histGranularity = nextZoom(m.histGranularity, 1)
		m.setSpectroField(m.spectroField)
		return m, nil
	case "-", "_":
		m.histGranularity = nextZoom(m.histGranularity, -1)
		m.setSpectroField(m.spectroField)
		return m, nil
	}

	width := m.width - 16
	if width < 10 {
		width = 10
	}
	row := m.spectroEngine.LoadRow(m.spectroEngine.CursorTop, width)

	switch {
	case keyMatches(msg, m.keys.Right):
		m.spectroEngine.MoveCursor(row, spectro.Right)
		return m, nil
	case keyMatches(msg, m.keys.Left):
		m.spectroEngine.MoveCursor(row, spectro.Left)
		return m, nil
	case keyMatches(msg, m.keys.Down):
		m.spectroEngine.CursorTop++
		m.spectroRowOffset++
		return m, nil
	case keyMatches(msg, m.keys.Up):
		if m.spectroEngine.CursorTop > 0 {
			m.spectroEngine.CursorTop--
		}
		if m.spectroRowOffset > 0 {
			m.spectroRowOffset--
		}
		return m, nil
	case keyMatches(msg, m.keys.Top):
		m.spectroEngine.CursorTop = 0
		m.spectroRowOffset = 0
		return m, nil
	case keyMatches(msg, m.keys.ToggleFollow):
		m.spectroEngine.Mark(m.spectroEngine.CursorTop)
		return m, nil
	}
	return m, nil
}
