package ui

import (
	"fmt"
	"strings"

	"github.com/five82/chronoview/internal/logindex"
)

// compactWidthThreshold is the terminal width below which the header and
// command bar switch to abbreviated labels.
const compactWidthThreshold = 100

// renderHeader renders the status bar: logo, active view, line/error/
// warning counts, open-file error indicator, and the last rebuild time.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < compactWidthThreshold

	var parts []string
	parts = append(parts, bg.Render(createLogo(m.theme), styles.Text))
	parts = append(parts, bg.Render(strings.ToUpper(m.currentView.String()), styles.AccentText.Bold(true)))

	if m.idx != nil {
		parts = append(parts,
			bg.Render("Lines:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.idx.Len()), styles.Text))

		if errs := m.bookmarkCount(logindex.BMErrors); errs > 0 {
			parts = append(parts,
				bg.Render("Errors:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", errs), styles.DangerText.Bold(true)))
		}
		if warns := m.bookmarkCount(logindex.BMWarnings); warns > 0 {
			parts = append(parts,
				bg.Render("Warnings:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", warns), styles.WarningText))
		}
	}

	if m.currentView == ViewLog {
		followLabel := "PAUSED"
		followStyle := styles.WarningText
		if m.logFollow {
			followLabel = "FOLLOW"
			followStyle = styles.SuccessText
		}
		parts = append(parts, bg.Render(followLabel, followStyle))
	}

	if n := len(m.watchErrors); n > 0 {
		label := "file error"
		if n > 1 {
			label = "file errors"
		}
		parts = append(parts,
			bg.Render(fmt.Sprintf("%d %s", n, label), styles.DangerText.Bold(true)))
	}

	if !compact && !m.lastRebuild.IsZero() {
		parts = append(parts, bg.Render(m.lastRebuild.Format("15:04:05"), styles.FaintText))
	}

	if m.statusMsg != "" {
		style := styles.InfoText
		if m.statusIsErr {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(m.statusMsg, style))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, bg.Spaces(2)))
}

// bookmarkCount returns the number of bookmarks of kind kind, or 0 if the
// index hasn't populated that bookmark set yet.
func (m Model) bookmarkCount(kind logindex.BookmarkType) int {
	if m.idx == nil || m.idx.Bookmarks == nil {
		return 0
	}
	set := m.idx.Bookmarks[kind]
	if set == nil {
		return 0
	}
	return set.Len()
}

// renderCommandBar renders the prompt line when a prompt is active, or the
// per-view key hint bar otherwise.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.prompt.active {
		return m.renderPromptBar(styles, bg)
	}

	type hint struct{ key, desc string }
	var hints []hint

	switch m.currentView {
	case ViewLog:
		hints = []hint{
			{"space", "follow"},
			{"/", "search"},
			{"n/N", "next/prev"},
			{"m", "mark"},
			{"{/}", "prev/next mark"},
			{"p", "expand body"},
		}
	case ViewHistogram:
		hints = []hint{
			{"+/-", "zoom"},
			{"j/k", "scroll"},
		}
	case ViewTimeline:
		hints = []hint{
			{"j/k", "select op"},
			{"enter", "rebuild"},
		}
	case ViewSpectrogram:
		hints = []hint{
			{"h/l", "move column"},
			{"space", "mark"},
			{":spectrogram", "set field"},
		}
	case ViewSQL:
		hints = []hint{
			{";", "query"},
			{"j/k", "scroll rows"},
		}
	}
	hints = append(hints, hint{"tab", "next view"}, hint{":", "command"}, hint{"?", "help"})

	colon := bg.Sep(":")
	sep := bg.Spaces(2)
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments,
			bg.Render(h.key, styles.AccentText)+colon+bg.Render(h.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, sep))
}

// renderPromptBar renders the active `:`/`;` prompt line, its sigil
// followed by the textinput.Model's own view.
func (m Model) renderPromptBar(styles Styles, bg BgStyle) string {
	sigil := string(m.prompt.kind)
	line := bg.Render(sigil, styles.AccentText.Bold(true)) + m.prompt.input.View()
	bar := styles.Footer.Width(m.width).Render(line)
	if m.prompt.popup == nil {
		return bar
	}
	var rows []string
	for _, item := range m.prompt.popup.Window() {
		style := styles.MutedText
		if sel, ok := m.prompt.popup.Selected(); ok && sel == item {
			style = styles.Selected
		}
		rows = append(rows, style.Render(item.Display))
	}
	return bar + "\n" + strings.Join(rows, "\n")
}
