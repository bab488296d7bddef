package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chronoview/internal/attrline"
)

// roleStyle maps an attrline.Role to the lipgloss.Style it renders with
// under the active theme, the UI-side half of the highlighter/painter
// split: internal/highlight decides what a span means, this decides what
// color it gets.
func roleStyle(theme Theme, role attrline.Role) lipgloss.Style {
	switch role {
	case attrline.RoleString, attrline.RoleOK, attrline.RoleDiffAdd:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success))
	case attrline.RoleNumber, attrline.RoleInfo, attrline.RoleFunction:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info))
	case attrline.RoleError, attrline.RoleGarbage, attrline.RoleDiffDelete:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger)).Bold(true)
	case attrline.RoleWarning, attrline.RoleMedThreshold:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	case attrline.RoleHighThreshold:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger))
	case attrline.RoleLowThreshold:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success))
	case attrline.RoleSearch:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Background)).Background(lipgloss.Color(theme.Warning))
	case attrline.RoleKeyword, attrline.RoleCommand:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
	case attrline.RoleOperator, attrline.RoleParen, attrline.RoleSymbol, attrline.RoleTableBorder:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	case attrline.RoleComment, attrline.RoleFootnote:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)).Italic(true)
	case attrline.RoleVariable, attrline.RoleIdentifier:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	case attrline.RoleRegexSpecial, attrline.RoleRegexRepeat:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	case attrline.RoleHidden, attrline.RoleNull, attrline.RoleASCIICtrl:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	case attrline.RoleNonASCII:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	}
}

// renderAttrs paints text using the TypeRole attrs found in attrs, leaving
// unstyled runs in the theme's default text color. Attrs are assumed to
// come from a single highlighter pass (non-overlapping, byte-offset
// ranges); an attr whose start falls inside the previous one is dropped
// rather than corrupting the byte slicing.
func renderAttrs(text string, attrs attrline.Attrs, theme Theme) string {
	defaultStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	if len(attrs) == 0 {
		return defaultStyle.Render(text)
	}

	type span struct {
		start, end int
		role       attrline.Role
	}
	spans := make([]span, 0, len(attrs))
	for _, a := range attrs {
		if a.Type != attrline.TypeRole {
			continue
		}
		end := a.Range.EndFor(len(text))
		if a.Range.Start < 0 || end > len(text) || a.Range.Start >= end {
			continue
		}
		spans = append(spans, span{a.Range.Start, end, a.Value.RoleOf()})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.start < pos {
			continue
		}
		if s.start > pos {
			b.WriteString(defaultStyle.Render(text[pos:s.start]))
		}
		b.WriteString(roleStyle(theme, s.role).Render(text[s.start:s.end]))
		pos = s.end
	}
	if pos < len(text) {
		b.WriteString(defaultStyle.Render(text[pos:]))
	}
	return b.String()
}
