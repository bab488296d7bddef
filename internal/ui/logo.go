package ui

import "github.com/charmbracelet/lipgloss"

// createLogo returns a compact, single-line wordmark to keep the header short.
func createLogo(theme Theme) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Bold(true).
		Render("chronoview")
}
