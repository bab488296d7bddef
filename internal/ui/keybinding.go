package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMatches reports whether msg satisfies binding, a thin wrapper over
// key.Matches so call sites in app.go/view handlers read as plain
// conditionals.
func keyMatches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}

// lipglossHeight returns the number of lines s occupies when rendered.
func lipglossHeight(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
