package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewLog         key.Binding
	ViewHistogram   key.Binding
	ViewTimeline    key.Binding
	ViewSpectrogram key.Binding
	ViewSQL         key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Log view actions
	ToggleFollow key.Binding
	Search       key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
	Mark         key.Binding
	NextMark     key.Binding
	PrevMark     key.Binding
	Pretty       key.Binding

	// Command prompt
	CommandPrompt key.Binding
	SQLPrompt     key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close prompt/overlay"),
		),

		// View switching, same digit-switches-view convention as lnav's
		// :switch-to-view.
		ViewLog: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Log view"),
		),
		ViewHistogram: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Histogram view"),
		),
		ViewTimeline: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Timeline view"),
		),
		ViewSpectrogram: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Spectrogram view"),
		),
		ViewSQL: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "SQL results view"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Log view actions
		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Toggle follow mode"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Previous match"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle bookmark"),
		),
		NextMark: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "Next bookmark"),
		),
		PrevMark: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "Previous bookmark"),
		),
		Pretty: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pretty-print/breadcrumb body"),
		),

		// Command prompt
		CommandPrompt: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Command prompt"),
		),
		SQLPrompt: key.NewBinding(
			key.WithKeys(";"),
			key.WithHelp(";", "SQL prompt"),
		),

		// Search/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Views
		{k.Tab, k.ViewLog, k.ViewHistogram, k.ViewTimeline, k.ViewSpectrogram, k.ViewSQL},
		// Navigation
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageUp, k.HalfPageDown},
		// Log view
		{k.ToggleFollow, k.Search, k.NextMatch, k.PrevMatch},
		// Bookmarks
		{k.Mark, k.NextMark, k.PrevMark},
		// Commands
		{k.CommandPrompt, k.SQLPrompt},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
