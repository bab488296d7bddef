package command

// Builtins returns the HelpText for every verb spec.md §6 names as part of
// the stable command surface, plus SPEC_FULL.md §4's supplemented
// `:adjust-log-time`. Each entry carries name/summary/parameters/examples
// only — no Handler — since wiring a verb to the log engine, watcher, and
// SQL engine collaborators happens where those collaborators are
// assembled; this registry is the help/completion source of truth and the
// arity-checked shape every real Handler must match.
func Builtins() []HelpText {
	return []HelpText{
		// Navigation
		Command(":goto", "Move to a line number, percentage, or timestamp").
			WithParameters(Param("line|pct|time", "The destination").WithFormat(FormatString)),
		Command(":relative-goto", "Move a relative number of lines").
			WithParameters(Param("offset", "Lines to move, positive or negative").WithFormat(FormatInteger)),
		Command(":next-mark", "Move to the next bookmark of a kind").
			WithParameters(Param("kind", "Bookmark kind").WithFormat(FormatEnum)),
		Command(":prev-mark", "Move to the previous bookmark of a kind").
			WithParameters(Param("kind", "Bookmark kind").WithFormat(FormatEnum)),
		Command(":next-location", "Move to the next location in the navigation history"),
		Command(":prev-location", "Move to the previous location in the navigation history"),
		Command(":switch-to-view", "Switch the active view").
			WithParameters(Param("view", "View name").WithFormat(FormatEnum)),
		Command(":toggle-view", "Toggle a view on or off").
			WithParameters(Param("view", "View name").WithFormat(FormatEnum)),

		// Bookmarks
		Command(":mark", "Toggle a user bookmark on the top line"),
		Command(":mark-expr", "Mark every line matching a SQL expression").
			WithParameters(Param("sql-expr", "SQL boolean expression").WithFormat(FormatString)),
		Command(":clear-mark-expr", "Clear the mark expression"),

		// Filters
		Command(":filter-in", "Show only lines matching a pattern").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)).
			WithOpposites("filter-out"),
		Command(":filter-out", "Hide lines matching a pattern").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)).
			WithOpposites("filter-in"),
		Command(":delete-filter", "Remove a filter").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)),
		Command(":enable-filter", "Re-enable a disabled filter").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)).
			WithOpposites("disable-filter"),
		Command(":disable-filter", "Disable a filter without deleting it").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)).
			WithOpposites("enable-filter"),
		Command(":filter-expr", "Set a SQL filter expression").
			WithParameters(Param("sql-expr", "SQL boolean expression").WithFormat(FormatString)),
		Command(":clear-filter-expr", "Clear the filter expression"),
		Command(":toggle-filtering", "Toggle whether filters are applied"),

		// Hide/show
		Command(":hide-fields", "Hide named fields").
			WithParameters(Param("names", "Field names").OneOrMore()).
			WithOpposites("show-fields"),
		Command(":show-fields", "Show named fields").
			WithParameters(Param("names", "Field names").OneOrMore()).
			WithOpposites("hide-fields"),
		Command(":hide-lines-before", "Hide lines before a timestamp").
			WithParameters(Param("time", "Timestamp").WithFormat(FormatDatetime)),
		Command(":hide-lines-after", "Hide lines after a timestamp").
			WithParameters(Param("time", "Timestamp").WithFormat(FormatDatetime)),
		Command(":show-lines-before-and-after", "Clear the hide-lines-before/after cutoffs"),
		Command(":hide-unmarked-lines", "Hide every line without a bookmark").
			WithOpposites("show-unmarked-lines"),
		Command(":show-unmarked-lines", "Show every line regardless of bookmarks").
			WithOpposites("hide-unmarked-lines"),
		Command(":hide-file", "Hide one or more open files").
			WithParameters(Param("path", "File path").ZeroOrMore()).
			WithOpposites("show-file"),
		Command(":show-file", "Show one or more hidden files").
			WithParameters(Param("path", "File path").ZeroOrMore()).
			WithOpposites("hide-file"),
		Command(":show-only-this-file", "Hide every file except the current one"),

		// Highlight
		Command(":highlight", "Highlight lines matching a pattern").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)).
			WithOpposites("clear-highlight"),
		Command(":clear-highlight", "Remove a highlight").
			WithParameters(Param("re", "Regular expression").WithFormat(FormatRegex)).
			WithOpposites("highlight"),

		// Annotations
		Command(":comment", "Attach a comment to the top line").
			WithParameters(Param("text", "Comment text").WithFormat(FormatString)).
			WithOpposites("clear-comment"),
		Command(":clear-comment", "Remove the top line's comment").
			WithOpposites("comment"),
		Command(":tag", "Attach tags to the top line").
			WithParameters(Param("tags", "#tag names").OneOrMore()).
			WithOpposites("untag"),
		Command(":untag", "Remove tags from the top line").
			WithParameters(Param("tags", "#tag names").OneOrMore()).
			WithOpposites("tag"),
		Command(":delete-tags", "Delete tags across all lines").
			WithParameters(Param("tags", "#tag names").OneOrMore()),
		Command(":partition-name", "Name a partition starting at the top line").
			WithParameters(Param("text", "Partition name").WithFormat(FormatString)).
			WithOpposites("clear-partition"),
		Command(":clear-partition", "Remove the top line's partition name").
			WithOpposites("partition-name"),

		// I/O
		Command(":open", "Open files, a URL, or a glob").
			WithParameters(Param("path|url|glob", "Source to open").OneOrMore()).
			WithOpposites("close"),
		Command(":close", "Close the current file").
			WithOpposites("open"),
		Command(":append-to", "Append the current view to a file").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-to", "Write the current view to a file, replacing it").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-csv-to", "Write the current view as CSV").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-json-to", "Write the current view as JSON").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-jsonlines-to", "Write the current view as JSON Lines").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-table-to", "Write the current view as a box-drawn table").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-raw-to", "Write the raw bytes of a view to a file").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-view-to", "Write the rendered view (with styling) to a file").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":write-screen-to", "Write the current screen contents to a file").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),
		Command(":pipe-to", "Pipe the current view to a shell command").
			WithParameters(Param("shell", "Shell command").WithFormat(FormatString)),
		Command(":pipe-line-to", "Pipe the top line to a shell command").
			WithParameters(Param("shell", "Shell command").WithFormat(FormatString)),
		Command(":redirect-to", "Redirect command output to a file").
			WithParameters(Param("path", "Destination path").Optional()),
		Command(":echo", "Print a message to the status bar").
			WithParameters(Param("msg", "Message text").OneOrMore()),

		// Config/session
		Command(":config", "Get or set a configuration option").
			WithParameters(
				Param("path", "Dotted config path").WithFormat(FormatString),
				Param("value", "New value").Optional(),
			),
		Command(":reset-config", "Reset a configuration option to its default").
			WithParameters(Param("path", "Dotted config path").WithFormat(FormatString)),
		Command(":reset-session", "Clear all session state"),
		Command(":load-session", "Load the saved session"),
		Command(":save-session", "Save the current session"),
		Command(":export-session-to", "Export the session as a script").
			WithParameters(Param("path", "Destination path").WithFormat(FormatString)),

		// Engine hooks
		Command(":set-min-log-level", "Set the minimum visible log level").
			WithParameters(Param("level", "Log level").WithFormat(FormatEnum)),
		Command(":zoom-to", "Set the spectrogram zoom granularity").
			WithParameters(Param("level", "Granularity, e.g. \"1m\"").WithFormat(FormatString)),
		Command(":spectrogram", "Show a spectrogram of a numeric field").
			WithParameters(Param("field", "Field name").WithFormat(FormatString)),
		Command(":rebuild", "Force a full log index rebuild"),
		Command(":eval", "Evaluate a line as if it were typed at the prompt").
			WithParameters(Param("line", "Line to evaluate").WithFormat(FormatString)),
		Command(":quit", "Exit the program"),

		// Supplemented (original_source, dropped by the distillation; see
		// SPEC_FULL.md §4).
		Command(":adjust-log-time", "Shift a file's timestamps by an offset to the given time").
			WithParameters(Param("time", "The new timestamp for the top line").WithFormat(FormatDatetime)).
			WithExamples(Example{
				Command: ":adjust-log-time 2017-01-02T05:33:00",
				Result:  "shifts the file's time offset by +180s if the top line read 05:30:00",
			}),
	}
}
