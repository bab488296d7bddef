// Package ui implements chronoview's terminal interface: a Bubble Tea
// Model driving five switchable views (log, histogram, timeline,
// spectrogram, SQL results) over the shared collaborators built by
// internal/logindex, internal/logwatch, internal/timeline,
// internal/spectro, internal/sqlengine, internal/command and
// internal/history.
//
// # Architecture
//
// Model holds one tea.Model for the whole application; View()
// dispatches to the active view's renderer, and Update() routes key
// presses first through global bindings (quit, help, theme cycling,
// view switching) and then to the active view's own handler. A
// background tick (tickCmd) drives periodic file-watcher rescans and
// log-index rebuilds so new log lines appear without user input.
//
// # Views
//
//   - Log: the merged, time-ordered line stream with search, filters,
//     and bookmark navigation (logview.go).
//   - Histogram: per-time-bucket level counts, derived on demand from
//     the log index (histogram.go).
//   - Timeline: the operation Gantt chart built by internal/timeline
//     (timelineview.go).
//   - Spectrogram: the numeric-field density plot built by
//     internal/spectro (spectroview.go).
//   - SQL: results from internal/sqlengine queries issued at the
//     command prompt (sqlview.go).
//
// # Command prompt
//
// A single-line prompt (prompt.go) accepts `:<verb> <args>` input,
// dispatched through internal/command.Dispatcher, and `;<sql>` input,
// run through internal/sqlengine; verbs.go registers the Handlers that
// operate on this package's Model collaborators.
package ui
