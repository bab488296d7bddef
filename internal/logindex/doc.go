// Package logindex merges the logical lines of N watched log files into a
// single time-ordered visual-line sequence, and layers bookmarks, a
// filter stack, and partitioning on top — the Go counterpart of lnav's
// logfile_sub_source.
package logindex
