// Package logformat is the pluggable line-format engine: a small registry
// of built-in formats (syslog, a generic ISO-8601-prefixed format,
// logfmt, JSON Lines) that each know how to pull a timestamp, level, and
// opid/subid out of one raw line, a confidence-scored auto-detector that
// picks the best format for a sample of lines, and a logindex.LineParser
// adapter so internal/logindex never needs to know a format exists.
// Format-script discovery (loading user-authored format definitions from
// disk) is out of scope, per SPEC_FULL.md 5's Non-goals.
package logformat
