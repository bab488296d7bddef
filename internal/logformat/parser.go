package logformat

import (
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// Parser adapts a Format to internal/logindex.LineParser, so the log index
// never needs to know a format registry exists. Lines the format can't
// parse are reported as a continuation of the previous line, matching
// lnav's "unparseable line is a continuation" convention for wrapped
// stack traces and multi-line messages.
type Parser struct {
	Format Format
}

// NewParser returns a Parser bound to f. A nil f makes every line a
// continuation, which is only useful for files opened before a format has
// been detected.
func NewParser(f Format) *Parser {
	return &Parser{Format: f}
}

func (p *Parser) Parse(raw string) (time.Time, loglevel.Level, string, bool) {
	if p.Format == nil {
		return time.Time{}, loglevel.Info, "", true
	}
	pl, ok := p.Format.ParseLine(raw)
	if !ok {
		return time.Time{}, loglevel.Info, "", true
	}
	return pl.Time, pl.Level, pl.OpID, false
}

// DetectParser samples raw lines from a file, picks the best-scoring
// built-in format, and returns a bound Parser plus the format it chose so
// callers can surface the detected format name to the user. Falls back to
// the generic format if nothing scores above zero, since most structured
// logs are at least loosely ISO-8601-prefixed.
func DetectParser(sample []string) (*Parser, Format) {
	formats := AllBuiltins()
	best, ok := Detect(sample, formats)
	if !ok {
		best = formats[0]
	}
	return NewParser(best), best
}
