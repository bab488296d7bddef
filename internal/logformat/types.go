package logformat

import (
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// ParsedLine is one raw line's extracted fields: enough for
// internal/logindex's merged view (Time, Level, continuation) and enough
// for internal/timeline's opid aggregation (OpID, SubID, Desc).
type ParsedLine struct {
	Time      time.Time
	Level     loglevel.Level
	OpID      string
	SubID     string
	Desc      string
	Continued bool
}

// Format is one line-format definition: a name, a parser, and a
// confidence scorer used to auto-detect which format a file is in.
type Format interface {
	Name() string
	ParseLine(raw string) (ParsedLine, bool)
	// Score returns the fraction of non-empty sample lines this format's
	// timestamp recognizer matches, in [0,1].
	Score(sample []string) float64
}
