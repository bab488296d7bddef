package timeline

import (
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// LevelStats tallies message severities contributed to an opid or sub-op,
// spec.md 3's level_stats triple.
type LevelStats struct {
	Total int
	Warn  int
	Error int
}

// Add folds o's counts into s.
func (s *LevelStats) Add(o LevelStats) {
	s.Total += o.Total
	s.Warn += o.Warn
	s.Error += o.Error
}

// TimeRange is an inclusive [Begin, End] span.
type TimeRange struct {
	Begin, End time.Time
}

// Union grows r to also cover o, leaving r unchanged when o is zero-valued.
func (r TimeRange) Union(o TimeRange) TimeRange {
	out := r
	if o.Begin.IsZero() {
		return out
	}
	if out.Begin.IsZero() || o.Begin.Before(out.Begin) {
		out.Begin = o.Begin
	}
	if out.End.IsZero() || o.End.After(out.End) {
		out.End = o.End
	}
	return out
}

// Contains reports whether r fully covers o, the containment invariant
// between an OperationRow's range and each of its sub_ops.
func (r TimeRange) Contains(o TimeRange) bool {
	return !o.Begin.Before(r.Begin) && !o.End.After(r.End)
}

// OpSubRange is one sub-operation nested under an opid, deduped by SubID
// across files, spec.md 3's OpSubRange.
type OpSubRange struct {
	SubID       string
	Range       TimeRange
	LevelStats  LevelStats
	Description string
}

// OperationRow is the unit the Gantt view renders, spec.md 3's opid_row.
//
// Invariant: Range.Begin <= every SubOps[i].Range.Begin, and
// Range.End >= every SubOps[i].Range.End.
type OperationRow struct {
	OpID       string
	Range      TimeRange
	LevelStats LevelStats
	SubOps     []*OpSubRange

	// DescriptionDefs holds format-supplied description templates keyed by
	// the format's own template id; Descriptions holds the resolved text,
	// keyed per contributing format so two formats describing the same
	// opid don't clobber each other.
	DescriptionDefs map[string]string
	Descriptions    map[string]string
}

// OpidEvent is one raw contribution to an opid's aggregate, extracted by
// the format engine (internal/logformat) from a single log message. The
// timeline package only consumes these; it does not parse log text itself.
type OpidEvent struct {
	OpID        string
	SubID       string // "" if this event carries no sub-operation
	Time        time.Time
	Level       loglevel.Level
	Description string
	DescKey     string // format name or other key Descriptions are merged under
}

// OpidSource extracts opid-tagged events from one file's indexed lines.
type OpidSource interface {
	OpidEvents() []OpidEvent
}
