package docsections

import "sort"

// SectionInterval is a half-open byte range tagged with the section key it
// identifies, lnav's section_interval_t.
type SectionInterval struct {
	Start, Stop int
	Key         SectionKey
}

// SectionType marks a byte range as a comment or a multiline string, so the
// navigator can skip over it when moving by structural unit.
type SectionType int

const (
	TypeComment SectionType = iota
	TypeMultilineString
)

// TypeInterval is one section-types_tree entry.
type TypeInterval struct {
	Start, Stop int
	Type        SectionType
}

// IntervalTree is a minimal interval index: intervals kept sorted by start,
// queried by a bounded linear scan. A document's section tree is built once
// per buffer of modest size (a single log line, JSON blob, or man page), so
// this trades an augmented-tree's O(log n + k) for a structure with no
// external dependency and no rebalancing logic.
type IntervalTree struct {
	intervals []SectionInterval
	sorted    bool
}

// Insert adds a [start, stop) section interval. stop < 0 means open/to-end.
func (t *IntervalTree) Insert(start, stop int, key SectionKey) {
	t.intervals = append(t.intervals, SectionInterval{Start: start, Stop: stop, Key: key})
	t.sorted = false
}

func (t *IntervalTree) ensureSorted() {
	if t.sorted {
		return
	}
	sort.Slice(t.intervals, func(i, j int) bool { return t.intervals[i].Start < t.intervals[j].Start })
	t.sorted = true
}

// Containing returns every interval that contains point, in ascending
// start order.
func (t *IntervalTree) Containing(point int) []SectionInterval {
	t.ensureSorted()
	var out []SectionInterval
	for _, iv := range t.intervals {
		if iv.Start > point {
			break
		}
		if point < iv.Stop || iv.Stop < 0 {
			out = append(out, iv)
		}
	}
	return out
}

// Deepest returns the containing interval for [start,stop) with the latest
// start offset — the most specific/nested match — or false if none contain
// the whole range.
func (t *IntervalTree) Deepest(start, stop int) (SectionInterval, bool) {
	t.ensureSorted()
	var best SectionInterval
	found := false
	for _, iv := range t.intervals {
		if iv.Start > start {
			break
		}
		if iv.Start <= start && (iv.Stop < 0 || stop <= iv.Stop) {
			if !found || iv.Start > best.Start {
				best, found = iv, true
			}
		}
	}
	return best, found
}

// All returns every interval, ascending by start.
func (t *IntervalTree) All() []SectionInterval {
	t.ensureSorted()
	return t.intervals
}

// TypeIntervalTree indexes comment/multiline-string ranges.
type TypeIntervalTree struct {
	intervals []TypeInterval
}

func (t *TypeIntervalTree) Insert(start, stop int, typ SectionType) {
	t.intervals = append(t.intervals, TypeInterval{Start: start, Stop: stop, Type: typ})
}

// Containing returns the first interval (in insertion order) containing
// point.
func (t *TypeIntervalTree) Containing(point int) (TypeInterval, bool) {
	for _, iv := range t.intervals {
		if point >= iv.Start && (point < iv.Stop || iv.Stop < 0) {
			return iv, true
		}
	}
	return TypeInterval{}, false
}

func (t *TypeIntervalTree) All() []TypeInterval { return t.intervals }
