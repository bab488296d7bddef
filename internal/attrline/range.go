package attrline

import "sort"

// Unit distinguishes whether a Range's offsets count bytes or codepoints.
type Unit int

const (
	UnitBytes Unit = iota
	UnitCodepoints
)

// OpenEnd is the sentinel End value meaning "to the end of the string".
const OpenEnd = -1

// Range is a half-open [Start, End) span within a StyledText's bytes.
// End == OpenEnd means the range extends to the end of whatever string it
// is applied against.
type Range struct {
	Start int
	End   int
	Unit  Unit
}

// EmptyAt returns a zero-length range at pos.
func EmptyAt(pos int) Range {
	return Range{Start: pos, End: pos}
}

// NewRange builds a [start, end) range; pass OpenEnd for an open range.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Valid reports whether the range has a usable start position.
func (r Range) Valid() bool {
	return r.Start >= 0
}

// Open reports whether the range extends to the end of its string.
func (r Range) Open() bool {
	return r.End == OpenEnd
}

// Length returns the range's length, or -1 (meaning "unbounded") when the
// range is open; callers that need a concrete length should use EndFor.
func (r Range) Length() int {
	if r.Open() {
		return -1
	}
	return r.End - r.Start
}

// Empty reports whether the range spans zero bytes.
func (r Range) Empty() bool {
	return !r.Open() && r.End == r.Start
}

// EndFor resolves an open end against the length of a concrete string.
func (r Range) EndFor(strLen int) int {
	if r.Open() {
		return strLen
	}
	return r.End
}

// Contains reports whether pos falls within the range.
func (r Range) Contains(pos int) bool {
	return r.Start <= pos && (r.Open() || pos < r.End)
}

// ContainsRange reports whether the range fully covers other.
func (r Range) ContainsRange(other Range) bool {
	if !r.Contains(other.Start) {
		return false
	}
	return r.Open() || (!other.Open() && other.End <= r.End)
}

// Intersects reports whether the two ranges overlap.
func (r Range) Intersects(other Range) bool {
	if r.Contains(other.Start) {
		return true
	}
	if other.End > 0 && r.Contains(other.End-1) {
		return true
	}
	return other.Contains(r.Start)
}

// Intersection returns the overlapping span of r and other. The result is
// invalid (Start == -1) when the ranges do not intersect.
func (r Range) Intersection(other Range) Range {
	if !r.Intersects(other) {
		return Range{Start: -1, End: -1}
	}
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	switch {
	case r.Open():
		end = other.End
	case other.Open():
		end = r.End
	default:
		if other.End < end {
			end = other.End
		}
	}
	return Range{Start: start, End: end, Unit: r.Unit}
}

// Shift advances (or retracts) this range's Start by amount when it is
// >= pos, and its End when it is > pos or the Start moved too, mirroring
// the insert/erase shift contract used by StyledText: a range that ends
// exactly at pos is left as it is.
func (r Range) Shift(pos int, amount int) Range {
	out := r
	if out.Start >= pos {
		out.Start += amount
		if out.Start < 0 {
			out.Start = 0
		}
	}
	if !out.Open() && (r.End > pos || r.Start >= pos) {
		out.End += amount
		if out.End < out.Start {
			out.End = out.Start
		}
	}
	return out
}

// ShiftCover applies Shift(cover.Start, amount) only when r lies entirely
// inside cover, reporting whether it did; otherwise r is returned
// unchanged.
func (r Range) ShiftCover(cover Range, amount int) (Range, bool) {
	if cover.ContainsRange(r) {
		return r.Shift(cover.Start, amount), true
	}
	return r, false
}

// Less implements the ordering from spec.md section 8: ascending by Start,
// then the longer (or open-ended) range sorts first at equal Start.
func (r Range) Less(rhs Range) bool {
	if r.Start != rhs.Start {
		return r.Start < rhs.Start
	}
	if r.End == rhs.End {
		return false
	}
	if rhs.Open() {
		return false
	}
	if r.Open() || r.End > rhs.End {
		return true
	}
	return false
}

// SortRanges sorts a slice of ranges in place per Less, stably so that
// equal-rank ranges keep their relative (insertion) order.
func SortRanges(ranges []Range) {
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].Less(ranges[j])
	})
}
