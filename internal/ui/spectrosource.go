package ui

import (
	"strconv"
	"time"

	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/spectro"
)

// fieldValueSource is a spectro.ValueSource that buckets a numeric field
// scraped out of each indexed line's raw text, the `:spectrogram <field>`
// verb's backing store. It scans for "<field>=<number>" (the logfmt-style
// convention the rest of the log-line formats already use for key/value
// pairs) and feeds every match's value and line time into the grid.
type fieldValueSource struct {
	idx   *logindex.Index
	field string

	marks []fieldMark
}

type fieldMark struct {
	begin, end     time.Time
	vmin, vmax     float64
}

func newFieldValueSource(idx *logindex.Index, field string) *fieldValueSource {
	return &fieldValueSource{idx: idx, field: field}
}

// Bounds scans every visual line once, extracting field's value and
// tracking the overall min/max/time extent, per spec.md 4.7's "bounds"
// tuple.
func (s *fieldValueSource) Bounds() spectro.Bounds {
	var b spectro.Bounds
	first := true
	for visual := 0; visual < s.idx.Len(); visual++ {
		v, t, ok := s.lineValue(visual)
		if !ok {
			continue
		}
		if first {
			b.MinValue, b.MaxValue = v, v
			b.BeginTime, b.EndTime = t, t
			first = false
		} else {
			if v < b.MinValue {
				b.MinValue = v
			}
			if v > b.MaxValue {
				b.MaxValue = v
			}
			if t.Before(b.BeginTime) {
				b.BeginTime = t
			}
			if t.After(b.EndTime) {
				b.EndTime = t
			}
		}
		b.Count++
	}
	return b
}

// Row buckets every matching line within [req.BeginTime, req.EndTime) into
// req.Width value columns of size req.ColumnSize, per spec.md 4.7 step 3.
func (s *fieldValueSource) Row(req spectro.Request) spectro.Row {
	row := spectro.Row{
		Width:      req.Width,
		ColumnSize: req.ColumnSize,
		Buckets:    make([]spectro.RowBucket, req.Width),
	}

	bounds := s.Bounds()
	start, ok := s.idx.FindFromTime(req.BeginTime)
	if !ok {
		return row
	}
	for visual := start; visual < s.idx.Len(); visual++ {
		v, t, ok := s.lineValue(visual)
		if !ok {
			continue
		}
		if !t.Before(req.EndTime) {
			break
		}
		col := columnForValue(v, bounds.MinValue, req.ColumnSize, req.Width)
		row.Buckets[col].Counter++
		for _, m := range s.marks {
			if lineInMark(t, v, m) {
				row.Buckets[col].Marked = true
			}
		}
	}
	return row
}

// Mark records a rectangular mark region; Row consults it on every future
// call so marked columns stay marked across re-renders.
func (s *fieldValueSource) Mark(beginTime, endTime time.Time, vmin, vmax float64) {
	s.marks = append(s.marks, fieldMark{begin: beginTime, end: endTime, vmin: vmin, vmax: vmax})
}

func lineInMark(t time.Time, v float64, m fieldMark) bool {
	if t.Before(m.begin) || t.After(m.end) {
		return false
	}
	return v >= m.vmin && v <= m.vmax
}

func columnForValue(v, min float64, columnSize float64, width int) int {
	if columnSize <= 0 {
		return 0
	}
	col := int((v - min) / columnSize)
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

// lineValue resolves a visual line to its field value and time, or
// !ok when the line has no matching "field=value" token.
func (s *fieldValueSource) lineValue(visual int) (float64, time.Time, bool) {
	content, ok := s.idx.At(visual)
	if !ok {
		return 0, time.Time{}, false
	}
	f, li, ok := s.idx.Find(content)
	if !ok {
		return 0, time.Time{}, false
	}
	raw, err := f.ReadLineRaw(li)
	if err != nil {
		return 0, time.Time{}, false
	}
	v, ok := extractField(raw, s.field)
	if !ok {
		return 0, time.Time{}, false
	}
	return v, f.Lines[li].Time, true
}

// extractField finds "field=<number>" in raw and parses the number.
func extractField(raw, field string) (float64, bool) {
	needle := field + "="
	idx := -1
	for i := 0; i+len(needle) <= len(raw); i++ {
		if raw[i:i+len(needle)] == needle {
			idx = i + len(needle)
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	end := idx
	for end < len(raw) {
		c := raw[end]
		if c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			end++
			continue
		}
		break
	}
	if end == idx {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw[idx:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
