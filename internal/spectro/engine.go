package spectro

import "time"

// Engine is the spectrogram's per-frame state machine: cached bounds and
// thresholds, a per-row-time bucket cache, and cursor position, matching
// spectro_source's cache_bounds/load_row/cursor responsibilities.
type Engine struct {
	Source      ValueSource
	Granularity time.Duration

	cachedBounds     Bounds
	cachedThresholds Thresholds
	lineCount        int

	rowCache map[time.Time]Row

	CursorTop    int
	CursorColumn int // -1 means no cursor position
}

// NewEngine constructs an Engine over src at the given granularity,
// defaulting to DefaultZoomLevel's duration when granularity is zero.
func NewEngine(src ValueSource, granularity time.Duration) *Engine {
	if granularity <= 0 {
		granularity = ZoomLevels[DefaultZoomLevel]
	}
	return &Engine{
		Source:       src,
		Granularity:  granularity,
		rowCache:     make(map[time.Time]Row),
		CursorColumn: -1,
	}
}

// cacheBounds refreshes cachedBounds/cachedThresholds/lineCount from the
// source, but only recomputes thresholds when the sample count actually
// changed, per spec.md 4.7 step 2 ("cached thresholds ... derived from
// per-row sample count").
func (e *Engine) cacheBounds() {
	if e.Source == nil {
		e.cachedBounds = Bounds{}
		e.lineCount = 0
		return
	}
	b := e.Source.Bounds()
	if b.Count == e.cachedBounds.Count && e.lineCount > 0 {
		return
	}
	e.cachedBounds = b
	if b.Count == 0 {
		e.lineCount = 0
		return
	}

	grainBegin := rounddown(b.BeginTime, e.Granularity)
	grainEnd := roundup(b.EndTime, e.Granularity)
	diff := grainEnd.Sub(grainBegin)
	if diff <= 0 {
		diff = e.Granularity
	}
	e.lineCount = int((diff + e.Granularity - 1) / e.Granularity)

	samplesPerRow := b.Count / int64(e.lineCount)
	yellow := samplesPerRow / 2
	green := yellow / 2
	if green <= 1 {
		green = 2
	}
	if yellow <= green {
		yellow = green + 1
	}
	e.cachedThresholds = Thresholds{Green: green, Yellow: yellow}
}

// LineCount is the number of time-bucket rows in the grid.
func (e *Engine) LineCount() int {
	e.cacheBounds()
	return e.lineCount
}

// Thresholds returns the current green/yellow cutoffs.
func (e *Engine) Thresholds() Thresholds {
	e.cacheBounds()
	return e.cachedThresholds
}

// Bounds returns the currently cached bounds.
func (e *Engine) Bounds() Bounds {
	e.cacheBounds()
	return e.cachedBounds
}

// TimeForRow returns the begin time of row's bucket, spec.md 4.7 step 1's
// `rounddown(bounds.begin, granularity) + row*granularity`.
func (e *Engine) TimeForRow(row int) time.Time {
	e.cacheBounds()
	base := rounddown(e.cachedBounds.BeginTime, e.Granularity)
	return base.Add(time.Duration(row) * e.Granularity)
}

// RowForTime inverts TimeForRow: the row whose bucket contains t.
func (e *Engine) RowForTime(t time.Time) int {
	e.cacheBounds()
	base := rounddown(e.cachedBounds.BeginTime, e.Granularity)
	if t.Before(base) {
		return 0
	}
	return int(t.Sub(base) / e.Granularity)
}

// LoadRow fetches (and caches) the bucket row for the given row index at
// the given grid width, requesting a fresh row from the source whenever
// the width or column size differs from what's cached, per spec.md 4.7
// step 3.
func (e *Engine) LoadRow(row int, width int) Row {
	e.cacheBounds()
	if width < 2 {
		width = 2
	}
	rowTime := e.TimeForRow(row)
	columnSize := (e.cachedBounds.MaxValue - e.cachedBounds.MinValue) / float64(width-1)

	if cached, ok := e.rowCache[rowTime]; ok && cached.Width == width && cached.ColumnSize == columnSize {
		return cached
	}

	req := Request{
		BeginTime:  rowTime,
		EndTime:    rowTime.Add(e.Granularity),
		Width:      width,
		ColumnSize: columnSize,
	}
	r := e.Source.Row(req)
	r.Width = width
	r.ColumnSize = columnSize
	e.rowCache[rowTime] = r
	return r
}

// PaintRoles derives the per-column paint role from a row's counters,
// spec.md 4.7 step 4: zero is blank, otherwise low/med/high by the cached
// thresholds.
func (e *Engine) PaintRoles(r Row) []Role {
	th := e.Thresholds()
	roles := make([]Role, len(r.Buckets))
	for i, b := range r.Buckets {
		switch {
		case b.Counter == 0:
			roles[i] = RoleBlank
		case b.Counter < th.Green:
			roles[i] = RoleLow
		case b.Counter < th.Yellow:
			roles[i] = RoleMed
		default:
			roles[i] = RoleHigh
		}
	}
	return roles
}

// NonZeroColumns returns the column indices the cursor may land on, the
// "paint attribute stream" spec.md 4.7's cursor interaction navigates.
func NonZeroColumns(r Row) []int {
	var cols []int
	for i, b := range r.Buckets {
		if b.Counter != 0 {
			cols = append(cols, i)
		}
	}
	return cols
}
