package spectro

// Direction is the cursor move requested by the left/right keys.
type Direction int

const (
	Left Direction = iota
	Right
)

// MoveCursor advances CursorColumn to the next/previous non-zero column in
// row, wrapping around the ends the way spectro_source's KEY_LEFT/KEY_RIGHT
// handling does: stepping past one end wraps to the other.
func (e *Engine) MoveCursor(row Row, dir Direction) {
	cols := NonZeroColumns(row)
	if len(cols) == 0 {
		e.CursorColumn = -1
		return
	}

	pos := -1
	for i, c := range cols {
		if c == e.CursorColumn {
			pos = i
			break
		}
	}

	switch dir {
	case Left:
		if pos <= 0 {
			pos = len(cols) - 1
		} else {
			pos--
		}
	case Right:
		if pos < 0 || pos >= len(cols)-1 {
			pos = 0
		} else {
			pos++
		}
	}
	e.CursorColumn = cols[pos]
}

// Mark paints the current cursor's column as marked: it computes the
// column's value range from the active row's column size, calls
// Source.Mark, and invalidates the row cache so the next paint reflects
// the new mark, per spec.md 4.7 "Cursor interaction".
func (e *Engine) Mark(row int) bool {
	if e.CursorTop != row || e.CursorColumn < 0 || e.Source == nil {
		return false
	}
	begin := e.TimeForRow(row)
	r, ok := e.rowCache[begin]
	if !ok || r.Width < 2 {
		return false
	}
	vmin := e.cachedBounds.MinValue + float64(e.CursorColumn)*r.ColumnSize
	vmax := vmin + r.ColumnSize + r.ColumnSize*0.01

	end := begin.Add(e.Granularity)
	e.Source.Mark(begin, end, vmin, vmax)
	delete(e.rowCache, begin)
	return true
}
