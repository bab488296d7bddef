package timeline

import "time"

// maxOpIDColumnWidth caps the opid column so one abnormally long opid
// doesn't push the Gantt bars for every other row off screen.
const maxOpIDColumnWidth = 60

// Bounds is the global time extent and column widths a Gantt renderer
// needs, recomputed whenever the row set changes (spec.md 4.6 build step 4).
type Bounds struct {
	Min, Max  time.Time
	OpIDWidth int
	DescWidth int
}

// ComputeBounds derives Bounds from a built, already-filtered row set.
func ComputeBounds(rows []*OperationRow) Bounds {
	var b Bounds
	for _, r := range rows {
		if b.Min.IsZero() || r.Range.Begin.Before(b.Min) {
			b.Min = r.Range.Begin
		}
		if r.Range.End.After(b.Max) {
			b.Max = r.Range.End
		}
		if w := len(r.OpID); w > b.OpIDWidth {
			b.OpIDWidth = w
		}
		if w := len(joinDescriptions(r.Descriptions)); w > b.DescWidth {
			b.DescWidth = w
		}
	}
	if b.OpIDWidth > maxOpIDColumnWidth {
		b.OpIDWidth = maxOpIDColumnWidth
	}
	return b
}

// GanttBar is one row's bar position within [0, width) columns, the
// renderer's input for drawing a single Gantt line.
type GanttBar struct {
	Row        *OperationRow
	StartCol   int
	WidthCols  int
	SubBars    []GanttBar // sub_ops rendered as nested marks within the bar
}

// Layout maps rows onto a fixed-width Gantt column space given the
// already-computed time bounds.
func Layout(rows []*OperationRow, b Bounds, width int) []GanttBar {
	if width <= 0 {
		width = 1
	}
	total := b.Max.Sub(b.Min)
	if total <= 0 {
		total = time.Nanosecond
	}
	colFor := func(t time.Time) int {
		frac := float64(t.Sub(b.Min)) / float64(total)
		col := int(frac * float64(width))
		if col < 0 {
			col = 0
		}
		if col >= width {
			col = width - 1
		}
		return col
	}

	bars := make([]GanttBar, 0, len(rows))
	for _, r := range rows {
		start := colFor(r.Range.Begin)
		end := colFor(r.Range.End)
		w := end - start + 1
		bar := GanttBar{Row: r, StartCol: start, WidthCols: w}
		for _, sub := range r.SubOps {
			ss := colFor(sub.Range.Begin)
			se := colFor(sub.Range.End)
			bar.SubBars = append(bar.SubBars, GanttBar{
				StartCol:  ss,
				WidthCols: se - ss + 1,
			})
		}
		bars = append(bars, bar)
	}
	return bars
}
