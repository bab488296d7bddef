package timeline

import (
	"time"

	"github.com/five82/chronoview/internal/logindex"
)

// defaultPreviewLimit bounds how many messages populate a row's preview
// pane, spec.md 4.6 "Row selection -> preview".
const defaultPreviewLimit = 200

// PreviewMessage is one log line surfaced in a selected row's preview pane.
type PreviewMessage struct {
	File string
	Time time.Time
	Text string
}

// Preview collects up to limit (0 meaning defaultPreviewLimit) messages
// from idx whose opid matches row.OpID and whose time falls within
// [row.Range.Begin, row.Range.End+1s], in merged visual order. Returns nil
// when nothing in idx falls in that window, so the caller can clear any
// cached preview status.
func Preview(idx *logindex.Index, row *OperationRow, limit int) []PreviewMessage {
	if row == nil {
		return nil
	}
	if limit <= 0 {
		limit = defaultPreviewLimit
	}
	start, ok := idx.FindFromTime(row.Range.Begin)
	if !ok {
		return nil
	}
	end := row.Range.End.Add(time.Second)

	var out []PreviewMessage
	for v := start; v < idx.Len() && len(out) < limit; v++ {
		c, ok := idx.At(v)
		if !ok {
			break
		}
		f, li, ok := idx.Find(c)
		if !ok {
			continue
		}
		line := f.Lines[li]
		if line.Time.After(end) {
			break
		}
		if line.OpID != row.OpID {
			continue
		}
		text, err := f.ReadLineRaw(li)
		if err != nil {
			continue
		}
		out = append(out, PreviewMessage{File: f.Path, Time: line.Time, Text: text})
	}
	return out
}
