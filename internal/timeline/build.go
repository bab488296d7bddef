package timeline

import (
	"sort"
	"strings"
	"time"

	"github.com/five82/chronoview/internal/intern"
	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/loglevel"
)

// building accumulates one opid's row across every OpidSource before the
// final sort, spec.md 4.6 build step 1 "union opid tables across files".
type building struct {
	row  *OperationRow
	subs map[string]*OpSubRange
}

// Build unions opid events across all sources into time-ordered
// OperationRows: it merges range and level stats per opid (step 1),
// resolves per-format descriptions (step 2), applies time cutoffs and an
// optional filter stack against the opid name plus its assembled
// description (step 3), then sorts by range start (step 4). filters may be
// nil to skip filtering.
func Build(sources []OpidSource, minTime, maxTime time.Time, filters *logindex.Stack) []*OperationRow {
	active := make(map[string]*building)
	var order []string

	for _, src := range sources {
		for _, ev := range src.OpidEvents() {
			if !withinBounds(ev.Time, minTime, maxTime) {
				continue
			}
			key := intern.Intern(ev.OpID).String()
			b, ok := active[key]
			if !ok {
				b = &building{
					row: &OperationRow{
						OpID:            key,
						DescriptionDefs: make(map[string]string),
						Descriptions:    make(map[string]string),
					},
					subs: make(map[string]*OpSubRange),
				}
				active[key] = b
				order = append(order, key)
			}
			applyEvent(b, ev)
		}
	}

	rows := make([]*OperationRow, 0, len(order))
	for _, key := range order {
		b := active[key]
		for _, sub := range b.subs {
			b.row.SubOps = append(b.row.SubOps, sub)
		}
		sort.Slice(b.row.SubOps, func(i, j int) bool {
			return b.row.SubOps[i].Range.Begin.Before(b.row.SubOps[j].Range.Begin)
		})
		rows = append(rows, b.row)
	}

	if filters != nil {
		kept := rows[:0]
		for _, r := range rows {
			text := r.OpID + " " + joinDescriptions(r.Descriptions)
			ok, err := filters.Matches(nil, text)
			if err == nil && ok {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Range.Begin.Before(rows[j].Range.Begin)
	})
	return rows
}

func withinBounds(t, min, max time.Time) bool {
	if t.IsZero() {
		return true
	}
	if !min.IsZero() && t.Before(min) {
		return false
	}
	if !max.IsZero() && t.After(max) {
		return false
	}
	return true
}

func applyEvent(b *building, ev OpidEvent) {
	evRange := TimeRange{Begin: ev.Time, End: ev.Time}
	b.row.Range = b.row.Range.Union(evRange)

	stats := LevelStats{Total: 1}
	switch {
	case ev.Level.AtLeast(loglevel.Error):
		stats.Error = 1
	case ev.Level.AtLeast(loglevel.Warning):
		stats.Warn = 1
	}
	b.row.LevelStats.Add(stats)

	if ev.Description != "" && ev.DescKey != "" {
		if existing := b.row.Descriptions[ev.DescKey]; existing == "" {
			b.row.Descriptions[ev.DescKey] = ev.Description
		} else {
			b.row.Descriptions[ev.DescKey] = existing + " " + ev.Description
		}
	}

	if ev.SubID == "" {
		return
	}
	subKey := intern.Intern(ev.SubID).String()
	sub, ok := b.subs[subKey]
	if !ok {
		sub = &OpSubRange{SubID: subKey}
		b.subs[subKey] = sub
	}
	sub.Range = sub.Range.Union(evRange)
	sub.LevelStats.Add(stats)
	if ev.Description != "" {
		sub.Description = ev.Description
	}

	// The row's range must always cover every sub-op's range (spec.md 3's
	// OperationRow invariant), so folding a sub-op's event in also extends
	// the parent.
	b.row.Range = b.row.Range.Union(sub.Range)
}

func joinDescriptions(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m[k])
	}
	return strings.Join(parts, " ")
}
