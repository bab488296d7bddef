package logindex

import (
	"container/heap"
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// RebuildResult tells the caller how much changed, so it can preserve
// "stick-to-bottom" scroll state across incremental rebuilds.
type RebuildResult int

const (
	NoChange RebuildResult = iota
	Incremental
	FullRebuild
)

// entry is one merged visual line: which file/line it came from.
type entry struct {
	content ContentLine
	time    time.Time
}

// Index is the merged, filtered, bookmarked view over a set of LogFiles,
// spec.md 4.4's LogIndex.
type Index struct {
	Files []*LogFile

	Filters Stack
	MinTime time.Time
	MaxTime time.Time

	Bookmarks map[BookmarkType]*Set
	Partition []string // per visual line, the partition name in effect (may be "")

	entries []entry
}

// New builds an empty Index over files.
func New(files []*LogFile) *Index {
	idx := &Index{
		Files: files,
		Bookmarks: map[BookmarkType]*Set{
			BMUser:     {},
			BMUserExpr: {},
			BMErrors:   {},
			BMWarnings: {},
			BMFiles:    {},
			BMMeta:     {},
		},
	}
	return idx
}

// Len returns the number of visual lines currently in the merged view.
func (idx *Index) Len() int { return len(idx.entries) }

// At resolves a visual line to its content line.
func (idx *Index) At(visual int) (ContentLine, bool) {
	if visual < 0 || visual >= len(idx.entries) {
		return 0, false
	}
	return idx.entries[visual].content, true
}

// Find resolves a content line back to its owning LogFile.
func (idx *Index) Find(c ContentLine) (*LogFile, int, bool) {
	fi := c.FileIndex()
	if fi < 0 || fi >= len(idx.Files) {
		return nil, 0, false
	}
	return idx.Files[fi], c.LineIndex(), true
}

// FindFromTime returns the first visual line at or after tv, via binary
// search over the merged (already time-sorted) stream.
func (idx *Index) FindFromTime(tv time.Time) (int, bool) {
	lo, hi := 0, len(idx.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if idx.entries[mid].time.Before(tv) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(idx.entries) {
		return 0, false
	}
	return lo, true
}

// Rebuild runs the four passes from spec.md 4.4: extend, merge, filter,
// bookmarks. deadline bounds pass 1's per-file indexing work; a zero
// deadline means "no limit".
func (idx *Index) Rebuild(deadline time.Time) (RebuildResult, error) {
	grewAny := false
	for _, f := range idx.Files {
		grew, err := f.IndexMore(deadline)
		if err != nil {
			return NoChange, err
		}
		grewAny = grewAny || grew
	}
	if !grewAny && idx.entries != nil {
		return NoChange, nil
	}

	merged := idx.mergeFiles()

	filtered := make([]entry, 0, len(merged))
	var sqlMarked []ContentLine
	for _, e := range merged {
		f, li, _ := idx.Find(e.content)
		line := f.Lines[li]
		if !idx.withinTimeBounds(line.Time) {
			continue
		}
		text, err := f.ReadLineRaw(li)
		if err != nil {
			continue
		}
		meta := f.Meta[li]
		ok, err := idx.Filters.Matches(meta, text)
		if err != nil || !ok {
			continue
		}
		if idx.Filters.SQLMark != nil {
			if hit, _ := idx.Filters.SQLMark.Matches(meta, text); hit {
				sqlMarked = append(sqlMarked, e.content)
			}
		}
		filtered = append(filtered, e)
	}

	prev := idx.entries
	idx.entries = filtered
	idx.recomputeBookmarks()
	idx.recomputePartitions()
	idx.mergeSQLMarks(sqlMarked)

	// Incremental means the previous view survives as a prefix of the new
	// one (lines were only appended); anything else is a full rebuild.
	if prev == nil || len(filtered) < len(prev) {
		return FullRebuild, nil
	}
	for i := range prev {
		if prev[i].content != filtered[i].content {
			return FullRebuild, nil
		}
	}
	return Incremental, nil
}

func (idx *Index) withinTimeBounds(t time.Time) bool {
	if !idx.MinTime.IsZero() && t.Before(idx.MinTime) {
		return false
	}
	if !idx.MaxTime.IsZero() && t.After(idx.MaxTime) {
		return false
	}
	return true
}

// mergeFiles produces the full time-ordered sequence across all files
// using a priority-queue merge of each file's per-line timestamp stream,
// continued lines following their leader regardless of their own adjusted
// time.
func (idx *Index) mergeFiles() []entry {
	h := &mergeHeap{}
	heap.Init(h)
	for fi, f := range idx.Files {
		if f.Hidden || len(f.Lines) == 0 {
			continue
		}
		heap.Push(h, mergeCursor{fileIdx: fi, lineIdx: 0, time: f.Lines[0].Time})
	}

	out := make([]entry, 0, len(idx.entries))
	for h.Len() > 0 {
		cur := heap.Pop(h).(mergeCursor)
		f := idx.Files[cur.fileIdx]
		line := f.Lines[cur.lineIdx]
		t := line.Time
		out = append(out, entry{content: NewContentLine(cur.fileIdx, cur.lineIdx), time: t})

		next := cur.lineIdx + 1
		for next < len(f.Lines) && f.Lines[next].Continued {
			out = append(out, entry{content: NewContentLine(cur.fileIdx, next), time: t})
			next++
		}
		if next < len(f.Lines) {
			heap.Push(h, mergeCursor{fileIdx: cur.fileIdx, lineIdx: next, time: f.Lines[next].Time})
		}
	}
	return out
}

type mergeCursor struct {
	fileIdx, lineIdx int
	time             time.Time
}

type mergeHeap []mergeCursor

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if !h[i].time.Equal(h[j].time) {
		return h[i].time.Before(h[j].time)
	}
	if h[i].fileIdx != h[j].fileIdx {
		return h[i].fileIdx < h[j].fileIdx
	}
	return h[i].lineIdx < h[j].lineIdx
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x any)   { *h = append(*h, x.(mergeCursor)) }
func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func (idx *Index) recomputeBookmarks() {
	var errs, warns, files []int
	lastFile := -1
	for visual, e := range idx.entries {
		fi := e.content.FileIndex()
		if fi != lastFile {
			files = append(files, visual)
			lastFile = fi
		}
		f := idx.Files[fi]
		lvl := f.Lines[e.content.LineIndex()].Level
		switch {
		case lvl.AtLeast(loglevel.Error):
			errs = append(errs, visual)
		case lvl.AtLeast(loglevel.Warning):
			warns = append(warns, visual)
		}
	}
	idx.Bookmarks[BMErrors].Replace(errs)
	idx.Bookmarks[BMWarnings].Replace(warns)
	idx.Bookmarks[BMFiles].Replace(files)

	var metaLines []int
	for visual, e := range idx.entries {
		f := idx.Files[e.content.FileIndex()]
		if m, ok := f.Meta[e.content.LineIndex()]; ok && !m.Empty() {
			metaLines = append(metaLines, visual)
		}
	}
	idx.Bookmarks[BMMeta].Replace(metaLines)
}

// mergeSQLMarks adds BM_USER_EXPR entries for every content line the SQL
// mark predicate matched during this rebuild's filter pass.
func (idx *Index) mergeSQLMarks(marked []ContentLine) {
	if len(marked) == 0 {
		return
	}
	byContent := make(map[ContentLine]int, len(marked))
	for _, c := range marked {
		byContent[c] = 1
	}
	var visuals []int
	for visual, e := range idx.entries {
		if _, ok := byContent[e.content]; ok {
			visuals = append(visuals, visual)
		}
	}
	idx.Bookmarks[BMUserExpr].Replace(visuals)
}

// recomputePartitions subdivides the visual-line space into contiguous
// regions named by BM_META entries whose metadata carries a non-empty
// Name, per spec.md 4.4 "Partitioning".
func (idx *Index) recomputePartitions() {
	idx.Partition = make([]string, len(idx.entries))
	current := ""
	for visual, e := range idx.entries {
		f := idx.Files[e.content.FileIndex()]
		if m, ok := f.Meta[e.content.LineIndex()]; ok && m.Name != "" {
			current = m.Name
		}
		idx.Partition[visual] = current
	}
}
