package logindex

import "sort"

// BookmarkType is a named, ordered bookmark kind, matching lnav's
// bookmark_type_t singletons.
type BookmarkType int

const (
	BMUser BookmarkType = iota
	BMUserExpr
	BMErrors
	BMWarnings
	BMFiles
	BMMeta
)

var bookmarkNames = map[BookmarkType]string{
	BMUser:     "user",
	BMUserExpr: "user-expr",
	BMErrors:   "error",
	BMWarnings: "warning",
	BMFiles:    "file",
	BMMeta:     "meta",
}

func (t BookmarkType) String() string { return bookmarkNames[t] }

// FindBookmarkType resolves a bookmark type by name, the way lnav's
// find_type does, returning ok=false for an unknown name.
func FindBookmarkType(name string) (BookmarkType, bool) {
	for t, n := range bookmarkNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Set is a sorted set of visual-line positions for one bookmark type.
type Set struct {
	lines []int
}

// InsertOnce inserts line if it is not already present, keeping the set
// sorted.
func (s *Set) InsertOnce(line int) {
	i := sort.SearchInts(s.lines, line)
	if i < len(s.lines) && s.lines[i] == line {
		return
	}
	s.lines = append(s.lines, 0)
	copy(s.lines[i+1:], s.lines[i:])
	s.lines[i] = line
}

// Remove deletes line from the set if present.
func (s *Set) Remove(line int) {
	i := sort.SearchInts(s.lines, line)
	if i < len(s.lines) && s.lines[i] == line {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
}

// Lines returns the set's contents, ascending.
func (s *Set) Lines() []int {
	out := make([]int, len(s.lines))
	copy(out, s.lines)
	return out
}

// Next returns the smallest marked line strictly after from, and false if
// none exists.
func (s *Set) Next(from int) (int, bool) {
	i := sort.SearchInts(s.lines, from+1)
	if i >= len(s.lines) {
		return 0, false
	}
	return s.lines[i], true
}

// Prev returns the largest marked line strictly before from, and false if
// none exists.
func (s *Set) Prev(from int) (int, bool) {
	i := sort.SearchInts(s.lines, from)
	if i == 0 {
		return 0, false
	}
	return s.lines[i-1], true
}

// NextCluster walks past any contiguous run of marks touching from, then
// returns the first mark of the following run, so a block of adjacent
// marks counts as a single stop instead of one per line.
func (s *Set) NextCluster(from int) (int, bool) {
	pos := from
	for {
		n, ok := s.Next(pos)
		if !ok {
			return 0, false
		}
		if n != pos+1 {
			return n, true
		}
		pos = n
	}
}

// Replace swaps the set's contents atomically, matching the rebuild
// contract's "bookmarks are replaced atomically from the UI thread".
func (s *Set) Replace(lines []int) {
	sorted := append([]int(nil), lines...)
	sort.Ints(sorted)
	s.lines = sorted
}

// Len reports the number of marked lines.
func (s *Set) Len() int { return len(s.lines) }
