package logindex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/chronoview/internal/loglevel"
)

// simpleParser parses lines of the form "<unix-seconds> <LEVEL> <rest>",
// with a line starting with whitespace treated as a continuation.
type simpleParser struct{}

func (simpleParser) Parse(raw string) (time.Time, loglevel.Level, string, bool) {
	if strings.HasPrefix(raw, " ") {
		return time.Time{}, loglevel.Unknown, "", true
	}
	fields := strings.SplitN(raw, " ", 3)
	if len(fields) < 2 {
		return time.Time{}, loglevel.Unknown, "", false
	}
	var sec int64
	for _, c := range fields[0] {
		if c < '0' || c > '9' {
			return time.Time{}, loglevel.Unknown, "", false
		}
		sec = sec*10 + int64(c-'0')
	}
	return time.Unix(sec, 0).UTC(), loglevel.Parse(fields[1]), "", false
}

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIndexMergesFilesByTime(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")
	writeLines(t, a, "100 INFO from-a-first", "300 INFO from-a-second")
	writeLines(t, b, "200 INFO from-b-only")

	fa := NewLogFile(a, simpleParser{})
	fb := NewLogFile(b, simpleParser{})
	idx := New([]*LogFile{fa, fb})

	result, err := idx.Rebuild(time.Time{})
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if result != FullRebuild {
		t.Fatalf("expected FullRebuild on first pass, got %v", result)
	}
	if idx.Len() != 3 {
		t.Fatalf("expected 3 merged lines, got %d", idx.Len())
	}

	var order []string
	for v := 0; v < idx.Len(); v++ {
		c, _ := idx.At(v)
		f, li, _ := idx.Find(c)
		raw, err := f.ReadLineRaw(li)
		if err != nil {
			t.Fatalf("read line: %v", err)
		}
		order = append(order, raw)
	}
	want := []string{"100 INFO from-a-first", "200 INFO from-b-only", "300 INFO from-a-second"}
	for i := range want {
		if !strings.Contains(order[i], strings.Fields(want[i])[2]) {
			t.Fatalf("merge order = %v, want time-ordered %v", order, want)
		}
	}
}

func TestIndexContinuedLinesFollowLeader(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	writeLines(t, a, "100 INFO leader", " continuation one", " continuation two", "200 INFO next")

	f := NewLogFile(a, simpleParser{})
	idx := New([]*LogFile{f})
	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 4 {
		t.Fatalf("expected 4 lines, got %d", idx.Len())
	}
	c0, _ := idx.At(0)
	c1, _ := idx.At(1)
	c2, _ := idx.At(2)
	_, li0, _ := idx.Find(c0)
	_, li1, _ := idx.Find(c1)
	_, li2, _ := idx.Find(c2)
	if li0 != 0 || li1 != 1 || li2 != 2 {
		t.Fatalf("continuation lines should directly follow their leader in order, got %d,%d,%d", li0, li1, li2)
	}
}

func TestIndexNoChangeWhenNothingGrew(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	writeLines(t, a, "100 INFO hello")

	f := NewLogFile(a, simpleParser{})
	idx := New([]*LogFile{f})
	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatal(err)
	}
	result, err := idx.Rebuild(time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if result != NoChange {
		t.Fatalf("expected NoChange, got %v", result)
	}
}

func TestIndexErrorAndWarningBookmarks(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	writeLines(t, a, "100 INFO fine", "101 WARNING uh-oh", "102 ERROR bad", "103 INFO fine-again")

	f := NewLogFile(a, simpleParser{})
	idx := New([]*LogFile{f})
	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatal(err)
	}
	if idx.Bookmarks[BMWarnings].Len() != 1 {
		t.Fatalf("expected 1 warning bookmark, got %d", idx.Bookmarks[BMWarnings].Len())
	}
	if idx.Bookmarks[BMErrors].Len() != 1 {
		t.Fatalf("expected 1 error bookmark, got %d", idx.Bookmarks[BMErrors].Len())
	}
}

func TestIndexIncludeExcludeFilterContract(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	writeLines(t, a, "100 INFO keep-this", "101 INFO drop-this", "102 INFO keep-that")

	f := NewLogFile(a, simpleParser{})
	idx := New([]*LogFile{f})

	inc, _ := NewRegexMatcher("keep")
	idx.Filters.Add(FilterInclude, "keep", inc)
	exc, _ := NewRegexMatcher("drop-this")
	idx.Filters.Add(FilterExclude, "drop-this", exc)

	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 surviving lines, got %d", idx.Len())
	}
}

func TestIndexTimeBoundsClipPrefixSuffix(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	writeLines(t, a, "100 INFO too-early", "200 INFO in-range", "300 INFO too-late")

	f := NewLogFile(a, simpleParser{})
	idx := New([]*LogFile{f})
	idx.MinTime = time.Unix(150, 0).UTC()
	idx.MaxTime = time.Unix(250, 0).UTC()

	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected 1 in-range line, got %d", idx.Len())
	}
}

func TestBookmarkNextClusterSkipsContiguousRun(t *testing.T) {
	var s Set
	s.Replace([]int{5, 6, 7, 20})
	n, ok := s.NextCluster(0)
	if !ok || n != 5 {
		t.Fatalf("first cluster start = %d,%v want 5,true", n, ok)
	}
	n, ok = s.NextCluster(5)
	if !ok || n != 20 {
		t.Fatalf("next cluster after run = %d,%v want 20,true", n, ok)
	}
}

func TestFilterStackIndexReuse(t *testing.T) {
	var s Stack
	m, _ := NewRegexMatcher("x")
	f1, err := s.Add(FilterInclude, "x", m)
	if err != nil {
		t.Fatal(err)
	}
	s.Delete("x")
	f2, err := s.Add(FilterInclude, "y", m)
	if err != nil {
		t.Fatal(err)
	}
	if f2.Index != f1.Index {
		t.Fatalf("expected freed index %d reused, got %d", f1.Index, f2.Index)
	}
}

func TestContentLinePacking(t *testing.T) {
	c := NewContentLine(3, 12345)
	if c.FileIndex() != 3 || c.LineIndex() != 12345 {
		t.Fatalf("round trip failed: file=%d line=%d", c.FileIndex(), c.LineIndex())
	}
}
