package history

import (
	"path/filepath"
	"testing"

	"github.com/five82/chronoview/internal/loglevel"
)

func TestGuardEndRecordsInfoStatusByDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(Command, filepath.Join(dir, "history-command.jsonl"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	g := s.StartOperation("sess-1", ":goto 10")
	g.End()

	entries := s.Recent(1)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Status != loglevel.Info {
		t.Fatalf("expected Info status, got %v", entries[0].Status)
	}
	if entries[0].EndTime == nil {
		t.Fatalf("expected EndTime to be set")
	}
}

func TestGuardFailRecordsErrorStatus(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(SQL, filepath.Join(dir, "history-sql.jsonl"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	g := s.StartOperation("sess-1", "select * from bogus")
	g.Fail()
	g.End()

	entries := s.Recent(1)
	if entries[0].Status != loglevel.Error {
		t.Fatalf("expected Error status, got %v", entries[0].Status)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history-command.jsonl")

	s1, err := Open(Command, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s1.InsertPlainContent("sess-1", ":goto 1")
	s1.InsertPlainContent("sess-1", ":goto 2")

	s2, err := Open(Command, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	entries := s2.Recent(10)
	if len(entries) != 2 {
		t.Fatalf("expected 2 persisted entries after reopen, got %d", len(entries))
	}
	if entries[0].Content != ":goto 2" {
		t.Fatalf("expected most recent entry first, got %q", entries[0].Content)
	}
}

func TestQueryEntriesFiltersByContent(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(Search, filepath.Join(dir, "history-search.jsonl"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.InsertPlainContent("sess-1", "error level")
	s.InsertPlainContent("sess-1", "warning level")

	var matches []string
	s.QueryEntries("error", func(e Entry) { matches = append(matches, e.Content) })
	if len(matches) != 1 || matches[0] != "error level" {
		t.Fatalf("expected only the error entry, got %v", matches)
	}
}

func TestRingBufferBoundsMemory(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(Command, filepath.Join(dir, "history-command.jsonl"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.cap = 3
	s.ring = make([]Entry, 3)
	for i := 0; i < 10; i++ {
		s.InsertPlainContent("sess-1", string(rune('a'+i)))
	}
	entries := s.Recent(10)
	if len(entries) != 3 {
		t.Fatalf("expected ring to bound at 3 entries, got %d", len(entries))
	}
}

func TestCompletionSetLookupByPrefix(t *testing.T) {
	cs := NewCompletionSet([]SqlItem{
		{Kind: ItemKeyword, Key: "SELECT", Display: "SELECT"},
		{Kind: ItemKeyword, Key: "SET", Display: "SET"},
		{Kind: ItemTable, Key: "sessions", Display: "sessions"},
		{Kind: ItemColumn, Key: "severity", Display: "severity"},
	})

	got := cs.Lookup("se")
	if len(got) != 4 {
		t.Fatalf("expected 4 matches for prefix \"se\", got %d: %v", len(got), got)
	}

	got = cs.Lookup("sel")
	if len(got) != 1 || got[0].Display != "SELECT" {
		t.Fatalf("expected only SELECT for prefix \"sel\", got %v", got)
	}
}

func TestPopupWindowAndNavigation(t *testing.T) {
	items := []SqlItem{
		{Display: "a"}, {Display: "b"}, {Display: "c"}, {Display: "d"}, {Display: "e"},
	}
	p := NewPopup(items, 10, 2)

	win := p.Window()
	if len(win) != 2 || win[0].Display != "a" {
		t.Fatalf("expected initial window [a b], got %v", win)
	}

	p.MoveDown()
	p.MoveDown()
	win = p.Window()
	if win[0].Display != "b" || win[1].Display != "c" {
		t.Fatalf("expected window to scroll to [b c], got %v", win)
	}

	sel, ok := p.Selected()
	if !ok || sel.Display != "c" {
		t.Fatalf("expected selection c, got %v ok=%v", sel, ok)
	}

	p.MoveUp()
	sel, _ = p.Selected()
	if sel.Display != "b" {
		t.Fatalf("expected selection to move back to b, got %v", sel)
	}
}
