package sqlengine

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/loglevel"
)

func openTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestCompilePredicateMatchesOnRawText(t *testing.T) {
	e := openTestEngine(t)
	m, err := e.CompilePredicate(`log_line LIKE '%timeout%'`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	ok, err := m.Matches(nil, "connection timeout after 30s")
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !ok {
		t.Fatalf("expected predicate to match")
	}
	ok, err = m.Matches(nil, "all good")
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if ok {
		t.Fatalf("expected predicate not to match")
	}
}

func TestCompilePredicateMatchesOnMeta(t *testing.T) {
	e := openTestEngine(t)
	m, err := e.CompilePredicate(`log_tags LIKE '%incident%'`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	meta := &logindex.BookmarkMeta{Tags: []string{"incident", "followup"}}
	ok, err := m.Matches(meta, "anything")
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !ok {
		t.Fatalf("expected predicate to match on tags")
	}
}

func TestCompilePredicateRejectsEmptyExpression(t *testing.T) {
	e := openTestEngine(t)
	if _, err := e.CompilePredicate("   "); err == nil {
		t.Fatalf("expected error for empty predicate expression")
	}
}

func TestCompilePredicateRejectsInvalidSQL(t *testing.T) {
	e := openTestEngine(t)
	if _, err := e.CompilePredicate("not valid sql ((("); err == nil {
		t.Fatalf("expected error for invalid SQL")
	}
}

// lineParser assigns each line an increasing timestamp and a fixed level
// and opid, enough to exercise Sync/Query without depending on real log
// text syntax.
type lineParser struct{ n int }

func (p *lineParser) Parse(raw string) (time.Time, loglevel.Level, string, bool) {
	p.n++
	t := time.Date(2024, 1, 1, 0, 0, p.n, 0, time.UTC)
	return t, loglevel.Error, "req-1", false
}

func TestSyncAndQueryRoundTrip(t *testing.T) {
	e := openTestEngine(t)

	dir := t.TempDir()
	path := dir + "/test.log"
	if err := os.WriteFile(path, []byte("first line\nsecond line\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f := logindex.NewLogFile(path, &lineParser{})
	if _, err := f.IndexMore(time.Time{}); err != nil {
		t.Fatalf("IndexMore: %v", err)
	}

	idx := logindex.New([]*logindex.LogFile{f})
	if _, err := idx.Rebuild(time.Time{}); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	if err := e.Sync(context.Background(), idx); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	result, err := e.Query(context.Background(), "SELECT body FROM logline ORDER BY line")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Rows))
	}
	if !strings.Contains(result.Rows[0][0], "first line") {
		t.Errorf("first row = %v", result.Rows[0])
	}
}
