package sqlengine

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/five82/chronoview/internal/logindex"
)

// predicateMatcher compiles a `:filter-expr`/`:mark-expr` boolean SQL
// expression once and re-evaluates it per line via a prepared statement.
// logindex.Stack.Matches only supplies a line's BookmarkMeta and raw text
// (see internal/logindex/filters.go's Matcher contract), so the columns a
// predicate can reference are the ones derivable from that signature:
// log_line (the raw text), log_comment, log_tags (comma-joined), and
// log_opid (the line's bookmark-assigned opid, if any). Expressions
// needing level/time/the format-parsed opid run through the `logline`
// table instead, via a `;<sql>` query synced by Sync.
type predicateMatcher struct {
	stmt *sql.Stmt
}

// CompilePredicate compiles expr (a SQL boolean expression, as typed after
// `:filter-expr`/`:mark-expr`) into a logindex.Matcher.
func (e *Engine) CompilePredicate(expr string) (logindex.Matcher, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("sqlengine: empty predicate expression")
	}
	query := fmt.Sprintf(
		"SELECT 1 FROM (SELECT ? AS log_line, ? AS log_comment, ? AS log_tags, ? AS log_opid) WHERE %s",
		expr,
	)
	stmt, err := e.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("sqlengine: compile predicate %q: %w", expr, err)
	}
	return &predicateMatcher{stmt: stmt}, nil
}

func (m *predicateMatcher) Matches(meta *logindex.BookmarkMeta, text string) (bool, error) {
	var comment, tags, opid string
	if meta != nil {
		comment = meta.Comment
		tags = strings.Join(meta.Tags, ",")
		opid = meta.OpID
	}
	rows, err := m.stmt.Query(text, comment, tags, opid)
	if err != nil {
		return false, fmt.Errorf("sqlengine: evaluate predicate: %w", err)
	}
	defer rows.Close()
	return rows.Next(), nil
}

// Close releases the predicate's prepared statement. Callers replacing a
// filter/mark expression should Close the old matcher first.
func (m *predicateMatcher) Close() error {
	return m.stmt.Close()
}
