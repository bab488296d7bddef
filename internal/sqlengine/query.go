package sqlengine

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is a generic row set: column names plus every value already
// stringified for display in the SQL results view, the way a terminal UI
// needs it regardless of each column's underlying SQLite type.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Query runs raw (a `;<sql>` prompt line, SQL keyword stripped by the
// caller) against the engine's database and returns a display-ready
// Result. Query rather than Exec: lnav's SQL prompt is read-only against
// the logline view by convention, and a SELECT is the only statement kind
// that produces rows to show.
func (e *Engine) Query(ctx context.Context, rawSQL string) (*Result, error) {
	rows, err := e.db.QueryContext(ctx, rawSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlengine: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlengine: columns: %w", err)
	}

	result := &Result{Columns: cols}
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("sqlengine: scan row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlengine: iterate rows: %w", err)
	}
	return result, nil
}
