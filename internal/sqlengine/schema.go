package sqlengine

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/chronoview/internal/logindex"
)

const createLoglineTable = `
CREATE TABLE IF NOT EXISTS logline (
	file    TEXT NOT NULL,
	line    INTEGER NOT NULL,
	time    TEXT NOT NULL,
	time_ns INTEGER NOT NULL,
	level   TEXT NOT NULL,
	opid    TEXT NOT NULL,
	body    TEXT NOT NULL
)`

// Sync replaces the logline table's contents with idx's current merged,
// filtered, visual-line view, so ";<sql>" queries run against exactly
// what's on screen rather than the raw unfiltered files. logline is a
// plain table, refilled on every call; no virtual table is registered.
func (e *Engine) Sync(ctx context.Context, idx *logindex.Index) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlengine: begin sync: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM logline"); err != nil {
		return fmt.Errorf("sqlengine: clear logline: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO logline(file, line, time, time_ns, level, opid, body) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sqlengine: prepare insert: %w", err)
	}
	defer stmt.Close()

	for visual := 0; visual < idx.Len(); visual++ {
		content, ok := idx.At(visual)
		if !ok {
			continue
		}
		f, li, ok := idx.Find(content)
		if !ok {
			continue
		}
		line := f.Lines[li]
		body, err := f.ReadLineRaw(li)
		if err != nil {
			continue
		}
		_, err = stmt.ExecContext(ctx,
			f.Path, li, line.Time.Format(time.RFC3339Nano), line.Time.UnixNano(),
			line.Level.String(), line.OpID, body)
		if err != nil {
			return fmt.Errorf("sqlengine: insert line %d: %w", visual, err)
		}
	}
	return tx.Commit()
}
