package sqlengine

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Engine owns one in-memory SQLite connection shared by predicate
// compilation and ad hoc `;<sql>` queries.
type Engine struct {
	db *sql.DB
}

// Open starts a fresh in-memory database and creates the logline table
// that Sync populates.
func Open() (*Engine, error) {
	db, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		return nil, fmt.Errorf("sqlengine: open: %w", err)
	}
	// An in-memory SQLite database exists only for the lifetime of one
	// connection; modernc.org/sqlite's pool would otherwise hand a query a
	// second, empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createLoglineTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlengine: create schema: %w", err)
	}
	return &Engine{db: db}, nil
}

func (e *Engine) Close() error {
	return e.db.Close()
}
