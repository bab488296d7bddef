// Package sqlengine is the "SQL compiler" collaborator: an in-memory
// modernc.org/sqlite handle that the log-navigation engine uses two ways —
// compiling a `:filter-expr`/`:mark-expr` boolean expression into a
// per-line logindex.Matcher, and running a `;<sql>` prompt line against a
// `logline` table synced from the current LogIndex snapshot to produce a
// result set for the SQL results view.
package sqlengine
