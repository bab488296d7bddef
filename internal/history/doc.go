// Package history tracks per-prompt-class command/query history (a
// persistent append-only log plus an in-memory ring buffer) and computes
// completion sets for the SQL prompt, per spec.md 4.9.
package history
