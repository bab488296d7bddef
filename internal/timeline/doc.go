// Package timeline extracts per-operation-id ranges and sub-operations
// across log files, merges and time-orders them into a Gantt-style row
// list, and resolves the underlying messages for a selected row's preview.
package timeline
