// Package command implements the `:<verb> <args…>` / `;<sql>` command
// surface: line parsing, a verb registry with arity-checked dispatch, the
// typed UserMessage error/status value every operation returns, and the
// help-text registry each verb is described by, per spec.md §6, §7 and
// SPEC_FULL.md §4's supplemented help-text registry.
package command
