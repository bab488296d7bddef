package docsections

import "sort"

// computeLineStarts returns the byte offset of the first byte of every
// line in text (line 0 always starts at 0).
func computeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineForOffset returns the zero-based line index containing offset.
func lineForOffset(lineStarts []int, offset int) int {
	i := sort.SearchInts(lineStarts, offset+1) - 1
	if i < 0 {
		i = 0
	}
	return i
}

// offsetForLineCol converts a one-based (line, column) pair, as produced by
// yaml.v3's Node, into a byte offset into the original buffer.
func offsetForLineCol(lineStarts []int, line, col int) int {
	idx := line - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(lineStarts) {
		idx = len(lineStarts) - 1
	}
	off := lineStarts[idx] + (col - 1)
	if off < 0 {
		off = 0
	}
	return off
}
