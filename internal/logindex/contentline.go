package logindex

// ContentLine packs a file index and a within-file line index into one
// integer, `(file_index << K) | line_in_file`, matching spec.md 4.4's
// visual-to-content map.
type ContentLine int64

// lineBits is K: enough low bits to address the largest practical file
// (16M lines) before the file index portion begins.
const lineBits = 24
const lineMask = (int64(1) << lineBits) - 1

func NewContentLine(fileIdx, lineIdx int) ContentLine {
	return ContentLine((int64(fileIdx) << lineBits) | (int64(lineIdx) & lineMask))
}

func (c ContentLine) FileIndex() int {
	return int(int64(c) >> lineBits)
}

func (c ContentLine) LineIndex() int {
	return int(int64(c) & lineMask)
}
