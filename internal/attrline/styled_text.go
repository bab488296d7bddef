package attrline

import "strings"

// StyledText is the ephemeral builder described in the package doc: a
// string plus the attribute ranges that decorate it. Instances are meant to
// be built once to render a single logical line and then discarded or
// handed to a painter; ownership is exclusive, there is no sharing.
type StyledText struct {
	text  strings.Builder
	str   string // cached snapshot, invalidated by any mutator
	dirty bool
	attrs Attrs
}

// New builds an empty StyledText.
func New() *StyledText {
	return &StyledText{dirty: true}
}

// FromString builds a StyledText that starts out containing s with no
// attributes.
func FromString(s string) *StyledText {
	st := New()
	st.text.WriteString(s)
	st.dirty = true
	return st
}

// String returns the current text content.
func (st *StyledText) String() string {
	if st.dirty {
		st.str = st.text.String()
		st.dirty = false
	}
	return st.str
}

// Len returns the current byte length of the text.
func (st *StyledText) Len() int {
	return st.text.Len()
}

// Attrs returns the current attribute set. The returned slice shares
// backing storage with the builder and must be treated as read-only by
// callers that do not own the StyledText.
func (st *StyledText) Attrs() Attrs {
	return st.attrs
}

// WithAttr appends a pre-built attribute, as attr_line_t::with_attr does.
func (st *StyledText) WithAttr(a Attr) *StyledText {
	st.attrs = append(st.attrs, a)
	return st
}

// WithAttrForAll attaches an attribute spanning the whole line (open end),
// matching with_attr_for_all.
func (st *StyledText) WithAttrForAll(t Type, v Value) *StyledText {
	return st.WithAttr(Attr{Range: Range{Start: 0, End: OpenEnd}, Type: t, Value: v})
}

// Append appends raw text with no attribute.
func (st *StyledText) Append(s string) *StyledText {
	st.text.WriteString(s)
	st.dirty = true
	return st
}

// AppendAttr appends s and attaches an attribute covering exactly the newly
// appended bytes.
func (st *StyledText) AppendAttr(s string, t Type, v Value) *StyledText {
	start := st.text.Len()
	st.text.WriteString(s)
	st.dirty = true
	st.attrs = append(st.attrs, Attr{Range: NewRange(start, st.text.Len()), Type: t, Value: v})
	return st
}

// Insert splices other at byte position pos: existing attributes with
// Start >= pos are shifted forward by other's length, other's attributes
// are shifted by +pos and merged in.
func (st *StyledText) Insert(pos int, other *StyledText) *StyledText {
	cur := st.String()
	if pos < 0 {
		pos = 0
	}
	if pos > len(cur) {
		pos = len(cur)
	}
	otherStr := other.String()
	k := len(otherStr)

	st.attrs = st.attrs.Shift(pos, k)
	shiftedOther := other.attrs.Shift(0, pos)
	st.attrs = append(st.attrs, shiftedOther...)

	merged := cur[:pos] + otherStr + cur[pos:]
	st.text.Reset()
	st.text.WriteString(merged)
	st.dirty = true
	return st
}

// Erase deletes len bytes starting at pos. Ranges completely inside the
// deleted region are removed; ranges straddling one boundary are clipped;
// remaining ranges are shifted by the inverse of an insert.
func (st *StyledText) Erase(pos, length int) *StyledText {
	cur := st.String()
	if pos < 0 {
		pos = 0
	}
	if pos > len(cur) {
		pos = len(cur)
	}
	end := pos + length
	if end > len(cur) {
		end = len(cur)
	}
	if end <= pos {
		return st
	}
	cut := NewRange(pos, end)
	st.attrs = st.attrs.RemoveRange(cut)
	st.attrs = st.attrs.Shift(end, -(end - pos))

	merged := cur[:pos] + cur[end:]
	st.text.Reset()
	st.text.WriteString(merged)
	st.dirty = true
	return st
}

// SplitLines splits the StyledText on '\n' into one StyledText per line,
// shifting each line's attributes to be relative to that line's start.
func (st *StyledText) SplitLines() []*StyledText {
	s := st.String()
	var lines []*StyledText
	lineStart := 0
	emit := func(lineEnd int) {
		sub := st.Subline(lineStart, lineEnd-lineStart)
		lines = append(lines, sub)
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			emit(i)
			lineStart = i + 1
		}
	}
	emit(len(s))
	return lines
}

// Subline extracts one substring-with-attributes covering [start, start+n).
func (st *StyledText) Subline(start, n int) *StyledText {
	s := st.String()
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	end := start + n
	if end > len(s) {
		end = len(s)
	}
	if end < start {
		end = start
	}

	sub := New()
	sub.Append(s[start:end])
	cover := NewRange(start, end)
	for _, a := range st.attrs {
		if !a.Range.Intersects(cover) {
			continue
		}
		clipped := clipRange(a.Range, NewRange(end, OpenEnd))
		clipped = clipRange(clipped, NewRange(-1, start))
		shifted := clipped.Shift(0, -start)
		if shifted.Start < 0 {
			shifted.Start = 0
		}
		a.Range = shifted
		sub.attrs = append(sub.attrs, a)
	}
	return sub
}

// PadTo right-pads the text with spaces until it is at least n bytes long.
// Attributes that cover the original content are left untouched.
func (st *StyledText) PadTo(n int) *StyledText {
	cur := st.Len()
	if cur >= n {
		return st
	}
	st.Append(strings.Repeat(" ", n-cur))
	return st
}

// RightJustify right-justifies the text within width by inserting leading
// spaces; attributes starting with the original content are shifted so
// they still refer to the same glyphs.
func (st *StyledText) RightJustify(width int) *StyledText {
	cur := st.Len()
	if cur >= width {
		return st
	}
	pad := width - cur
	padded := New().Append(strings.Repeat(" ", pad))
	return st.Insert(0, padded)
}
