package attrline

const hiddenEllipsis = "⋯"

// ApplyHide replaces every region annotated with TypeHidden by a fixed
// ellipsis sequence carrying a TypeIcon(IconHidden) attribute, shifting
// the remaining ranges to account for the shrunk (or grown) span.
func (st *StyledText) ApplyHide() *StyledText {
	var hidden []Range
	for _, a := range st.attrs {
		if a.Type == TypeHidden {
			hidden = append(hidden, a.Range)
		}
	}
	SortRanges(hidden)

	for i := len(hidden) - 1; i >= 0; i-- {
		r := hidden[i]
		text := st.String()
		end := r.EndFor(len(text))
		if r.Start < 0 || r.Start > len(text) || end > len(text) || end < r.Start {
			continue
		}
		st.attrs = st.attrs.RemoveRange(NewRange(r.Start, end))
		delta := len(hiddenEllipsis) - (end - r.Start)
		st.attrs = st.attrs.Shift(end, delta)

		newText := text[:r.Start] + hiddenEllipsis + text[end:]
		st.text.Reset()
		st.text.WriteString(newText)
		st.dirty = true

		st.attrs = append(st.attrs, Attr{
			Range: NewRange(r.Start, r.Start+len(hiddenEllipsis)),
			Type:  TypeIcon,
			Value: IconValue(IconHidden),
		})
	}
	return st
}
