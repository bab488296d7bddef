package highlight

import "github.com/five82/chronoview/internal/attrline"

// Generic highlights numbers and quoted strings in arbitrary text, the
// fallback snippet highlighter used when no format-specific highlighter
// (SQL, regex) applies, per original_source's snippet_highlighters.cc
// role set (VCR_NUMBER, VCR_STRING) generalized to plain text scanning.
func Generic(text string) attrline.Attrs {
	var attrs attrline.Attrs
	n := len(text)

	for i := 0; i < n; i++ {
		c := text[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			start := i
			quote := c
			i++
			for i < n && text[i] != quote {
				if text[i] == '\\' && i+1 < n {
					i++
				}
				i++
			}
			if i < n {
				i++ // include closing quote
			}
			attrs = append(attrs, attrline.Attr{
				Range: attrline.NewRange(start, i),
				Type:  attrline.TypeRole,
				Value: attrline.RoleValue(attrline.RoleString),
			})
			i-- // outer loop will i++
		case isDigit(c) || (c == '-' && isDigit(safeByte(text, i+1)) && !precededByWordChar(text, i)):
			start := i
			if c == '-' {
				i++
			}
			for i < n && isDigit(text[i]) {
				i++
			}
			if i < n && text[i] == '.' && isDigit(safeByte(text, i+1)) {
				i++
				for i < n && isDigit(text[i]) {
					i++
				}
			}
			if i < n && (text[i] == 'x' || text[i] == 'X') && start+1 == i && text[start] == '0' {
				i++
				for i < n && isHexDigit(text[i]) {
					i++
				}
			}
			attrs = append(attrs, attrline.Attr{
				Range: attrline.NewRange(start, i),
				Type:  attrline.TypeRole,
				Value: attrline.RoleValue(attrline.RoleNumber),
			})
			i--
		}
	}
	return attrs
}

func precededByWordChar(s string, i int) bool {
	if i == 0 {
		return false
	}
	c := s[i-1]
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
