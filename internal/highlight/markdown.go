package highlight

import (
	"strings"

	"github.com/five82/chronoview/internal/ansiscrub"
	"github.com/five82/chronoview/internal/attrline"
)

// MarkdownRender renders a markdown document into plain text plus attrline
// attributes describing its block/span structure, the streaming semantics
// md2attr_line.cc implements on top of an AST-walking markdown parser
// (enter_block/leave_block/enter_span/leave_span/text callbacks): headings,
// horizontal rules, fenced code blocks, block quotes, list items, and the
// inline spans (emphasis, strong, code, links, footnote refs). Indented
// code blocks are not recognized; their lines render as plain text.
func MarkdownRender(src string) (string, attrline.Attrs) {
	var out strings.Builder
	var attrs attrline.Attrs
	var footnotes []string

	lines := strings.Split(src, "\n")
	inFence := false
	var fenceMarker string

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")

		if inFence {
			if isFenceClose(trimmed, fenceMarker) {
				inFence = false
				continue
			}
			start := out.Len()
			out.WriteString(line)
			out.WriteByte('\n')
			attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()-1), Type: attrline.TypeQuotedCode})
			continue
		}

		if marker, ok := fenceOpen(trimmed); ok {
			inFence = true
			fenceMarker = marker
			continue
		}

		if isHR(trimmed) {
			start := out.Len()
			out.WriteString("───────────")
			out.WriteByte('\n')
			attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()-1), Type: attrline.TypeHR})
			continue
		}

		if level, text, ok := headingLevel(trimmed); ok {
			start := out.Len()
			renderInline(&out, &attrs, text, &footnotes)
			out.WriteByte('\n')
			attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()-1), Type: headingType(level)})
			continue
		}

		if rest, ok := strings.CutPrefix(trimmed, "> "); ok {
			start := out.Len()
			renderInline(&out, &attrs, rest, &footnotes)
			out.WriteByte('\n')
			attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()-1), Type: attrline.TypeQuotedCode})
			continue
		}

		if glyph, rest, ok := listItem(trimmed); ok {
			start := out.Len()
			out.WriteString(glyph)
			out.WriteByte(' ')
			attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeListGlyph})
			renderInline(&out, &attrs, rest, &footnotes)
			out.WriteByte('\n')
			continue
		}

		if isTableBorder(trimmed) {
			start := out.Len()
			out.WriteString(trimmed)
			out.WriteByte('\n')
			attrs = append(attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()-1), Type: attrline.TypeTableBorder})
			continue
		}

		renderInline(&out, &attrs, line, &footnotes)
		out.WriteByte('\n')
	}

	flushFootnotes(&out, &attrs, footnotes)
	return out.String(), attrs
}

func headingType(level int) attrline.Type {
	switch level {
	case 1:
		return attrline.TypeH1
	case 2:
		return attrline.TypeH2
	case 3:
		return attrline.TypeH3
	case 4:
		return attrline.TypeH4
	case 5:
		return attrline.TypeH5
	default:
		return attrline.TypeH6
	}
}

func headingLevel(line string) (int, string, bool) {
	n := 0
	for n < len(line) && n < 6 && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n+1:]), true
}

func fenceOpen(line string) (string, bool) {
	if strings.HasPrefix(line, "```") {
		return "```", true
	}
	if strings.HasPrefix(line, "~~~") {
		return "~~~", true
	}
	return "", false
}

func isFenceClose(line, marker string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), marker)
}

func isHR(line string) bool {
	s := strings.ReplaceAll(strings.ReplaceAll(line, " ", ""), "\t", "")
	if len(s) < 3 {
		return false
	}
	for _, r := range []byte{'-', '*', '_'} {
		if strings.Count(s, string(r)) == len(s) {
			return true
		}
	}
	return false
}

func listItem(line string) (glyph, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	indent := len(line) - len(trimmed)
	if indent > 3 {
		return "", "", false
	}
	if len(trimmed) >= 2 && (trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') && trimmed[1] == ' ' {
		return "•", trimmed[2:], true
	}
	for i := 0; i < len(trimmed) && isDigit(trimmed[i]); i++ {
		if i+2 < len(trimmed) && trimmed[i+1] == '.' && trimmed[i+2] == ' ' {
			return trimmed[:i+2], trimmed[i+3:], true
		}
	}
	return "", "", false
}

func isTableBorder(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "|") {
		return false
	}
	for _, c := range s {
		switch c {
		case '|', '-', ':', ' ':
		default:
			return false
		}
	}
	return true
}

// renderInline scans one line's worth of inline markdown spans (strong,
// emphasis, inline code, links, footnote references) into out/attrs.
func renderInline(out *strings.Builder, attrs *attrline.Attrs, text string, footnotes *[]string) {
	i := 0
	n := len(text)
	for i < n {
		switch {
		case strings.HasPrefix(text[i:], "**"):
			end := strings.Index(text[i+2:], "**")
			if end < 0 {
				out.WriteByte(text[i])
				i++
				continue
			}
			body := text[i+2 : i+2+end]
			start := out.Len()
			out.WriteString(body)
			*attrs = append(*attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeStyle, Value: attrline.Int64Value(ansiscrub.StyleBold)})
			i += 2 + end + 2
		case text[i] == '*' || text[i] == '_':
			marker := text[i]
			end := strings.IndexByte(text[i+1:], marker)
			if end < 0 {
				out.WriteByte(text[i])
				i++
				continue
			}
			body := text[i+1 : i+1+end]
			start := out.Len()
			out.WriteString(body)
			*attrs = append(*attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeStyle, Value: attrline.Int64Value(ansiscrub.StyleUnderline)})
			i += 1 + end + 1
		case text[i] == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end < 0 {
				out.WriteByte(text[i])
				i++
				continue
			}
			body := text[i+1 : i+1+end]
			start := out.Len()
			out.WriteString(body)
			*attrs = append(*attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeQuotedCode})
			i += 1 + end + 1
		case text[i] == '[' && strings.HasPrefix(text[i:], "[^"):
			close := strings.IndexByte(text[i+2:], ']')
			if close < 0 {
				out.WriteByte(text[i])
				i++
				continue
			}
			ref := text[i+2 : i+2+close]
			*footnotes = append(*footnotes, ref)
			start := out.Len()
			out.WriteString("[" + ref + "]")
			*attrs = append(*attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeFootnote})
			i += 2 + close + 1
		case text[i] == '[':
			closeText := strings.IndexByte(text[i+1:], ']')
			if closeText < 0 || safeByte(text, i+2+closeText) != '(' {
				out.WriteByte(text[i])
				i++
				continue
			}
			label := text[i+1 : i+1+closeText]
			rest := text[i+2+closeText+1:]
			closeURL := strings.IndexByte(rest, ')')
			if closeURL < 0 {
				out.WriteByte(text[i])
				i++
				continue
			}
			href := rest[:closeURL]
			start := out.Len()
			out.WriteString(label)
			*attrs = append(*attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeHyperlink, Value: attrline.OwnedValue(href)})
			i = i + 2 + closeText + 1 + closeURL + 1
		default:
			out.WriteByte(text[i])
			i++
		}
	}
}

// flushFootnotes appends the collected footnote references as a block at
// the end of the document, per md2attr_line.cc's flush_footnotes.
func flushFootnotes(out *strings.Builder, attrs *attrline.Attrs, footnotes []string) {
	if len(footnotes) == 0 {
		return
	}
	out.WriteByte('\n')
	for _, ref := range footnotes {
		start := out.Len()
		out.WriteString("[" + ref + "]")
		*attrs = append(*attrs, attrline.Attr{Range: attrline.NewRange(start, out.Len()), Type: attrline.TypeFootnote})
		out.WriteByte('\n')
	}
}
