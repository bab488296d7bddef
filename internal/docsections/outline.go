package docsections

import "strings"

// DiscoverOutline builds a section tree for man-page-like or generic plain
// text: an all-caps heading at column 0 begins a top-level section; an
// indented single-token line begins a child section of the nearest
// enclosing heading; everything else is body text and doesn't appear in
// the tree, matching spec.md 4.5's man-page/generic algorithm.
func DiscoverOutline(text string, format TextFormat, saveWords bool) *Metadata {
	meta := newMetadata(format)

	type frame struct {
		indent int
		node   *HierNode
	}
	stack := []frame{{indent: -1, node: meta.SectionsRoot}}

	lines := strings.Split(text, "\n")
	offset := 0
	for lineNo, line := range lines {
		trimmed := strings.TrimSpace(line)
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if trimmed == "" {
			offset += len(line) + 1
			continue
		}
		if saveWords {
			for _, w := range strings.Fields(trimmed) {
				meta.Words[w] = struct{}{}
			}
		}

		isHeading := indent == 0 && isAllCapsWord(trimmed)
		isSubHeading := !isHeading && indent > 0 && !strings.ContainsAny(trimmed, " \t")

		if isHeading || isSubHeading {
			for len(stack) > 1 && stack[len(stack)-1].indent >= indent {
				stack = stack[:len(stack)-1]
			}
			node := NewHierNode()
			node.Start = offset
			node.LineNumber = lineNo
			stack[len(stack)-1].node.AddChild(node, trimmed)
			meta.SectionsTree.Insert(offset, -1, NameKey(trimmed))
			stack = append(stack, frame{indent: indent, node: node})
		}

		offset += len(line) + 1
	}
	return meta
}

// isAllCapsWord reports whether s contains at least one letter and no
// lowercase letters, the heuristic for a column-0 man-page heading.
func isAllCapsWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
