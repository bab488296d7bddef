package docsections

import "regexp"

var codeDefPattern = regexp.MustCompile(`(?m)^\s*(?:func|def|class|struct|type)\s+([A-Za-z_][A-Za-z0-9_]*)`)

// DiscoverCode builds a section tree for source-code-like text: a
// function/class/struct/type definition names the brace block it opens;
// any other brace block becomes an indexed sub-section of its enclosing
// block.
func DiscoverCode(text string) *Metadata {
	meta := newMetadata(FormatCode)
	lineStarts := computeLineStarts(text)

	defAt := make(map[int]string)
	for _, m := range codeDefPattern.FindAllStringSubmatchIndex(text, -1) {
		defAt[m[0]] = text[m[2]:m[3]]
	}

	type frame struct {
		node *HierNode
	}
	stack := []frame{{node: meta.SectionsRoot}}

	for i, r := range text {
		switch r {
		case '{':
			top := stack[len(stack)-1]
			name, defOff := nearestPrecedingDef(defAt, i)
			if name != "" {
				delete(defAt, defOff) // a definition names only its own opening brace
			}
			child := NewHierNode()
			child.Start = i
			child.LineNumber = lineForOffset(lineStarts, i)
			if name != "" {
				top.node.AddChild(child, name)
				meta.SectionsTree.Insert(i, -1, NameKey(name))
			} else {
				idx := len(top.node.Children)
				top.node.AddChild(child, "")
				meta.SectionsTree.Insert(i, -1, IndexKey(idx))
			}
			stack = append(stack, frame{node: child})
		case '}':
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return meta
}

// nearestPrecedingDef returns the name of the definition keyword closest to
// (and at or before) bracePos, within a reasonable lookback window, and the
// offset it was found at, or ("", -1) if this brace opens an anonymous
// block.
func nearestPrecedingDef(defAt map[int]string, bracePos int) (string, int) {
	best := -1
	var name string
	for off, n := range defAt {
		if off <= bracePos && bracePos-off < 200 && off > best {
			best, name = off, n
		}
	}
	return name, best
}
