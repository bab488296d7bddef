package docsections

// TextFormat tags which format-specific tokenizer discover should use.
type TextFormat int

const (
	FormatUnknown TextFormat = iota
	FormatJSON
	FormatYAML
	FormatSQL
	FormatMan
	FormatCode
	FormatGeneric
)

// Metadata is the computed document structure for one text buffer: the
// interval tree of sections, the hierarchical node tree mirroring it, the
// interval tree of comment/multiline-string spans, and auxiliary indent and
// word sets used by navigation and completion.
type Metadata struct {
	SectionsTree     IntervalTree
	SectionsRoot     *HierNode
	SectionTypesTree TypeIntervalTree
	Indents          map[int]struct{}
	TextFormat       TextFormat
	Words            map[string]struct{}
}

func newMetadata(format TextFormat) *Metadata {
	return &Metadata{
		SectionsRoot: NewHierNode(),
		Indents:      make(map[int]struct{}),
		TextFormat:   format,
		Words:        make(map[string]struct{}),
	}
}

// PathForRange walks the hierarchy from the root, at each level picking the
// child whose range contains [start, stop), and returns the sequence of
// keys describing the deepest such node.
func (m *Metadata) PathForRange(start, stop int) []SectionKey {
	var path []SectionKey
	node := m.SectionsRoot
	end := -1
	for node != nil {
		var next *HierNode
		nextEnd := -1
		for i, c := range node.Children {
			childEnd := end
			if i+1 < len(node.Children) {
				childEnd = node.Children[i+1].Start
			}
			if c.Start <= start && (childEnd < 0 || stop <= childEnd) {
				next, nextEnd = c, childEnd
			}
		}
		if next == nil {
			break
		}
		key, ok := node.ChildKey(next)
		if !ok {
			break
		}
		path = append(path, key)
		node, end = next, nextEnd
	}
	return path
}

// Breadcrumb is one entry in a `>`-separated breadcrumb bar: the key at
// this level and the sibling/child names offered as alternatives when the
// user activates it, per original_source's breadcrumb::possibility.
type Breadcrumb struct {
	Key           SectionKey
	Possibilities []string
}

// PossibilityProvider returns, for each prefix of path, the sibling or
// child names reachable at that point, used to populate a breadcrumb bar's
// per-segment completion popup.
func (m *Metadata) PossibilityProvider(path []SectionKey) []Breadcrumb {
	crumbs := make([]Breadcrumb, 0, len(path))
	node := m.SectionsRoot
	for _, key := range path {
		var names []string
		for _, c := range node.Children {
			if k, ok := node.ChildKey(c); ok {
				names = append(names, k.String())
			}
		}
		crumbs = append(crumbs, Breadcrumb{Key: key, Possibilities: names})
		next, ok := node.LookupChild(key)
		if !ok {
			break
		}
		node = next
	}
	return crumbs
}
