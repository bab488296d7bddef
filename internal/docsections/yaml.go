package docsections

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// DiscoverYAML builds a section tree over a YAML document using yaml.v3's
// Node tree, which carries a (line, column) for every scalar/mapping/
// sequence node; those are converted to byte offsets via the buffer's
// precomputed line-start table, since yaml.v3 does not expose byte offsets
// directly.
func DiscoverYAML(text string, saveWords bool) (*Metadata, error) {
	meta := newMetadata(FormatYAML)
	lineStarts := computeLineStarts(text)

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return meta, err
	}
	if len(doc.Content) == 0 {
		return meta, nil
	}
	meta.SectionsRoot.Start = 0
	buildYAMLNode(doc.Content[0], meta.SectionsRoot, meta, lineStarts, saveWords)
	return meta, nil
}

func buildYAMLNode(n *yaml.Node, parent *HierNode, meta *Metadata, lineStarts []int, saveWords bool) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if saveWords {
				meta.Words[keyNode.Value] = struct{}{}
			}
			child := NewHierNode()
			child.Start = offsetForLineCol(lineStarts, valNode.Line, valNode.Column)
			child.LineNumber = valNode.Line - 1
			parent.AddChild(child, keyNode.Value)
			meta.SectionsTree.Insert(child.Start, -1, NameKey(keyNode.Value))
			buildYAMLNode(valNode, child, meta, lineStarts, saveWords)
		}
	case yaml.SequenceNode:
		for i, item := range n.Content {
			child := NewHierNode()
			child.Start = offsetForLineCol(lineStarts, item.Line, item.Column)
			child.LineNumber = item.Line - 1
			parent.AddChild(child, "")
			meta.SectionsTree.Insert(child.Start, -1, IndexKey(i))
			buildYAMLNode(item, child, meta, lineStarts, saveWords)
		}
	case yaml.ScalarNode:
		if saveWords {
			for _, w := range strings.Fields(n.Value) {
				meta.Words[w] = struct{}{}
			}
		}
		if n.Style == yaml.LiteralStyle || n.Style == yaml.FoldedStyle {
			start := offsetForLineCol(lineStarts, n.Line, n.Column)
			meta.SectionTypesTree.Insert(start, -1, TypeMultilineString)
		}
	}
}
