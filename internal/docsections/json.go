package docsections

import (
	"encoding/json"
	"strings"
)

// DiscoverJSON builds a section tree over a JSON document: every object key
// and every array element becomes an addressable child node (whether its
// value is itself nested or a scalar), mirroring lnav's JSON structure
// discovery. String values are recorded in the section-types tree the same
// way a multiline string would be, so the navigator can fold them.
func DiscoverJSON(text string, saveWords bool) (*Metadata, error) {
	meta := newMetadata(FormatJSON)
	lineStarts := computeLineStarts(text)
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return meta, err
	}
	root := meta.SectionsRoot
	root.Start = 0

	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			if err := decodeJSONObjectBody(dec, root, meta, lineStarts, saveWords); err != nil {
				return meta, err
			}
		case '[':
			if err := decodeJSONArrayBody(dec, root, meta, lineStarts, saveWords); err != nil {
				return meta, err
			}
		}
	}
	return meta, nil
}

func decodeJSONObjectBody(dec *json.Decoder, parent *HierNode, meta *Metadata, lineStarts []int, saveWords bool) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		keyStr, _ := keyTok.(string)
		if saveWords {
			meta.Words[keyStr] = struct{}{}
		}
		if err := decodeJSONValue(dec, parent, NameKey(keyStr), meta, lineStarts, saveWords); err != nil {
			return err
		}
	}
	_, err := dec.Token() // consume the matching '}'
	return err
}

func decodeJSONArrayBody(dec *json.Decoder, parent *HierNode, meta *Metadata, lineStarts []int, saveWords bool) error {
	idx := 0
	for dec.More() {
		if err := decodeJSONValue(dec, parent, IndexKey(idx), meta, lineStarts, saveWords); err != nil {
			return err
		}
		idx++
	}
	_, err := dec.Token() // consume the matching ']'
	return err
}

// decodeJSONValue reads one value (scalar, object, or array) and attaches
// it to parent under key, recursing into containers.
func decodeJSONValue(dec *json.Decoder, parent *HierNode, key SectionKey, meta *Metadata, lineStarts []int, saveWords bool) error {
	start := int(dec.InputOffset())
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	node := NewHierNode()
	node.Start = start
	node.LineNumber = lineForOffset(lineStarts, start)
	if key.IsIndex() {
		parent.AddChild(node, "")
	} else {
		parent.AddChild(node, key.Name())
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			if err := decodeJSONObjectBody(dec, node, meta, lineStarts, saveWords); err != nil {
				return err
			}
		case '[':
			if err := decodeJSONArrayBody(dec, node, meta, lineStarts, saveWords); err != nil {
				return err
			}
		}
	case string:
		if saveWords {
			for _, w := range strings.Fields(t) {
				meta.Words[w] = struct{}{}
			}
		}
		meta.SectionTypesTree.Insert(start, int(dec.InputOffset()), TypeMultilineString)
	}

	meta.SectionsTree.Insert(start, int(dec.InputOffset()), key)
	return nil
}
