package docsections

import "testing"

func TestJSONPathForRangeScenario(t *testing.T) {
	input := `{"msg":"hi","obj":{"a":1,"b":"x"},"arr":[1,2,3]}`
	meta := Discover(input).WithTextFormat(FormatJSON).Perform()

	if len(meta.SectionsRoot.Children) != 3 {
		t.Fatalf("expected 3 top-level children (msg,obj,arr), got %d", len(meta.SectionsRoot.Children))
	}

	arrNode, ok := meta.SectionsRoot.LookupChild(NameKey("arr"))
	if !ok {
		t.Fatalf("expected root to have an 'arr' child")
	}
	if len(arrNode.Children) != 3 {
		t.Fatalf("expected arr to have 3 elements, got %d", len(arrNode.Children))
	}

	// The start offset of the element at index 1 inside arr (the "2").
	offset := arrNode.Children[1].Start
	path := meta.PathForRange(offset, offset+1)
	if len(path) != 2 || path[0].Name() != "arr" || !path[1].IsIndex() || path[1].Index() != 1 {
		t.Fatalf("PathForRange = %v, want [arr, [1]]", path)
	}
}

func TestJSONObjChildren(t *testing.T) {
	input := `{"obj":{"a":1,"b":"x"}}`
	meta := Discover(input).WithTextFormat(FormatJSON).Perform()

	obj, ok := meta.SectionsRoot.LookupChild(NameKey("obj"))
	if !ok {
		t.Fatalf("expected obj child")
	}
	if _, ok := obj.LookupChild(NameKey("a")); !ok {
		t.Fatalf("expected obj.a child")
	}
	if _, ok := obj.LookupChild(NameKey("b")); !ok {
		t.Fatalf("expected obj.b child")
	}
}

func TestManPageHeadingsAndSubheadings(t *testing.T) {
	input := "\nNAME\n    foo -- bar\n\nSYNOPSIS\n    foo -o -b\n\nDESCRIPTION\n    Lorem ipsum\n\n   AbcDef\n      Lorem ipsum\n\n"
	meta := Discover(input).WithTextFormat(FormatMan).Perform()

	if len(meta.SectionsRoot.Children) != 3 {
		t.Fatalf("expected 3 top-level headings, got %d", len(meta.SectionsRoot.Children))
	}
	desc, ok := meta.SectionsRoot.LookupChild(NameKey("DESCRIPTION"))
	if !ok {
		t.Fatalf("expected a DESCRIPTION heading")
	}
	if _, ok := desc.LookupChild(NameKey("AbcDef")); !ok {
		t.Fatalf("expected AbcDef nested under DESCRIPTION")
	}
}

func TestSQLStatementsNumberedAndCommentsSkipped(t *testing.T) {
	input := "SELECT 1; -- a comment\nINSERT INTO t VALUES ('x;y');"
	meta := DiscoverSQL(input)

	if len(meta.SectionsRoot.Children) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(meta.SectionsRoot.Children))
	}
	foundComment := false
	for _, iv := range meta.SectionTypesTree.All() {
		if iv.Type == TypeComment {
			foundComment = true
		}
	}
	if !foundComment {
		t.Fatalf("expected a comment interval to be recorded")
	}
}

func TestCodeBlockNamesFunctionAndIndexesAnonymousBlocks(t *testing.T) {
	input := "func Foo() {\n  if true {\n    x := 1\n  }\n}\n"
	meta := DiscoverCode(input)

	foo, ok := meta.SectionsRoot.LookupChild(NameKey("Foo"))
	if !ok {
		t.Fatalf("expected a Foo section")
	}
	if len(foo.Children) != 1 {
		t.Fatalf("expected Foo to contain 1 anonymous nested block, got %d", len(foo.Children))
	}
}

func TestYAMLMappingAndSequence(t *testing.T) {
	input := "name: demo\ntags:\n  - a\n  - b\n"
	meta, err := DiscoverYAML(input, true)
	if err != nil {
		t.Fatalf("DiscoverYAML: %v", err)
	}
	if _, ok := meta.SectionsRoot.LookupChild(NameKey("name")); !ok {
		t.Fatalf("expected a 'name' section")
	}
	tags, ok := meta.SectionsRoot.LookupChild(NameKey("tags"))
	if !ok {
		t.Fatalf("expected a 'tags' section")
	}
	if len(tags.Children) != 2 {
		t.Fatalf("expected tags to have 2 elements, got %d", len(tags.Children))
	}
	if _, ok := meta.Words["demo"]; !ok {
		t.Fatalf("expected 'demo' to be captured in the word set")
	}
}

func TestLookupPathAndDepthFirst(t *testing.T) {
	input := `{"a":{"b":1}}`
	meta := Discover(input).WithTextFormat(FormatJSON).Perform()

	node, ok := LookupPath(meta.SectionsRoot, []SectionKey{NameKey("a"), NameKey("b")})
	if !ok || node == nil {
		t.Fatalf("expected lookup_path a/b to resolve")
	}

	var visited []int
	DepthFirst(meta.SectionsRoot, func(n *HierNode) {
		visited = append(visited, n.Start)
	})
	if len(visited) == 0 {
		t.Fatalf("expected depth-first traversal to visit at least the root")
	}
	// Root must be visited last (post-order).
	if visited[len(visited)-1] != meta.SectionsRoot.Start {
		t.Fatalf("expected root to be visited last in post-order traversal")
	}
}

func TestBreadcrumbPossibilities(t *testing.T) {
	input := `{"a":1,"b":2}`
	meta := Discover(input).WithTextFormat(FormatJSON).Perform()

	crumbs := meta.PossibilityProvider([]SectionKey{NameKey("a")})
	if len(crumbs) != 1 {
		t.Fatalf("expected 1 breadcrumb, got %d", len(crumbs))
	}
	if len(crumbs[0].Possibilities) != 2 {
		t.Fatalf("expected 2 sibling possibilities at the root, got %d", len(crumbs[0].Possibilities))
	}
}

func TestIntervalTreeDeepest(t *testing.T) {
	var tree IntervalTree
	tree.Insert(0, 100, NameKey("outer"))
	tree.Insert(10, 20, NameKey("inner"))

	got, ok := tree.Deepest(12, 15)
	if !ok || got.Key.Name() != "inner" {
		t.Fatalf("expected deepest match to be 'inner', got %+v ok=%v", got, ok)
	}
}
