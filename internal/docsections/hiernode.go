package docsections

// HierNode is one node in the hierarchical section tree: a parent pointer,
// the byte offset and line number where it begins, an ordered child list,
// and the subset of those children reachable by name.
type HierNode struct {
	Parent     *HierNode
	Start      int
	LineNumber int
	Children   []*HierNode

	named      map[string]*HierNode
	namedOrder []string
}

func NewHierNode() *HierNode {
	return &HierNode{named: make(map[string]*HierNode)}
}

// AddChild appends child to n's children; if name is non-empty the child is
// also reachable by name, matching lnav's hn_named_children multimap
// (narrowed to first-wins lookup, which is all the navigator needs).
func (n *HierNode) AddChild(child *HierNode, name string) {
	child.Parent = n
	n.Children = append(n.Children, child)
	if name != "" {
		if _, exists := n.named[name]; !exists {
			n.named[name] = child
			n.namedOrder = append(n.namedOrder, name)
		}
	}
}

func (n *HierNode) LookupChild(key SectionKey) (*HierNode, bool) {
	if key.IsIndex() {
		if key.Index() >= 0 && key.Index() < len(n.Children) {
			return n.Children[key.Index()], true
		}
		return nil, false
	}
	c, ok := n.named[key.Name()]
	return c, ok
}

func (n *HierNode) ChildIndex(target *HierNode) (int, bool) {
	for i, c := range n.Children {
		if c == target {
			return i, true
		}
	}
	return 0, false
}

// ChildKey resolves the key under which target is reachable from n: its
// name if it has one, otherwise its positional index.
func (n *HierNode) ChildKey(target *HierNode) (SectionKey, bool) {
	for _, name := range n.namedOrder {
		if n.named[name] == target {
			return NameKey(name), true
		}
	}
	if i, ok := n.ChildIndex(target); ok {
		return IndexKey(i), true
	}
	return SectionKey{}, false
}

// ChildNeighborsResult is the previous/next sibling around a child or a
// byte offset that doesn't land exactly on one.
type ChildNeighborsResult struct {
	Previous *HierNode
	Next     *HierNode
}

func (n *HierNode) ChildNeighbors(target *HierNode, offset int) (ChildNeighborsResult, bool) {
	if i, ok := n.ChildIndex(target); ok {
		var res ChildNeighborsResult
		if i > 0 {
			res.Previous = n.Children[i-1]
		}
		if i+1 < len(n.Children) {
			res.Next = n.Children[i+1]
		}
		return res, true
	}
	var res ChildNeighborsResult
	found := false
	for _, c := range n.Children {
		if c.Start <= offset {
			res.Previous = c
			found = true
		} else {
			res.Next = c
			return res, true
		}
	}
	return res, found
}

func (n *HierNode) LineNeighbors(line int) (ChildNeighborsResult, bool) {
	var res ChildNeighborsResult
	found := false
	for _, c := range n.Children {
		if c.LineNumber <= line {
			res.Previous = c
			found = true
		} else {
			res.Next = c
			return res, true
		}
	}
	return res, found
}

func (n *HierNode) FindLineNumberByName(name string) (int, bool) {
	if c, ok := n.named[name]; ok {
		return c.LineNumber, true
	}
	return 0, false
}

func (n *HierNode) FindLineNumberByIndex(index int) (int, bool) {
	if index >= 0 && index < len(n.Children) {
		return n.Children[index].LineNumber, true
	}
	return 0, false
}

// IsNamedOnly reports whether every child is reachable by name, matching
// lnav's is_named_only (no anonymous/index-only children mixed in).
func (n *HierNode) IsNamedOnly() bool {
	return len(n.Children) == len(n.named)
}

// LookupPath descends root through each key in path, one level per key,
// stopping the moment a key fails to resolve.
func LookupPath(root *HierNode, path []SectionKey) (*HierNode, bool) {
	cur := root
	for _, key := range path {
		next, ok := cur.LookupChild(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// DepthFirst visits every node in root's subtree post-order (children
// before parent), matching lnav's hier_node::depth_first.
func DepthFirst(root *HierNode, fn func(*HierNode)) {
	if root == nil {
		return
	}
	for _, c := range root.Children {
		DepthFirst(c, fn)
	}
	fn(root)
}
