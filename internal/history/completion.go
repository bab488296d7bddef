package history

import (
	"sort"
	"strings"

	"github.com/five82/chronoview/internal/attrline"
)

// ItemKind distinguishes the categories of SQL completion candidate, per
// spec.md 4.9.
type ItemKind int

const (
	ItemKeyword ItemKind = iota
	ItemDB
	ItemTable
	ItemTVF
	ItemFunction
	ItemColumn
	ItemNumber
	ItemString
	ItemCollation
	ItemVar
)

// SqlItem is one completion candidate: what the popup displays, what gets
// inserted, and the role the popup paints it with.
type SqlItem struct {
	Kind          ItemKind
	Key           string // lowercase prefix this item is indexed under
	Display       string
	ReplaceSuffix string
	Role          attrline.Role
}

// CompletionSet is a multimap from lowercase prefix to SqlItem, queried by
// prefix range over a key-sorted slice (the Go equivalent of a
// std::multimap<std::string, sql_item>::equal_range prefix scan).
type CompletionSet struct {
	items []SqlItem
}

// NewCompletionSet builds a CompletionSet from an unordered item list.
func NewCompletionSet(items []SqlItem) CompletionSet {
	cs := CompletionSet{items: append([]SqlItem(nil), items...)}
	for i := range cs.items {
		cs.items[i].Key = strings.ToLower(cs.items[i].Key)
	}
	sort.Slice(cs.items, func(i, j int) bool { return cs.items[i].Key < cs.items[j].Key })
	return cs
}

// Lookup returns every item whose key begins with the (case-folded)
// prefix, in key order.
func (cs CompletionSet) Lookup(prefix string) []SqlItem {
	needle := strings.ToLower(prefix)
	lo := sort.Search(len(cs.items), func(i int) bool { return cs.items[i].Key >= needle })
	hi := lo
	for hi < len(cs.items) && strings.HasPrefix(cs.items[hi].Key, needle) {
		hi++
	}
	return cs.items[lo:hi]
}

// Popup is a windowed view over a CompletionSet's matches, anchored at the
// prompt's cursor column, per spec.md 4.9's "simple windowed list".
type Popup struct {
	Items    []SqlItem
	Col      int
	Height   int
	top      int
	selected int
}

// NewPopup builds a popup for the given matches anchored at column col,
// showing up to height items at a time.
func NewPopup(items []SqlItem, col, height int) *Popup {
	if height < 1 {
		height = 1
	}
	return &Popup{Items: items, Col: col, Height: height}
}

// Selected returns the currently highlighted item, or false if there are
// none.
func (p *Popup) Selected() (SqlItem, bool) {
	if len(p.Items) == 0 {
		return SqlItem{}, false
	}
	return p.Items[p.selected], true
}

// MoveDown advances the selection, scrolling the window if needed.
func (p *Popup) MoveDown() {
	if len(p.Items) == 0 {
		return
	}
	if p.selected < len(p.Items)-1 {
		p.selected++
	}
	if p.selected >= p.top+p.Height {
		p.top = p.selected - p.Height + 1
	}
}

// MoveUp retreats the selection, scrolling the window if needed.
func (p *Popup) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
	if p.selected < p.top {
		p.top = p.selected
	}
}

// Window returns the items currently visible, at most Height of them.
func (p *Popup) Window() []SqlItem {
	end := p.top + p.Height
	if end > len(p.Items) {
		end = len(p.Items)
	}
	if p.top >= end {
		return nil
	}
	return p.Items[p.top:end]
}
