package docsections

import "strconv"

// SectionKey identifies one section: either a name (an object key, a
// heading title, a function name) or a numeric index (an array or list
// position), matching lnav's section_key_t variant.
type SectionKey struct {
	name    string
	index   int
	isIndex bool
}

func NameKey(name string) SectionKey { return SectionKey{name: name} }
func IndexKey(i int) SectionKey      { return SectionKey{index: i, isIndex: true} }

func (k SectionKey) IsIndex() bool { return k.isIndex }
func (k SectionKey) Name() string  { return k.name }
func (k SectionKey) Index() int    { return k.index }

func (k SectionKey) String() string {
	if k.isIndex {
		return "[" + strconv.Itoa(k.index) + "]"
	}
	return k.name
}

func (k SectionKey) Equal(o SectionKey) bool {
	return k.isIndex == o.isIndex && k.index == o.index && k.name == o.name
}
