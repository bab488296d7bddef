package attrline

// Type is the closed set of attribute kinds a StyledText can carry. The
// painter layers attributes of the same Type in insertion order, later
// attributes overriding earlier ones.
type Type int

const (
	TypeOriginalLine Type = iota
	TypeBody
	TypeHidden
	TypeFormatName
	TypeRemoved
	TypePreformatted
	TypeInvalid
	TypeError
	TypeLevel
	TypeOriginOffset
	TypeRole
	TypeRoleFg
	TypeStyle
	TypeGraphic
	TypeBlockElem
	TypeForeground
	TypeBackground
	TypeHyperlink
	TypeIcon

	// Markdown structural roles.
	TypeH1
	TypeH2
	TypeH3
	TypeH4
	TypeH5
	TypeH6
	TypeListGlyph
	TypeQuotedCode
	TypeTableBorder
	TypeFootnote
	TypeHR
)

func (t Type) String() string {
	switch t {
	case TypeOriginalLine:
		return "original-line"
	case TypeBody:
		return "body"
	case TypeHidden:
		return "hidden"
	case TypeFormatName:
		return "format-name"
	case TypeRemoved:
		return "removed"
	case TypePreformatted:
		return "preformatted"
	case TypeInvalid:
		return "invalid"
	case TypeError:
		return "error"
	case TypeLevel:
		return "level"
	case TypeOriginOffset:
		return "origin-offset"
	case TypeRole:
		return "role"
	case TypeRoleFg:
		return "role-fg"
	case TypeStyle:
		return "style"
	case TypeGraphic:
		return "graphic"
	case TypeBlockElem:
		return "block-elem"
	case TypeForeground:
		return "foreground"
	case TypeBackground:
		return "background"
	case TypeHyperlink:
		return "hyperlink"
	case TypeIcon:
		return "icon"
	case TypeH1, TypeH2, TypeH3, TypeH4, TypeH5, TypeH6:
		return "h" + string(rune('1'+int(t-TypeH1)))
	case TypeListGlyph:
		return "list-glyph"
	case TypeQuotedCode:
		return "quoted-code"
	case TypeTableBorder:
		return "table-border"
	case TypeFootnote:
		return "footnote"
	case TypeHR:
		return "hr"
	default:
		return "unknown"
	}
}

// Role is the renderer-resolved semantic style token carried by
// TypeRole/TypeRoleFg attributes.
type Role int

const (
	RoleNone Role = iota
	RoleText
	RoleIdentifier
	RoleSearch
	RoleOK
	RoleInfo
	RoleError
	RoleWarning
	RoleHidden
	RoleQuotedCode
	RoleCodeBorder
	RoleKeyword
	RoleString
	RoleComment
	RoleVariable
	RoleSymbol
	RoleNull
	RoleASCIICtrl
	RoleNonASCII
	RoleNumber
	RoleRegexSpecial
	RoleRegexRepeat
	RoleLowThreshold
	RoleMedThreshold
	RoleHighThreshold
	RoleDiffDelete
	RoleDiffAdd
	RoleDiffSection
	RoleTableBorder
	RoleFootnote

	// SQL highlighter roles, beyond the general-purpose set above.
	RoleCommand
	RoleFunction
	RoleOperator
	RoleParen
	RoleGarbage
)

// Icon enumerates the small set of renderer glyphs a TypeIcon attribute can
// request.
type Icon int

const (
	IconNone Icon = iota
	IconHidden
)

// Value is a tagged union of the payloads an Attr can carry. Exactly one
// field is meaningful per attribute; callers read it through the typed
// accessors (Int64, RoleOf, String, IconOf), which do not check the kind
// and return the zero value of a payload that is not set -- callers are
// expected to know an attribute's Value kind from its Type.
type Value struct {
	kind  valueKind
	i64   int64
	role  Role
	text  string
	owned string
	frag  Fragment
	icon  Icon
}

type valueKind int

const (
	valueNone valueKind = iota
	valueInt64
	valueRole
	valueInterned
	valueOwned
	valueFragment
	valueIcon
)

// Int64Value builds a Value wrapping an integer payload (offsets, counts).
func Int64Value(v int64) Value { return Value{kind: valueInt64, i64: v} }

// RoleValue builds a Value wrapping a resolved Role.
func RoleValue(r Role) Value { return Value{kind: valueRole, role: r} }

// InternedValue builds a Value wrapping an interned string (reference-compared).
func InternedValue(s string) Value { return Value{kind: valueInterned, text: s} }

// OwnedValue builds a Value wrapping an owned (heap) string copy.
func OwnedValue(s string) Value { return Value{kind: valueOwned, owned: s} }

// FragmentValue builds a Value wrapping a string-fragment view.
func FragmentValue(f Fragment) Value { return Value{kind: valueFragment, frag: f} }

// IconValue builds a Value wrapping an Icon.
func IconValue(i Icon) Value { return Value{kind: valueIcon, icon: i} }

// Int64 returns the integer payload, or 0 if the Value does not carry one.
func (v Value) Int64() int64 { return v.i64 }

// RoleOf returns the Role payload.
func (v Value) RoleOf() Role { return v.role }

// String returns a best-effort textual view of whichever payload is set.
func (v Value) String() string {
	switch v.kind {
	case valueInterned:
		return v.text
	case valueOwned:
		return v.owned
	case valueFragment:
		return v.frag.String()
	default:
		return ""
	}
}

// IconOf returns the Icon payload.
func (v Value) IconOf() Icon { return v.icon }

// Attr pairs a Range with its Type and Value, mirroring lnav's string_attr.
type Attr struct {
	Range Range
	Type  Type
	Value Value
}

// Attrs is an ordered set of Attr, as produced by a StyledText.
type Attrs []Attr

// Find returns the index of the first attribute of the given type whose
// range starts at or after `from`, or -1.
func (a Attrs) Find(t Type, from int) int {
	for i, attr := range a {
		if attr.Type == t && attr.Range.Start >= from {
			return i
		}
	}
	return -1
}

// FindContaining returns the index of the first attribute of type t whose
// range contains pos, or -1.
func (a Attrs) FindContaining(t Type, pos int) int {
	for i, attr := range a {
		if attr.Type == t && attr.Range.Contains(pos) {
			return i
		}
	}
	return -1
}

// RemoveType removes every attribute of the given type, returning the
// filtered slice (the input is not mutated in place beyond reslicing).
func (a Attrs) RemoveType(t Type) Attrs {
	out := make(Attrs, 0, len(a))
	for _, attr := range a {
		if attr.Type != t {
			out = append(out, attr)
		}
	}
	return out
}

// RemoveRange drops attributes fully contained by lr and clips ones that
// straddle its boundary, matching attr_line's remove_string_attr(range).
func (a Attrs) RemoveRange(lr Range) Attrs {
	out := make(Attrs, 0, len(a))
	for _, attr := range a {
		switch {
		case lr.ContainsRange(attr.Range):
			continue
		case attr.Range.Intersects(lr):
			clipped := clipRange(attr.Range, lr)
			attr.Range = clipped
			out = append(out, attr)
		default:
			out = append(out, attr)
		}
	}
	return out
}

func clipRange(r, cut Range) Range {
	out := r
	if cut.Contains(out.Start) {
		out.Start = cut.EndFor(out.Start + 1)
	}
	if !out.Open() && cut.Start < out.End && (cut.Open() || cut.End >= out.End) {
		out.End = cut.Start
	}
	if !out.Open() && out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// Shift shifts every attribute by delegating to Range.Shift, used after an
// Insert/Erase at `pos`.
func (a Attrs) Shift(pos, amount int) Attrs {
	out := make(Attrs, len(a))
	for i, attr := range a {
		attr.Range = attr.Range.Shift(pos, amount)
		out[i] = attr
	}
	return out
}
