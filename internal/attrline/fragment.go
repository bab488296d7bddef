package attrline

// Fragment is a non-owning (pointer, length) view into an interned or
// arena buffer, mirroring lnav's string_fragment. Since Go strings are
// already immutable, read-only views into a backing array, Fragment is a
// thin wrapper that carries byte offsets alongside the backing string so
// callers can reason about provenance (which buffer a slice came from).
type Fragment struct {
	backing string
	start   int
	end     int
}

// NewFragment creates a fragment view of backing[start:end].
func NewFragment(backing string, start, end int) Fragment {
	if start < 0 {
		start = 0
	}
	if end > len(backing) {
		end = len(backing)
	}
	if end < start {
		end = start
	}
	return Fragment{backing: backing, start: start, end: end}
}

// WholeFragment wraps an entire string as a fragment.
func WholeFragment(s string) Fragment {
	return Fragment{backing: s, start: 0, end: len(s)}
}

// String materializes the fragment's bytes.
func (f Fragment) String() string {
	if f.backing == "" {
		return ""
	}
	return f.backing[f.start:f.end]
}

// Len returns the fragment's byte length.
func (f Fragment) Len() int { return f.end - f.start }

// Empty reports whether the fragment spans zero bytes.
func (f Fragment) Empty() bool { return f.end == f.start }

// Sub returns a fragment covering this fragment's [start,end) byte range,
// relative to its own bounds.
func (f Fragment) Sub(start, end int) Fragment {
	return NewFragment(f.backing, f.start+start, f.start+end)
}
