package attrline

import "testing"

func TestAppendAttr(t *testing.T) {
	st := New()
	st.Append("hello ")
	st.AppendAttr("world", TypeRole, RoleValue(RoleError))

	if st.String() != "hello world" {
		t.Fatalf("unexpected text: %q", st.String())
	}
	if len(st.Attrs()) != 1 {
		t.Fatalf("expected 1 attr, got %d", len(st.Attrs()))
	}
	got := st.Attrs()[0].Range
	want := NewRange(6, 11)
	if got != want {
		t.Fatalf("range = %+v, want %+v", got, want)
	}
}

// TestInsertShiftsLaterAttrs covers the StyledText shift invariant from
// spec.md section 8: attributes at or after the insert point advance by
// the inserted length, earlier ones are untouched.
func TestInsertShiftsLaterAttrs(t *testing.T) {
	st := New()
	st.AppendAttr("before", TypeBody, Value{})
	st.AppendAttr("after", TypeBody, Value{})
	// "beforeafter": before=[0,6) after=[6,11)

	ins := New().Append("XXX")
	st.Insert(6, ins)

	text := st.String()
	if text != "beforeXXXafter" {
		t.Fatalf("unexpected text: %q", text)
	}

	attrs := st.Attrs()
	if attrs[0].Range != NewRange(0, 6) {
		t.Fatalf("first attr moved: %+v", attrs[0].Range)
	}
	if attrs[1].Range != NewRange(9, 14) {
		t.Fatalf("second attr not shifted correctly: %+v", attrs[1].Range)
	}
}

func TestInsertShiftGeneric(t *testing.T) {
	for _, pos := range []int{0, 3, 7} {
		st := New()
		st.AppendAttr("0123456", TypeBody, Value{})
		k := 4
		ins := New().Append("ABCD")
		before := st.Attrs()[0].Range
		st.Insert(pos, ins)
		after := st.Attrs()[0].Range
		if before.Start >= pos {
			if after.Start != before.Start+k {
				t.Fatalf("pos=%d: start not shifted: before=%d after=%d", pos, before.Start, after.Start)
			}
		} else if after.Start != before.Start {
			t.Fatalf("pos=%d: start moved unexpectedly", pos)
		}
	}
}

func TestEraseRemovesAndClips(t *testing.T) {
	st := New()
	st.Append("0123456789")
	st.WithAttr(Attr{Range: NewRange(2, 5), Type: TypeBody})
	st.WithAttr(Attr{Range: NewRange(6, 9), Type: TypeBody})

	st.Erase(3, 4) // remove bytes [3,7) -> "012789"
	if st.String() != "012789" {
		t.Fatalf("unexpected text after erase: %q", st.String())
	}
	// First attr [2,5) straddles the cut [3,7): should clip to [2,3)
	if st.Attrs()[0].Range != NewRange(2, 3) {
		t.Fatalf("clipped range wrong: %+v", st.Attrs()[0].Range)
	}
	// Second attr [6,9) straddles the cut too (cut end=7): clipped then shifted by -4
	if st.Attrs()[1].Range != NewRange(3, 5) {
		t.Fatalf("second clipped+shifted range wrong: %+v", st.Attrs()[1].Range)
	}
}

func TestWrapScenario1(t *testing.T) {
	st := FromString("This line, right here, needs to be wrapped.")
	st.WithAttrForAll(TypeError, Value{})
	st.Wrap(WrapSettings{Indent: 3, Width: 21})

	want := "This line, right\n   here, needs to be\n   wrapped."
	if st.String() != want {
		t.Fatalf("wrap mismatch:\ngot:  %q\nwant: %q", st.String(), want)
	}
	// The error role must still be present (open range covering the whole
	// line survives wrapping even though new segments were introduced).
	found := false
	for _, a := range st.Attrs() {
		if a.Type == TypeError {
			found = true
		}
	}
	if !found {
		t.Fatalf("error attribute lost across wrap")
	}
}

func TestRangeOrdering(t *testing.T) {
	a := NewRange(5, 10)
	b := NewRange(5, 8)
	if !a.Less(b) {
		t.Fatalf("longer range at equal start should sort first")
	}
	c := Range{Start: 5, End: OpenEnd}
	if !c.Less(b) {
		t.Fatalf("open-ended range at equal start should sort first")
	}
}

func TestHexdumpRoundTrip(t *testing.T) {
	data := []byte("Hello, World!\x00\x01\xff")
	st := New()
	st.AppendHexdump(data)

	lines := splitLines(st.String())
	var decoded []byte
	for _, line := range lines {
		b, err := DecodeHexRow(line)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		decoded = append(decoded, b...)
	}
	if string(decoded) != string(data) {
		t.Fatalf("round trip failed: got %v want %v", decoded, data)
	}
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
