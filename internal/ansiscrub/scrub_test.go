package ansiscrub

import (
	"testing"

	"github.com/five82/chronoview/internal/attrline"
)

// TestScrubScenario3 matches spec.md section 8 scenario 3 exactly: a blue
// background run followed by a yellow foreground run, closed by a full
// reset.
func TestScrubScenario3(t *testing.T) {
	in := "Hello\x1b[44m, \x1b[33mWorld\x1b[0m!"
	out, attrs := Scrub(in)

	if out != "Hello, World!" {
		t.Fatalf("unexpected scrubbed text: %q", out)
	}

	var bg, fg *attrline.Attr
	for i := range attrs {
		a := &attrs[i]
		switch a.Type {
		case attrline.TypeBackground:
			bg = a
		case attrline.TypeForeground:
			fg = a
		}
	}
	if bg == nil || fg == nil {
		t.Fatalf("missing expected style attrs: %+v", attrs)
	}
	if bg.Range != attrline.NewRange(5, 7) {
		t.Fatalf("bg range = %+v, want [5,7)", bg.Range)
	}
	if bg.Value.Int64() != 4 { // 44 - 40 = blue
		t.Fatalf("bg value = %d, want 4 (blue)", bg.Value.Int64())
	}
	if fg.Range != attrline.NewRange(7, 12) {
		t.Fatalf("fg range = %+v, want [7,12)", fg.Range)
	}
	if fg.Value.Int64() != 3 { // 33 - 30 = yellow
		t.Fatalf("fg value = %d, want 3 (yellow)", fg.Value.Int64())
	}
}

func TestScrubUnterminatedFlushesToEnd(t *testing.T) {
	in := "plain\x1b[1mbold tail"
	out, attrs := Scrub(in)
	if out != "plainbold tail" {
		t.Fatalf("unexpected text: %q", out)
	}
	if len(attrs) != 1 {
		t.Fatalf("expected 1 attr, got %d: %+v", len(attrs), attrs)
	}
	if attrs[0].Range.Start != 5 || !attrs[0].Range.Open() {
		t.Fatalf("unterminated style should flush with an open (-1) end, got %+v", attrs[0].Range)
	}
}

func TestScrubMalformedEscapeCopiedVerbatim(t *testing.T) {
	in := "abc\x1bdef"
	out, _ := Scrub(in)
	if out != in {
		t.Fatalf("malformed escape should be preserved verbatim, got %q", out)
	}
}

func Test256ColorAndTruecolor(t *testing.T) {
	in := "\x1b[38;5;202mfg256\x1b[0m\x1b[48;2;10;20;30mtruebg\x1b[0m"
	out, attrs := Scrub(in)
	if out != "fg256truebg" {
		t.Fatalf("unexpected text: %q", out)
	}
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d: %+v", len(attrs), attrs)
	}
	fg := attrs[0]
	if fg.Value.Int64() != 0x10000|202 {
		t.Fatalf("256-color fg value wrong: %x", fg.Value.Int64())
	}
	bg := attrs[1]
	want := int64(0x1000000 | (10 << 16) | (20 << 8) | 30)
	if bg.Value.Int64() != want {
		t.Fatalf("truecolor bg value wrong: got %x want %x", bg.Value.Int64(), want)
	}
}

func TestCustomRoleEscape(t *testing.T) {
	in := "plain\x1b[7Otagged\x1b[0m"
	out, attrs := Scrub(in)
	if out != "plaintagged" {
		t.Fatalf("unexpected text: %q", out)
	}
	found := false
	for _, a := range attrs {
		if a.Type == attrline.TypeRole {
			found = true
			if a.Value.RoleOf() != attrline.Role(7) {
				t.Fatalf("role value = %d, want 7", a.Value.RoleOf())
			}
			if a.Range != attrline.NewRange(5, 11) {
				t.Fatalf("role range = %+v, want [5,11)", a.Range)
			}
		}
	}
	if !found {
		t.Fatalf("no role attribute produced")
	}
}

// TestScrubIsIdempotent matches spec.md section 8's round-trip invariant:
// scrubbing already-scrubbed text is a no-op, since nothing left in the
// output looks like an escape sequence.
func TestScrubIsIdempotent(t *testing.T) {
	in := "Hello\x1b[44m, \x1b[33mWorld\x1b[0m!"
	once, onceAttrs := Scrub(in)
	twice, twiceAttrs := Scrub(once)
	if once != twice {
		t.Fatalf("scrub not idempotent: %q vs %q", once, twice)
	}
	if len(twiceAttrs) != 0 {
		t.Fatalf("re-scrubbing plain text should produce no attrs, got %+v", twiceAttrs)
	}
	if len(onceAttrs) != 2 {
		t.Fatalf("expected 2 attrs from first scrub, got %d", len(onceAttrs))
	}
}

func TestErasedLen(t *testing.T) {
	in := "Hello\x1b[44m, \x1b[33mWorld\x1b[0m!"
	if got := ErasedLen(in); got != len(in)-len("Hello, World!") {
		t.Fatalf("ErasedLen = %d, want %d", got, len(in)-len("Hello, World!"))
	}
}
