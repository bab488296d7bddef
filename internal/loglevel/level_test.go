package loglevel

import "testing"

func TestFlagsIndependentOfBase(t *testing.T) {
	l := Error.With(Mark).With(TimeSkew)
	if l.Base() != Error {
		t.Fatalf("base = %v, want Error", l.Base())
	}
	if !l.Has(Mark) || !l.Has(TimeSkew) {
		t.Fatalf("expected both flags set: %v", l)
	}
	if l.Has(Continued) {
		t.Fatalf("Continued should not be set")
	}
	l = l.Without(Mark)
	if l.Has(Mark) {
		t.Fatalf("Mark should have been cleared")
	}
	if !l.Has(TimeSkew) {
		t.Fatalf("TimeSkew should survive clearing Mark")
	}
}

func TestAtLeastIgnoresFlags(t *testing.T) {
	warn := Warning.With(Continued)
	if !warn.AtLeast(Info) {
		t.Fatalf("warning should satisfy an info threshold")
	}
	if warn.AtLeast(Error) {
		t.Fatalf("warning should not satisfy an error threshold")
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := map[string]Level{
		"INFO": Info, "warn": Warning, "ERROR": Error, "crit": Critical,
	}
	for name, want := range cases {
		if got := Parse(name); got != want {
			t.Fatalf("Parse(%q) = %v, want %v", name, got, want)
		}
	}
	if Parse("not-a-level") != Unknown {
		t.Fatalf("unrecognized name should map to Unknown")
	}
}

func TestValid(t *testing.T) {
	if !Error.Valid() {
		t.Fatalf("Error should be valid")
	}
	if !Warning.With(Mark).Valid() {
		t.Fatalf("flags should not affect validity")
	}
}
