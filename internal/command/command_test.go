package command

import (
	"context"
	"strings"
	"testing"
)

func TestParseDistinguishesCommandSQLAndEmpty(t *testing.T) {
	cases := []struct {
		line string
		kind LineKind
	}{
		{":goto 10", LineCommand},
		{";select * from logs", LineSQL},
		{"   ", LineEmpty},
		{"", LineEmpty},
	}
	for _, c := range cases {
		got := Parse(c.line)
		if got.Kind != c.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", c.line, got.Kind, c.kind)
		}
	}
}

func TestParseCommandSplitsVerbAndArgs(t *testing.T) {
	p := Parse(":filter-in  error.*timeout ")
	if p.Verb != "filter-in" {
		t.Fatalf("Verb = %q, want filter-in", p.Verb)
	}
	if len(p.Args) != 1 || p.Args[0] != "error.*timeout" {
		t.Fatalf("Args = %v, want [error.*timeout]", p.Args)
	}
}

func TestDispatchUnknownVerb(t *testing.T) {
	d := NewDispatcher()
	_, err := d.Dispatch(context.Background(), ":bogus-verb")
	um, ok := AsUserMessage(err)
	if !ok || um.Kind != KindError {
		t.Fatalf("expected KindError UserMessage, got %v", err)
	}
}

func TestDispatchSQLWithoutEngineConfigured(t *testing.T) {
	d := NewDispatcher()
	_, err := d.Dispatch(context.Background(), ";select 1")
	if err == nil {
		t.Fatalf("expected error when no SQL engine is configured")
	}
}

func TestDispatchSQLDelegatesToHandler(t *testing.T) {
	d := NewDispatcher()
	var gotSQL string
	d.SQL = func(_ context.Context, sql string) (string, error) {
		gotSQL = sql
		return "1 row", nil
	}
	out, err := d.Dispatch(context.Background(), ";select 1")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if gotSQL != "select 1" || out != "1 row" {
		t.Fatalf("got sql=%q out=%q", gotSQL, out)
	}
}

func TestEchoVerb(t *testing.T) {
	d := NewDispatcher()
	out, err := d.Dispatch(context.Background(), ":echo hello world")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if strings.TrimRight(out, "\n") != "hello world" {
		t.Fatalf("echo output = %q", out)
	}
}

func TestEchoVerbSuppressesNewlineWithDashN(t *testing.T) {
	d := NewDispatcher()
	out, err := d.Dispatch(context.Background(), ":echo -n hello")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if out != "hello" {
		t.Fatalf("echo -n output = %q, want %q", out, "hello")
	}
}

func TestEchoVerbRequiresArgument(t *testing.T) {
	d := NewDispatcher()
	_, err := d.Dispatch(context.Background(), ":echo")
	if err == nil {
		t.Fatalf("expected arity error for :echo with no arguments")
	}
}

func TestHelpListsAllVerbs(t *testing.T) {
	d := NewDispatcher()
	out, err := d.Dispatch(context.Background(), ":help")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !strings.Contains(out, ":echo") {
		t.Fatalf("expected :help listing to include :echo, got %q", out)
	}
}

func TestHelpForSpecificVerb(t *testing.T) {
	d := NewDispatcher()
	out, err := d.Dispatch(context.Background(), ":help echo")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !strings.Contains(out, "Print a message") {
		t.Fatalf("expected help text summary, got %q", out)
	}
}

func TestBuiltinsRegistryCoversSpecVerbs(t *testing.T) {
	builtins := Builtins()
	want := []string{"goto", "filter-in", "filter-out", "open", "quit", "adjust-log-time"}
	have := map[string]bool{}
	for _, h := range builtins {
		have[h.Name] = true
	}
	for _, w := range want {
		if !have[w] {
			t.Errorf("expected builtin verb %q to be registered", w)
		}
	}
}

func TestCheckArityRejectsTooFewRequiredArgs(t *testing.T) {
	help := Command(":goto", "").WithParameters(Param("line", ""))
	if err := checkArity(help, nil); err == nil {
		t.Fatalf("expected arity error for missing required parameter")
	}
}

func TestCheckArityAcceptsZeroOrMoreWithNoArgs(t *testing.T) {
	help := Command(":hide-file", "").WithParameters(Param("path", "").ZeroOrMore())
	if err := checkArity(help, nil); err != nil {
		t.Fatalf("expected no error for zero-or-more with no args, got %v", err)
	}
}

func TestUserMessageImplementsError(t *testing.T) {
	var err error = NewError("boom")
	if err.Error() != "boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
