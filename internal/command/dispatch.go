package command

import (
	"context"
	"strings"
)

// LineKind distinguishes the two forms the command surface accepts, per
// spec.md §6: "the command dispatcher consumes strings of the form
// `:<verb> <args…>` and `;<sql>`".
type LineKind int

const (
	LineCommand LineKind = iota
	LineSQL
	LineEmpty
)

// ParsedLine is one tokenized input line.
type ParsedLine struct {
	Kind LineKind
	Verb string
	Args []string
	SQL  string
}

// Parse splits a raw prompt line into its command or SQL form.
func Parse(line string) ParsedLine {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return ParsedLine{Kind: LineEmpty}
	case trimmed[0] == ';':
		return ParsedLine{Kind: LineSQL, SQL: strings.TrimSpace(trimmed[1:])}
	case trimmed[0] == ':':
		fields := strings.Fields(trimmed[1:])
		if len(fields) == 0 {
			return ParsedLine{Kind: LineEmpty}
		}
		return ParsedLine{Kind: LineCommand, Verb: fields[0], Args: fields[1:]}
	default:
		// A bare line outside of `:`/`;` has no dispatch meaning at this
		// layer; callers (the search prompt) handle it directly.
		return ParsedLine{Kind: LineEmpty}
	}
}

// SQLHandler executes a `;<sql>` line; internal/sqlengine supplies the real
// implementation, keeping this package free of a SQL-engine dependency.
type SQLHandler func(ctx context.Context, sql string) (string, error)

// Dispatcher ties a Registry of verbs to a SQLHandler collaborator and
// exposes the single entry point the prompt calls on Enter.
type Dispatcher struct {
	Registry *Registry
	SQL      SQLHandler
}

// NewDispatcher builds a Dispatcher with the builtin verbs (`:help`,
// `:echo`) already registered.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{Registry: NewRegistry()}
	d.Registry.Register(helpVerb(d.Registry))
	d.Registry.Register(echoVerb())
	return d
}

// Dispatch parses and executes one prompt line, returning the verb's
// output or the *UserMessage/error it failed with.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (string, error) {
	parsed := Parse(line)
	switch parsed.Kind {
	case LineEmpty:
		return "", nil
	case LineSQL:
		if d.SQL == nil {
			return "", NewError("no SQL engine is configured")
		}
		return d.SQL(ctx, parsed.SQL)
	case LineCommand:
		v, ok := d.Registry.Lookup(parsed.Verb)
		if !ok {
			return "", NewErrorf("unknown command: %s", parsed.Verb)
		}
		if err := checkArity(v.Help, parsed.Args); err != nil {
			return "", err
		}
		return v.Run(ctx, parsed.Args)
	default:
		return "", nil
	}
}

func helpVerb(reg *Registry) Verb {
	help := Command(":help", "Show help for a command, or list all commands").
		WithParameters(Param("verb", "The command to show help for").Optional())
	return Verb{
		Help: help,
		Run: func(_ context.Context, args []string) (string, error) {
			if len(args) == 0 {
				var b strings.Builder
				for _, name := range reg.Names() {
					b.WriteString(":")
					b.WriteString(name)
					b.WriteString("\n")
				}
				return strings.TrimRight(b.String(), "\n"), nil
			}
			target, ok := reg.Lookup(strings.TrimPrefix(args[0], ":"))
			if !ok {
				return "", NewErrorf("no help for unknown command: %s", args[0])
			}
			return renderHelp(target.Help), nil
		},
	}
}

func renderHelp(h HelpText) string {
	var b strings.Builder
	b.WriteString(":")
	b.WriteString(h.Name)
	if h.Summary != "" {
		b.WriteString(" -- ")
		b.WriteString(h.Summary)
	}
	for _, p := range h.Parameters {
		b.WriteString("\n  <")
		b.WriteString(p.Name)
		b.WriteString("> ")
		b.WriteString(p.Summary)
	}
	for _, ex := range h.Examples {
		b.WriteString("\n  e.g. ")
		b.WriteString(ex.Command)
		if ex.Result != "" {
			b.WriteString(" -> ")
			b.WriteString(ex.Result)
		}
	}
	return b.String()
}

func echoVerb() Verb {
	help := Command(":echo", "Print a message to the status bar ([-n] suppresses the trailing newline)").
		WithParameters(Param("msg", "The message to print").OneOrMore()).
		WithExamples(Example{Command: ":echo hello", Result: "hello"})
	return Verb{
		Help: help,
		Run: func(_ context.Context, args []string) (string, error) {
			noNewline := false
			if len(args) > 0 && args[0] == "-n" {
				noNewline = true
				args = args[1:]
			}
			msg := strings.Join(args, " ")
			if noNewline {
				return msg, nil
			}
			return msg + "\n", nil
		},
	}
}
