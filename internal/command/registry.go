package command

import (
	"context"
	"sort"
)

// Handler executes one verb invocation. Success is reported as an output
// string (possibly empty) with a nil error; failure as a non-nil
// error, which should be a *UserMessage so the dispatcher can surface its
// Kind/Snippets/Help, per spec.md §7's `Result<T, user_message>`.
type Handler func(ctx context.Context, args []string) (string, error)

// Verb is one registered `:<name>` command.
type Verb struct {
	Help HelpText
	Run  Handler
}

// Registry holds every known verb, keyed by name, for dispatch and for the
// `:help` command's listing.
type Registry struct {
	verbs map[string]*Verb
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]*Verb)}
}

// Register adds or replaces a verb. The verb's HelpText.Name is the
// dispatch key.
func (r *Registry) Register(v Verb) {
	r.verbs[v.Help.Name] = &v
}

// Lookup returns the verb registered under name, if any.
func (r *Registry) Lookup(name string) (*Verb, bool) {
	v, ok := r.verbs[name]
	return v, ok
}

// Names returns every registered verb name, sorted, for listing/completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.verbs))
	for n := range r.verbs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// checkArity validates args against help's parameter list, matching them
// positionally: a NargsRequired parameter consumes exactly one argument, an
// NargsOptional parameter consumes zero or one, and a NargsZeroOrMore/
// NargsOneOrMore parameter (which must be last) consumes every remaining
// argument.
func checkArity(help HelpText, args []string) error {
	i := 0
	for _, p := range help.Parameters {
		remaining := len(args) - i
		switch p.Nargs {
		case NargsRequired:
			if remaining < 1 {
				return NewErrorf("%s: missing required argument <%s>", help.Name, p.Name).WithHelp(&help)
			}
			i++
		case NargsOptional:
			if remaining > 0 {
				i++
			}
		case NargsZeroOrMore:
			i = len(args)
		case NargsOneOrMore:
			if remaining < 1 {
				return NewErrorf("%s: expected one or more <%s>", help.Name, p.Name).WithHelp(&help)
			}
			i = len(args)
		}
	}
	if len(help.Parameters) == 0 && len(args) > 0 {
		return NewErrorf("%s: takes no arguments", help.Name).WithHelp(&help)
	}
	return nil
}
