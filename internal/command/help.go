package command

// Context distinguishes what a HelpText describes, mirroring help_text.hh's
// help_context_t.
type Context int

const (
	ContextNone Context = iota
	ContextParameter
	ContextResult
	ContextCommand
	ContextSQLKeyword
	ContextSQLFunction
	ContextSQLTableValuedFunction
)

// Nargs describes how many times a parameter may appear, mirroring
// help_text.hh's help_nargs_t.
type Nargs int

const (
	NargsRequired Nargs = iota
	NargsOptional
	NargsZeroOrMore
	NargsOneOrMore
)

// Format hints how a parameter's text should be validated/highlighted,
// mirroring help_text.hh's help_parameter_format_t.
type Format int

const (
	FormatString Format = iota
	FormatRegex
	FormatInteger
	FormatNumber
	FormatDatetime
	FormatEnum
)

// Example is one `:verb args` -> result pairing shown in help output.
type Example struct {
	Command string
	Result  string
}

// HelpText describes a verb (or a SQL keyword/function, or a verb's
// parameter) for the `:help` command and the completion popup, per
// spec.md §6 ("each verb has a help text (name, summary, parameters with
// format hint and arity, examples, tags, opposites, enum values)") and
// SPEC_FULL.md §4's supplemented help-text registry.
type HelpText struct {
	Context     Context
	Name        string
	Summary     string
	Description string
	Parameters  []HelpText
	Results     []HelpText
	Examples    []Example
	Nargs       Nargs
	Format      Format
	EnumValues  []string
	Tags        []string
	Opposites   []string
}

// Command builds a command HelpText, stripping a leading ':' from name if
// present, per help_text.hh's constructor.
func Command(name, summary string) HelpText {
	if len(name) > 0 && name[0] == ':' {
		name = name[1:]
	}
	return HelpText{Context: ContextCommand, Name: name, Summary: summary}
}

// Param builds a required, string-format parameter HelpText.
func Param(name, summary string) HelpText {
	return HelpText{Context: ContextParameter, Name: name, Summary: summary}
}

// WithParameters returns a copy of h with the given parameters attached.
func (h HelpText) WithParameters(params ...HelpText) HelpText {
	for i := range params {
		params[i].Context = ContextParameter
	}
	h.Parameters = params
	return h
}

// WithExamples returns a copy of h with the given examples attached.
func (h HelpText) WithExamples(examples ...Example) HelpText {
	h.Examples = examples
	return h
}

// WithTags returns a copy of h with the given tags attached.
func (h HelpText) WithTags(tags ...string) HelpText {
	h.Tags = tags
	return h
}

// WithOpposites returns a copy of h with the given opposite verb names
// attached (e.g. `:filter-in` <-> `:filter-out`).
func (h HelpText) WithOpposites(opposites ...string) HelpText {
	h.Opposites = opposites
	return h
}

// Optional returns a copy of h marked as an optional parameter.
func (h HelpText) Optional() HelpText {
	h.Nargs = NargsOptional
	return h
}

// ZeroOrMore returns a copy of h marked as a repeatable (possibly absent)
// parameter.
func (h HelpText) ZeroOrMore() HelpText {
	h.Nargs = NargsZeroOrMore
	return h
}

// OneOrMore returns a copy of h marked as a repeatable (at least one)
// parameter.
func (h HelpText) OneOrMore() HelpText {
	h.Nargs = NargsOneOrMore
	return h
}

// WithFormat returns a copy of h with the given parameter format hint.
func (h HelpText) WithFormat(f Format) HelpText {
	h.Format = f
	return h
}

// WithEnumValues returns a copy of h with the given enum candidate values.
func (h HelpText) WithEnumValues(values ...string) HelpText {
	h.EnumValues = values
	return h
}
