package command

import "fmt"

// Kind classifies a UserMessage the way spec.md §7 does: error, warning, or
// informational — never fatal, since a UserMessage is how a non-fatal
// operation result is surfaced.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindInfo
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Snippet is an offending fragment of input text, with the byte range that
// should be underlined in the status bar/help panel, per spec.md §7
// "Compilation" error kind ("the offending token underlined in the
// snippet").
type Snippet struct {
	Text           string
	UnderlineStart int
	UnderlineEnd   int
}

// UserMessage is the typed, non-fatal result every core operation in
// spec.md §7 returns instead of an error: `Result<T, user_message>`.
// UserMessage implements error so command Handlers can return it directly
// as a Go error value.
type UserMessage struct {
	Kind     Kind
	Reason   string
	Snippets []Snippet
	Help     *HelpText
}

// Error implements the error interface, returning the message's reason.
func (m *UserMessage) Error() string {
	return m.Reason
}

// NewError builds a KindError UserMessage.
func NewError(reason string) *UserMessage {
	return &UserMessage{Kind: KindError, Reason: reason}
}

// NewErrorf builds a KindError UserMessage from a format string.
func NewErrorf(format string, args ...any) *UserMessage {
	return NewError(fmt.Sprintf(format, args...))
}

// NewWarning builds a KindWarning UserMessage.
func NewWarning(reason string) *UserMessage {
	return &UserMessage{Kind: KindWarning, Reason: reason}
}

// NewInfo builds a KindInfo UserMessage.
func NewInfo(reason string) *UserMessage {
	return &UserMessage{Kind: KindInfo, Reason: reason}
}

// WithSnippet attaches a snippet to the message and returns it, for
// chaining at the call site.
func (m *UserMessage) WithSnippet(s Snippet) *UserMessage {
	m.Snippets = append(m.Snippets, s)
	return m
}

// WithHelp attaches the help text for the verb/expression this message
// concerns.
func (m *UserMessage) WithHelp(h *HelpText) *UserMessage {
	m.Help = h
	return m
}

// AsUserMessage unwraps err into a *UserMessage if it is one (directly or
// via errors chains would require errors.As; callers that built messages
// with this package always get a direct *UserMessage back).
func AsUserMessage(err error) (*UserMessage, bool) {
	um, ok := err.(*UserMessage)
	return um, ok
}

