package oil

import "fmt"

// ParseError is the taxonomy from spec.md §7: UnknownCommand,
// ArgumentMissing, UnexpectedEof, each carrying enough context to build a
// useful message without the caller needing to inspect the token stream
// itself.
type ParseError struct {
	Kind    ParseErrorKind
	Command string
	Detail  string
}

type ParseErrorKind uint8

const (
	UnknownCommand ParseErrorKind = iota
	ArgumentMissing
	UnexpectedEof
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownCommand:
		return fmt.Sprintf("oil: unknown command %q", e.Command)
	case ArgumentMissing:
		return fmt.Sprintf("oil: command %q is missing its required argument: %s", e.Command, e.Detail)
	case UnexpectedEof:
		return "oil: unexpected end of token stream"
	default:
		return "oil: parse error"
	}
}
