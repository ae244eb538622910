// Package lower implements the assembly lowerer: it expands a parsed OIL
// program into abstract x86-64 instructions using the stack-machine
// convention of spec.md §4.2, wraps it in a prologue/epilogue, and emits
// trampoline calls for any command that needs host-side help. Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/OilToAsm*.cpp and
// OilCommandAsmCompiler.{hpp,cpp}.
package lower

import "fmt"

// LowerError reports a command with no registered expansion (spec.md §7).
type LowerError struct {
	Command string
}

func (e *LowerError) Error() string {
	return fmt.Sprintf("lower: no expansion registered for command %q", e.Command)
}

func errUnsupported(command string) error { return &LowerError{Command: command} }

// ArgError reports a literal argument that parses but is out of range for
// an otherwise-recognized command (a Rotate count below 1). A lexeme that
// does not parse at all (e.g. PushInt with a non-numeric lexeme) is
// reported as the strconv error wrapped with the command name instead.
// The OIL parser defers literal parsing to this stage per spec.md §4.1.
type ArgError struct {
	Command string
	Lexeme  string
	Reason  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("lower: command %q has a malformed argument %q: %s", e.Command, e.Lexeme, e.Reason)
}
