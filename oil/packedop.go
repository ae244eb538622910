package oil

// PackedOp is one parsed OIL command: its name from Vocabulary and the raw
// lexeme(s) of its literal argument, if any. Numeric parsing of the
// argument text is deferred to the lowerer, which knows the exact Go type
// each command needs (int64, float64, bool, rune, byte, ...).
type PackedOp struct {
	Command string
	Args    []string
}

// Arg returns the first argument lexeme, or "" if the command took none.
func (p PackedOp) Arg() string {
	if len(p.Args) == 0 {
		return ""
	}
	return p.Args[0]
}
