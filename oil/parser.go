package oil

import "strings"

func isIdent(t Token) bool   { return strings.Contains(t.TypeTag(), "IDENT") }
func isLiteral(t Token) bool { return strings.Contains(t.TypeTag(), "LITERAL") }

// Parse turns a flat token sequence into an ordered PackedOp list. It
// implements the algorithm of spec.md §4.1: skip non-IDENT tokens before an
// expected command; on an identifier, look it up in Vocabulary; if it takes
// an argument, consume and require the next token to be a literal; unknown
// identifiers and missing arguments are parse errors. End of input while no
// command is mid-parse is not an error.
func Parse(tokens []Token) ([]PackedOp, error) {
	var ops []PackedOp
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if !isIdent(tok) {
			i++
			continue
		}
		name := tok.Lexeme()
		arity, ok := Vocabulary[name]
		if !ok {
			return nil, &ParseError{Kind: UnknownCommand, Command: name}
		}
		i++
		if arity == ArityZero {
			ops = append(ops, PackedOp{Command: name})
			continue
		}
		if i >= len(tokens) {
			return nil, &ParseError{Kind: ArgumentMissing, Command: name, Detail: "reached end of input"}
		}
		argTok := tokens[i]
		if !isLiteral(argTok) {
			return nil, &ParseError{Kind: ArgumentMissing, Command: name, Detail: "expected a literal argument"}
		}
		i++
		ops = append(ops, PackedOp{Command: name, Args: []string{argTok.Lexeme()}})
	}
	return ops, nil
}
