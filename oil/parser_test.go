package oil_test

import (
	"testing"

	"github.com/ovum-lang/oiljit/oil"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	lexeme string
	tag    string
}

func (f fakeToken) Lexeme() string  { return f.lexeme }
func (f fakeToken) TypeTag() string { return f.tag }

func ident(s string) oil.Token  { return fakeToken{s, "IDENT"} }
func literal(s string) oil.Token { return fakeToken{s, "LITERAL_NUMBER"} }

func TestParse_ZeroArity(t *testing.T) {
	ops, err := oil.Parse([]oil.Token{ident("IntAdd")})
	require.NoError(t, err)
	require.Equal(t, []oil.PackedOp{{Command: "IntAdd"}}, ops)
}

func TestParse_EveryVocabularyEntryWithCorrectArity(t *testing.T) {
	for name, arity := range oil.Vocabulary {
		var toks []oil.Token
		toks = append(toks, ident(name))
		var want oil.PackedOp
		want.Command = name
		if arity != oil.ArityZero {
			toks = append(toks, literal("7"))
			want.Args = []string{"7"}
		}
		ops, err := oil.Parse(toks)
		require.NoErrorf(t, err, "command %s", name)
		require.Lenf(t, ops, 1, "command %s", name)
		require.Equal(t, want, ops[0], "command %s", name)
	}
}

func TestParse_SkipsNonIdentTokensBeforeCommand(t *testing.T) {
	junk := fakeToken{"//comment", "COMMENT"}
	ops, err := oil.Parse([]oil.Token{junk, ident("Pop")})
	require.NoError(t, err)
	require.Equal(t, []oil.PackedOp{{Command: "Pop"}}, ops)
}

func TestParse_UnknownCommand(t *testing.T) {
	_, err := oil.Parse([]oil.Token{ident("Frobnicate")})
	require.Error(t, err)
	var perr *oil.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, oil.UnknownCommand, perr.Kind)
}

func TestParse_ArgumentMissing_EndOfInput(t *testing.T) {
	_, err := oil.Parse([]oil.Token{ident("PushInt")})
	require.Error(t, err)
	var perr *oil.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, oil.ArgumentMissing, perr.Kind)
}

func TestParse_ArgumentMissing_NotALiteral(t *testing.T) {
	_, err := oil.Parse([]oil.Token{ident("PushInt"), ident("IntAdd")})
	require.Error(t, err)
	var perr *oil.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, oil.ArgumentMissing, perr.Kind)
}

func TestParse_MultipleCommands(t *testing.T) {
	ops, err := oil.Parse([]oil.Token{
		ident("PushInt"), literal("2"),
		ident("PushInt"), literal("3"),
		ident("IntAdd"),
	})
	require.NoError(t, err)
	require.Equal(t, []oil.PackedOp{
		{Command: "PushInt", Args: []string{"2"}},
		{Command: "PushInt", Args: []string{"3"}},
		{Command: "IntAdd"},
	}, ops)
}
