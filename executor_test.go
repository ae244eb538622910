package oiljit_test

import (
	"testing"

	"github.com/ovum-lang/oiljit"
	"github.com/ovum-lang/oiljit/oil"
	"github.com/ovum-lang/oiljit/runner"
	"github.com/stretchr/testify/require"
)

// fakeToken/tok mirror oil_test's own fixture: the OIL token stream is an
// external collaborator's concern (spec.md §1), so every caller of Parse
// builds its own minimal implementation rather than this module owning a
// tokenizer.
type fakeToken struct{ lexeme, tag string }

func (f fakeToken) Lexeme() string  { return f.lexeme }
func (f fakeToken) TypeTag() string { return f.tag }

func ident(s string) oil.Token   { return fakeToken{s, "IDENT"} }
func literal(s string) oil.Token { return fakeToken{s, "LITERAL"} }

// program builds a token stream from alternating command/argument pairs;
// an empty-string argument means the preceding command took none.
func program(pairs ...string) []oil.Token {
	var toks []oil.Token
	for i := 0; i < len(pairs); i += 2 {
		toks = append(toks, ident(pairs[i]))
		if pairs[i+1] != "" {
			toks = append(toks, literal(pairs[i+1]))
		}
	}
	return toks
}

type fixedFrame struct{ locals []runner.Value }

func (f fixedFrame) Locals() []runner.Value { return f.locals }

func TestScenario1_Identity(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("identity", nil)
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultVoid})
	require.NoError(t, err)
	require.Equal(t, runner.Value{}, v)
}

func TestScenario2_IntegerSum(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("sum", program("PushInt", "2", "PushInt", "3", "IntAdd", ""))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultInt64})
	require.NoError(t, err)
	require.Equal(t, int64(5), v.I64)
}

func TestScenario3_FloatMultiplication(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("mul", program("PushFloat", "2.5", "PushFloat", "4.0", "FloatMultiply", ""))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultFloat})
	require.NoError(t, err)
	require.Equal(t, 10.0, v.F64)
}

func TestScenario4_LocalPassthrough(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("passthrough", program("LoadLocal", "0"))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	frame := fixedFrame{locals: []runner.Value{{Kind: runner.KindI64, I64: 7}}}
	v, err := exec.Run(runner.PassedExecutionData{Frame: frame, ResultType: runner.ResultInt64})
	require.NoError(t, err)
	require.Equal(t, int64(7), v.I64)
}

func TestScenario5_ByteModuloWraparound(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("bytemod", program("PushByte", "250", "PushByte", "7", "ByteModulo", ""))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultByte})
	require.NoError(t, err)
	require.Equal(t, uint8(5), v.Byte)
}

func TestScenario6_ComparisonToBoolean(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("lessthan", program("PushInt", "4", "PushInt", "5", "IntLessThan", ""))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultBool})
	require.NoError(t, err)
	require.True(t, v.Bool)
}

func TestControlFlowJumpSkipsDeadCode(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("jump", program(
		"PushInt", "5",
		"Jump", "L1",
		"PushInt", "999",
		"Label", "L1",
	))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultInt64})
	require.NoError(t, err)
	require.Equal(t, int64(5), v.I64)
}

func TestControlFlowJumpIfFalseBranches(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("jumpiffalse", program(
		"PushBool", "false",
		"JumpIfFalse", "Lfalse",
		"PushInt", "111",
		"Jump", "Lend",
		"Label", "Lfalse",
		"PushInt", "222",
		"Label", "Lend",
	))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultInt64})
	require.NoError(t, err)
	require.Equal(t, int64(222), v.I64)
}

func TestControlFlowJumpIfTrueBranches(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("jumpiftrue", program(
		"PushBool", "true",
		"JumpIfTrue", "Ltrue",
		"PushInt", "111",
		"Jump", "Lend",
		"Label", "Ltrue",
		"PushInt", "333",
		"Label", "Lend",
	))
	require.True(t, exec.TryCompile())
	defer exec.Close()

	v, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultInt64})
	require.NoError(t, err)
	require.Equal(t, int64(333), v.I64)
}

func TestTryCompileIsIdempotent(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("empty", nil)
	require.True(t, exec.TryCompile())
	require.True(t, exec.TryCompile())
	require.Nil(t, exec.CompileError())
}

func TestTryCompileReportsParseFailure(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("bad", program("NotARealCommand", ""))
	require.False(t, exec.TryCompile())
	require.Error(t, exec.CompileError())
}

func TestRunBeforeCompileFails(t *testing.T) {
	f := oiljit.NewFactory()
	exec := f.Create("uncompiled", nil)
	_, err := exec.Run(runner.PassedExecutionData{Frame: fixedFrame{}, ResultType: runner.ResultVoid})
	require.Error(t, err)
}
