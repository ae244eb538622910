package lower_test

import (
	"testing"

	"github.com/ovum-lang/oiljit/asmir"
	"github.com/ovum-lang/oiljit/lower"
	"github.com/ovum-lang/oiljit/oil"
	"github.com/stretchr/testify/require"
)

func opts() lower.Options {
	return lower.Options{ABI: lower.SystemV, HostTrampolineAddr: 0x1000, Interner: lower.NewInterner()}
}

func TestLowerWrapsPrologueAndEpilogue(t *testing.T) {
	instrs, err := lower.Lower(nil, opts())
	require.NoError(t, err)
	require.Equal(t, lower.Prologue(lower.SystemV), instrs[:len(lower.Prologue(lower.SystemV))])
	require.Equal(t, asmir.RET, instrs[len(instrs)-1].Op)
}

func TestLowerIntegerAdd(t *testing.T) {
	ops := []oil.PackedOp{
		{Command: "PushInt", Args: []string{"2"}},
		{Command: "PushInt", Args: []string{"3"}},
		{Command: "IntAdd"},
	}
	instrs, err := lower.Lower(ops, opts())
	require.NoError(t, err)
	// Prologue (3) + 2*PushInt (2 each) + IntAdd (4) + Epilogue (4).
	require.Equal(t, 3+2*2+4+4, len(instrs))
}

func TestLowerUnknownCommand(t *testing.T) {
	_, err := lower.Lower([]oil.PackedOp{{Command: "NotARealCommand"}}, opts())
	require.Error(t, err)
}

func TestLowerMalformedLiteral(t *testing.T) {
	_, err := lower.Lower([]oil.PackedOp{{Command: "PushInt", Args: []string{"not-a-number"}}}, opts())
	require.Error(t, err)
}

func TestLowerBoolNot(t *testing.T) {
	instrs, err := lower.Lower([]oil.PackedOp{{Command: "BoolNot"}}, opts())
	require.NoError(t, err)
	require.Contains(t, opsOf(instrs), asmir.SETZ)
}

func TestLowerLocalRoundTrip(t *testing.T) {
	instrs, err := lower.Lower([]oil.PackedOp{
		{Command: "LoadLocal", Args: []string{"0"}},
		{Command: "SaveLocal", Args: []string{"1"}},
	}, opts())
	require.NoError(t, err)
	require.Contains(t, opsOf(instrs), asmir.SHL)
}

func TestLowerJumpEmitsLabelOperand(t *testing.T) {
	instrs, err := lower.Lower([]oil.PackedOp{
		{Command: "JumpIfFalse", Args: []string{"L0"}},
		{Command: "Jump", Args: []string{"L1"}},
	}, opts())
	require.NoError(t, err)
	var sawJE, sawJMP bool
	for _, ins := range instrs {
		if ins.Op == asmir.JE {
			require.Equal(t, "L0", ins.Operands[0].Label)
			sawJE = true
		}
		if ins.Op == asmir.JMP {
			require.Equal(t, "L1", ins.Operands[0].Label)
			sawJMP = true
		}
	}
	require.True(t, sawJE)
	require.True(t, sawJMP)
}

func TestLowerLabelEmitsLabelPseudoInstr(t *testing.T) {
	instrs, err := lower.Lower([]oil.PackedOp{{Command: "Label", Args: []string{"L0"}}}, opts())
	require.NoError(t, err)
	var saw bool
	for _, ins := range instrs {
		if ins.Op == asmir.LABEL {
			require.Equal(t, "L0", ins.Operands[0].Label)
			saw = true
		}
	}
	require.True(t, saw)
}

func TestLowerTrampolineCommandEmitsIndirectCall(t *testing.T) {
	instrs, err := lower.Lower([]oil.PackedOp{{Command: "Print"}}, opts())
	require.NoError(t, err)
	require.Contains(t, opsOf(instrs), asmir.CALL)
}

func TestLowerIdentArgTrampolineInternsName(t *testing.T) {
	o := opts()
	instrs, err := lower.Lower([]oil.PackedOp{{Command: "Call", Args: []string{"DoThing"}}}, o)
	require.NoError(t, err)
	require.Contains(t, opsOf(instrs), asmir.CALL)
	require.Equal(t, []string{"DoThing"}, o.Interner.Names())
}

func opsOf(instrs []asmir.AsmInstr) []asmir.Op {
	out := make([]asmir.Op, len(instrs))
	for i, ins := range instrs {
		out[i] = ins.Op
	}
	return out
}
