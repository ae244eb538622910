package peephole_test

import (
	"testing"

	"github.com/ovum-lang/oiljit/asmir"
	"github.com/ovum-lang/oiljit/peephole"
	"github.com/stretchr/testify/require"
)

func TestRemovesCleanPushPopPair(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(1)),
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.NOP),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.RET),
	}
	got := peephole.Optimize(instrs)
	require.Equal(t, []asmir.AsmInstr{
		asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(1)),
		asmir.I(asmir.NOP),
		asmir.I(asmir.RET),
	}, got)
}

func TestKeepsPairWhenRAXUsedBetween(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.ADD, asmir.OpReg(asmir.RBX), asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
	}
	got := peephole.Optimize(instrs)
	require.Equal(t, instrs, got)
}

func TestKeepsUnmatchedPush(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.RET),
	}
	got := peephole.Optimize(instrs)
	require.Equal(t, instrs, got)
}

func TestIgnoresOtherRegisterPushPop(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RBX)),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
	}
	got := peephole.Optimize(instrs)
	require.Equal(t, instrs, got)
}

func TestIdempotent(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.NOP),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
	}
	once := peephole.Optimize(instrs)
	twice := peephole.Optimize(once)
	require.Equal(t, once, twice)
}

func TestContinuesScanningAfterRemovedPair(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
	}
	got := peephole.Optimize(instrs)
	require.Empty(t, got)
}
