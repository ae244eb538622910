package amd64enc_test

import (
	"testing"

	"github.com/ovum-lang/oiljit/amd64enc"
	"github.com/ovum-lang/oiljit/asmir"
	"github.com/stretchr/testify/require"
)

func encodeOne(t *testing.T, ins asmir.AsmInstr) []byte {
	t.Helper()
	bytes, _, err := amd64enc.Encode([]asmir.AsmInstr{ins})
	require.NoError(t, err)
	return bytes
}

// Golden byte tests transcribed directly from spec.md §8.
func TestGolden(t *testing.T) {
	t.Run("MOV RAX, 0", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)))
		require.Equal(t, []byte{0x48, 0xC7, 0xC0, 0x00, 0x00, 0x00, 0x00}, got)
	})

	t.Run("PUSH RAX", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)))
		require.Equal(t, []byte{0x50}, got)
	})

	t.Run("POP RBX", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)))
		require.Equal(t, []byte{0x5B}, got)
	})

	t.Run("ADD RAX, RBX", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.ADD, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RBX)))
		require.Equal(t, []byte{0x48, 0x01, 0xD8}, got)
	})

	t.Run("ADDSD XMM0, XMM1", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.ADDSD, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.XMM1)))
		require.Equal(t, []byte{0xF2, 0x0F, 0x58, 0xC1}, got)
	})

	t.Run("MOVQ XMM0, RAX", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.RAX)))
		require.Equal(t, []byte{0x66, 0x48, 0x0F, 0x6E, 0xC0}, got)
	})

	t.Run("RET", func(t *testing.T) {
		got := encodeOne(t, asmir.I(asmir.RET))
		require.Equal(t, []byte{0xC3}, got)
	})
}

func TestLabelResolution_ForwardReference(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.I(asmir.JMP, asmir.OpLabelRef("target")),
		asmir.I(asmir.NOP),
		asmir.I(asmir.NOP),
		asmir.Label("target"),
		asmir.I(asmir.RET),
	}
	bytes, labels, err := amd64enc.Encode(instrs)
	require.NoError(t, err)
	require.Equal(t, byte(0xE9), bytes[0])
	placeholderOffset := 1
	wantRel := int32(labels["target"] - (placeholderOffset + 4))
	gotRel := int32(bytes[1]) | int32(bytes[2])<<8 | int32(bytes[3])<<16 | int32(bytes[4])<<24
	require.Equal(t, wantRel, gotRel)
	require.Equal(t, 7, labels["target"])
}

func TestLabelResolution_BackwardReference(t *testing.T) {
	instrs := []asmir.AsmInstr{
		asmir.Label("loop"),
		asmir.I(asmir.NOP),
		asmir.I(asmir.JMP, asmir.OpLabelRef("loop")),
	}
	bytes, labels, err := amd64enc.Encode(instrs)
	require.NoError(t, err)
	placeholderOffset := 2
	wantRel := int32(labels["loop"] - (placeholderOffset + 4))
	gotRel := int32(bytes[2]) | int32(bytes[3])<<8 | int32(bytes[4])<<16 | int32(bytes[5])<<24
	require.Equal(t, wantRel, gotRel)
	require.Equal(t, int32(-6), wantRel)
}

func TestUnresolvedLabel(t *testing.T) {
	_, _, err := amd64enc.Encode([]asmir.AsmInstr{asmir.I(asmir.JMP, asmir.OpLabelRef("nowhere"))})
	require.Error(t, err)
	var eerr *amd64enc.EncodeError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, amd64enc.UnresolvedLabel, eerr.Kind)
}

func TestMemoryOperand_NoBaseNoIndex(t *testing.T) {
	mem := asmir.MemAddr{Scale: 1, Displacement: 0x1000}
	got := encodeOne(t, asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(mem)))
	require.Equal(t, []byte{0x48, 0x8B, 0x04, 0x25, 0x00, 0x10, 0x00, 0x00}, got)
}

func TestMemoryOperand_BaseOnlyZeroDisp(t *testing.T) {
	got := encodeOne(t, asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.R11, 0))))
	require.Equal(t, []byte{0x49, 0x8B, 0x03}, got)
}

func TestMemoryOperand_RBPBaseZeroDispNeedsExplicitByte(t *testing.T) {
	got := encodeOne(t, asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.RBP, 0))))
	require.Equal(t, []byte{0x48, 0x8B, 0x45, 0x00}, got)
}

func TestALUWidthMismatchIsAnError(t *testing.T) {
	_, _, err := amd64enc.Encode([]asmir.AsmInstr{
		asmir.I(asmir.ADD, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
	})
	require.Error(t, err)
	var eerr *amd64enc.EncodeError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, amd64enc.OperandWidthMismatch, eerr.Kind)
}
