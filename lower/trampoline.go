package lower

import (
	"github.com/ovum-lang/oiljit/asmir"
	"github.com/ovum-lang/oiljit/databuffer"
)

// trampolineCall emits the instruction sequence of spec.md §4.2's
// trampoline generator: spill caller-saved state into the DataBuffer,
// realign the stack for the ABI, load the operation code and current RSP
// into the argument registers, call the host trampoline indirectly
// through an absolute address, install the (possibly adjusted) returned
// RSP, and reload the spilled registers.
func (o Options) trampolineCall(op OpCode) []asmir.AsmInstr {
	r14 := asmir.R14
	var ins []asmir.AsmInstr

	spillRegs := []struct {
		reg asmir.Register
		off int32
	}{
		{asmir.RAX, databuffer.OffRAX},
		{asmir.RCX, databuffer.OffRCX},
		{asmir.RDX, databuffer.OffRDX},
		{asmir.RSI, databuffer.OffRSI},
		{asmir.RDI, databuffer.OffRDI},
		{asmir.R8, databuffer.OffR8},
		{asmir.R9, databuffer.OffR9},
		{asmir.R10, databuffer.OffR10},
		{asmir.R11, databuffer.OffR11},
	}
	for _, s := range spillRegs {
		ins = append(ins, asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(r14, s.off)), asmir.OpReg(s.reg)))
	}

	if o.ABI.ShadowSpace > 0 {
		ins = append(ins, asmir.I(asmir.SUB, asmir.OpReg(asmir.RSP), asmir.OpImm(int64(o.ABI.ShadowSpace))))
	} else {
		// System V: align RSP to 16 bytes by subtracting RSP&8, per
		// spec.md §4.2 step 2.
		ins = append(ins,
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RBX), asmir.OpReg(asmir.RSP)),
			asmir.I(asmir.AND, asmir.OpReg(asmir.RBX), asmir.OpImm(8)),
			asmir.I(asmir.SUB, asmir.OpReg(asmir.RSP), asmir.OpReg(asmir.RBX)),
		)
	}

	ins = append(ins,
		asmir.I(asmir.MOV, asmir.OpReg(o.ABI.TrampolineArg2), asmir.OpImm(int64(op))),
		asmir.I(asmir.MOV, asmir.OpReg(o.ABI.TrampolineArg1), asmir.OpReg(asmir.RSP)),
		asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpUImm(o.HostTrampolineAddr)),
		asmir.I(asmir.CALL, asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.MOV, asmir.OpReg(asmir.RSP), asmir.OpReg(asmir.RAX)),
	)

	for i := len(spillRegs) - 1; i >= 0; i-- {
		s := spillRegs[i]
		ins = append(ins, asmir.I(asmir.MOV, asmir.OpReg(s.reg), asmir.OpMem(asmir.Addr(r14, s.off))))
	}
	return ins
}
