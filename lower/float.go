package lower

import "github.com/ovum-lang/oiljit/asmir"

// addFloatOps registers the double-precision floating point commands.
// Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/OilToAsmFloatOperations.cpp,
// which transports float bit-patterns through RAX/the hardware stack and
// moves them to/from XMM0/XMM1 with MOVQ for the actual SSE2 arithmetic.
// FloatSqrt is deliberately absent here — see opcode.go's OpFloatSqrt and
// SPEC_FULL.md §D: it is routed through the trampoline for uniformity
// rather than encoded as an inline SQRTSD, even though the encoder can
// produce one.
func addFloatOps(reg map[string]expander) {
	binop := func(op asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM1), asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.RAX)),
				asmir.I(op, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.XMM1)),
				asmir.I(asmir.MOVQ, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.XMM0)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}
	reg["FloatAdd"] = binop(asmir.ADDSD)
	reg["FloatSubtract"] = binop(asmir.SUBSD)
	reg["FloatMultiply"] = binop(asmir.MULSD)
	reg["FloatDivide"] = binop(asmir.DIVSD)

	reg["FloatNegate"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.XOR, asmir.OpReg(asmir.RBX), asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM1), asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.SUBSD, asmir.OpReg(asmir.XMM1), asmir.OpReg(asmir.XMM0)),
			asmir.I(asmir.MOVQ, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.XMM1)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	cmp := func(setcc asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM1), asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.MOVQ, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.UCOMISD, asmir.OpReg(asmir.XMM0), asmir.OpReg(asmir.XMM1)),
				asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
				asmir.I(setcc, asmir.OpReg(asmir.AL)),
				asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}
	reg["FloatEqual"] = cmp(asmir.SETE)
	reg["FloatNotEqual"] = cmp(asmir.SETNE)
	reg["FloatLessThan"] = cmp(asmir.SETB)
	reg["FloatLessEqual"] = cmp(asmir.SETBE)
	reg["FloatGreaterThan"] = cmp(asmir.SETA)
	reg["FloatGreaterEqual"] = cmp(asmir.SETAE)
}
