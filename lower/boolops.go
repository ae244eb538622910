package lower

import "github.com/ovum-lang/oiljit/asmir"

// addBoolOps registers the boolean logic commands. Booleans live on the
// stack as zero-extended bytes in a 64-bit slot (spec.md §4.2), so the
// logic ops operate on AL/BL like the byte ops do and re-widen with MOVZX
// before pushing. Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/OilToAsmBooleanOperations.cpp.
func addBoolOps(reg map[string]expander) {
	binop := func(op asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(op, asmir.OpReg(asmir.AL), asmir.OpReg(asmir.BL)),
				asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}

	reg["BoolAnd"] = binop(asmir.AND)
	reg["BoolOr"] = binop(asmir.OR)
	reg["BoolXor"] = binop(asmir.XOR)

	reg["BoolNot"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.TEST, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
			asmir.I(asmir.SETZ, asmir.OpReg(asmir.AL)),
			asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["BoolEqual"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.CMP, asmir.OpReg(asmir.AL), asmir.OpReg(asmir.BL)),
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
			asmir.I(asmir.SETE, asmir.OpReg(asmir.AL)),
			asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	// BoolToByte is a no-op at the representation level: both are
	// zero-extended bytes in a 64-bit slot. Kept as an explicit,
	// separately-named expansion so the registry documents the command
	// rather than silently aliasing it to nothing.
	reg["BoolToByte"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}
}
