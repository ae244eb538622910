package lower

import "github.com/ovum-lang/oiljit/asmir"

// addByteOps registers the 8-bit unsigned byte arithmetic and comparison
// commands. Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/OilToAsmByteOperations.cpp,
// which operates on the AL/BL halves of RAX/RBX and re-widens the result
// with MOVZX before pushing, and uses the AX:BL unsigned DIV form for
// ByteDivide/ByteModulo.
func addByteOps(reg map[string]expander) {
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
	cmp := func(setcc asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.CMP, asmir.OpReg(asmir.AL), asmir.OpReg(asmir.BL)),
				asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
				asmir.I(setcc, asmir.OpReg(asmir.AL)),
				asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}

	reg["ByteAdd"] = binop(asmir.ADD)
	reg["ByteSubtract"] = binop(asmir.SUB)
	reg["ByteMultiply"] = binop(asmir.IMUL)

	divmod := func(pushResult func() []asmir.AsmInstr) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			ins := []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.XOR, asmir.OpReg(asmir.AH), asmir.OpReg(asmir.AH)),
				asmir.I(asmir.DIV, asmir.OpReg(asmir.BL)),
			}
			ins = append(ins, pushResult()...)
			return ins, nil
		}
	}
	reg["ByteDivide"] = divmod(func() []asmir.AsmInstr {
		return []asmir.AsmInstr{
			asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}
	})
	reg["ByteModulo"] = divmod(func() []asmir.AsmInstr {
		// AH holds the remainder, but AH can't be named once a REX prefix is
		// present (any 64-bit-destination MOVZX forces REX.W); move it down
		// to AL first, which stays legacy-addressable, then widen from AL.
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.AL), asmir.OpReg(asmir.AH)),
			asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}
	})

	reg["ByteEqual"] = cmp(asmir.SETE)
	reg["ByteNotEqual"] = cmp(asmir.SETNE)
	reg["ByteLessThan"] = cmp(asmir.SETB)
	reg["ByteLessEqual"] = cmp(asmir.SETBE)
	reg["ByteGreaterThan"] = cmp(asmir.SETA)
	reg["ByteGreaterEqual"] = cmp(asmir.SETAE)
}
