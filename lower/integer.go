package lower

import "github.com/ovum-lang/oiljit/asmir"

// addIntegerOps registers the 64-bit signed integer arithmetic,
// comparison, bitwise and shift commands. Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/OilToAsmIntegerOperations.cpp.
func addIntegerOps(reg map[string]expander) {
	binop := func(op asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(op, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}
	unop := func(op asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(op, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}
	cmp := func(setcc asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.CMP, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
				asmir.I(setcc, asmir.OpReg(asmir.AL)),
				asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}
	shift := func(op asmir.Op) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.MOV, asmir.OpReg(asmir.CL), asmir.OpReg(asmir.BL)),
				asmir.I(op, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.CL)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}, nil
		}
	}

	reg["IntAdd"] = binop(asmir.ADD)
	reg["IntSubtract"] = binop(asmir.SUB)
	reg["IntAnd"] = binop(asmir.AND)
	reg["IntOr"] = binop(asmir.OR)
	reg["IntXor"] = binop(asmir.XOR)
	reg["IntNegate"] = unop(asmir.NEG)
	reg["IntNot"] = unop(asmir.NOT)
	reg["IntIncrement"] = unop(asmir.INC)
	reg["IntDecrement"] = unop(asmir.DEC)
	reg["IntLeftShift"] = shift(asmir.SHL)
	reg["IntRightShift"] = shift(asmir.SAR)

	reg["IntMultiply"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.IMUL, asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	divmod := func(pushReg asmir.Register) expander {
		return func(string) ([]asmir.AsmInstr, error) {
			return []asmir.AsmInstr{
				asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.MOV, asmir.OpReg(asmir.RDX), asmir.OpReg(asmir.RAX)),
				asmir.I(asmir.SAR, asmir.OpReg(asmir.RDX), asmir.OpImm(63)),
				asmir.I(asmir.IDIV, asmir.OpReg(asmir.RBX)),
				asmir.I(asmir.PUSH, asmir.OpReg(pushReg)),
			}, nil
		}
	}
	reg["IntDivide"] = divmod(asmir.RAX)
	reg["IntModulo"] = divmod(asmir.RDX)

	reg["IntEqual"] = cmp(asmir.SETE)
	reg["IntNotEqual"] = cmp(asmir.SETNE)
	reg["IntLessThan"] = cmp(asmir.SETL)
	reg["IntLessEqual"] = cmp(asmir.SETLE)
	reg["IntGreaterThan"] = cmp(asmir.SETG)
	reg["IntGreaterEqual"] = cmp(asmir.SETGE)
}
