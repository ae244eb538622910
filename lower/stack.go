package lower

import "github.com/ovum-lang/oiljit/asmir"

// addStackOps registers the stack-manipulation and literal-push commands.
// Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/OilToAsmStackOperations.cpp.
func addStackOps(reg map[string]expander) {
	reg["PushNull"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["Pop"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{asmir.I(asmir.POP, asmir.OpReg(asmir.RAX))}, nil
	}

	reg["Dup"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.RSP, 0))),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["Swap"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RBX)),
		}, nil
	}

	reg["IsNull"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.RSP, 0))),
			asmir.I(asmir.TEST, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(0)),
			asmir.I(asmir.SETZ, asmir.OpReg(asmir.AL)),
			asmir.I(asmir.MOVZX, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.AL)),
			asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(asmir.RSP, 0)), asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["NullCoalesce"] = func(string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.TEST, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.CMOVE, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RBX)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["PushInt"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		v, err := parseInt64(lexeme)
		if err != nil {
			return nil, err
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(v)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["PushFloat"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		bits, err := parseFloat64Bits(lexeme)
		if err != nil {
			return nil, err
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpUImm(bits)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["PushBool"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		v, err := parseBoolLiteral(lexeme)
		if err != nil {
			return nil, err
		}
		var iv int64
		if v {
			iv = 1
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(iv)),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["PushChar"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		r, err := parseCharLiteral(lexeme)
		if err != nil {
			return nil, err
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(int64(r))),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["PushByte"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		b, err := parseByteLiteral(lexeme)
		if err != nil {
			return nil, err
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(int64(b))),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	// Rotate n moves the top of the n-element stack window to its
	// bottom, with n fixed at compile time. Not specified by the
	// original sources (Rotate has no documented expansion there); this
	// module unrolls it at lowering time since n is always a literal.
	reg["Rotate"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		n, err := parseInt64(lexeme)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, &ArgError{Command: "Rotate", Lexeme: lexeme, Reason: "count must be >= 1"}
		}
		var ins []asmir.AsmInstr
		ins = append(ins, asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.RSP, 0))))
		for i := int32(0); i < int32(n)-1; i++ {
			ins = append(ins,
				asmir.I(asmir.MOV, asmir.OpReg(asmir.RBX), asmir.OpMem(asmir.Addr(asmir.RSP, (i+1)*8))),
				asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(asmir.RSP, i*8)), asmir.OpReg(asmir.RBX)),
			)
		}
		ins = append(ins, asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(asmir.RSP, (int32(n)-1)*8)), asmir.OpReg(asmir.RAX)))
		return ins, nil
	}
}
