package lower

import "github.com/ovum-lang/oiljit/asmir"

// addLocalOps registers LoadLocal/SaveLocal, the only two commands whose
// ArityIdent argument is a pure numeric slot index rather than a name
// needing interning. Per spec.md §3's invariant, R13 holds the address of
// the local-variable array for the lifetime of the compiled function;
// R11 is used as scratch to compute `R13 + n*8` exactly as the worked
// example in spec.md §4.2 (`LoadLocal n`) shows.
func addLocalOps(reg map[string]expander) {
	reg["LoadLocal"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		n, err := parseInt64(lexeme)
		if err != nil {
			return nil, err
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.R11), asmir.OpImm(n)),
			asmir.I(asmir.SHL, asmir.OpReg(asmir.R11), asmir.OpImm(3)),
			asmir.I(asmir.ADD, asmir.OpReg(asmir.R11), asmir.OpReg(asmir.R13)),
			asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.R11, 0))),
			asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
		}, nil
	}

	reg["SaveLocal"] = func(lexeme string) ([]asmir.AsmInstr, error) {
		n, err := parseInt64(lexeme)
		if err != nil {
			return nil, err
		}
		return []asmir.AsmInstr{
			asmir.I(asmir.MOV, asmir.OpReg(asmir.R11), asmir.OpImm(n)),
			asmir.I(asmir.SHL, asmir.OpReg(asmir.R11), asmir.OpImm(3)),
			asmir.I(asmir.ADD, asmir.OpReg(asmir.R11), asmir.OpReg(asmir.R13)),
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(asmir.R11, 0)), asmir.OpReg(asmir.RAX)),
		}, nil
	}
}

// addControlFlowOps registers Jump/JumpIfTrue/JumpIfFalse and Label. These
// are the only commands whose ArityIdent argument names a label rather
// than an offset or an interned identifier; the label string is carried
// straight through to the abstract JMP/Jcc operand (or, for Label, to a
// LABEL pseudo-instruction marking the branch target's own position) and
// resolved by the encoder's two-pass label scheme (spec.md §4.4), not by
// this package. An OIL front end emitting Jump/JumpIfTrue/JumpIfFalse is
// expected to also emit a matching Label at the target position; nothing
// here invents label positions on its own.
func addControlFlowOps(reg map[string]expander) {
	reg["Label"] = func(name string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{asmir.Label(name)}, nil
	}
	reg["Jump"] = func(label string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{asmir.I(asmir.JMP, asmir.OpLabelRef(label))}, nil
	}
	reg["JumpIfTrue"] = func(label string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.TEST, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.JNE, asmir.OpLabelRef(label)),
		}, nil
	}
	reg["JumpIfFalse"] = func(label string) ([]asmir.AsmInstr, error) {
		return []asmir.AsmInstr{
			asmir.I(asmir.POP, asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.TEST, asmir.OpReg(asmir.RAX), asmir.OpReg(asmir.RAX)),
			asmir.I(asmir.JE, asmir.OpLabelRef(label)),
		}, nil
	}
}
