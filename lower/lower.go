package lower

import (
	"fmt"
	"strconv"

	"github.com/ovum-lang/oiljit/asmir"
	"github.com/ovum-lang/oiljit/databuffer"
	"github.com/ovum-lang/oiljit/oil"
)

// Options parameterizes a single Lower call: the target ABI (drives the
// prologue's register choice and the trampoline's argument/shadow-space
// convention) and the resolved address of the host trampoline function.
// Resolving that address into a callable C-ABI function pointer is the
// host runtime's job; spec.md treats the trampoline as an external
// collaborator reached only through this wire contract.
type Options struct {
	ABI                ABI
	HostTrampolineAddr uint64
	Interner           *Interner
}

// expanders maps an OIL command to a function producing its canonical
// abstract instruction sequence. Populated once from the category tables
// in integer.go, float.go, byteops.go, boolops.go, stack.go, locals.go
// into the package-level registry below, which is read-only after
// construction. It is shared by every Lower call; no Factory owns it.
type expander func(arg string) ([]asmir.AsmInstr, error)

func buildRegistry() map[string]expander {
	reg := map[string]expander{}
	addIntegerOps(reg)
	addFloatOps(reg)
	addByteOps(reg)
	addBoolOps(reg)
	addStackOps(reg)
	addLocalOps(reg)
	addControlFlowOps(reg)
	return reg
}

var registry = buildRegistry()

// Prologue returns the entry sequence of spec.md §4.2: capture the
// DataBuffer pointer into R14, capture the argv pointer (the runner's
// local-variable array) into R13 per spec.md §3's invariant, then save
// the entry stack pointer so the epilogue can restore it regardless of
// any imbalance left by the lowered body.
func Prologue(abi ABI) []asmir.AsmInstr {
	return []asmir.AsmInstr{
		asmir.I(asmir.MOV, asmir.OpReg(asmir.R14), asmir.OpReg(abi.DataBufferArg)),
		asmir.I(asmir.MOV, asmir.OpReg(asmir.R13), asmir.OpReg(abi.LocalsArg)),
		asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(asmir.R14, databuffer.OffRSP)), asmir.OpReg(asmir.RSP)),
	}
}

// Epilogue returns the exit sequence of spec.md §4.2: peek whatever value
// sits on top of the hardware stack into the DataBuffer's Result cell
// (harmless if the OIL body left nothing meaningful there — the runner
// only reads Result when the caller's ResultType tag says to), restore
// RSP from the DataBuffer, then return to the caller.
func Epilogue() []asmir.AsmInstr {
	return []asmir.AsmInstr{
		asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpMem(asmir.Addr(asmir.RSP, 0))),
		asmir.I(asmir.MOV, asmir.OpMem(asmir.Addr(asmir.R14, databuffer.OffResult)), asmir.OpReg(asmir.RAX)),
		asmir.I(asmir.MOV, asmir.OpReg(asmir.RSP), asmir.OpMem(asmir.Addr(asmir.R14, databuffer.OffRSP))),
		asmir.I(asmir.RET),
	}
}

// Lower implements spec.md §4.2's contract: given PackedOp[], produce
// AsmInstr[] bracketed by the prologue and epilogue. Each op either
// expands inline via the registry, or — for commands with no registered
// expansion but a trampoline OpCode — lowers to a host call.
func Lower(ops []oil.PackedOp, opts Options) ([]asmir.AsmInstr, error) {
	out := Prologue(opts.ABI)
	for _, op := range ops {
		expanded, err := lowerOne(op, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	out = append(out, Epilogue()...)
	return out, nil
}

func lowerOne(op oil.PackedOp, opts Options) ([]asmir.AsmInstr, error) {
	if fn, ok := registry[op.Command]; ok {
		instrs, err := fn(op.Arg())
		if err != nil {
			return nil, fmt.Errorf("lower: command %q: %w", op.Command, err)
		}
		return instrs, nil
	}
	if code, ok := trampolineOps[op.Command]; ok {
		var pre []asmir.AsmInstr
		if identArgOps[op.Command] {
			idx := opts.Interner.Intern(op.Arg())
			pre = []asmir.AsmInstr{
				asmir.I(asmir.MOV, asmir.OpReg(asmir.RAX), asmir.OpImm(idx)),
				asmir.I(asmir.PUSH, asmir.OpReg(asmir.RAX)),
			}
		}
		return append(pre, opts.trampolineCall(code)...), nil
	}
	return nil, errUnsupported(op.Command)
}

func parseInt64(lexeme string) (int64, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid integer literal: %w", err)
	}
	return v, nil
}

func parseFloat64Bits(lexeme string) (uint64, error) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid float literal: %w", err)
	}
	return float64Bits(v), nil
}
