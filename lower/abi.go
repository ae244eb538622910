package lower

import "github.com/ovum-lang/oiljit/asmir"

// ABI selects the calling convention the prologue, epilogue and trampoline
// generator target. spec.md §4.2/§9 calls for one small compile-time
// description rather than scattered conditionals.
type ABI struct {
	Name string
	// DataBufferArg is the register holding the DataBuffer pointer on
	// entry to the compiled function (first C argument).
	DataBufferArg asmir.Register
	// LocalsArg is the register holding the argv pointer (third C
	// argument, void(DataBuffer*, u64 argc, u64* argv)): the prologue
	// copies it into R13, which spec.md §3's invariant designates as the
	// address of the local-variable array for the lifetime of the call.
	LocalsArg asmir.Register
	// TrampolineArg1/2 are the registers used to pass the current RSP and
	// the operation code to the host trampoline call.
	TrampolineArg1 asmir.Register
	TrampolineArg2 asmir.Register
	// ShadowSpace is the number of bytes the ABI requires a caller to
	// reserve below RSP before a call (0 on System V, 32 on Windows).
	ShadowSpace int32
	// SpillXMM is set for the Windows ABI only. trampolineCall does not
	// read it: on both ABIs the trampoline spills only the integer
	// registers RAX, RCX, RDX, RSI, RDI and R8-R11, and no XMM register
	// is saved across the host call.
	SpillXMM bool
}

var SystemV = ABI{
	Name:           "sysv",
	DataBufferArg:  asmir.RDI,
	LocalsArg:      asmir.RDX,
	TrampolineArg1: asmir.RDI,
	TrampolineArg2: asmir.RSI,
	ShadowSpace:    0,
	SpillXMM:       false,
}

var Windows = ABI{
	Name:           "windows",
	DataBufferArg:  asmir.RCX,
	LocalsArg:      asmir.R8,
	TrampolineArg1: asmir.RCX,
	TrampolineArg2: asmir.RDX,
	ShadowSpace:    32,
	SpillXMM:       true,
}
