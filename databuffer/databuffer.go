// Package databuffer defines the DataBuffer layout shared between the
// lowerer (which emits MOV [R14+offset], reg instructions against it) and
// the runner (which allocates the real memory backing it before invoking
// compiled code). Grounded on
// _examples/original_source/jit/machine-code-runner/AsmDataBuffer.hpp,
// whose cell layout this package reproduces with one deliberate fix: the
// original's Windows XMM0-5 offsets collide with the RSI/RDI/R8-R11 cells
// (looks like a copy-paste bug in the source), so this module lays the XMM
// cells out after the integer cells instead of overlapping them.
package databuffer

// Cell offsets, in bytes, into the DataBuffer. Every compiled function
// receives the address of one such buffer in R14 (prologue) and uses it
// both to save/restore the entry RSP (spec.md §4.2) and, in trampoline
// sequences, to spill caller-saved registers across the host call.
const (
	OffRAX  int32 = 0
	OffRCX  int32 = 8
	OffRDX  int32 = 16
	OffRSI  int32 = 24
	OffRDI  int32 = 32
	OffR8   int32 = 40
	OffR9   int32 = 48
	OffR10  int32 = 56
	OffR11  int32 = 64
	OffRSP  int32 = 72 // entry stack pointer, saved by the prologue
	OffResult int32 = 80

	// Windows-only SSE spill cells, laid out after the integer cells
	// (see package doc for why this deviates from the original source).
	OffXMM0 int32 = 88
	OffXMM1 int32 = 96
	OffXMM2 int32 = 104
	OffXMM3 int32 = 112
	OffXMM4 int32 = 120
	OffXMM5 int32 = 128

	// Size is the total DataBuffer size in bytes; large enough for both
	// ABI variants so the runner never has to branch on GOOS to size it.
	Size = 136
)

// Go struct mirror of the cell layout above, used by the runner to read
// back the Result cell after invocation without reaching for unsafe
// pointer arithmetic everywhere it needs a value.
type DataBuffer struct {
	RAX, RCX, RDX, RSI, RDI       uint64
	R8, R9, R10, R11              uint64
	RSP                           uint64
	Result                        uint64
	XMM0, XMM1, XMM2, XMM3, XMM4, XMM5 uint64
}
