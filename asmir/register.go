// Package asmir defines the abstract x86-64 instruction representation that
// sits between the lowerer and the encoder: registers, memory addresses,
// operands and instructions. Nothing in this package knows how to emit
// bytes; see package amd64enc for that.
package asmir

// Width classifies the bit-width of a register or operand.
type Width uint8

const (
	W8 Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
	W128 Width = 128
)

// Register identifies a single x86-64 register of a given width class. Index
// is the 0-15 encoding index used in ModR/M and SIB bytes (0-7 for the
// legacy high-byte registers AH/CH/DH/BH, which cannot be combined with a
// REX prefix).
type Register struct {
	Name  string
	Width Width
	Index uint8
	// HighByte marks AH/CH/DH/BH: these alias bits 8-15 of the
	// corresponding 16/32/64-bit register and are incompatible with REX.
	HighByte bool
}

// Extended reports whether the register requires a REX.R/X/B bit (index 8-15).
func (r Register) Extended() bool { return r.Index >= 8 }

// Is64 reports whether r is a 64-bit GPR.
func (r Register) Is64() bool { return r.Width == W64 }

// IsXMM reports whether r is an XMM register.
func (r Register) IsXMM() bool { return len(r.Name) >= 3 && r.Name[:3] == "XMM" }

func reg(name string, w Width, idx uint8) Register {
	return Register{Name: name, Width: w, Index: idx}
}

func hireg(name string, idx uint8) Register {
	return Register{Name: name, Width: W8, Index: idx, HighByte: true}
}

// 64-bit general purpose registers, index order matches the ModR/M encoding.
var (
	RAX = reg("RAX", W64, 0)
	RCX = reg("RCX", W64, 1)
	RDX = reg("RDX", W64, 2)
	RBX = reg("RBX", W64, 3)
	RSP = reg("RSP", W64, 4)
	RBP = reg("RBP", W64, 5)
	RSI = reg("RSI", W64, 6)
	RDI = reg("RDI", W64, 7)
	R8  = reg("R8", W64, 8)
	R9  = reg("R9", W64, 9)
	R10 = reg("R10", W64, 10)
	R11 = reg("R11", W64, 11)
	R12 = reg("R12", W64, 12)
	R13 = reg("R13", W64, 13)
	R14 = reg("R14", W64, 14)
	R15 = reg("R15", W64, 15)
)

// 32-bit registers.
var (
	EAX = reg("EAX", W32, 0)
	ECX = reg("ECX", W32, 1)
	EDX = reg("EDX", W32, 2)
	EBX = reg("EBX", W32, 3)
)

// 8-bit low-byte registers (REX-addressable).
var (
	AL  = reg("AL", W8, 0)
	CL  = reg("CL", W8, 1)
	DL  = reg("DL", W8, 2)
	BL  = reg("BL", W8, 3)
	SPL = reg("SPL", W8, 4)
	BPL = reg("BPL", W8, 5)
	SIL = reg("SIL", W8, 6)
	DIL = reg("DIL", W8, 7)
	R11B = reg("R11B", W8, 11)
)

// Legacy high-byte 8-bit registers, mutually exclusive with REX.
var (
	AH = hireg("AH", 4)
	CH = hireg("CH", 5)
	DH = hireg("DH", 6)
	BH = hireg("BH", 7)
)

// XMM registers used for SSE2 scalar-double arithmetic.
var (
	XMM0 = reg("XMM0", W128, 0)
	XMM1 = reg("XMM1", W128, 1)
	XMM2 = reg("XMM2", W128, 2)
)
