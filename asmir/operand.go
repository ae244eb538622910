package asmir

// MemAddr is an effective address: [base + index*scale + displacement].
// Scale must be one of 1, 2, 4, 8; Base and Index are optional (nil when
// absent). This mirrors the original sources' MemoryAddress, minus the
// segment-override field, which no OIL lowering ever needs.
type MemAddr struct {
	Base         *Register
	Index        *Register
	Scale        uint8
	Displacement int32
}

// Addr builds a base(+disp) memory operand with no index.
func Addr(base Register, disp int32) MemAddr {
	return MemAddr{Base: &base, Scale: 1, Displacement: disp}
}

// IndexedAddr builds a base+index*scale(+disp) memory operand.
func IndexedAddr(base, index Register, scale uint8, disp int32) MemAddr {
	return MemAddr{Base: &base, Index: &index, Scale: scale, Displacement: disp}
}

// OperandKind tags the active alternative of Operand's closed variant.
type OperandKind uint8

const (
	KindReg OperandKind = iota
	KindMem
	KindImm64
	KindUImm64
	KindLabel
	KindFloat32
	KindFloat64
)

// Operand is the tagged union of instruction arguments described in
// spec.md's data model: a register, a memory address, a signed or unsigned
// 64-bit immediate, a symbolic label, or a 32/64-bit float immediate.
// Exactly one of the fields is meaningful, selected by Kind.
type Operand struct {
	Kind  OperandKind
	Reg   Register
	Mem   MemAddr
	I64   int64
	U64   uint64
	Label string
	F32   float32
	F64   float64
}

func OpReg(r Register) Operand   { return Operand{Kind: KindReg, Reg: r} }
func OpMem(m MemAddr) Operand    { return Operand{Kind: KindMem, Mem: m} }
func OpImm(v int64) Operand      { return Operand{Kind: KindImm64, I64: v} }
func OpUImm(v uint64) Operand    { return Operand{Kind: KindUImm64, U64: v} }
func OpLabelRef(name string) Operand { return Operand{Kind: KindLabel, Label: name} }
func OpF32(v float32) Operand    { return Operand{Kind: KindFloat32, F32: v} }
func OpF64(v float64) Operand    { return Operand{Kind: KindFloat64, F64: v} }
