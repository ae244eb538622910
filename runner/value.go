// Package runner implements spec.md §4.5's ExecMem + Runner stage: it
// marshals VM values into the flat u64[] argv the compiled function
// expects, invokes the machine code, and unmarshals DataBuffer.Result
// back into a tagged VM value. Grounded on
// _examples/original_source/jit/machine-code-runner/JitExecutor.cpp for
// the marshalling/unmarshalling rules and
// _examples/original_source/jit/machine-code-runner/AsmDataBuffer.hpp for
// the Result cell contract.
package runner

import "math"

// ValueKind tags the closed set of VM value representations spec.md §6
// names: "a tagged union over {i64, f64, bool, char, u8, ptr}".
type ValueKind uint8

const (
	KindI64 ValueKind = iota
	KindF64
	KindBool
	KindChar
	KindByte
	KindPtr
)

// Value is one VM value stack entry or local. Exactly one field is
// meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	I64  int64
	F64  float64
	Bool bool
	Char rune
	Byte uint8
	Ptr  uintptr
}

// Bits reinterprets v as the flat u64 the compiled function's argv array
// and DataBuffer cells carry: integers by bit-cast, booleans/chars/bytes
// zero-extended, pointers reinterpret-cast (spec.md §4.5).
func (v Value) Bits() uint64 {
	switch v.Kind {
	case KindI64:
		return uint64(v.I64)
	case KindF64:
		return math.Float64bits(v.F64)
	case KindBool:
		if v.Bool {
			return 1
		}
		return 0
	case KindChar:
		return uint64(v.Char)
	case KindByte:
		return uint64(v.Byte)
	case KindPtr:
		return uint64(v.Ptr)
	default:
		return 0
	}
}

// ResultType is the caller-supplied tag that drives how the Result cell
// of the DataBuffer is reinterpreted after invocation (spec.md §4.5).
type ResultType uint8

const (
	ResultVoid ResultType = iota
	ResultPtr
	ResultFloat
	ResultInt64
	ResultByte
	ResultBool
	ResultChar
)

// UnmarshalResult reinterprets the raw Result u64 according to resultType.
// BOOL marshalling is ratified in SPEC_FULL.md §D as standard C
// truthiness (nonzero is true), not the inverted reading the original
// sources' expression suggests.
func UnmarshalResult(raw uint64, resultType ResultType) Value {
	switch resultType {
	case ResultPtr:
		return Value{Kind: KindPtr, Ptr: uintptr(raw)}
	case ResultFloat:
		return Value{Kind: KindF64, F64: math.Float64frombits(raw)}
	case ResultInt64:
		return Value{Kind: KindI64, I64: int64(raw)}
	case ResultByte:
		return Value{Kind: KindByte, Byte: byte(raw)}
	case ResultBool:
		return Value{Kind: KindBool, Bool: raw != 0}
	case ResultChar:
		return Value{Kind: KindChar, Char: rune(byte(raw))}
	default: // ResultVoid
		return Value{}
	}
}

// Frame is the minimal interface consumed from the VM's frame stack
// (spec.md §6): the top frame exposes an ordered sequence of local
// values. Frame layout, liveness and everything else about VM frames is
// an external concern.
type Frame interface {
	Locals() []Value
}

// PassedExecutionData is the argument to JitExecutor.Run: the top VM
// frame to marshal into argv, and the result type tag describing how to
// unmarshal the Result cell afterward.
type PassedExecutionData struct {
	Frame      Frame
	ResultType ResultType
}
