// Package amd64enc implements the two-pass x86-64 encoder: it turns
// asmir.AsmInstr values into raw machine code bytes, computing REX
// prefixes, ModR/M and SIB bytes, and resolving label references to rel32
// displacements. Grounded on the bit-level rules in
// _examples/original_source/jit/oil-to-asm-realisation/AsmToBytes.cpp,
// reworked into idiomatic Go error returns instead of exceptions.
package amd64enc

import "fmt"

// EncodeErrorKind is the taxonomy from spec.md §7.
type EncodeErrorKind uint8

const (
	UnsupportedInstruction EncodeErrorKind = iota
	UnsupportedOperandCombination
	OperandWidthMismatch
	UnresolvedLabel
	PatchOutOfRange
)

type EncodeError struct {
	Kind   EncodeErrorKind
	Detail string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("amd64enc: %s", e.Detail)
}

func errUnsupported(detail string) error {
	return &EncodeError{Kind: UnsupportedInstruction, Detail: detail}
}

func errBadOperands(detail string) error {
	return &EncodeError{Kind: UnsupportedOperandCombination, Detail: detail}
}

func errWidthMismatch(detail string) error {
	return &EncodeError{Kind: OperandWidthMismatch, Detail: detail}
}
