package amd64enc

import "github.com/ovum-lang/oiljit/asmir"

func asReg(o asmir.Operand) (asmir.Register, bool) {
	if o.Kind == asmir.KindReg {
		return o.Reg, true
	}
	return asmir.Register{}, false
}

func asMem(o asmir.Operand) (asmir.MemAddr, bool) {
	if o.Kind == asmir.KindMem {
		return o.Mem, true
	}
	return asmir.MemAddr{}, false
}

func asImm(o asmir.Operand) (int64, bool) {
	switch o.Kind {
	case asmir.KindImm64:
		return o.I64, true
	case asmir.KindUImm64:
		return int64(o.U64), true
	}
	return 0, false
}

func asLabel(o asmir.Operand) (string, bool) {
	if o.Kind == asmir.KindLabel {
		return o.Label, true
	}
	return "", false
}

func fitsInt8(v int64) bool  { return v >= -128 && v <= 127 }
func fitsInt32(v int64) bool { return v >= -2147483648 && v <= 2147483647 }
