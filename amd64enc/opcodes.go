package amd64enc

import "github.com/ovum-lang/oiljit/asmir"

func emitPrefixes(buf *CodeBuf, w16 bool, w64 bool, extR, extX, extB bool) {
	if w16 {
		buf.AppendByte(0x66)
	}
	if v, needed := rexPrefix(w64, extR, extX, extB); needed {
		buf.AppendByte(v)
	}
}

func checkHighByteConflict(regs ...asmir.Register) error {
	anyExtended := false
	anyHigh := false
	for _, r := range regs {
		if r.Extended() {
			anyExtended = true
		}
		if r.HighByte {
			anyHigh = true
		}
	}
	if anyExtended && anyHigh {
		return errBadOperands("8-bit high-byte register (AH/CH/DH/BH) cannot combine with a REX prefix")
	}
	return nil
}

// encodeInstr appends the bytes for one abstract instruction, or records a
// patch for a symbolic label target. LABEL instructions are handled by the
// caller (Encode) before reaching here.
func encodeInstr(buf *CodeBuf, ins asmir.AsmInstr, patches *PatchList) error {
	switch ins.Op {
	case asmir.MOV:
		return encodeMov(buf, ins.Operands)
	case asmir.MOVSX, asmir.MOVZX:
		return encodeMovxx(buf, ins.Op, ins.Operands)
	case asmir.LEA:
		return encodeLea(buf, ins.Operands)
	case asmir.ADD, asmir.SUB, asmir.AND, asmir.OR, asmir.XOR, asmir.CMP:
		return encodeAlu(buf, ins.Op, ins.Operands)
	case asmir.TEST:
		return encodeTest(buf, ins.Operands)
	case asmir.INC, asmir.DEC, asmir.NOT, asmir.NEG:
		return encodeUnaryGroup(buf, ins.Op, ins.Operands)
	case asmir.IMUL, asmir.MUL, asmir.IDIV, asmir.DIV:
		return encodeMulDiv(buf, ins.Op, ins.Operands)
	case asmir.SHL, asmir.SHR, asmir.SAR:
		return encodeShift(buf, ins.Op, ins.Operands)
	case asmir.PUSH:
		return encodePush(buf, ins.Operands)
	case asmir.POP:
		return encodePop(buf, ins.Operands)
	case asmir.PUSHF:
		buf.AppendByte(0x9C)
		return nil
	case asmir.POPF:
		buf.AppendByte(0x9D)
		return nil
	case asmir.JMP:
		return encodeJmpCall(buf, 0xE9, 0xFF, 4, ins.Operands, patches)
	case asmir.CALL:
		return encodeJmpCall(buf, 0xE8, 0xFF, 2, ins.Operands, patches)
	case asmir.RET:
		buf.AppendByte(0xC3)
		return nil
	case asmir.RETI:
		imm, ok := asImm(ins.Operands[0])
		if !ok {
			return errBadOperands("RET imm16 requires an immediate operand")
		}
		buf.AppendByte(0xC2)
		buf.AppendByte(byte(imm))
		buf.AppendByte(byte(imm >> 8))
		return nil
	case asmir.JE, asmir.JNE, asmir.JG, asmir.JGE, asmir.JL, asmir.JLE,
		asmir.JA, asmir.JAE, asmir.JB, asmir.JBE:
		return encodeJcc(buf, ins.Op, ins.Operands, patches)
	case asmir.SETO, asmir.SETNO, asmir.SETB, asmir.SETNB, asmir.SETZ, asmir.SETNZ,
		asmir.SETBE, asmir.SETNBE, asmir.SETS, asmir.SETNS, asmir.SETL, asmir.SETNL,
		asmir.SETLE, asmir.SETNLE:
		return encodeSetcc(buf, ins.Op, ins.Operands)
	case asmir.CMOVE:
		return encodeCmove(buf, ins.Operands)
	case asmir.NOP:
		buf.AppendByte(0x90)
		return nil
	case asmir.HLT:
		buf.AppendByte(0xF4)
		return nil
	case asmir.CLC:
		buf.AppendByte(0xF8)
		return nil
	case asmir.STC:
		buf.AppendByte(0xF9)
		return nil
	case asmir.CMC:
		buf.AppendByte(0xF5)
		return nil
	case asmir.CQO:
		buf.AppendBytes(0x48, 0x99)
		return nil
	case asmir.SYSCALL:
		buf.AppendBytes(0x0F, 0x05)
		return nil
	case asmir.ADDSD, asmir.SUBSD, asmir.MULSD, asmir.DIVSD, asmir.SQRTSD, asmir.MOVSD:
		return encodeSSE2(buf, ins.Op, ins.Operands)
	case asmir.CVTSI2SD, asmir.CVTSD2SI, asmir.CVTTSD2SI:
		return encodeConvertSD(buf, ins.Op, ins.Operands)
	case asmir.UCOMISD:
		return encodeUcomisd(buf, ins.Operands)
	case asmir.MOVQ:
		return encodeMovq(buf, ins.Operands)
	default:
		return errUnsupported("opcode has no encoding rule")
	}
}

func encodeMov(buf *CodeBuf, ops []asmir.Operand) error {
	if len(ops) != 2 {
		return errBadOperands("MOV requires exactly two operands")
	}
	dstReg, dstIsReg := asReg(ops[0])
	srcReg, srcIsReg := asReg(ops[1])
	dstMem, dstIsMem := asMem(ops[0])
	srcMem, srcIsMem := asMem(ops[1])
	imm, srcIsImm := asImm(ops[1])

	switch {
	case dstIsReg && srcIsReg:
		if err := checkHighByteConflict(dstReg, srcReg); err != nil {
			return err
		}
		w64 := dstReg.Width == asmir.W64
		w16 := dstReg.Width == asmir.W16
		w8 := dstReg.Width == asmir.W8
		emitPrefixes(buf, w16, w64, srcReg.Extended(), false, dstReg.Extended())
		if w8 {
			buf.AppendByte(0x88)
		} else {
			buf.AppendByte(0x89)
		}
		buf.AppendByte(modrmRegToReg(srcReg, dstReg))
		return nil

	case dstIsReg && srcIsImm:
		w64 := dstReg.Width == asmir.W64
		w16 := dstReg.Width == asmir.W16
		w8 := dstReg.Width == asmir.W8
		emitPrefixes(buf, w16, w64, false, false, dstReg.Extended())
		switch {
		case w8:
			buf.AppendByte(0xB0 + low3(dstReg))
			buf.AppendByte(byte(imm))
		case w64 && !fitsInt32(imm):
			buf.AppendByte(0xB8 + low3(dstReg))
			buf.AppendU64(uint64(imm))
		case w64:
			buf.AppendByte(0xC7)
			buf.AppendByte(modrmExt(0, dstReg))
			buf.AppendU32(uint32(imm))
		default:
			buf.AppendByte(0xB8 + low3(dstReg))
			buf.AppendU32(uint32(imm))
		}
		return nil

	case dstIsReg && srcIsMem:
		w64 := dstReg.Width == asmir.W64
		w16 := dstReg.Width == asmir.W16
		w8 := dstReg.Width == asmir.W8
		extX, extB := memExtBits(srcMem)
		emitPrefixes(buf, w16, w64, dstReg.Extended(), extX, extB)
		if w8 {
			buf.AppendByte(0x8A)
		} else {
			buf.AppendByte(0x8B)
		}
		_, _ = encodeMem(buf, low3(dstReg), srcMem)
		return nil

	case dstIsMem && srcIsReg:
		w64 := srcReg.Width == asmir.W64
		w16 := srcReg.Width == asmir.W16
		w8 := srcReg.Width == asmir.W8
		extX, extB := memExtBits(dstMem)
		emitPrefixes(buf, w16, w64, srcReg.Extended(), extX, extB)
		if w8 {
			buf.AppendByte(0x88)
		} else {
			buf.AppendByte(0x89)
		}
		_, _ = encodeMem(buf, low3(srcReg), dstMem)
		return nil

	case dstIsMem && srcIsImm:
		extX, extB := memExtBits(dstMem)
		emitPrefixes(buf, false, true, false, extX, extB)
		buf.AppendByte(0xC7)
		_, _ = encodeMem(buf, 0, dstMem)
		buf.AppendU32(uint32(imm))
		return nil
	}
	return errBadOperands("unsupported MOV operand combination")
}

func memExtBits(mem asmir.MemAddr) (extX, extB bool) {
	if mem.Index != nil {
		extX = mem.Index.Extended()
	}
	if mem.Base != nil {
		extB = mem.Base.Extended()
	}
	return
}

func encodeMovxx(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	if len(ops) != 2 {
		return errBadOperands("MOVSX/MOVZX requires two operands")
	}
	dst, dstOk := asReg(ops[0])
	src, srcOk := asReg(ops[1])
	if !dstOk || !srcOk {
		return errBadOperands("MOVSX/MOVZX only supports register operands")
	}
	if err := checkHighByteConflict(dst, src); err != nil {
		return err
	}
	w64 := dst.Width == asmir.W64
	emitPrefixes(buf, false, w64, dst.Extended(), false, src.Extended())
	buf.AppendByte(0x0F)
	if op == asmir.MOVSX {
		if src.Width == asmir.W8 {
			buf.AppendByte(0xBE)
		} else {
			buf.AppendByte(0xBF)
		}
	} else {
		if src.Width == asmir.W8 {
			buf.AppendByte(0xB6)
		} else {
			buf.AppendByte(0xB7)
		}
	}
	buf.AppendByte(modrmRegToReg(dst, src))
	return nil
}

func encodeLea(buf *CodeBuf, ops []asmir.Operand) error {
	dst, dstOk := asReg(ops[0])
	src, srcOk := asMem(ops[1])
	if !dstOk || !srcOk {
		return errBadOperands("LEA requires a register destination and memory source")
	}
	extX, extB := memExtBits(src)
	emitPrefixes(buf, false, dst.Width == asmir.W64, dst.Extended(), extX, extB)
	buf.AppendByte(0x8D)
	_, _ = encodeMem(buf, low3(dst), src)
	return nil
}

var aluGroupExt = map[asmir.Op]byte{
	asmir.ADD: 0, asmir.OR: 1, asmir.AND: 4, asmir.SUB: 5, asmir.XOR: 6, asmir.CMP: 7,
}

var aluGroupBase = map[asmir.Op]byte{
	asmir.ADD: 0x00, asmir.OR: 0x08, asmir.AND: 0x20, asmir.SUB: 0x28, asmir.XOR: 0x30, asmir.CMP: 0x38,
}

func encodeAlu(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	if len(ops) != 2 {
		return errBadOperands("ALU instruction requires two operands")
	}
	dst, dstOk := asReg(ops[0])
	if !dstOk {
		return errBadOperands("ALU destination must be a register")
	}
	if src, ok := asReg(ops[1]); ok {
		if dst.Width != src.Width {
			return errWidthMismatch("ALU operands must agree in width class")
		}
		if err := checkHighByteConflict(dst, src); err != nil {
			return err
		}
		base := aluGroupBase[op]
		w8 := dst.Width == asmir.W8
		emitPrefixes(buf, dst.Width == asmir.W16, dst.Width == asmir.W64, src.Extended(), false, dst.Extended())
		if w8 {
			buf.AppendByte(base)
		} else {
			buf.AppendByte(base + 1)
		}
		buf.AppendByte(modrmRegToReg(src, dst))
		return nil
	}
	if imm, ok := asImm(ops[1]); ok {
		ext := aluGroupExt[op]
		w8 := dst.Width == asmir.W8
		emitPrefixes(buf, dst.Width == asmir.W16, dst.Width == asmir.W64, false, false, dst.Extended())
		switch {
		case w8:
			buf.AppendByte(0x80)
			buf.AppendByte(modrmExt(ext, dst))
			buf.AppendByte(byte(imm))
		case fitsInt8(imm):
			buf.AppendByte(0x83)
			buf.AppendByte(modrmExt(ext, dst))
			buf.AppendByte(byte(imm))
		default:
			buf.AppendByte(0x81)
			buf.AppendByte(modrmExt(ext, dst))
			buf.AppendU32(uint32(imm))
		}
		return nil
	}
	return errBadOperands("ALU source must be a register or immediate")
}

func encodeTest(buf *CodeBuf, ops []asmir.Operand) error {
	if len(ops) != 2 {
		return errBadOperands("TEST requires two operands")
	}
	dst, dstOk := asReg(ops[0])
	if !dstOk {
		return errBadOperands("TEST destination must be a register")
	}
	if src, ok := asReg(ops[1]); ok {
		if err := checkHighByteConflict(dst, src); err != nil {
			return err
		}
		w8 := dst.Width == asmir.W8
		emitPrefixes(buf, dst.Width == asmir.W16, dst.Width == asmir.W64, src.Extended(), false, dst.Extended())
		if w8 {
			buf.AppendByte(0x84)
		} else {
			buf.AppendByte(0x85)
		}
		buf.AppendByte(modrmRegToReg(src, dst))
		return nil
	}
	if imm, ok := asImm(ops[1]); ok {
		w8 := dst.Width == asmir.W8
		emitPrefixes(buf, dst.Width == asmir.W16, dst.Width == asmir.W64, false, false, dst.Extended())
		if w8 {
			buf.AppendByte(0xF6)
			buf.AppendByte(modrmExt(0, dst))
			buf.AppendByte(byte(imm))
		} else {
			buf.AppendByte(0xF7)
			buf.AppendByte(modrmExt(0, dst))
			buf.AppendU32(uint32(imm))
		}
		return nil
	}
	return errBadOperands("TEST source must be a register or immediate")
}

var unaryExt = map[asmir.Op]byte{
	asmir.INC: 0, asmir.DEC: 1, asmir.NOT: 2, asmir.NEG: 3,
}

func encodeUnaryGroup(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	reg, ok := asReg(ops[0])
	if !ok {
		return errBadOperands("unary ALU instruction requires a register operand")
	}
	ext := unaryExt[op]
	w8 := reg.Width == asmir.W8
	emitPrefixes(buf, reg.Width == asmir.W16, reg.Width == asmir.W64, false, false, reg.Extended())
	if op == asmir.INC || op == asmir.DEC {
		if w8 {
			buf.AppendByte(0xFE)
		} else {
			buf.AppendByte(0xFF)
		}
	} else {
		if w8 {
			buf.AppendByte(0xF6)
		} else {
			buf.AppendByte(0xF7)
		}
	}
	buf.AppendByte(modrmExt(ext, reg))
	return nil
}

var mulDivExt = map[asmir.Op]byte{
	asmir.MUL: 4, asmir.IMUL: 5, asmir.DIV: 6, asmir.IDIV: 7,
}

func encodeMulDiv(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	reg, ok := asReg(ops[0])
	if !ok {
		return errBadOperands("one-operand MUL/DIV form requires a register r/m operand")
	}
	ext := mulDivExt[op]
	w8 := reg.Width == asmir.W8
	emitPrefixes(buf, reg.Width == asmir.W16, reg.Width == asmir.W64, false, false, reg.Extended())
	if w8 {
		buf.AppendByte(0xF6)
	} else {
		buf.AppendByte(0xF7)
	}
	buf.AppendByte(modrmExt(ext, reg))
	return nil
}

var shiftExt = map[asmir.Op]byte{
	asmir.SHL: 4, asmir.SHR: 5, asmir.SAR: 7,
}

func encodeShift(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	dst, ok := asReg(ops[0])
	if !ok {
		return errBadOperands("shift destination must be a register")
	}
	ext := shiftExt[op]
	w8 := dst.Width == asmir.W8
	emitPrefixes(buf, dst.Width == asmir.W16, dst.Width == asmir.W64, false, false, dst.Extended())
	if len(ops) == 1 {
		if w8 {
			buf.AppendByte(0xD0)
		} else {
			buf.AppendByte(0xD1)
		}
		buf.AppendByte(modrmExt(ext, dst))
		return nil
	}
	if src, ok := asReg(ops[1]); ok && src.Name == "CL" {
		if w8 {
			buf.AppendByte(0xD2)
		} else {
			buf.AppendByte(0xD3)
		}
		buf.AppendByte(modrmExt(ext, dst))
		return nil
	}
	imm, ok := asImm(ops[1])
	if !ok {
		return errBadOperands("shift count must be CL or an immediate")
	}
	if imm == 1 {
		if w8 {
			buf.AppendByte(0xD0)
		} else {
			buf.AppendByte(0xD1)
		}
		buf.AppendByte(modrmExt(ext, dst))
		return nil
	}
	if w8 {
		buf.AppendByte(0xC0)
	} else {
		buf.AppendByte(0xC1)
	}
	buf.AppendByte(modrmExt(ext, dst))
	buf.AppendByte(byte(imm))
	return nil
}

func encodePush(buf *CodeBuf, ops []asmir.Operand) error {
	if reg, ok := asReg(ops[0]); ok {
		if reg.Extended() {
			v, _ := rexPrefix(false, false, false, true)
			buf.AppendByte(v)
		}
		buf.AppendByte(0x50 + low3(reg))
		return nil
	}
	if imm, ok := asImm(ops[0]); ok {
		if fitsInt8(imm) {
			buf.AppendByte(0x6A)
			buf.AppendByte(byte(imm))
		} else {
			buf.AppendByte(0x68)
			buf.AppendU32(uint32(imm))
		}
		return nil
	}
	return errBadOperands("PUSH requires a register or immediate operand")
}

func encodePop(buf *CodeBuf, ops []asmir.Operand) error {
	reg, ok := asReg(ops[0])
	if !ok {
		return errBadOperands("POP requires a register operand")
	}
	if reg.Extended() {
		v, _ := rexPrefix(false, false, false, true)
		buf.AppendByte(v)
	}
	buf.AppendByte(0x58 + low3(reg))
	return nil
}

func encodeJmpCall(buf *CodeBuf, relOpcode byte, indirectOpcode byte, indirectExt byte, ops []asmir.Operand, patches *PatchList) error {
	if label, ok := asLabel(ops[0]); ok {
		buf.AppendByte(relOpcode)
		placeholder := buf.Len()
		buf.AppendU32(0)
		*patches = append(*patches, patch{offset: placeholder, label: label})
		return nil
	}
	if reg, ok := asReg(ops[0]); ok {
		if reg.Extended() {
			v, _ := rexPrefix(false, false, false, true)
			buf.AppendByte(v)
		}
		buf.AppendByte(indirectOpcode)
		buf.AppendByte(modrmExt(indirectExt, reg))
		return nil
	}
	return errBadOperands("JMP/CALL requires a label or register operand")
}

var jccOpcode = map[asmir.Op]byte{
	asmir.JE: 0x84, asmir.JNE: 0x85, asmir.JG: 0x8F, asmir.JGE: 0x8D,
	asmir.JL: 0x8C, asmir.JLE: 0x8E, asmir.JA: 0x87, asmir.JAE: 0x83,
	asmir.JB: 0x82, asmir.JBE: 0x86,
}

func encodeJcc(buf *CodeBuf, op asmir.Op, ops []asmir.Operand, patches *PatchList) error {
	label, ok := asLabel(ops[0])
	if !ok {
		return errBadOperands("Jcc requires a label operand")
	}
	buf.AppendByte(0x0F)
	buf.AppendByte(jccOpcode[op])
	placeholder := buf.Len()
	buf.AppendU32(0)
	*patches = append(*patches, patch{offset: placeholder, label: label})
	return nil
}

var setccOpcode = map[asmir.Op]byte{
	asmir.SETO: 0x90, asmir.SETNO: 0x91, asmir.SETB: 0x92, asmir.SETNB: 0x93,
	asmir.SETZ: 0x94, asmir.SETNZ: 0x95, asmir.SETBE: 0x96, asmir.SETNBE: 0x97,
	asmir.SETS: 0x98, asmir.SETNS: 0x99, asmir.SETL: 0x9C, asmir.SETNL: 0x9D,
	asmir.SETLE: 0x9E, asmir.SETNLE: 0x9F,
}

func encodeSetcc(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	reg, ok := asReg(ops[0])
	if !ok || reg.Width != asmir.W8 {
		return errBadOperands("SETcc requires an 8-bit register operand")
	}
	if reg.Extended() {
		v, _ := rexPrefix(false, false, false, true)
		buf.AppendByte(v)
	}
	buf.AppendByte(0x0F)
	buf.AppendByte(setccOpcode[op])
	buf.AppendByte(modrmExt(0, reg))
	return nil
}

func encodeCmove(buf *CodeBuf, ops []asmir.Operand) error {
	dst, dstOk := asReg(ops[0])
	src, srcOk := asReg(ops[1])
	if !dstOk || !srcOk {
		return errBadOperands("CMOVE requires two register operands")
	}
	emitPrefixes(buf, false, dst.Width == asmir.W64, dst.Extended(), false, src.Extended())
	buf.AppendByte(0x0F)
	buf.AppendByte(0x44)
	buf.AppendByte(modrmRegToReg(dst, src))
	return nil
}

var sse2Opcode = map[asmir.Op]byte{
	asmir.ADDSD: 0x58, asmir.SUBSD: 0x5C, asmir.MULSD: 0x59, asmir.DIVSD: 0x5E,
	asmir.SQRTSD: 0x51, asmir.MOVSD: 0x10,
}

func encodeSSE2(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	dst, dstOk := asReg(ops[0])
	if !dstOk || !dst.IsXMM() {
		return errBadOperands("SSE2 scalar-double destination must be an XMM register")
	}
	src, srcOk := asReg(ops[1])
	if !srcOk || !src.IsXMM() {
		return errBadOperands("SSE2 scalar-double source must be an XMM register")
	}
	buf.AppendByte(0xF2)
	if v, needed := rexPrefix(false, dst.Extended(), false, src.Extended()); needed {
		buf.AppendByte(v)
	}
	buf.AppendByte(0x0F)
	buf.AppendByte(sse2Opcode[op])
	buf.AppendByte(modrmRegToReg(dst, src))
	return nil
}

func encodeUcomisd(buf *CodeBuf, ops []asmir.Operand) error {
	dst, dstOk := asReg(ops[0])
	src, srcOk := asReg(ops[1])
	if !dstOk || !srcOk || !dst.IsXMM() || !src.IsXMM() {
		return errBadOperands("UCOMISD requires two XMM register operands")
	}
	buf.AppendByte(0x66)
	if v, needed := rexPrefix(false, dst.Extended(), false, src.Extended()); needed {
		buf.AppendByte(v)
	}
	buf.AppendByte(0x0F)
	buf.AppendByte(0x2E)
	buf.AppendByte(modrmRegToReg(dst, src))
	return nil
}

func encodeConvertSD(buf *CodeBuf, op asmir.Op, ops []asmir.Operand) error {
	dst, dstOk := asReg(ops[0])
	src, srcOk := asReg(ops[1])
	if !dstOk || !srcOk {
		return errBadOperands("SSE2 conversion requires two register operands")
	}
	buf.AppendByte(0xF2)
	w64 := false
	switch op {
	case asmir.CVTSI2SD:
		w64 = src.Width == asmir.W64
	case asmir.CVTSD2SI, asmir.CVTTSD2SI:
		w64 = dst.Width == asmir.W64
	}
	if v, needed := rexPrefix(w64, dst.Extended(), false, src.Extended()); needed {
		buf.AppendByte(v)
	}
	buf.AppendByte(0x0F)
	switch op {
	case asmir.CVTSI2SD:
		buf.AppendByte(0x2A)
	case asmir.CVTSD2SI:
		buf.AppendByte(0x2D)
	case asmir.CVTTSD2SI:
		buf.AppendByte(0x2C)
	}
	buf.AppendByte(modrmRegToReg(dst, src))
	return nil
}

// encodeMovq handles the GPR<->XMM forms (spec.md §4.4): 0x66 REX.W 0x0F
// 0x6E /r loads a GPR into an XMM register's low 64 bits; 0x66 REX.W 0x0F
// 0x7E /r stores the low 64 bits of an XMM register into a GPR.
func encodeMovq(buf *CodeBuf, ops []asmir.Operand) error {
	dst, dstOk := asReg(ops[0])
	src, srcOk := asReg(ops[1])
	if !dstOk || !srcOk {
		return errBadOperands("MOVQ requires two register operands")
	}
	buf.AppendByte(0x66)
	switch {
	case dst.IsXMM() && !src.IsXMM():
		v, _ := rexPrefix(true, dst.Extended(), false, src.Extended())
		buf.AppendByte(v)
		buf.AppendByte(0x0F)
		buf.AppendByte(0x6E)
		buf.AppendByte(modrmRegToReg(dst, src))
		return nil
	case !dst.IsXMM() && src.IsXMM():
		v, _ := rexPrefix(true, src.Extended(), false, dst.Extended())
		buf.AppendByte(v)
		buf.AppendByte(0x0F)
		buf.AppendByte(0x7E)
		buf.AppendByte(modrmRegToReg(src, dst))
		return nil
	default:
		return errBadOperands("MOVQ requires exactly one XMM and one GPR operand")
	}
}
