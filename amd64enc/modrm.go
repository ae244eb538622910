package amd64enc

import "github.com/ovum-lang/oiljit/asmir"

// rexPrefix computes the REX byte per spec.md §4.4: REX.W for 64-bit
// operand size, REX.R for an extended reg-field register, REX.X for an
// extended index-field register, REX.B for an extended r/m-field or
// opcode-embedded register. needed reports whether a REX byte must be
// emitted at all, which is the case only when at least one bit is set.
func rexPrefix(w, r, x, b bool) (value byte, needed bool) {
	if !w && !r && !x && !b {
		return 0, false
	}
	v := byte(0x40)
	if w {
		v |= 0x08
	}
	if r {
		v |= 0x04
	}
	if x {
		v |= 0x02
	}
	if b {
		v |= 0x01
	}
	return v, true
}

// low3 returns the low 3 bits of a register's encoding index; the 4th bit
// (>=8) is carried in the REX prefix instead.
func low3(reg asmir.Register) byte { return byte(reg.Index & 0x7) }

func modrmRegToReg(regField, rmField asmir.Register) byte {
	return 0xC0 | (low3(regField) << 3) | low3(rmField)
}

// modrmExt builds a ModR/M byte for the reg/opcode-extension forms (e.g.
// ADD /0, SHL /4) with a register r/m operand.
func modrmExt(ext byte, rm asmir.Register) byte {
	return 0xC0 | (ext << 3) | low3(rm)
}

const (
	dispNone   = 0
	dispByte   = 1
	dispDword  = 2
)

// chooseDisp decides the ModR/M mod bits for a base-relative memory
// operand, per spec.md §4.4: RBP/R13 as base can never use mod=00 (that
// encoding is reserved for RIP-relative/no-base addressing), so a
// displacement of 0 against RBP/R13 is still emitted with an explicit
// 8-bit zero displacement.
func chooseDisp(base asmir.Register, disp int32) int {
	baseIdx := base.Index & 0x7
	if disp == 0 && baseIdx != 5 {
		return dispNone
	}
	if disp >= -128 && disp <= 127 {
		return dispByte
	}
	return dispDword
}

// encodeMem appends the ModR/M (and, if needed, SIB and displacement)
// bytes for a memory operand combined with a reg-field value (either a
// register's encoding index or an opcode extension). Returns whether the
// base/index registers require REX.B/REX.X.
func encodeMem(buf *CodeBuf, regField byte, mem asmir.MemAddr) (needsX, needsB bool) {
	switch {
	case mem.Base == nil && mem.Index == nil:
		// No base, no index: mod=00, r/m=100 (SIB required), SIB=0x25,
		// followed by a 32-bit displacement.
		buf.AppendByte(0x00<<6 | regField<<3 | 0x04)
		buf.AppendByte(0x25)
		buf.AppendU32(uint32(mem.Displacement))
		return false, false

	case mem.Index == nil:
		base := *mem.Base
		baseIdx := base.Index & 0x7
		if baseIdx == 4 {
			// RSP/R12 as a plain base always needs a SIB byte with no index.
			mod := chooseDisp(base, mem.Displacement)
			buf.AppendByte(byte(mod)<<6 | regField<<3 | 0x04)
			buf.AppendByte(0x00<<6 | 0x04<<3 | baseIdx)
			appendDisp(buf, mod, mem.Displacement)
			return false, base.Extended()
		}
		mod := chooseDisp(base, mem.Displacement)
		buf.AppendByte(byte(mod)<<6 | regField<<3 | baseIdx)
		appendDisp(buf, mod, mem.Displacement)
		return false, base.Extended()

	default:
		index := *mem.Index
		scaleLog2, ok := scaleToLog2(mem.Scale)
		if !ok {
			scaleLog2 = 0
		}
		if mem.Base == nil {
			// Base absent: SIB.base = 5, 32-bit displacement mandatory.
			buf.AppendByte(0x00<<6 | regField<<3 | 0x04)
			buf.AppendByte(scaleLog2<<6 | (index.Index&0x7)<<3 | 0x05)
			buf.AppendU32(uint32(mem.Displacement))
			return index.Extended(), false
		}
		base := *mem.Base
		mod := chooseDisp(base, mem.Displacement)
		buf.AppendByte(byte(mod)<<6 | regField<<3 | 0x04)
		buf.AppendByte(scaleLog2<<6 | (index.Index&0x7)<<3 | (base.Index & 0x7))
		appendDisp(buf, mod, mem.Displacement)
		return index.Extended(), base.Extended()
	}
}

func appendDisp(buf *CodeBuf, mod int, disp int32) {
	switch mod {
	case dispByte:
		buf.AppendByte(byte(int8(disp)))
	case dispDword:
		buf.AppendU32(uint32(disp))
	}
}

// scaleToLog2 implements spec.md §4.4's scale encoding: 1->0, 2->1, 4->2, 8->3.
func scaleToLog2(scale uint8) (byte, bool) {
	switch scale {
	case 1:
		return 0, true
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	default:
		return 0, false
	}
}
