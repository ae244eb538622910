package amd64enc

import (
	"fmt"

	"github.com/ovum-lang/oiljit/asmir"
)

// Encode implements the two-pass encoder of spec.md §4.4: pass 1 walks
// instructions emitting bytes (recording label offsets and leaving
// zeroed rel32 placeholders for forward references), pass 2 patches every
// placeholder with the resolved displacement. Returns the encoded bytes
// and the final LabelMap (useful for diagnostics and golden tests).
func Encode(instrs []asmir.AsmInstr) ([]byte, LabelMap, error) {
	buf := &CodeBuf{}
	labels := LabelMap{}
	var patches PatchList

	for idx, ins := range instrs {
		if ins.Op == asmir.LABEL {
			name, ok := asLabel(ins.Operands[0])
			if !ok {
				return nil, nil, errBadOperands("LABEL pseudo-instruction missing its name operand")
			}
			labels[name] = buf.Len()
			continue
		}
		if err := encodeInstr(buf, ins, &patches); err != nil {
			return nil, nil, fmt.Errorf("amd64enc: instruction %d (op %v): %w", idx, ins.Op, err)
		}
	}

	for _, p := range patches {
		target, ok := labels[p.label]
		if !ok {
			return nil, nil, &EncodeError{Kind: UnresolvedLabel, Detail: fmt.Sprintf("label %q is never defined", p.label)}
		}
		if p.offset+4 > buf.Len() {
			return nil, nil, &EncodeError{Kind: PatchOutOfRange, Detail: "patch offset lies beyond the encoded buffer"}
		}
		rel := int32(target - (p.offset + 4))
		buf.PatchU32At(p.offset, uint32(rel))
	}

	return buf.Bytes(), labels, nil
}
