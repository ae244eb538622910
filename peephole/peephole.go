// Package peephole implements the single optimization pass spec.md §4.3
// describes: removing matched PUSH RAX / POP RAX pairs that have no
// intervening use of RAX. Grounded on
// _examples/original_source/jit/oil-to-asm-realisation/optimisers/PushPopOptimiser.cpp,
// translated from its index-marking two-pass shape into idiomatic Go.
package peephole

import "github.com/ovum-lang/oiljit/asmir"

// Optimize implements spec.md §4.3's algorithm: a linear scan that, for
// each PUSH RAX at index i, finds the first subsequent POP RAX at index j
// and marks both for removal if no instruction strictly between them
// names RAX as any operand. The scan then continues from j+1, matching
// the original's `i = j` skip so a removed pair cannot be rematched.
// Output preserves the order of surviving instructions.
func Optimize(instrs []asmir.AsmInstr) []asmir.AsmInstr {
	remove := make([]bool, len(instrs))

	for i := 0; i < len(instrs); i++ {
		if !isPushRAX(instrs[i]) {
			continue
		}
		j := findMatchingPop(instrs, i)
		if j < 0 {
			continue
		}
		remove[i] = true
		remove[j] = true
		i = j
	}

	out := make([]asmir.AsmInstr, 0, len(instrs))
	for i, ins := range instrs {
		if !remove[i] {
			out = append(out, ins)
		}
	}
	return out
}

// findMatchingPop returns the index of the first POP RAX after i whose
// intervening instructions never name RAX, or -1 if none is eligible.
func findMatchingPop(instrs []asmir.AsmInstr, i int) int {
	for j := i + 1; j < len(instrs); j++ {
		if !isPopRAX(instrs[j]) {
			continue
		}
		if !interferes(instrs, i+1, j) {
			return j
		}
		return -1
	}
	return -1
}

func interferes(instrs []asmir.AsmInstr, from, to int) bool {
	for k := from; k < to; k++ {
		if instrs[k].NamesRegister(asmir.RAX) {
			return true
		}
	}
	return false
}

func isPushRAX(ins asmir.AsmInstr) bool {
	return ins.Op == asmir.PUSH && len(ins.Operands) == 1 && isRAXOperand(ins.Operands[0])
}

func isPopRAX(ins asmir.AsmInstr) bool {
	return ins.Op == asmir.POP && len(ins.Operands) == 1 && isRAXOperand(ins.Operands[0])
}

func isRAXOperand(op asmir.Operand) bool {
	return op.Kind == asmir.KindReg && op.Reg.Name == asmir.RAX.Name
}
