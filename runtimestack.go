package oiljit

import "unsafe"

// runtimeStack is the concrete hostops.StackAccess bound to the real RSP
// value the generated code's trampoline call hands across (spec.md §6's
// wire contract: "first argument... current stack pointer on entry").
// PopUint64/PushUint64 are genuine hardware-stack reads/writes at that
// address — this is the one place outside execmem/databuffer where this
// module dereferences a raw machine address.
//
// The tagged value union spec.md §6 names has no native string case
// ({i64, f64, bool, char, u8, ptr}); a string-valued OIL command operand
// is carried as a handle into strs, the active trampoline's string table
// (shared by every JitExecutor and replaced on each successful
// TryCompile), the same way the Allocate/Free family carries opaque handles into
// hostops' arena rather than real pointers.
type runtimeStack struct {
	rsp  unsafe.Pointer
	strs *stringTable
}

func (s *runtimeStack) PopUint64() uint64 {
	v := *(*uint64)(s.rsp)
	s.rsp = unsafe.Add(s.rsp, 8)
	return v
}

func (s *runtimeStack) PushUint64(v uint64) {
	s.rsp = unsafe.Add(s.rsp, -8)
	*(*uint64)(s.rsp) = v
}

func (s *runtimeStack) PopString() string {
	return s.strs.resolve(s.PopUint64())
}

func (s *runtimeStack) PushString(v string) {
	s.PushUint64(s.strs.intern(v))
}

// stringTable hands out monotonically increasing handles for strings
// crossing the trampoline boundary. Entries are never evicted: a single
// compiled function's lifetime in this exercise is short enough that
// unbounded growth is not a concern a teaching-scale JIT needs to solve;
// a long-running production host would want an expiry or ref-counting
// scheme here instead.
type stringTable struct {
	byHandle map[uint64]string
	next     uint64
}

func newStringTable() *stringTable {
	return &stringTable{byHandle: make(map[uint64]string)}
}

func (t *stringTable) intern(s string) uint64 {
	h := t.next
	t.next++
	t.byHandle[h] = s
	return h
}

func (t *stringTable) resolve(h uint64) string {
	return t.byHandle[h]
}
