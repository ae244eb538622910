package oiljit

import (
	"fmt"
	"unsafe"

	"github.com/ovum-lang/oiljit/hostops"
	"github.com/ovum-lang/oiljit/lower"
)

// activeTrampoline holds the single hostops.Manager/stringTable pair that
// hostTrampolineEntry dispatches through. It is package-level rather than
// captured in a closure deliberately: hostTrampolineEntry must be a plain,
// non-closure top-level function so its func value keeps the simple
// "pointer to a struct whose first word is the entry address"
// representation trampolineAddr relies on (the same property
// runner.makeNativeFn exploits in the opposite direction). A closure over
// a *hostops.Manager would still be a valid Go func value, but reading its
// entry address back out would hand the generated code a PC that expects
// Go's closure-context register already loaded, which a plain CALL
// through an immediate address does not do. This limits this module to
// one active Factory's trampoline at a time — acceptable for this
// exercise; see DESIGN.md.
var activeTrampoline *hostTrampoline

type hostTrampoline struct {
	manager *hostops.Manager
	strs    *stringTable
}

// hostTrampolineEntry is the Go implementation of the C-ABI function
// lower.Options.HostTrampolineAddr must resolve to: "void* trampoline(void*
// rsp, OpCode op)" (spec.md §6). It dispatches through activeTrampoline's
// Manager, bound to a runtimeStack at the given rsp, and returns the
// (possibly adjusted) stack pointer the generated code installs on return.
func hostTrampolineEntry(rsp uintptr, op uint64) uintptr {
	t := activeTrampoline
	stack := &runtimeStack{rsp: unsafe.Pointer(rsp), strs: t.strs}
	if err := t.manager.Dispatch(stack, lower.OpCode(op)); err != nil {
		// The wire contract (spec.md §6) has no error channel back to the
		// generated code: the only return value is the adjusted RSP. A
		// failed host operation therefore has nowhere to go but a panic,
		// the same way execmem's unsafe shim turns programmer error into
		// a panic rather than a buried error code (SPEC_FULL.md §A). This
		// is a genuine limitation of the callback boundary, not a choice
		// this module would make if the wire contract allowed better —
		// see DESIGN.md.
		panic(fmt.Sprintf("oiljit: host trampoline op %s failed: %v", lower.OpCode(op), err))
	}
	return uintptr(stack.rsp)
}

// trampolineAddr resolves hostTrampolineEntry's entry address using the
// same funcval pointer-cast trick runner.makeNativeFn uses in reverse (a
// non-closure Go func value's first word is a pointer to a structure
// whose first word is the function's entry address). See
// runner/compiledfn.go's doc comment and DESIGN.md for the caveat this
// carries: the generated trampoline call sequence CALLs this address
// using the target OS's C calling convention, but the jumped-to code is ordinary Go
// machine code compiled under Go's internal ABI, which on amd64 expects
// R14 to hold the current goroutine (*g) for its stack-growth check — and
// R14 is exactly the register this module's own convention reserves for
// the DataBuffer pointer. This module documents the conflict rather than
// hiding it; resolving it for real needs a small hand-written assembly
// shim that saves/restores R14 around the transition, which is out of
// reach without running the Go toolchain to assemble and verify it.
func trampolineAddr(fn func(rsp uintptr, op uint64) uintptr) uint64 {
	fnAddr := *(*uintptr)(unsafe.Pointer(&fn))
	return uint64(*(*uintptr)(unsafe.Pointer(fnAddr)))
}
