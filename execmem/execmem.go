// Package execmem owns the single unsafe boundary spec.md §9 calls for:
// the transition from verified bytes to an executable function. New
// copies the bytes into a fresh mapping, and Page exposes MakeExecutable,
// Addr, Len and Release; nothing outside this package
// reaches for raw mmap/mprotect. Grounded on
// _examples/original_source/jit/machine-code-runner/AsmExecutableMemory.hpp
// for the lifecycle (RW allocate → copy → RX transition, exactly once)
// and on the teacher's internal/platform package (wazero's own
// CompilerSupported/MmapCodeSegment/MunmapCodeSegment contract) for the
// underlying OS calls.
package execmem

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"

	"github.com/ovum-lang/oiljit/internal/platform"
)

// protection is the current state of a Page's mapping, per spec.md §3's
// ExecPage invariant: it transitions RW → RX exactly once and never back.
type protection uint8

const (
	protRW protection = iota
	protRX
)

// Page is an OS-level executable mapping: a base pointer, a size, and a
// current protection state. Exactly one Page exists per CompiledFn.
type Page struct {
	bytes []byte
	prot  protection
}

var errNotSupported = errors.New("execmem: JIT compilation is unsupported on this GOARCH")

// New allocates a fresh RW mapping sized to fit code and copies it in.
// The mapping starts writable; call MakeExecutable before invoking it.
func New(code []byte) (*Page, error) {
	if !platform.CompilerSupported() {
		return nil, errNotSupported
	}
	if len(code) == 0 {
		return nil, errors.New("execmem: cannot map zero-length code")
	}
	mapped, err := platform.MmapCodeSegment(bytes.NewReader(code), len(code))
	if err != nil {
		return nil, fmt.Errorf("execmem: %w", err)
	}
	p := &Page{bytes: mapped, prot: protRW}
	runtime.SetFinalizer(p, (*Page).release)
	return p, nil
}

// MakeExecutable transitions the mapping RW → RX. It is idempotent: a
// second call is a no-op, since the invariant forbids ever transitioning
// back and TryCompile is itself idempotent (spec.md §6).
func (p *Page) MakeExecutable() error {
	if p.prot == protRX {
		return nil
	}
	if err := platform.MprotectRX(p.bytes); err != nil {
		return fmt.Errorf("execmem: mprotect RX: %w", err)
	}
	p.prot = protRX
	return nil
}

// Addr returns the base address of the mapping as a function pointer
// usable by the runner to build a typed callable. Calling this before
// MakeExecutable returns a valid address, but jumping to it before the
// RW→RX transition will fault.
func (p *Page) Addr() uintptr {
	return addrOf(p.bytes)
}

// Len reports the mapped size in bytes.
func (p *Page) Len() int { return len(p.bytes) }

// Release unmaps the page. CompiledFn calls this explicitly via Close; the
// finalizer set in New is a backstop for callers that never call Close.
func (p *Page) Release() error {
	return p.release()
}

func (p *Page) release() error {
	if p.bytes == nil {
		return nil
	}
	err := platform.MunmapCodeSegment(p.bytes)
	p.bytes = nil
	runtime.SetFinalizer(p, nil)
	return err
}
