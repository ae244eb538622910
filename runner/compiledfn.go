package runner

import (
	"unsafe"

	"github.com/ovum-lang/oiljit/databuffer"
	"github.com/ovum-lang/oiljit/execmem"
)

// nativeFn is the C-ABI signature spec.md §4.5 specifies:
// void f(DataBuffer*, u64 argc, u64* argv).
type nativeFn func(db *databuffer.DataBuffer, argc uint64, argv *uint64)

// CompiledFn owns an execmem.Page and exposes it as a typed callable, per
// spec.md §3's data model entry of the same name. It is immutable once
// built: the RW→RX transition already happened inside execmem.New/
// MakeExecutable by the time NewCompiledFn returns successfully.
type CompiledFn struct {
	page *execmem.Page
	fn   nativeFn
}

// NewCompiledFn finalizes code into an executable page and wraps it as a
// callable. This is the second (and last) half of this module's unsafe
// boundary, alongside execmem.Page itself: the only place a raw code
// address is reinterpreted as a Go function value.
//
// The conversion relies on the fact that an (escape-analysis-visible,
// non-closure) Go func value is represented as a pointer to a structure
// whose first word is the function's entry address — the same trick
// several small Go JIT projects use to avoid writing a cgo or assembly
// shim for the indirect call. It assumes the generated prologue honors
// the target OS's C calling convention for its first three arguments
// (RDI/RSI/RDX on System V, RCX/RDX/R8 on Windows), of which the prologue
// reads the first and third through lower.ABI's DataBufferArg and
// LocalsArg; see DESIGN.md for the caveat this carries under Go's
// register-based internal calling convention.
func NewCompiledFn(code []byte) (*CompiledFn, error) {
	page, err := execmem.New(code)
	if err != nil {
		return nil, err
	}
	if err := page.MakeExecutable(); err != nil {
		_ = page.Release()
		return nil, err
	}
	return &CompiledFn{page: page, fn: makeNativeFn(page)}, nil
}

func makeNativeFn(page *execmem.Page) nativeFn {
	var fn nativeFn
	fnAddr := (*uintptr)(unsafe.Pointer(&fn))
	*fnAddr = page.Addr()
	return fn
}

// Invoke calls the compiled function with the given DataBuffer and
// argument vector, returning nothing: the result is read back from
// db.Result by the caller.
func (c *CompiledFn) Invoke(db *databuffer.DataBuffer, argv []uint64) {
	var argvPtr *uint64
	if len(argv) > 0 {
		argvPtr = &argv[0]
	}
	c.fn(db, uint64(len(argv)), argvPtr)
}

// Close releases the underlying executable mapping. Safe to call more
// than once.
func (c *CompiledFn) Close() error {
	if c.page == nil {
		return nil
	}
	err := c.page.Release()
	c.page = nil
	return err
}
