// Package oiljit assembles the OIL-to-x86-64 JIT's stages (oil, lower,
// peephole, amd64enc, execmem, runner, hostops) into the two public types
// spec.md §6 names at the top level: JitExecutorFactory and JitExecutor.
// Grounded on wazero's own top-level package (config.go/builder.go),
// which is the single importable entry point wrapping its
// internal/wasm/jit and internal/engine/compiler packages the same way
// this package wraps lower/amd64enc/execmem.
package oiljit

import (
	"github.com/ovum-lang/oiljit/amd64enc"
	"github.com/ovum-lang/oiljit/hostops"
	"github.com/ovum-lang/oiljit/lower"
	"github.com/ovum-lang/oiljit/oil"
	"github.com/ovum-lang/oiljit/peephole"
	"github.com/ovum-lang/oiljit/runner"
)

// Factory is the JitExecutorFactory of spec.md §6: `Create(function_name,
// oil_body) -> JitExecutor`. One Factory owns the ABI/peephole
// configuration and the host-operation Manager every JitExecutor it
// creates shares.
type Factory struct {
	cfg     config
	manager *hostops.Manager
}

// NewFactory builds a Factory with runtime.GOOS-detected defaults,
// applying any Option overrides. It also installs its hostops.Manager as
// the process's activeTrampoline (see trampoline.go) — constructing a
// second Factory replaces the first's trampoline target, which is this
// module's documented one-active-Factory limitation.
func NewFactory(opts ...Option) *Factory {
	cfg := defaultConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	manager := hostops.NewManager()
	activeTrampoline = &hostTrampoline{manager: manager, strs: newStringTable()}
	return &Factory{cfg: cfg, manager: manager}
}

// Manager exposes the Factory's hostops.Manager so callers can override
// Stdout/Stdin/Rand/Args before compiling, mirroring wazero's
// ModuleConfig knobs for stdio redirection in tests.
func (f *Factory) Manager() *hostops.Manager { return f.manager }

// Create implements JitExecutorFactory::Create. tokens is the token
// stream an external OIL producer already lexed (spec.md §1 treats OIL
// token production as an external collaborator); functionName is carried
// through only for diagnostics, matching the original's signature.
func (f *Factory) Create(functionName string, tokens []oil.Token) *JitExecutor {
	return &JitExecutor{
		functionName: functionName,
		tokens:       tokens,
		cfg:          f.cfg,
		manager:      f.manager,
	}
}

// JitExecutor implements spec.md §6's JitExecutor: TryCompile is
// idempotent and runs Parse → Lower → Optimize → Encode → allocate
// ExecPage; Run requires a prior successful TryCompile.
type JitExecutor struct {
	functionName string
	tokens       []oil.Token
	cfg          config
	manager      *hostops.Manager

	compiled *runner.CompiledFn
	lastErr  error
}

// TryCompile runs the full compile pipeline and reports success as a
// bool, per spec.md §7's documented contract ("the simplest contract for
// the caller"). It is idempotent: a JitExecutor that already compiled
// successfully returns true immediately without recompiling; one that
// fails records the CompileError for CompileError() and returns false on
// every subsequent call until a caller builds a new JitExecutor.
func (e *JitExecutor) TryCompile() bool {
	if e.compiled != nil {
		return true
	}
	if e.lastErr != nil {
		return false
	}

	ops, err := oil.Parse(e.tokens)
	if err != nil {
		e.lastErr = &CompileError{Stage: StageParse, Err: err}
		return false
	}

	interner := lower.NewInterner()
	instrs, err := lower.Lower(ops, lower.Options{
		ABI:                e.cfg.abi,
		HostTrampolineAddr: trampolineAddr(hostTrampolineEntry),
		Interner:           interner,
	})
	if err != nil {
		e.lastErr = &CompileError{Stage: StageLower, Err: err}
		return false
	}

	// identArgOps commands (Call, GetField, LoadStatic, PushString, ...)
	// interned their identifier into this call's Interner; the host
	// manager resolves those indices back to names at dispatch time, so
	// its table is replaced with the names this compile introduced. A
	// Manager shared by several executors holds only the names of the
	// most recent successful Lower.
	if e.manager != nil {
		e.manager.Names = interner.Names()
	}

	if e.cfg.peephole {
		instrs = peephole.Optimize(instrs)
	}

	code, _, err := amd64enc.Encode(instrs)
	if err != nil {
		e.lastErr = &CompileError{Stage: StageEncode, Err: err}
		return false
	}

	fn, err := runner.NewCompiledFn(code)
	if err != nil {
		e.lastErr = &CompileError{Stage: StageExecPage, Err: err}
		return false
	}

	if activeTrampoline != nil {
		activeTrampoline.strs = newStringTable()
	}
	e.compiled = fn
	return true
}

// CompileError returns the diagnostic from the most recent failed
// TryCompile, or nil if the last attempt (or no attempt) failed to fail.
func (e *JitExecutor) CompileError() error { return e.lastErr }

// Run implements spec.md §6's JitExecutor::Run: requires a prior
// successful TryCompile, marshals data's frame locals into argv, invokes
// the compiled function, and unmarshals the Result cell.
func (e *JitExecutor) Run(data runner.PassedExecutionData) (runner.Value, error) {
	if e.compiled == nil {
		return runner.Value{}, &runner.RunError{Kind: runner.NotCompiled}
	}
	return runner.Run(e.compiled, data)
}

// Close releases the executable memory backing a compiled JitExecutor.
// Safe to call on one that never successfully compiled.
func (e *JitExecutor) Close() error {
	if e.compiled == nil {
		return nil
	}
	return e.compiled.Close()
}
