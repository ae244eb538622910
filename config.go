package oiljit

import (
	"runtime"

	"github.com/ovum-lang/oiljit/lower"
)

// config holds a Factory's resolved settings. Unexported, built only
// through defaultConfig and Option, mirroring wazero's RuntimeConfig
// (SPEC_FULL.md §A): a struct with unexported fields, a constructor with
// defaults, and With*-style option functions rather than a global mutable
// command registry.
type config struct {
	abi      lower.ABI
	peephole bool
}

func defaultConfig() config {
	abi := lower.SystemV
	if runtime.GOOS == "windows" {
		abi = lower.Windows
	}
	return config{abi: abi, peephole: true}
}

// Option configures a Factory. Options are applied in order, each
// returning the config it should replace, so later options win over
// earlier ones when they conflict.
type Option func(config) config

// WithABI overrides the target calling convention instead of the one
// auto-detected from runtime.GOOS. Mainly useful for tests that want to
// exercise the Windows trampoline/prologue shape from a non-Windows CI
// host without cross-compiling.
func WithABI(abi lower.ABI) Option {
	return func(c config) config {
		c.abi = abi
		return c
	}
}

// WithPeephole toggles the push/pop peephole optimizer (default on). A
// test/debug knob only, per SPEC_FULL.md §A — disabling it never changes
// program semantics, only instruction count.
func WithPeephole(enabled bool) Option {
	return func(c config) config {
		c.peephole = enabled
		return c
	}
}
