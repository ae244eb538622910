// Package platform isolates the OS-specific calls the execmem package
// needs: anonymous RW memory, the RW→RX protection transition, and
// release. It also carries a small host-side filesystem bridge for the
// trampoline's file/directory OpCodes (fsbridge.go), reusing the
// teacher's internal/platform package as the natural home for both
// concerns rather than inventing a second OS-facing package.
//
// Grounded on _examples/tetratelabs-wazero/internal/platform: only that
// package's _test.go files survived retrieval (mmap_test.go,
// mmap_linux_test.go) — the actual mmap_linux.go/mmap_windows.go
// implementations were not in the pack. This file and its mmap_unix.go /
// mmap_windows.go companions implement the contract those tests describe
// fresh, against golang.org/x/sys rather than raw syscall, per
// SPEC_FULL.md §B.
package platform

import (
	"errors"
	"fmt"
	"io"
	"runtime"
)

// CompilerSupported reports whether this process can JIT-compile and
// execute machine code: spec.md's Non-goals restrict the core to x86-64,
// so this is true only on amd64 regardless of OS.
func CompilerSupported() bool {
	return runtime.GOARCH == "amd64"
}

// MmapCodeSegment reads all of r (expected length bytes) into a fresh
// anonymous RW mapping and returns it. The caller transitions it to RX
// via MprotectRX once the bytes are finalized (execmem.Page does this).
func MmapCodeSegment(r io.Reader, length int) ([]byte, error) {
	if length == 0 {
		panic("BUG: MmapCodeSegment with zero length")
	}
	mapped, err := mmapRW(length)
	if err != nil {
		return nil, fmt.Errorf("platform: mmap: %w", err)
	}
	if _, err := io.ReadFull(r, mapped); err != nil {
		_ = munmap(mapped)
		return nil, fmt.Errorf("platform: reading code into mapping: %w", err)
	}
	return mapped, nil
}

// MunmapCodeSegment releases a mapping previously returned by
// MmapCodeSegment. Calling it twice on the same slice is an error: the
// second call's underlying unmap always fails once the mapping is gone.
func MunmapCodeSegment(code []byte) error {
	if len(code) == 0 {
		panic("BUG: MunmapCodeSegment with zero length")
	}
	return munmap(code)
}

// MprotectRX transitions a mapping from RW to RX. ExecPage calls this
// exactly once, per spec.md §3's invariant that the transition never
// reverses.
func MprotectRX(code []byte) error {
	if len(code) == 0 {
		return errors.New("platform: mprotect on empty mapping")
	}
	return mprotectRX(code)
}
