package execmem

import "unsafe"

// addrOf returns the address of the first byte of b. Isolated in its own
// file since it is the one place this package reaches for unsafe.Pointer
// arithmetic rather than the mmap/mprotect calls, which stay inside
// internal/platform.
func addrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
