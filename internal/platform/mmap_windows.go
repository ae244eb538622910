//go:build windows

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mmapRW(length int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(length), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length), nil
}

func mprotectRX(code []byte) error {
	var old uint32
	addr := uintptr(unsafe.Pointer(&code[0]))
	return windows.VirtualProtect(addr, uintptr(len(code)), windows.PAGE_EXECUTE_READ, &old)
}

func munmap(code []byte) error {
	addr := uintptr(unsafe.Pointer(&code[0]))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
