//go:build !windows

package platform

import "golang.org/x/sys/unix"

func mmapRW(length int) ([]byte, error) {
	return unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func mprotectRX(code []byte) error {
	return unix.Mprotect(code, unix.PROT_READ|unix.PROT_EXEC)
}

func munmap(code []byte) error {
	return unix.Munmap(code)
}
