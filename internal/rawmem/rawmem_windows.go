//go:build windows

package rawmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapBlock obtains size bytes of committed pages via VirtualAlloc.
// Committed pages are zero-filled by the OS.
func mapBlock(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// unmapBlock releases pages obtained from mapBlock.
func unmapBlock(b []byte) {
	addr := uintptr(unsafe.Pointer(&b[0]))
	// MEM_RELEASE frees the whole reservation; size must be 0.
	_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
