//go:build unix

package rawmem

import (
	"golang.org/x/sys/unix"
)

// mapBlock obtains size bytes from an anonymous private mapping.
// The kernel hands the pages back zero-filled.
func mapBlock(size int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// unmapBlock releases a mapping obtained from mapBlock.
func unmapBlock(b []byte) {
	// Best-effort; an EINVAL here would mean b was not a mapping of ours.
	_ = unix.Munmap(b)
}
