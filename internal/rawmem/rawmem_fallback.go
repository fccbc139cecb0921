//go:build !unix && !windows

package rawmem

// mapBlock falls back to the Go heap when no page-mapping primitive is
// available. make zero-fills, matching the platform paths.
func mapBlock(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// unmapBlock is a no-op in the fallback; the collector reclaims the block
// once the last reference is dropped.
func unmapBlock(b []byte) {
}
