// Package rawmem provides raw, untyped memory blocks outside the regular Go
// allocation path where the platform supports it.
//
// Blocks come from anonymous page mappings (mmap on unix, VirtualAlloc on
// Windows) with a plain make fallback elsewhere. A small bounded cache
// recycles released blocks by exact size, so Alloc may hand back memory that
// still holds whatever its previous owner wrote. Callers that need zeroed
// storage must use AllocZero.
//
// The cache is guarded by a mutex; Alloc, AllocZero and Free are safe for
// concurrent use.
package rawmem

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/joshuapare/bufalloc/internal/buf"
)

// Runtime trace flag - controlled by BUFALLOC_TRACE env var.
var traceAlloc = os.Getenv("BUFALLOC_TRACE") != ""

const (
	// maxCacheableSize is the largest block the recycle cache will retain.
	// Bigger blocks go straight back to the platform.
	maxCacheableSize = 1 << 20

	// maxCachedPerSize bounds the number of retained blocks per exact size.
	maxCachedPerSize = 8

	// maxCachedBytes bounds the total bytes held by the recycle cache.
	maxCachedBytes = 4 << 20
)

var (
	mu          sync.Mutex
	cache       = map[int][][]byte{}
	cachedBytes int
)

// Alloc returns a block of exactly size bytes. The contents are unspecified:
// a recycled block keeps whatever bytes its previous owner left behind.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rawmem: invalid block size %d", size)
	}
	if b := take(size); b != nil {
		if traceAlloc {
			slog.Debug("rawmem: recycled block", "size", size)
		}
		return b, nil
	}
	return mapBlock(size)
}

// AllocZero returns a block of exactly size bytes with every byte zero.
func AllocZero(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rawmem: invalid block size %d", size)
	}
	if b := take(size); b != nil {
		clear(b)
		if traceAlloc {
			slog.Debug("rawmem: recycled block (cleared)", "size", size)
		}
		return b, nil
	}
	// Fresh mappings are zero-filled on every platform path.
	return mapBlock(size)
}

// Free returns a block previously obtained from Alloc or AllocZero.
// The block is either retained for reuse or handed back to the platform.
// Free of an empty slice is a no-op.
func Free(b []byte) {
	if len(b) == 0 {
		return
	}
	if put(b) {
		return
	}
	if traceAlloc {
		slog.Debug("rawmem: unmapped block", "size", len(b))
	}
	unmapBlock(b)
}

// take pops a cached block of the exact size, or nil.
func take(size int) []byte {
	mu.Lock()
	defer mu.Unlock()

	blocks := cache[size]
	if len(blocks) == 0 {
		return nil
	}
	b := blocks[len(blocks)-1]
	if len(blocks) == 1 {
		delete(cache, size)
	} else {
		cache[size] = blocks[:len(blocks)-1]
	}
	cachedBytes -= size
	return b
}

// put retains b for reuse if the cache bounds allow it.
func put(b []byte) bool {
	size := len(b)
	if size > maxCacheableSize {
		return false
	}

	mu.Lock()
	defer mu.Unlock()

	total, ok := buf.AddOverflowSafe(cachedBytes, size)
	if !ok || total > maxCachedBytes {
		return false
	}
	if len(cache[size]) >= maxCachedPerSize {
		return false
	}
	cache[size] = append(cache[size], b)
	cachedBytes = total
	return true
}
