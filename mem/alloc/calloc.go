package alloc

import "github.com/joshuapare/bufalloc/internal/rawmem"

// Calloc is the zero-initializing raw-block strategy. It matches Malloc in
// every respect except that the block is zero-filled before the construction
// pass runs, so for trivial element types every byte of the returned region
// reads as zero.
type Calloc[T any] struct{}

// Alloc obtains a zero-filled raw block for n elements and runs the
// construction pass over it. Failure semantics match Malloc.
func (Calloc[T]) Alloc(n int) (*T, error) {
	return offHeapAlloc[T](n, rawmem.AllocZero)
}

// Free finalizes the n elements, then returns the raw block to the
// primitive. No-op for p == nil or n <= 0.
func (Calloc[T]) Free(p *T, n int) {
	offHeapFree(p, n)
}

// Tag returns TagCalloc.
func (Calloc[T]) Tag() Tag { return TagCalloc }

// Compile-time interface check
var _ Strategy[int] = Calloc[int]{}
