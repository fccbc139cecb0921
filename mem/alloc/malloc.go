package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/bufalloc/internal/buf"
	"github.com/joshuapare/bufalloc/internal/rawmem"
	"github.com/joshuapare/bufalloc/mem/lifecycle"
)

// Malloc is the raw-block strategy: elements live in page-mapped blocks
// outside the Go heap. The block's contents before the construction pass are
// unspecified - a recycled block keeps whatever its previous owner wrote.
// Element types containing Go pointers are rejected with ErrPointerType.
type Malloc[T any] struct{}

// Alloc obtains an uninitialized raw block for n elements and runs the
// construction pass over it. Returns nil for n <= 0, for an unrepresentable
// byte size, or when the primitive cannot satisfy the request.
func (Malloc[T]) Alloc(n int) (*T, error) {
	return offHeapAlloc[T](n, rawmem.Alloc)
}

// Free finalizes the n elements, then returns the raw block to the
// primitive. No-op for p == nil or n <= 0.
func (Malloc[T]) Free(p *T, n int) {
	offHeapFree(p, n)
}

// Tag returns TagMalloc.
func (Malloc[T]) Tag() Tag { return TagMalloc }

// Compile-time interface check
var _ Strategy[int] = Malloc[int]{}

// offHeapAlloc is the shared allocation path for Malloc and Calloc; the two
// differ only in the block source they pass in.
func offHeapAlloc[T any](n int, source func(int) ([]byte, error)) (*T, error) {
	if n <= 0 {
		return nil, nil
	}
	if t := reflect.TypeOf((*T)(nil)).Elem(); !pointerFree(t) {
		return nil, fmt.Errorf("%w: %v", ErrPointerType, t)
	}
	size, ok := buf.Bytes(n, elemSize[T]())
	if !ok || size == 0 {
		return nil, nil
	}
	block, err := source(size)
	if err != nil {
		// Capacity failure: the caller checks the pointer, not the error.
		return nil, nil
	}
	p := (*T)(unsafe.Pointer(&block[0]))
	lifecycle.Construct(p, n)
	return p, nil
}

// offHeapFree runs the destruction pass, then hands the block back.
func offHeapFree[T any](p *T, n int) {
	if p == nil || n <= 0 {
		return
	}
	lifecycle.Destroy(p, n)
	size, ok := buf.Bytes(n, elemSize[T]())
	if !ok || size == 0 {
		return
	}
	rawmem.Free(unsafe.Slice((*byte)(unsafe.Pointer(p)), size))
}
