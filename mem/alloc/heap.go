package alloc

import (
	"github.com/joshuapare/bufalloc/internal/buf"
	"github.com/joshuapare/bufalloc/mem/lifecycle"
)

// Heap is the general-purpose strategy: elements live on the regular Go heap
// and storage is reclaimed by the collector once the caller drops the
// pointer after Free. Any element type is accepted, including types holding
// Go pointers.
type Heap[T any] struct{}

// Alloc obtains n elements from the Go heap and runs the construction pass
// over them. Returns nil for n <= 0 or when n*sizeof(T) is unrepresentable.
// The Go heap has no recoverable exhaustion path, so size overflow is the
// only reportable capacity failure.
func (Heap[T]) Alloc(n int) (*T, error) {
	if n <= 0 {
		return nil, nil
	}
	if _, ok := buf.Bytes(n, elemSize[T]()); !ok {
		return nil, nil
	}
	elems := make([]T, n)
	p := &elems[0]
	lifecycle.Construct(p, n)
	return p, nil
}

// Free finalizes the n elements. The storage itself is garbage; the
// collector reclaims it once the caller drops the pointer. No-op for
// p == nil or n <= 0.
func (Heap[T]) Free(p *T, n int) {
	if p == nil || n <= 0 {
		return
	}
	lifecycle.Destroy(p, n)
}

// Tag returns TagHeap.
func (Heap[T]) Tag() Tag { return TagHeap }

// Compile-time interface check
var _ Strategy[int] = Heap[int]{}
