package alloc

import "unsafe"

// Tag identifies a strategy variant. Generic callers branch on it ahead of
// use; it never selects behavior at the call site itself.
type Tag uint8

const (
	// TagNoAlloc marks the strategy that prohibits allocation.
	TagNoAlloc Tag = iota
	// TagHeap marks the Go-heap strategy.
	TagHeap
	// TagMalloc marks the raw-block strategy with unspecified block contents.
	TagMalloc
	// TagCalloc marks the raw-block strategy with a zero-filled block.
	TagCalloc
)

// String returns the tag's name for diagnostics.
func (t Tag) String() string {
	switch t {
	case TagNoAlloc:
		return "noalloc"
	case TagHeap:
		return "heap"
	case TagMalloc:
		return "malloc"
	case TagCalloc:
		return "calloc"
	default:
		return "unknown"
	}
}

// Strategy is one policy for acquiring and releasing contiguous runs of T.
//
// Alloc returns a pointer to n live, default-initialized elements; nil with a
// nil error signals capacity failure (including n <= 0). Free finalizes the
// run where the strategy is responsible for it and returns the storage; it
// accepts p == nil or n <= 0 as a no-op. The pointer and count passed to Free
// must be exactly those produced by Alloc on the same strategy.
type Strategy[T any] interface {
	Alloc(n int) (*T, error)
	Free(p *T, n int)
	Tag() Tag
}

// elemSize returns sizeof(T) in bytes.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
