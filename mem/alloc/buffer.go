package alloc

import "unsafe"

// Buffer is an owned handle over a strategy allocation. It records the
// strategy and element count itself, so release cannot be paired with the
// wrong strategy or a mismatched count, and double free is a defined error
// instead of undefined behavior.
type Buffer[T any] struct {
	strat Strategy[T]
	ptr   *T
	n     int
}

// NewBuffer allocates n elements through s and wraps them in a Buffer.
// A strategy error (ErrProhibited, ErrPointerType) propagates unchanged;
// capacity failure yields (nil, nil), matching the strategy contract.
func NewBuffer[T any](s Strategy[T], n int) (*Buffer[T], error) {
	p, err := s.Alloc(n)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &Buffer[T]{strat: s, ptr: p, n: n}, nil
}

// Ptr returns the pointer to the first element, or nil after Free.
func (b *Buffer[T]) Ptr() *T {
	if b == nil {
		return nil
	}
	return b.ptr
}

// Len returns the element count, or 0 after Free.
func (b *Buffer[T]) Len() int {
	if b == nil || b.ptr == nil {
		return 0
	}
	return b.n
}

// Elems returns the elements as a slice view over the buffer's storage.
// The view aliases the buffer and must not be used after Free. Returns nil
// after Free.
func (b *Buffer[T]) Elems() []T {
	if b == nil || b.ptr == nil {
		return nil
	}
	return unsafe.Slice(b.ptr, b.n)
}

// Free releases the buffer through the strategy it was allocated with.
// Releasing a nil Buffer is a no-op; releasing twice returns ErrFreed.
func (b *Buffer[T]) Free() error {
	if b == nil {
		return nil
	}
	if b.ptr == nil {
		return ErrFreed
	}
	b.strat.Free(b.ptr, b.n)
	b.ptr = nil
	return nil
}

// Tag returns the tag of the strategy the buffer was allocated with.
func (b *Buffer[T]) Tag() Tag {
	if b == nil || b.strat == nil {
		return TagNoAlloc
	}
	return b.strat.Tag()
}
