package alloc

// NoAlloc is the strategy that prohibits allocation. It exists so generic
// buffer-owning code can be instantiated with allocation statically disabled;
// any attempt to allocate through it is a hard failure, not a capacity
// condition.
type NoAlloc[T any] struct{}

// Alloc fails with ErrProhibited for every n, including 0. No primitive is
// touched and nothing is constructed.
func (NoAlloc[T]) Alloc(n int) (*T, error) {
	return nil, ErrProhibited
}

// Free is a no-op for any input; this strategy never produces memory to
// release.
func (NoAlloc[T]) Free(p *T, n int) {
}

// Tag returns TagNoAlloc.
func (NoAlloc[T]) Tag() Tag { return TagNoAlloc }

// Compile-time interface check
var _ Strategy[int] = NoAlloc[int]{}
