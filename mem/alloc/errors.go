package alloc

import "errors"

var (
	// ErrProhibited indicates an allocation attempt on the NoAlloc strategy,
	// which prohibits allocations unconditionally.
	ErrProhibited = errors.New("alloc: this strategy prohibits allocations")

	// ErrPointerType indicates an off-heap allocation attempt for an element
	// type whose representation contains Go pointers. The collector cannot
	// trace references held in raw blocks.
	ErrPointerType = errors.New("alloc: element type contains Go pointers; off-heap strategies require pointer-free types")

	// ErrFreed indicates a Buffer was released more than once.
	ErrFreed = errors.New("alloc: buffer already freed")
)
