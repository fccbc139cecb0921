// Package lifecycle runs default initialization and finalization over a
// contiguous run of typed elements in place.
//
// A value type opts into non-trivial construction by implementing Initializer
// on its pointer receiver, and into finalization by implementing Finalizer.
// Types implementing neither are trivial: their default-initialized state is
// the zero value and destruction does nothing.
//
// The helpers assume their preconditions hold. Construct expects storage for
// n elements that does not yet hold live values; Destroy expects n live
// values. Neither has a fallible path of its own - a panic raised by an
// element's Init or Destroy propagates to the caller unchanged.
package lifecycle

import "unsafe"

// Initializer is implemented by element types that need explicit work beyond
// zeroing to reach their default-initialized state.
type Initializer interface {
	Init()
}

// Finalizer is implemented by element types that need explicit finalization
// before their storage is released.
type Finalizer interface {
	Destroy()
}

// Construct default-initializes the n elements starting at p, in order from
// first to last. Every slot is first set to the zero value of T; if *T
// implements Initializer, Init then runs on each slot. No-op when p is nil
// or n <= 0.
func Construct[T any](p *T, n int) {
	if p == nil || n <= 0 {
		return
	}
	elems := unsafe.Slice(p, n)
	clear(elems)
	if _, ok := any(p).(Initializer); !ok {
		// Trivial default initialization: the clear above is the whole job.
		return
	}
	for i := range elems {
		any(&elems[i]).(Initializer).Init()
	}
}

// Destroy finalizes the n elements starting at p, in order from first to
// last. After the call none of the slots hold a value that may be finalized
// again. No-op when p is nil, n <= 0, or *T does not implement Finalizer.
func Destroy[T any](p *T, n int) {
	if p == nil || n <= 0 {
		return
	}
	if _, ok := any(p).(Finalizer); !ok {
		return
	}
	elems := unsafe.Slice(p, n)
	for i := range elems {
		any(&elems[i]).(Finalizer).Destroy()
	}
}
