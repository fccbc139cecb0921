package alloc

import "unsafe"

// elemsOf views the n elements at p as a slice, mirroring what a caller of
// the bare Strategy API does with a returned pointer.
func elemsOf[T any](p *T, n int) []T {
	return unsafe.Slice(p, n)
}
