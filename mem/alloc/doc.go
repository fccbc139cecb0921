// Package alloc provides interchangeable allocation strategies for contiguous
// typed buffers.
//
// # Overview
//
// A Strategy acquires, constructs, destroys, and releases runs of n elements
// of a value type T. Code that owns buffers is written once against the
// Strategy interface and picks the policy at instantiation time; every
// strategy is a stateless zero-size value, so the choice carries no data and
// no per-call state.
//
// # Strategies
//
//   - NoAlloc: every allocation fails with ErrProhibited. Exists to statically
//     disable allocation for an instantiation.
//   - Heap: elements live on the regular Go heap. The general-purpose policy.
//   - Malloc: elements live in raw page-mapped blocks outside the Go heap,
//     with no guarantee about the block's prior contents before construction.
//   - Calloc: like Malloc, but the block is zero-filled before the
//     construction pass runs.
//
// # Contract
//
// Alloc(n) returns a pointer to n live, default-initialized elements.
// Capacity failure - n <= 0, an unrepresentable byte size, or the underlying
// primitive running out - is a nil pointer with a nil error; callers must
// check the pointer. The error return is reserved for ErrProhibited and
// ErrPointerType.
//
// Free(p, n) finalizes the n elements and returns the storage. It must
// receive the exact pointer and count from the matching Alloc on the same
// strategy; p == nil or n <= 0 is an accepted no-op. The Buffer handle wraps
// this pairing so it cannot be mismatched.
//
// Tag identifies the variant so generic callers can branch ahead of use, for
// example to skip a redundant finalization pass:
//
//	if s.Tag() != alloc.TagNoAlloc {
//	    p, _ = s.Alloc(n)
//	}
//
// # Off-heap element types
//
// Malloc and Calloc place elements where the garbage collector cannot see
// them. Element types whose representation contains Go pointers are rejected
// with ErrPointerType rather than silently producing unreachable references.
//
// # Thread safety
//
// Strategies hold no state, so concurrent Alloc/Free calls do not contend at
// this layer. The underlying primitives guard their own state.
package alloc
