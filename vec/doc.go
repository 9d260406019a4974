// Package vec provides a growable contiguous array built on a raw buffer manager.
//
// # Components
//
//   - RawBuf: owns one allocation sized for N values of T and tracks only its
//     capacity. It gets memory admitted by an alloc.Allocator and implements
//     the growth policy.
//   - Vec: a RawBuf plus a logical length. Push, Pop, Insert, Remove,
//     SwapRemove, Extend, Clear and bounds-checked indexing.
//   - IntoIter: consumes a Vec and yields its values from both ends exactly once.
//
// # Growth Policy
//
// A full buffer doubles its capacity, but never grows below the request and
// never below a minimum non-zero capacity: 8 for 1-byte elements, 4 for
// elements up to 1024 bytes and 1 otherwise. For int on a 64-bit platform:
//
//	v := vec.New[int]()
//	for i := range 16 {
//	    v.Push(i)
//	}
//	// v.Len() == 16, v.Capacity() == 16
//	for i := 16; i < 100; i++ {
//	    v.Push(i)
//	}
//	// v.Len() == 100, v.Capacity() == 128
//
// # Zero-Sized Elements
//
// Zero-sized element types (struct{}, [0]int) never allocate. Their capacity
// is reported as Unbounded, and iterators synthesize values from nothing.
//
// # Failures
//
// Failures that a caller cannot meaningfully recover from panic with an error
// value:
//
//   - alloc.ErrCapacityOverflow: a capacity computation overflowed
//   - *alloc.AllocError: the allocator refused a valid request
//   - *IndexError, *RangeError: an index or range outside the live values
//   - ErrReleased, ErrMoved: use after Release or after IntoIter
//
// TryReserve and TryReserveExact return the first two as errors instead.
//
// # Element Destruction
//
// Element types implementing Dropper are dropped exactly once when the
// container destroys them. Values moved out to the caller are not dropped.
package vec
