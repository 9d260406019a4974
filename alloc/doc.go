// Package alloc provides the allocator capability used by vec.RawBuf.
//
// Element storage for a buffer of T is always created with make([]T, n) so
// the garbage collector keeps seeing every pointer inside T. What this
// package models is the other half of an allocator: deciding whether a
// request of a given Layout may be satisfied, and being told when the
// region is grown or retired.
//
// # Allocators
//
//   - System: the default. Refuses requests that the Go runtime could only
//     answer with an unrecoverable out-of-memory throw.
//   - Budget: fail-fast memory budget shared by any number of buffers.
//   - Instrument: wraps any Allocator and reports to a MetricsCollector
//     (Noop, Basic, or Prometheus).
//
// # Errors
//
// Two failure classes are kept apart:
//
//   - ErrCapacityOverflow: the byte size of a request is not representable.
//   - *AllocError: a valid request that the allocator refused. It carries the
//     requested Layout and matches ErrOutOfMemory.
package alloc
