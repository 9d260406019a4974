// Package resource implements the memory budget behind alloc.Budget.
//
// The Controller tracks bytes handed out to buffers and, when a limit is
// configured, refuses requests that would exceed it:
//
//	┌──────────────────────────────────────────────┐
//	│                 Controller                   │
//	├──────────────────────┬───────────────────────┤
//	│  Memory Limit        │  Usage Tracking       │
//	│  (fail-fast, sem)    │  (atomic counters)    │
//	├──────────────────────┼───────────────────────┤
//	│  AcquireMemory       │  MemoryUsage          │
//	│  ReleaseMemory       │  PeakUsage            │
//	└──────────────────────┴───────────────────────┘
//
// Usage:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB limit
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - the buffer reports an allocation failure
//	}
//	defer rc.ReleaseMemory(4096)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one budget may be
// shared by many single-owner buffers.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
