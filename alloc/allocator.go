package alloc

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Allocator admits, grows and retires memory regions.
//
// Implementations must be safe for concurrent use. A nil error from Allocate
// or Grow means the region may be used; every admitted region is later
// passed to Deallocate exactly once, with the layout it was last grown to.
type Allocator interface {
	// Allocate admits a fresh region of the given layout.
	Allocate(layout Layout) error
	// Grow moves a region from one layout to a larger one. to.Size >= from.Size.
	// On error the region stays admitted at from.
	Grow(from, to Layout) error
	// Deallocate retires a region.
	Deallocate(layout Layout)
}

// Default is the allocator used when none is configured.
var Default Allocator = System{}

// System admits any request the Go runtime can serve without aborting.
type System struct{}

// Allocate implements Allocator.
func (System) Allocate(layout Layout) error {
	return checkSystem(layout)
}

// Grow implements Allocator.
func (System) Grow(_, to Layout) error {
	return checkSystem(to)
}

// Deallocate implements Allocator. The Go runtime reclaims the region.
func (System) Deallocate(Layout) {}

var physMem = sync.OnceValue(physicalMemory)

func checkSystem(layout Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	if layout.Size > maxAllocBytes {
		return errors.Wrapf(ErrOutOfMemory, "request of %d bytes exceeds platform limit of %d bytes",
			layout.Size, maxAllocBytes)
	}
	if total := physMem(); total > 0 && uint64(layout.Size) > total {
		return errors.Wrapf(ErrOutOfMemory, "request of %d bytes exceeds physical memory of %d bytes",
			layout.Size, total)
	}
	return nil
}
