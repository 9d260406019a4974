package alloc

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rawkit/internal/resource"
)

var (
	// ErrCapacityOverflow is returned when a capacity computation exceeds the
	// largest representable allocation size.
	ErrCapacityOverflow = errors.New("capacity overflow")
	// ErrOutOfMemory is matched by every *AllocError.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrBudgetExceeded is the cause reported by a Budget that refuses a request.
	ErrBudgetExceeded = resource.ErrMemoryLimitExceeded
)

// AllocError indicates that an allocator could not satisfy a valid request.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AllocError struct {
	Layout Layout
	cause  error
}

// NewAllocError creates an AllocError for layout caused by cause.
func NewAllocError(layout Layout, cause error) *AllocError {
	return &AllocError{Layout: layout, cause: cause}
}

func (e *AllocError) Error() string {
	msg := fmt.Sprintf("memory allocation of %d bytes failed (align %d)", e.Layout.Size, e.Layout.Align)
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

func (e *AllocError) Unwrap() error { return e.cause }

// Is reports whether target is ErrOutOfMemory.
func (e *AllocError) Is(target error) bool { return target == ErrOutOfMemory }
