package cell

import "github.com/cockroachdb/errors"

var (
	// ErrBorrowConflict is matched by BorrowError and BorrowMutError.
	ErrBorrowConflict = errors.New("cell: borrow conflict")
	// ErrGuardReleased is the panic value for any use of a released or
	// consumed guard.
	ErrGuardReleased = errors.New("cell: guard used after release")
)

// BorrowError is returned by TryBorrow when a shared borrow is not possible.
type BorrowError struct {
	State BorrowState
}

func (e *BorrowError) Error() string {
	if e.State == Shared {
		return "too many shared borrows"
	}
	return "already mutably borrowed"
}

// Is reports whether target is ErrBorrowConflict.
func (e *BorrowError) Is(target error) bool { return target == ErrBorrowConflict }

// BorrowMutError is returned by TryBorrowMut when an exclusive borrow is not possible.
type BorrowMutError struct {
	State BorrowState
}

func (e *BorrowMutError) Error() string { return "already borrowed" }

// Is reports whether target is ErrBorrowConflict.
func (e *BorrowMutError) Is(target error) bool { return target == ErrBorrowConflict }
