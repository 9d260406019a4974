package vec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrReleased is the panic value for any use of a released buffer or vector.
	ErrReleased = errors.New("vec: use after release")
	// ErrMoved is the panic value for any use of a vector consumed by IntoIter.
	ErrMoved = errors.New("vec: use after move")
	// ErrOutOfBounds is matched by IndexError and RangeError.
	ErrOutOfBounds = errors.New("vec: out of bounds")
)

// IndexError is the panic value for an index outside the valid range of an operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Op == "insert" {
		return fmt.Sprintf("vec: insertion index (is %d) should be <= len (is %d)", e.Index, e.Len)
	}
	return fmt.Sprintf("vec: %s index (is %d) should be < len (is %d)", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrOutOfBounds.
func (e *IndexError) Is(target error) bool { return target == ErrOutOfBounds }

// RangeError is the panic value for an invalid [Lo, Hi) range.
type RangeError struct {
	Lo  int
	Hi  int
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vec: range [%d:%d] out of bounds for len %d", e.Lo, e.Hi, e.Len)
}

// Is reports whether target is ErrOutOfBounds.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfBounds }

func checkIndex(op string, index, length int) {
	if index < 0 || index >= length {
		panic(&IndexError{Op: op, Index: index, Len: length})
	}
}

func checkInsert(index, length int) {
	if index < 0 || index > length {
		panic(&IndexError{Op: "insert", Index: index, Len: length})
	}
}

func checkRange(lo, hi, length int) {
	if lo < 0 || lo > hi || hi > length {
		panic(&RangeError{Lo: lo, Hi: hi, Len: length})
	}
}
