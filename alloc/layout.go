package alloc

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rawkit/internal/conv"
)

// Layout describes the size and alignment of a memory region in bytes.
type Layout struct {
	Size  int
	Align int
}

// LayoutOf returns the layout of a single T.
func LayoutOf[T any]() Layout {
	var zero T
	size, _ := conv.UintptrToInt(unsafe.Sizeof(zero))
	align, _ := conv.UintptrToInt(unsafe.Alignof(zero))
	return Layout{Size: size, Align: align}
}

// ArrayLayout returns the layout of n contiguous T values.
// It returns ErrCapacityOverflow if n is negative or the byte size does not fit in an int.
func ArrayLayout[T any](n int) (Layout, error) {
	elem := LayoutOf[T]()
	if n < 0 {
		return Layout{}, errors.Wrapf(ErrCapacityOverflow, "negative element count %d", n)
	}
	size, ok := conv.MulInt(elem.Size, n)
	if !ok {
		return Layout{}, errors.Wrapf(ErrCapacityOverflow, "%d elements of %d bytes", n, elem.Size)
	}
	return Layout{Size: size, Align: elem.Align}, nil
}

// IsZero reports whether the layout describes an empty region.
func (l Layout) IsZero() bool { return l.Size == 0 }

// Validate checks that the alignment is a power of two and the size is non-negative.
func (l Layout) Validate() error {
	if l.Size < 0 {
		return errors.Newf("invalid layout: negative size %d", l.Size)
	}
	if l.Align <= 0 || l.Align&(l.Align-1) != 0 {
		return errors.Newf("invalid layout: alignment %d is not a power of two", l.Align)
	}
	return nil
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.Size, l.Align)
}
