package vec

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rawkit"
	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/internal/conv"
)

// Unbounded is the capacity reported for zero-sized element types.
const Unbounded = math.MaxInt

// RawBuf owns a single allocation sized for a number of T values.
//
// It knows nothing about which slots hold live values; that is the job of
// its owner (Vec or IntoIter). The storage never leaves the package, so all
// element access goes through bounds-checked accessors on the owner.
//
// The zero value is not usable; create buffers with NewRawBuf or
// RawBufWithCapacity.
type RawBuf[T any] struct {
	data     []T // len(data) == cap for sized T, nil for zero-sized T
	cap      int
	zst      bool
	elem     alloc.Layout
	minCap   int
	alloc    alloc.Allocator
	logger   *rawkit.Logger
	released bool
}

// NewRawBuf creates an empty buffer. No allocation is performed.
func NewRawBuf[T any](opts ...Option) *RawBuf[T] {
	elem := alloc.LayoutOf[T]()
	o := applyOptions[T](elem, opts)

	return &RawBuf[T]{
		zst:    elem.Size == 0,
		elem:   elem,
		minCap: minNonZeroCap(elem.Size),
		alloc:  o.allocator,
		logger: o.logger,
	}
}

// RawBufWithCapacity creates a buffer with room for exactly n values.
// For zero-sized T it returns the empty buffer, whose capacity is Unbounded.
//
// It panics with alloc.ErrCapacityOverflow or an *alloc.AllocError if the
// allocation cannot be made.
func RawBufWithCapacity[T any](n int, opts ...Option) *RawBuf[T] {
	b := NewRawBuf[T](opts...)
	if b.zst || n == 0 {
		return b
	}
	b.handleReserve(0, n, b.resize(n))
	return b
}

// emptyLike returns an unallocated buffer with b's element type and options.
func (b *RawBuf[T]) emptyLike() *RawBuf[T] {
	return &RawBuf[T]{
		zst:    b.zst,
		elem:   b.elem,
		minCap: b.minCap,
		alloc:  b.alloc,
		logger: b.logger,
	}
}

// minNonZeroCap is the smallest capacity a growing buffer jumps to.
func minNonZeroCap(elemSize int) int {
	switch {
	case elemSize == 1:
		return 8
	case elemSize <= 1024:
		return 4
	default:
		return 1
	}
}

// Capacity returns the number of values the buffer can hold, or Unbounded
// for zero-sized T.
func (b *RawBuf[T]) Capacity() int {
	b.mustLive()
	if b.zst {
		return Unbounded
	}
	return b.cap
}

// ReserveForPush grows the buffer so it holds at least one value beyond length.
// It always grows, using the amortized doubling policy.
func (b *RawBuf[T]) ReserveForPush(length int) {
	b.mustLive()
	b.handleReserve(length, 1, b.grow(length, 1))
}

// Reserve ensures room for additional values beyond length, growing with
// the amortized doubling policy if needed.
func (b *RawBuf[T]) Reserve(length, additional int) {
	b.handleReserve(length, additional, b.TryReserve(length, additional))
}

// TryReserve is the fallible form of Reserve.
func (b *RawBuf[T]) TryReserve(length, additional int) error {
	b.mustLive()
	if !b.needsToGrow(length, additional) {
		return nil
	}
	return b.grow(length, additional)
}

// ReserveExact ensures room for exactly length+additional values, without
// over-allocating.
func (b *RawBuf[T]) ReserveExact(length, additional int) {
	b.handleReserve(length, additional, b.TryReserveExact(length, additional))
}

// TryReserveExact is the fallible form of ReserveExact.
func (b *RawBuf[T]) TryReserveExact(length, additional int) error {
	b.mustLive()
	if !b.needsToGrow(length, additional) {
		return nil
	}
	return b.growExact(length, additional)
}

// Release returns the allocation to the allocator. It is released exactly
// once: later calls are no-ops and every other method panics with ErrReleased.
func (b *RawBuf[T]) Release() {
	if b.released {
		return
	}
	if l := b.layout(); !l.IsZero() {
		clear(b.data)
		b.alloc.Deallocate(l)
		b.logger.LogRelease(b.cap, l.Size)
	}
	b.data = nil
	b.cap = 0
	b.released = true
}

// Released reports whether Release has been called.
func (b *RawBuf[T]) Released() bool {
	return b.released
}

func (b *RawBuf[T]) mustLive() {
	if b.released {
		panic(ErrReleased)
	}
}

func (b *RawBuf[T]) needsToGrow(length, additional int) bool {
	if additional < 0 {
		return false
	}
	return additional > b.Capacity()-length
}

// layout is the currently admitted region, zero if nothing is allocated.
func (b *RawBuf[T]) layout() alloc.Layout {
	if b.zst || b.cap == 0 {
		return alloc.Layout{}
	}
	// cap*size was admitted by ArrayLayout, so it fits.
	return alloc.Layout{Size: b.cap * b.elem.Size, Align: b.elem.Align}
}

func (b *RawBuf[T]) grow(length, additional int) error {
	if b.zst {
		return errors.Wrap(alloc.ErrCapacityOverflow, "zero-sized element count exhausted")
	}
	required, ok := conv.AddInt(length, additional)
	if !ok {
		return errors.Wrapf(alloc.ErrCapacityOverflow, "len %d + additional %d", length, additional)
	}
	newCap := max(conv.SaturatingMul(b.cap, 2), required, b.minCap)
	return b.resize(newCap)
}

func (b *RawBuf[T]) growExact(length, additional int) error {
	if b.zst {
		return errors.Wrap(alloc.ErrCapacityOverflow, "zero-sized element count exhausted")
	}
	required, ok := conv.AddInt(length, additional)
	if !ok {
		return errors.Wrapf(alloc.ErrCapacityOverflow, "len %d + additional %d", length, additional)
	}
	return b.resize(required)
}

// resize moves the contents into a fresh region of newCap values.
// The old region is retired but left intact, so views into it keep reading
// the values they saw.
func (b *RawBuf[T]) resize(newCap int) error {
	layout, err := alloc.ArrayLayout[T](newCap)
	if err != nil {
		return err
	}

	if old := b.layout(); old.IsZero() {
		err = b.alloc.Allocate(layout)
	} else {
		err = b.alloc.Grow(old, layout)
	}
	if err != nil {
		return alloc.NewAllocError(layout, err)
	}

	data := make([]T, newCap)
	copy(data, b.data)

	oldCap := b.cap
	b.data = data
	b.cap = newCap
	b.logger.LogGrow(oldCap, newCap, layout.Size)
	return nil
}

// handleReserve turns a reservation error into a panic carrying the error.
// Capacity overflow and allocation failure stay distinguishable with errors.Is.
func (b *RawBuf[T]) handleReserve(length, additional int, err error) {
	if err == nil {
		return
	}
	b.logger.LogReserveFailure(length, additional, err)
	panic(err)
}
