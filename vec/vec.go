package vec

import (
	"fmt"
	"iter"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/internal/conv"
)

type vecState uint8

const (
	stateLive vecState = iota
	stateReleased
	stateMoved
)

// Vec is a growable array of T backed by a RawBuf.
//
// Slots [0, Len()) hold live values; slots [Len(), Capacity()) are never
// read. The zero value is an empty vector using the default allocator.
//
// A Vec has exactly one owner and is not safe for concurrent use.
type Vec[T any] struct {
	buf   *RawBuf[T]
	len   int
	drop  func(*T)
	state vecState
}

// New creates an empty vector. No allocation is performed.
func New[T any](opts ...Option) *Vec[T] {
	return &Vec[T]{
		buf:  NewRawBuf[T](opts...),
		drop: dropFuncFor[T](),
	}
}

// WithCapacity creates an empty vector with room for exactly n values.
func WithCapacity[T any](n int, opts ...Option) *Vec[T] {
	return &Vec[T]{
		buf:  RawBufWithCapacity[T](n, opts...),
		drop: dropFuncFor[T](),
	}
}

// FromSlice creates a vector holding a copy of s.
func FromSlice[T any](s []T, opts ...Option) *Vec[T] {
	v := WithCapacity[T](len(s), opts...)
	if !v.buf.zst {
		copy(v.buf.data, s)
	}
	v.len = len(s)
	return v
}

// Collect creates a vector from every value of seq.
//
// After the first value the vector is sized for the sequence's hint, but
// never below the minimum non-zero capacity; further growth is amortized.
func Collect[T any](seq Sequence[T], opts ...Option) *Vec[T] {
	first, ok := seq.Next()
	if !ok {
		return New[T](opts...)
	}

	elemMin := minNonZeroCap(alloc.LayoutOf[T]().Size)
	v := WithCapacity[T](max(elemMin, conv.SaturatingAdd(seq.SizeHint(), 1)), opts...)
	v.Push(first)
	v.Extend(seq)
	return v
}

func (v *Vec[T]) raw() *RawBuf[T] {
	switch v.state {
	case stateMoved:
		panic(ErrMoved)
	case stateReleased:
		panic(ErrReleased)
	}
	if v.buf == nil {
		v.buf = NewRawBuf[T]()
		v.drop = dropFuncFor[T]()
	}
	return v.buf
}

// Len returns the number of live values.
func (v *Vec[T]) Len() int {
	v.raw()
	return v.len
}

// IsEmpty reports whether the vector holds no values.
func (v *Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Capacity returns the number of values the vector can hold without growing,
// or Unbounded for zero-sized T.
func (v *Vec[T]) Capacity() int {
	return v.raw().Capacity()
}

// Push appends value, growing the buffer if it is full. Amortized O(1).
func (v *Vec[T]) Push(value T) {
	b := v.raw()
	if v.len == b.Capacity() {
		b.ReserveForPush(v.len)
	}
	if !b.zst {
		b.data[v.len] = value
	}
	v.len++
}

// Pop removes and returns the last value, or false if the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	b := v.raw()
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	if b.zst {
		return zero, true
	}
	value := b.data[v.len]
	b.data[v.len] = zero
	return value, true
}

// Insert places value at index, shifting [index, Len()) one slot right.
// It panics with *IndexError unless 0 <= index <= Len().
func (v *Vec[T]) Insert(index int, value T) {
	b := v.raw()
	checkInsert(index, v.len)

	if v.len == b.Capacity() {
		b.Reserve(v.len, 1)
	}
	if !b.zst {
		copy(b.data[index+1:v.len+1], b.data[index:v.len])
		b.data[index] = value
	}
	v.len++
}

// Remove removes and returns the value at index, shifting the tail left.
// Order is preserved. It panics with *IndexError unless 0 <= index < Len().
func (v *Vec[T]) Remove(index int) T {
	b := v.raw()
	checkIndex("removal", index, v.len)

	var zero T
	v.len--
	if b.zst {
		return zero
	}
	value := b.data[index]
	copy(b.data[index:v.len], b.data[index+1:v.len+1])
	b.data[v.len] = zero
	return value
}

// SwapRemove removes and returns the value at index, moving the last value
// into its slot. O(1), does not preserve order.
// It panics with *IndexError unless 0 <= index < Len().
func (v *Vec[T]) SwapRemove(index int) T {
	b := v.raw()
	checkIndex("swap_remove", index, v.len)

	var zero T
	v.len--
	if b.zst {
		return zero
	}
	value := b.data[index]
	b.data[index] = b.data[v.len]
	b.data[v.len] = zero
	return value
}

// Extend appends every value of seq.
//
// Whenever the buffer is full it reserves room for SizeHint()+1 more values.
// The hint is only a hint: shorter or longer sequences are handled.
func (v *Vec[T]) Extend(seq Sequence[T]) {
	b := v.raw()
	for {
		value, ok := seq.Next()
		if !ok {
			return
		}
		if v.len == b.Capacity() {
			b.Reserve(v.len, conv.SaturatingAdd(seq.SizeHint(), 1))
		}
		if !b.zst {
			b.data[v.len] = value
		}
		v.len++
	}
}

// ExtendSeq appends every value yielded by seq.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) {
	for value := range seq {
		v.Push(value)
	}
}

// ExtendSlice appends a copy of s, reserving exactly once.
// s may be a view of v itself.
func (v *Vec[T]) ExtendSlice(s []T) {
	b := v.raw()
	b.Reserve(v.len, len(s))
	if !b.zst {
		copy(b.data[v.len:], s)
	}
	v.len += len(s)
}

// Truncate drops the values in [n, Len()) and shortens the vector to n.
// It has no effect if n >= Len(). Capacity is retained.
func (v *Vec[T]) Truncate(n int) {
	b := v.raw()
	if n < 0 {
		n = 0
	}
	if n >= v.len {
		return
	}
	tail := v.len - n
	v.len = n
	if b.zst {
		dropZeroSized(v.drop, tail)
		return
	}
	dropRange(v.drop, b.data[n:n+tail])
}

// Clear drops every value. Capacity is retained.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Reserve ensures room for at least additional more values.
func (v *Vec[T]) Reserve(additional int) {
	v.raw().Reserve(v.len, additional)
}

// ReserveExact ensures room for exactly additional more values.
func (v *Vec[T]) ReserveExact(additional int) {
	v.raw().ReserveExact(v.len, additional)
}

// TryReserve is the fallible form of Reserve.
func (v *Vec[T]) TryReserve(additional int) error {
	return v.raw().TryReserve(v.len, additional)
}

// TryReserveExact is the fallible form of ReserveExact.
func (v *Vec[T]) TryReserveExact(additional int) error {
	return v.raw().TryReserveExact(v.len, additional)
}

// Get returns a copy of the value at index.
func (v *Vec[T]) Get(index int) T {
	return *v.At(index)
}

// At returns a pointer to the value at index. The pointer is valid until
// the next operation that grows or shrinks the vector.
func (v *Vec[T]) At(index int) *T {
	b := v.raw()
	checkIndex("index", index, v.len)
	if b.zst {
		return new(T)
	}
	return &b.data[index]
}

// Set drops the value at index and stores value in its place.
func (v *Vec[T]) Set(index int, value T) {
	p := v.At(index)
	if v.drop != nil {
		v.drop(p)
	}
	*p = value
}

// Replace stores value at index and returns the previous value.
func (v *Vec[T]) Replace(index int, value T) T {
	p := v.At(index)
	old := *p
	*p = value
	return old
}

// Range returns a view of [lo, hi). The view shares storage with the vector
// and its capacity ends at hi, so appending to it never touches dead slots.
func (v *Vec[T]) Range(lo, hi int) []T {
	b := v.raw()
	checkRange(lo, hi, v.len)
	if b.zst {
		return make([]T, hi-lo)
	}
	return b.data[lo:hi:hi]
}

// AsSlice returns a view of all live values.
func (v *Vec[T]) AsSlice() []T {
	return v.Range(0, v.Len())
}

// All returns an iterator over index/value pairs in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.Get(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.Get(i)) {
				return
			}
		}
	}
}

// IntoIter consumes the vector and returns an owning iterator over its
// values. The buffer and every remaining value belong to the iterator;
// the vector must not be used again, and Release on it is a no-op.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	b := v.raw()
	it := newIntoIter(b, v.len, v.drop)
	v.buf = nil
	v.len = 0
	v.state = stateMoved
	return it
}

// Release drops every value and releases the buffer. Later calls are no-ops;
// any other use panics with ErrReleased.
func (v *Vec[T]) Release() {
	if v.state != stateLive {
		return
	}
	if v.buf != nil {
		v.Truncate(0)
		v.buf.Release()
	}
	v.buf = nil
	v.state = stateReleased
}

func (v *Vec[T]) String() string {
	switch v.state {
	case stateMoved:
		return "Vec(moved)"
	case stateReleased:
		return "Vec(released)"
	}
	return fmt.Sprint(v.AsSlice())
}
