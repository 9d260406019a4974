package vec

import (
	"fmt"
	"iter"
)

// IntoIter is an owning, double-ended iterator over the values of a consumed Vec.
//
// [front, back) is exactly the set of values not yet yielded; the cursors only
// move toward each other. When they meet the buffer is released. Close drops
// whatever is left and releases the buffer early. The zero value is an
// exhausted iterator.
type IntoIter[T any] struct {
	buf   *RawBuf[T] // nil once exhausted or closed
	front int
	back  int
	drop  func(*T)
}

func newIntoIter[T any](buf *RawBuf[T], length int, drop func(*T)) *IntoIter[T] {
	it := &IntoIter[T]{buf: buf, back: length, drop: drop}
	if length == 0 {
		it.finish()
	}
	return it
}

// Next yields the value at the front cursor, or false once exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.buf == nil || it.front == it.back {
		return zero, false
	}

	value := zero
	if it.buf.zst {
		it.back--
	} else {
		value = it.buf.data[it.front]
		it.buf.data[it.front] = zero
		it.front++
	}

	if it.front == it.back {
		it.finish()
	}
	return value, true
}

// NextBack yields the value at the back cursor, or false once exhausted.
func (it *IntoIter[T]) NextBack() (T, bool) {
	var zero T
	if it.buf == nil || it.front == it.back {
		return zero, false
	}

	it.back--
	value := zero
	if !it.buf.zst {
		value = it.buf.data[it.back]
		it.buf.data[it.back] = zero
	}

	if it.front == it.back {
		it.finish()
	}
	return value, true
}

// Len returns the number of values not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.back - it.front
}

// SizeHint implements Sequence. The hint is exact.
func (it *IntoIter[T]) SizeHint() int {
	return it.Len()
}

// AsSlice returns a view of the values not yet yielded.
func (it *IntoIter[T]) AsSlice() []T {
	if it.buf == nil {
		return nil
	}
	if it.buf.zst {
		return make([]T, it.Len())
	}
	return it.buf.data[it.front:it.back:it.back]
}

// Close drops every value not yet yielded and releases the buffer.
// Close is idempotent.
func (it *IntoIter[T]) Close() {
	if it.buf == nil {
		return
	}
	remaining := it.back - it.front
	if it.buf.zst {
		dropZeroSized(it.drop, remaining)
	} else {
		dropRange(it.drop, it.buf.data[it.front:it.back])
	}
	it.front = it.back
	it.finish()
}

// Seq adapts the iterator for range-over-func. The iterator is closed when
// the loop ends, so values left behind by a break are dropped.
func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Clone returns an independent iterator over a shallow copy of the values not
// yet yielded, in a fresh buffer from the same allocator. For Dropper element
// types both iterators drop their own copies.
func (it *IntoIter[T]) Clone() *IntoIter[T] {
	if it.buf == nil {
		return &IntoIter[T]{drop: it.drop}
	}
	n := it.Len()
	buf := it.buf.emptyLike()
	if !buf.zst && n > 0 {
		buf.handleReserve(0, n, buf.resize(n))
		copy(buf.data, it.buf.data[it.front:it.back])
	}
	return newIntoIter(buf, n, it.drop)
}

func (it *IntoIter[T]) String() string {
	return fmt.Sprintf("IntoIter(%v)", it.AsSlice())
}

func (it *IntoIter[T]) finish() {
	if it.buf != nil {
		it.buf.Release()
		it.buf = nil
	}
}
