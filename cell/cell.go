package cell

import (
	"cmp"
	"fmt"
)

// Cell is a mutable memory location whose value is copied in and out.
//
// T should be a value type whose copies do not alias mutable state; Get on a
// Cell holding a slice or map shares the backing storage.
// The zero value holds the zero T.
type Cell[T any] struct {
	value T
}

// New creates a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns a copy of the value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores v.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Replace stores v and returns the previous value.
func (c *Cell[T]) Replace(v T) T {
	old := c.value
	c.value = v
	return old
}

// Swap exchanges the values of two cells. Swapping a cell with itself is a no-op.
func (c *Cell[T]) Swap(other *Cell[T]) {
	if c == other {
		return
	}
	c.value, other.value = other.value, c.value
}

// Take returns the value and leaves the zero value in its place.
func (c *Cell[T]) Take() T {
	var zero T
	return c.Replace(zero)
}

// Update applies f to the value, stores the result and returns it.
func (c *Cell[T]) Update(f func(T) T) T {
	c.value = f(c.value)
	return c.value
}

// Ptr returns a pointer to the stored value.
func (c *Cell[T]) Ptr() *T {
	return &c.value
}

// Clone returns a new cell holding a copy of the value.
func (c *Cell[T]) Clone() *Cell[T] {
	return New(c.value)
}

func (c *Cell[T]) String() string {
	return fmt.Sprintf("Cell(%v)", c.value)
}

// Equal reports whether two cells hold equal values.
func Equal[T comparable](a, b *Cell[T]) bool {
	return a.value == b.value
}

// Compare compares the values of two cells like cmp.Compare.
func Compare[T cmp.Ordered](a, b *Cell[T]) int {
	return cmp.Compare(a.value, b.value)
}
