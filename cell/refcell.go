package cell

import (
	"fmt"
	"math"
)

// RefCell is a mutable memory location with dynamically checked borrow rules.
//
// The zero value is an unborrowed cell holding the zero T. A RefCell must not
// be copied after first use.
type RefCell[T any] struct {
	value  T
	borrow Cell[int]
}

// NewRefCell creates an unborrowed cell holding v.
func NewRefCell[T any](v T) *RefCell[T] {
	return &RefCell[T]{value: v}
}

// Borrow returns a shared guard. It panics with *BorrowError if the value is
// exclusively borrowed.
func (c *RefCell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrow returns a shared guard, or *BorrowError if the value is
// exclusively borrowed or the shared count is exhausted.
func (c *RefCell[T]) TryBorrow() (*Ref[T], error) {
	n := c.borrow.Get()
	if n == exclusive {
		return nil, &BorrowError{State: Exclusive}
	}
	if n == math.MaxInt {
		return nil, &BorrowError{State: Shared}
	}
	c.borrow.Set(n + 1)
	return &Ref[T]{value: &c.value, borrow: &c.borrow}, nil
}

// BorrowMut returns an exclusive guard. It panics with *BorrowMutError if any
// guard is live.
func (c *RefCell[T]) BorrowMut() *RefMut[T] {
	m, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return m
}

// TryBorrowMut returns an exclusive guard, or *BorrowMutError if any guard is live.
func (c *RefCell[T]) TryBorrowMut() (*RefMut[T], error) {
	n := c.borrow.Get()
	if n != unshared {
		return nil, &BorrowMutError{State: stateOf(n)}
	}
	c.borrow.Set(exclusive)
	return &RefMut[T]{value: &c.value, borrow: &c.borrow}, nil
}

// Replace stores v and returns the previous value.
// It panics with *BorrowMutError if any guard is live.
func (c *RefCell[T]) Replace(v T) T {
	m := c.BorrowMut()
	defer m.Release()

	old := *m.value
	*m.value = v
	return old
}

// ReplaceWith stores f(current) and returns the previous value.
// It panics with *BorrowMutError if any guard is live.
func (c *RefCell[T]) ReplaceWith(f func(*T) T) T {
	m := c.BorrowMut()
	defer m.Release()

	next := f(m.value)
	old := *m.value
	*m.value = next
	return old
}

// Swap exchanges the values of two cells. It panics with *BorrowMutError if
// either cell has a live guard, including when other is c.
func (c *RefCell[T]) Swap(other *RefCell[T]) {
	a := c.BorrowMut()
	defer a.Release()
	b := other.BorrowMut()
	defer b.Release()

	*a.value, *b.value = *b.value, *a.value
}

// Take returns the value and leaves the zero value in its place.
func (c *RefCell[T]) Take() T {
	var zero T
	return c.Replace(zero)
}

// Inspect calls f with the value under a shared borrow.
func (c *RefCell[T]) Inspect(f func(T)) {
	r := c.Borrow()
	defer r.Release()
	f(*r.value)
}

// Mutate calls f with a pointer to the value under an exclusive borrow.
// The pointer must not be retained after f returns.
func (c *RefCell[T]) Mutate(f func(*T)) {
	m := c.BorrowMut()
	defer m.Release()
	f(m.value)
}

// State reports the current borrow state.
func (c *RefCell[T]) State() BorrowState {
	return stateOf(c.borrow.Get())
}

// Ptr returns a pointer to the value, bypassing the borrow rules.
func (c *RefCell[T]) Ptr() *T {
	return &c.value
}

// Clone returns a new unborrowed cell holding a copy of the value.
// It panics with *BorrowError if the value is exclusively borrowed.
func (c *RefCell[T]) Clone() *RefCell[T] {
	r := c.Borrow()
	defer r.Release()
	return NewRefCell(*r.value)
}

func (c *RefCell[T]) String() string {
	r, err := c.TryBorrow()
	if err != nil {
		return "RefCell(<borrowed>)"
	}
	defer r.Release()
	return fmt.Sprintf("RefCell(%v)", *r.value)
}
