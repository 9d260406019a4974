package cell

import (
	"fmt"
	"math"
)

// Ref is a shared guard on a RefCell value.
type Ref[T any] struct {
	value    *T
	borrow   *Cell[int]
	released bool
}

func (r *Ref[T]) mustLive() {
	if r.released {
		panic(ErrGuardReleased)
	}
}

// Get returns a copy of the guarded value.
func (r *Ref[T]) Get() T {
	r.mustLive()
	return *r.value
}

// Clone returns another shared guard on the same value.
// It panics with *BorrowError if the shared count is exhausted.
func (r *Ref[T]) Clone() *Ref[T] {
	r.mustLive()
	// A live Ref keeps the counter positive, so it is never exclusive here.
	if r.borrow.Get() == math.MaxInt {
		panic(&BorrowError{State: Shared})
	}
	r.borrow.Update(func(n int) int { return n + 1 })
	return &Ref[T]{value: r.value, borrow: r.borrow}
}

// Release gives up the shared borrow. Later calls are no-ops.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.borrow.Update(func(n int) int { return n - 1 })
}

func (r *Ref[T]) String() string {
	if r.released {
		return "<released>"
	}
	return fmt.Sprint(*r.value)
}

// MapRef consumes r and returns a guard on the part of the value selected by f.
// The new guard holds the same shared borrow. If f panics, r stays live.
func MapRef[T, U any](r *Ref[T], f func(*T) *U) *Ref[U] {
	r.mustLive()
	u := f(r.value)
	r.released = true
	return &Ref[U]{value: u, borrow: r.borrow}
}

// FilterMapRef is like MapRef, but f may decline. When it does, r is left
// untouched and the result is nil, false.
func FilterMapRef[T, U any](r *Ref[T], f func(*T) (*U, bool)) (*Ref[U], bool) {
	r.mustLive()
	u, ok := f(r.value)
	if !ok {
		return nil, false
	}
	r.released = true
	return &Ref[U]{value: u, borrow: r.borrow}, true
}

// RefMut is an exclusive guard on a RefCell value.
type RefMut[T any] struct {
	value    *T
	borrow   *Cell[int]
	released bool
}

func (m *RefMut[T]) mustLive() {
	if m.released {
		panic(ErrGuardReleased)
	}
}

// Get returns a copy of the guarded value.
func (m *RefMut[T]) Get() T {
	m.mustLive()
	return *m.value
}

// Set stores v.
func (m *RefMut[T]) Set(v T) {
	m.mustLive()
	*m.value = v
}

// Ptr returns a pointer to the guarded value. It must not be used after Release.
func (m *RefMut[T]) Ptr() *T {
	m.mustLive()
	return m.value
}

// Release gives up the exclusive borrow. Later calls are no-ops.
func (m *RefMut[T]) Release() {
	if m.released {
		return
	}
	m.released = true
	m.borrow.Set(unshared)
}

func (m *RefMut[T]) String() string {
	if m.released {
		return "<released>"
	}
	return fmt.Sprint(*m.value)
}

// MapRefMut consumes m and returns an exclusive guard on the part of the
// value selected by f. If f panics, m stays live.
func MapRefMut[T, U any](m *RefMut[T], f func(*T) *U) *RefMut[U] {
	m.mustLive()
	u := f(m.value)
	m.released = true
	return &RefMut[U]{value: u, borrow: m.borrow}
}

// FilterMapRefMut is like MapRefMut, but f may decline. When it does, m is
// left untouched and the result is nil, false.
func FilterMapRefMut[T, U any](m *RefMut[T], f func(*T) (*U, bool)) (*RefMut[U], bool) {
	m.mustLive()
	u, ok := f(m.value)
	if !ok {
		return nil, false
	}
	m.released = true
	return &RefMut[U]{value: u, borrow: m.borrow}, true
}
