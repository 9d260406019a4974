// Package cell provides interior-mutability containers.
//
// Cell holds a value that is copied in and out; it never hands out pointers
// that outlive a call (except through the explicit Ptr escape hatch) and has
// no runtime bookkeeping.
//
// RefCell hands out guards and enforces at run time that a value has either
// any number of shared guards (Ref) or exactly one exclusive guard (RefMut):
//
//	c := cell.NewRefCell([]int{1, 2, 3})
//	r := c.Borrow()
//	_, err := c.TryBorrowMut() // err matches ErrBorrowConflict
//	r.Release()
//	c.Mutate(func(s *[]int) { (*s)[0] = 4 })
//
// Guards must be released explicitly. The scoped helpers Inspect and Mutate
// release through defer and are the preferred form.
//
// # Concurrency
//
// Neither type is safe for concurrent use. The borrow counter is a plain
// integer; a RefCell shared between goroutines needs external locking.
package cell
