// Package rawkit provides growable arrays and borrow-tracked cells on top of
// a pluggable allocator capability.
//
// # Packages
//
//   - alloc: the allocator capability (Layout, Allocator, System, Budget,
//     metrics collectors)
//   - vec: RawBuf (raw buffer manager), Vec (dynamic array), IntoIter
//     (owning double-ended iterator)
//   - cell: Cell (unconditional-access value cell) and RefCell (runtime
//     borrow-tracked cell with Ref/RefMut guards)
//
// This root package only carries the shared structured Logger.
//
// # Quick Start
//
//	v := vec.New[int]()
//	for i := range 100 {
//	    v.Push(i)
//	}
//	fmt.Println(v.Len(), v.Capacity()) // 100 128
//
//	c := cell.NewRefCell([]string{"a"})
//	r := c.Borrow()
//	_, err := c.TryBorrowMut() // err: already borrowed
//	r.Release()
//
// # Concurrency
//
// Nothing in vec or cell is safe for concurrent use. A Vec has exactly one
// owner; a RefCell tracks borrows for single-goroutine reentrancy, not for
// cross-goroutine sharing. Allocators in alloc are safe for concurrent use so
// a budget can be shared between many owners.
package rawkit
