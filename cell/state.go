package cell

// BorrowState describes the borrows currently held on a RefCell.
type BorrowState uint8

const (
	// Unshared means no guard is live.
	Unshared BorrowState = iota
	// Shared means one or more Ref guards are live.
	Shared
	// Exclusive means a RefMut guard is live.
	Exclusive
)

func (s BorrowState) String() string {
	switch s {
	case Unshared:
		return "unshared"
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Borrow counter values.
const (
	unshared  = 0
	exclusive = -1
)

func stateOf(counter int) BorrowState {
	switch {
	case counter == unshared:
		return Unshared
	case counter == exclusive:
		return Exclusive
	default:
		return Shared
	}
}
