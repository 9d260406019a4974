package alloc

import (
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rawkit/internal/conv"
	"github.com/hupe1980/rawkit/internal/resource"
)

// BudgetConfig configures a Budget.
type BudgetConfig struct {
	// LimitBytes is the hard limit for all regions admitted by the budget.
	// If 0, no limit is enforced (only tracking).
	LimitBytes int64
}

// Budget is a fail-fast memory budget layered over System. Requests that
// would push usage over the limit are refused immediately with
// ErrBudgetExceeded.
//
// A nil *Budget admits everything and tracks nothing.
type Budget struct {
	rc *resource.Controller
}

// NewBudget creates a new Budget.
func NewBudget(cfg BudgetConfig) *Budget {
	return &Budget{
		rc: resource.NewController(resource.Config{MemoryLimitBytes: cfg.LimitBytes}),
	}
}

// Allocate implements Allocator.
func (b *Budget) Allocate(layout Layout) error {
	if err := checkSystem(layout); err != nil {
		return err
	}
	return b.acquire(layout.Size)
}

// Grow implements Allocator. Only the difference between the two layouts is charged.
func (b *Budget) Grow(from, to Layout) error {
	if err := checkSystem(to); err != nil {
		return err
	}
	if to.Size < from.Size {
		return errors.Newf("budget: cannot grow from %d to %d bytes", from.Size, to.Size)
	}
	return b.acquire(to.Size - from.Size)
}

// Deallocate implements Allocator.
func (b *Budget) Deallocate(layout Layout) {
	if b == nil {
		return
	}
	size, err := conv.IntToInt64(layout.Size)
	if err != nil {
		return
	}
	b.rc.ReleaseMemory(size)
}

// Usage returns the bytes currently admitted.
func (b *Budget) Usage() int64 {
	if b == nil {
		return 0
	}
	return b.rc.MemoryUsage()
}

// Peak returns the high-water mark of admitted bytes.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.rc.PeakUsage()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.rc.MemoryLimit()
}

func (b *Budget) acquire(bytes int) error {
	if b == nil {
		return nil
	}
	size, err := conv.IntToInt64(bytes)
	if err != nil {
		return err
	}
	return b.rc.AcquireMemory(size)
}
