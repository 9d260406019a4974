package testutil

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Ints returns n pseudo-random values in [0, limit).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// Op is a single step of a randomized container script.
type Op uint8

const (
	OpPush Op = iota
	OpPop
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Ops generates a script of n push/pop operations where each step is a push
// with probability pushRate.
func (r *RNG) Ops(n int, pushRate float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		if r.rand.Float64() < pushRate {
			ops[i] = OpPush
		} else {
			ops[i] = OpPop
		}
	}
	return ops
}

// DropTracker counts Drop calls per probe id.
type DropTracker struct {
	mu     sync.Mutex
	counts map[int]int
	order  []int
}

// NewDropTracker creates an empty tracker.
func NewDropTracker() *DropTracker {
	return &DropTracker{counts: make(map[int]int)}
}

// Probe is a value that reports its destruction to a DropTracker.
// The zero Probe is inert.
type Probe struct {
	ID      int
	tracker *DropTracker
}

// Drop records the destruction of p.
func (p Probe) Drop() {
	if p.tracker == nil {
		return
	}
	p.tracker.record(p.ID)
}

func (p Probe) String() string {
	return fmt.Sprintf("probe#%d", p.ID)
}

// New returns a probe with the given id.
func (t *DropTracker) New(id int) Probe {
	return Probe{ID: id, tracker: t}
}

// Probes returns n probes with ids 0..n-1.
func (t *DropTracker) Probes(n int) []Probe {
	out := make([]Probe, n)
	for i := range out {
		out[i] = t.New(i)
	}
	return out
}

func (t *DropTracker) record(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[id]++
	t.order = append(t.order, id)
}

// Count returns how often the probe with the given id was dropped.
func (t *DropTracker) Count(id int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[id]
}

// Total returns the number of Drop calls across all probes.
func (t *DropTracker) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}

// Order returns the probe ids in the order they were dropped.
func (t *DropTracker) Order() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.order)
}

// Dropped returns the sorted ids dropped at least once.
func (t *DropTracker) Dropped() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int, 0, len(t.counts))
	for id := range t.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Reset forgets all recorded drops.
func (t *DropTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.counts)
	t.order = nil
}
