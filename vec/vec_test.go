package vec

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rawkit/alloc"
	"github.com/hupe1980/rawkit/testutil"
)

func TestVec_PushPop(t *testing.T) {
	v := New[int]()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Capacity())

	for i := range 16 {
		v.Push(i)
	}
	assert.Equal(t, 16, v.Len())
	assert.Equal(t, 16, v.Capacity())

	for i := 16; i < 100; i++ {
		v.Push(i)
	}
	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 128, v.Capacity())

	for i := 99; i >= 0; i-- {
		x, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, i, x)
	}

	_, ok := v.Pop()
	assert.False(t, ok)
	assert.Equal(t, 128, v.Capacity())
}

func TestVec_ZeroValue(t *testing.T) {
	var v Vec[string]

	assert.Equal(t, 0, v.Len())
	v.Push("a")
	v.Push("b")
	assert.Equal(t, []string{"a", "b"}, v.AsSlice())
	v.Release()
}

func TestVec_Bytes(t *testing.T) {
	v := New[byte]()
	v.Push('x')
	assert.Equal(t, 8, v.Capacity())
}

func TestVec_RandomPushPop(t *testing.T) {
	rng := testutil.NewRNG(4711)
	v := New[int]()
	var model []int
	prevCap := 0

	for i, op := range rng.Ops(5000, 0.6) {
		switch op {
		case testutil.OpPush:
			v.Push(i)
			model = append(model, i)
		case testutil.OpPop:
			x, ok := v.Pop()
			if len(model) == 0 {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.Equal(t, model[len(model)-1], x)
			model = model[:len(model)-1]
		}

		require.Equal(t, len(model), v.Len())
		require.GreaterOrEqual(t, v.Capacity(), prevCap)
		require.GreaterOrEqual(t, v.Capacity(), v.Len())
		prevCap = v.Capacity()
	}
	assert.Equal(t, model, slices.Clone(v.AsSlice()))
}

func TestVec_InsertRemove(t *testing.T) {
	v := FromSlice([]int{1, 2, 4})

	v.Insert(2, 3)
	assert.Equal(t, []int{1, 2, 3, 4}, v.AsSlice())

	v.Insert(0, 0)
	v.Insert(v.Len(), 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.AsSlice())

	assert.Equal(t, 3, v.Remove(3))
	assert.Equal(t, []int{0, 1, 2, 4, 5}, v.AsSlice())

	assert.Equal(t, 5, v.Remove(v.Len()-1))
	assert.Equal(t, 0, v.Remove(0))
	assert.Equal(t, []int{1, 2, 4}, v.AsSlice())
}

func TestVec_InsertRemoveRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(7)
	v := FromSlice([]int{10, 20, 30, 40, 50})
	want := slices.Clone(v.AsSlice())

	for range 100 {
		i := rng.Intn(v.Len() + 1)
		v.Insert(i, -1)
		assert.Equal(t, -1, v.Remove(i))
		assert.Equal(t, want, v.AsSlice())
	}
}

func TestVec_SwapRemove(t *testing.T) {
	v := FromSlice([]string{"a", "b", "c", "d"})

	assert.Equal(t, "b", v.SwapRemove(1))
	assert.Equal(t, []string{"a", "d", "c"}, v.AsSlice())

	assert.Equal(t, "c", v.SwapRemove(2))
	assert.Equal(t, []string{"a", "d"}, v.AsSlice())
}

func TestVec_Bounds(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})

	tests := []struct {
		name string
		op   string
		fn   func()
	}{
		{"get", "index", func() { v.Get(3) }},
		{"negative get", "index", func() { v.Get(-1) }},
		{"remove", "removal", func() { v.Remove(3) }},
		{"swap_remove", "swap_remove", func() { v.SwapRemove(5) }},
		{"insert", "insert", func() { v.Insert(4, 0) }},
		{"set", "index", func() { v.Set(3, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := panicErr(t, tt.fn)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			var ie *IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.op, ie.Op)
			assert.Equal(t, 3, ie.Len)
		})
	}

	err := panicErr(t, func() { v.Range(2, 4) })
	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = panicErr(t, func() { v.Insert(4, 0) })
	assert.EqualError(t, err, "vec: insertion index (is 4) should be <= len (is 3)")

	// Contents survive the failed operations.
	assert.Equal(t, []int{1, 2, 3}, v.AsSlice())
}

// shortHint under-reports how many values remain.
type shortHint struct {
	n, i int
}

func (s *shortHint) Next() (int, bool) {
	if s.i == s.n {
		return 0, false
	}
	s.i++
	return s.i, true
}

func (s *shortHint) SizeHint() int { return 0 }

func TestVec_Extend(t *testing.T) {
	v := New[int]()
	v.Extend(SliceSeq([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, v.AsSlice())

	v.Extend(&shortHint{n: 50})
	assert.Equal(t, 53, v.Len())
	assert.Equal(t, 50, v.Get(52))

	v.ExtendSlice([]int{7, 8})
	assert.Equal(t, 55, v.Len())

	v.ExtendSeq(slices.Values([]int{9}))
	assert.Equal(t, 9, v.Get(55))
}

func TestVec_ExtendOverstatedHint(t *testing.T) {
	v := New[int]()
	p := PullSeq(slices.Values([]int{1, 2}), 1000)
	defer p.Stop()

	v.Extend(p)
	assert.Equal(t, []int{1, 2}, v.AsSlice())
	assert.Equal(t, 0, p.SizeHint())
}

func TestVec_Collect(t *testing.T) {
	v := Collect(SliceSeq([]int{5, 6, 7}))
	assert.Equal(t, []int{5, 6, 7}, v.AsSlice())
	assert.Equal(t, 4, v.Capacity())

	empty := Collect(SliceSeq[int](nil))
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Capacity())

	units := Collect(SliceSeq(make([]unit, 10)))
	assert.Equal(t, 10, units.Len())
	assert.Equal(t, Unbounded, units.Capacity())
}

func TestVec_ZeroSized(t *testing.T) {
	v := New[unit]()
	for range 101 {
		v.Push(unit{})
	}
	assert.Equal(t, 101, v.Len())
	assert.Equal(t, Unbounded, v.Capacity())

	v.Insert(50, unit{})
	assert.Equal(t, unit{}, v.Remove(0))
	assert.Equal(t, unit{}, v.SwapRemove(0))
	assert.Len(t, v.AsSlice(), 100)

	n := 0
	for range v.Values() {
		n++
	}
	assert.Equal(t, 100, n)

	it := v.IntoIter()
	assert.Equal(t, 100, it.Len())
	_, ok := it.NextBack()
	assert.True(t, ok)
	assert.Equal(t, 99, it.Len())
	it.Close()
	assert.Equal(t, 0, it.Len())
}

func TestVec_Accessors(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})

	*v.At(1) = 20
	assert.Equal(t, 20, v.Get(1))

	assert.Equal(t, 20, v.Replace(1, 2))
	v.Set(2, 30)
	assert.Equal(t, []int{1, 2, 30}, v.AsSlice())

	view := v.Range(0, 2)
	assert.Equal(t, 2, cap(view))
	_ = append(view, 99)
	assert.Equal(t, 30, v.Get(2), "append to a view must not clobber live values")

	var idx []int
	for i := range v.Backward() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{2, 1, 0}, idx)

	for i, x := range v.All() {
		assert.Equal(t, v.Get(i), x)
	}

	assert.Equal(t, "[1 2 30]", v.String())
}

func TestVec_TruncateClear(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	c := v.Capacity()

	v.Truncate(10)
	assert.Equal(t, 5, v.Len())

	v.Truncate(2)
	assert.Equal(t, []int{1, 2}, v.AsSlice())
	assert.Equal(t, c, v.Capacity())
	assert.Equal(t, 0, v.buf.data[2], "truncated slots are zeroed")

	v.Clear()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, c, v.Capacity())
}

func TestVec_Reserve(t *testing.T) {
	v := New[int]()
	v.ReserveExact(10)
	assert.Equal(t, 10, v.Capacity())

	v.Reserve(5)
	assert.Equal(t, 10, v.Capacity())

	for i := range 10 {
		v.Push(i)
	}
	v.Reserve(1)
	assert.Equal(t, 20, v.Capacity())

	require.NoError(t, v.TryReserveExact(30))
	assert.Equal(t, 40, v.Capacity())
}

func TestVec_BudgetFailure(t *testing.T) {
	budget := alloc.NewBudget(alloc.BudgetConfig{LimitBytes: 64})
	v := New[int64](WithAllocator(budget))

	for i := range 8 {
		v.Push(int64(i))
	}
	assert.Equal(t, 8, v.Capacity())

	err := v.TryReserve(1)
	assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
	assert.Equal(t, 8, v.Len())

	err = panicErr(t, func() { v.Push(8) })
	var allocErr *alloc.AllocError
	require.True(t, errors.As(err, &allocErr))
	assert.NotErrorIs(t, err, alloc.ErrCapacityOverflow)

	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7}, v.AsSlice())

	v.Release()
	assert.Equal(t, int64(0), budget.Usage())
}

func TestVec_Release(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	v.Release()
	assert.NotPanics(t, v.Release)
	assert.Equal(t, "Vec(released)", v.String())

	err := panicErr(t, func() { v.Push(1) })
	assert.ErrorIs(t, err, ErrReleased)

	err = panicErr(t, func() { v.Len() })
	assert.ErrorIs(t, err, ErrReleased)
}

func TestVec_UseAfterMove(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	it := v.IntoIter()
	defer it.Close()

	assert.Equal(t, "Vec(moved)", v.String())
	assert.NotPanics(t, v.Release)

	err := panicErr(t, func() { v.Get(0) })
	assert.ErrorIs(t, err, ErrMoved)
}

func TestVec_DropCounts(t *testing.T) {
	t.Run("clear", func(t *testing.T) {
		tr := testutil.NewDropTracker()
		v := FromSlice(tr.Probes(4))

		v.Clear()
		assert.Equal(t, 4, tr.Total())
		assert.Equal(t, []int{0, 1, 2, 3}, tr.Order())

		v.Release()
		assert.Equal(t, 4, tr.Total())
	})

	t.Run("truncate", func(t *testing.T) {
		tr := testutil.NewDropTracker()
		v := FromSlice(tr.Probes(5))

		v.Truncate(2)
		assert.Equal(t, []int{2, 3, 4}, tr.Dropped())

		v.Release()
		assert.Equal(t, 5, tr.Total())
		for i := range 5 {
			assert.Equal(t, 1, tr.Count(i))
		}
	})

	t.Run("moved out values are not dropped", func(t *testing.T) {
		tr := testutil.NewDropTracker()
		v := FromSlice(tr.Probes(4))

		p, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, 3, p.ID)
		v.Remove(0)
		v.SwapRemove(0)
		v.Replace(0, tr.New(9))
		assert.Equal(t, 0, tr.Total())

		v.Release()
		assert.Equal(t, []int{9}, tr.Dropped())
	})

	t.Run("set drops the old value", func(t *testing.T) {
		tr := testutil.NewDropTracker()
		v := FromSlice(tr.Probes(2))

		v.Set(1, tr.New(7))
		assert.Equal(t, []int{1}, tr.Dropped())

		v.Release()
		assert.Equal(t, []int{0, 1, 7}, tr.Dropped())
		assert.Equal(t, 3, tr.Total())
	})

	t.Run("pointer elements", func(t *testing.T) {
		tr := testutil.NewDropTracker()
		a, b := tr.New(0), tr.New(1)
		v := FromSlice([]*testutil.Probe{&a, nil, &b})

		v.Release()
		assert.Equal(t, 2, tr.Total())
	})

	t.Run("zero sized", func(t *testing.T) {
		unitDrops = 0
		v := New[dropUnit]()
		for range 10 {
			v.Push(dropUnit{})
		}
		v.Truncate(7)
		assert.Equal(t, 3, unitDrops)

		v.Release()
		assert.Equal(t, 10, unitDrops)
	})
}

func TestVec_ViewsSurviveGrowth(t *testing.T) {
	t.Run("extend from own view with reallocation", func(t *testing.T) {
		v := FromSlice([]int{1, 2, 3, 4})
		require.Equal(t, 4, v.Capacity())

		v.ExtendSlice(v.AsSlice())
		assert.Equal(t, []int{1, 2, 3, 4, 1, 2, 3, 4}, v.AsSlice())
	})

	t.Run("extend from own view in place", func(t *testing.T) {
		v := WithCapacity[int](10)
		v.ExtendSlice([]int{1, 2, 3})

		v.ExtendSlice(v.Range(0, 2))
		assert.Equal(t, []int{1, 2, 3, 1, 2}, v.AsSlice())
		assert.Equal(t, 10, v.Capacity())
	})

	t.Run("view held across push", func(t *testing.T) {
		v := FromSlice([]int{1, 2, 3, 4})
		view := v.AsSlice()

		v.Push(5)
		assert.Equal(t, []int{1, 2, 3, 4}, view)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, v.AsSlice())
	})
}
