package vec

import (
	"fmt"
	"testing"

	"github.com/hupe1980/rawkit/alloc"
)

func BenchmarkPush(b *testing.B) {
	sizes := []int{16, 1024, 65536}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := range size {
					v.Push(j)
				}
				v.Release()
			}
		})
	}
}

func BenchmarkPush_Budget(b *testing.B) {
	mc := &alloc.BasicMetricsCollector{}
	a := alloc.Instrument(alloc.NewBudget(alloc.BudgetConfig{LimitBytes: 1 << 30}), mc)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int](WithAllocator(a))
		for j := range 1024 {
			v.Push(j)
		}
		v.Release()
	}
}

func BenchmarkPush_Preallocated(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := WithCapacity[int](1024)
		for j := range 1024 {
			v.Push(j)
		}
		v.Release()
	}
}

func BenchmarkIntoIter(b *testing.B) {
	src := make([]int, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := FromSlice(src).IntoIter()
		for range it.Seq() {
		}
	}
}
