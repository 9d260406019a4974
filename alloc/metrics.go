package alloc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems; see
// PrometheusCollector for a ready-made Prometheus integration.
type MetricsCollector interface {
	// RecordAllocate is called after each Allocate.
	// err is nil if the request was admitted.
	RecordAllocate(layout Layout, duration time.Duration, err error)

	// RecordGrow is called after each Grow.
	RecordGrow(from, to Layout, duration time.Duration, err error)

	// RecordDeallocate is called after each Deallocate.
	RecordDeallocate(layout Layout)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(Layout, time.Duration, error)     {}
func (NoopMetricsCollector) RecordGrow(Layout, Layout, time.Duration, error) {}
func (NoopMetricsCollector) RecordDeallocate(Layout)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount   atomic.Int64
	AllocateErrors  atomic.Int64
	GrowCount       atomic.Int64
	GrowErrors      atomic.Int64
	DeallocateCount atomic.Int64
	LiveBytes       atomic.Int64
	TotalNanos      atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(layout Layout, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.LiveBytes.Add(int64(layout.Size))
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to Layout, duration time.Duration, err error) {
	b.GrowCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	b.LiveBytes.Add(int64(to.Size - from.Size))
}

// RecordDeallocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDeallocate(layout Layout) {
	b.DeallocateCount.Add(1)
	b.LiveBytes.Add(-int64(layout.Size))
}

type instrumented struct {
	inner Allocator
	mc    MetricsCollector
}

// Instrument wraps inner so that every call is reported to mc.
// A nil inner means Default; a nil mc returns inner unchanged.
func Instrument(inner Allocator, mc MetricsCollector) Allocator {
	if inner == nil {
		inner = Default
	}
	if mc == nil {
		return inner
	}
	return &instrumented{inner: inner, mc: mc}
}

func (i *instrumented) Allocate(layout Layout) error {
	start := time.Now()
	err := i.inner.Allocate(layout)
	i.mc.RecordAllocate(layout, time.Since(start), err)
	return err
}

func (i *instrumented) Grow(from, to Layout) error {
	start := time.Now()
	err := i.inner.Grow(from, to)
	i.mc.RecordGrow(from, to, time.Since(start), err)
	return err
}

func (i *instrumented) Deallocate(layout Layout) {
	i.inner.Deallocate(layout)
	i.mc.RecordDeallocate(layout)
}
