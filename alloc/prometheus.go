package alloc

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector exports allocator metrics to Prometheus.
type PrometheusCollector struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	liveBytes prometheus.Gauge
}

// NewPrometheusCollector creates the collector and registers its metrics on reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &PrometheusCollector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "requests_total",
			Help:      "Allocator requests by operation and result.",
		}, []string{"op", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "request_duration_seconds",
			Help:      "Time spent admitting allocator requests.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "live_bytes",
			Help:      "Bytes currently admitted and not yet deallocated.",
		}),
	}

	for _, c := range []prometheus.Collector{p.requests, p.latency, p.liveBytes} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register allocator metrics")
		}
	}

	return p, nil
}

// RecordAllocate implements MetricsCollector.
func (p *PrometheusCollector) RecordAllocate(layout Layout, duration time.Duration, err error) {
	p.latency.WithLabelValues("allocate").Observe(duration.Seconds())
	p.requests.WithLabelValues("allocate", result(err)).Inc()
	if err == nil {
		p.liveBytes.Add(float64(layout.Size))
	}
}

// RecordGrow implements MetricsCollector.
func (p *PrometheusCollector) RecordGrow(from, to Layout, duration time.Duration, err error) {
	p.latency.WithLabelValues("grow").Observe(duration.Seconds())
	p.requests.WithLabelValues("grow", result(err)).Inc()
	if err == nil {
		p.liveBytes.Add(float64(to.Size - from.Size))
	}
}

// RecordDeallocate implements MetricsCollector.
func (p *PrometheusCollector) RecordDeallocate(layout Layout) {
	p.requests.WithLabelValues("deallocate", "ok").Inc()
	p.liveBytes.Sub(float64(layout.Size))
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrBudgetExceeded):
		return "budget_exceeded"
	case errors.Is(err, ErrOutOfMemory):
		return "out_of_memory"
	default:
		return "error"
	}
}
