// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Benchmark metrics collector backed by a private Prometheus registry.
// Exposes per-variant counters and gauges plus a flat snapshot for logging.

package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "ringbench"
	labelName = "variant"
)

// MetricsRegistry holds per-variant run metrics.
type MetricsRegistry struct {
	mu       sync.RWMutex
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	elapsed  *prometheus.GaugeVec
	rate     *prometheus.GaugeVec
	metrics  map[string]any
	updated  time.Time
}

// NewMetricsRegistry creates a registry with all collectors registered.
func NewMetricsRegistry() (*MetricsRegistry, error) {
	mr := &MetricsRegistry{
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_total",
			Help:      "Total enqueue and dequeue operations performed by the harness",
		}, []string{labelName}),
		elapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "elapsed_seconds",
			Help:      "Wall-clock duration of the last benchmark run",
		}, []string{labelName}),
		rate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ops_per_ms",
			Help:      "Operations per millisecond of the last benchmark run",
		}, []string{labelName}),
		metrics: make(map[string]any),
	}
	for _, c := range []prometheus.Collector{mr.ops, mr.elapsed, mr.rate} {
		if err := mr.registry.Register(c); err != nil {
			return nil, fmt.Errorf("control: register collector: %w", err)
		}
	}
	return mr, nil
}

// RecordRun stores the outcome of one benchmark run for variant.
func (mr *MetricsRegistry) RecordRun(variant string, ops uint64, elapsed time.Duration, opsPerMilli uint64) {
	mr.ops.WithLabelValues(variant).Add(float64(ops))
	mr.elapsed.WithLabelValues(variant).Set(elapsed.Seconds())
	mr.rate.WithLabelValues(variant).Set(float64(opsPerMilli))

	mr.Set(variant+".ops", ops)
	mr.Set(variant+".elapsed_ms", elapsed.Milliseconds())
	mr.Set(variant+".ops_per_ms", opsPerMilli)
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// Gatherer exposes the underlying registry, e.g. for testutil or an exporter.
func (mr *MetricsRegistry) Gatherer() prometheus.Gatherer {
	return mr.registry
}
