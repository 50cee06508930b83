// File: bench/harness.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Throughput harness: repeated fill-then-drain cycles over any api.Ring,
// asserting strict FIFO order and timing the whole run.

package bench

import (
	"log/slog"
	"time"

	"github.com/momentics/hioload-ring/affinity"
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

// Harness drives rings through the benchmark workload.
type Harness struct {
	cfg     Config
	metrics *control.MetricsRegistry
	logger  *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithMetrics records every successful run into mr.
func WithMetrics(mr *control.MetricsRegistry) Option {
	return func(h *Harness) { h.metrics = mr }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New validates cfg and builds a harness.
func New(cfg *Config, opts ...Option) (*Harness, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Harness{cfg: *cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("component", "bench")
	return h, nil
}

// Config returns a copy of the harness configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// RunKind builds a ring of kind at the configured capacity and runs it.
func (h *Harness) RunKind(kind ring.Kind) (Result, error) {
	if kind == ring.Masked && !ring.IsPowerOfTwo(h.cfg.Capacity) {
		return Result{}, api.WrapError(api.ErrCodeInvalidArgument, api.ErrNotPowerOfTwo, "bench: masked ring capacity").
			WithContext("capacity", h.cfg.Capacity)
	}
	return h.Run(kind.String(), ring.New(kind, h.cfg.Capacity))
}

// Run performs the configured cycles on r. Any rejected enqueue, empty
// dequeue or out-of-order value aborts the run with an *api.Error.
func (h *Harness) Run(name string, r api.Ring) (Result, error) {
	if r.Cap() < h.cfg.Batch {
		return Result{}, api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity, "bench: ring smaller than batch").
			WithContext("variant", name).
			WithContext("capacity", r.Cap()).
			WithContext("batch", h.cfg.Batch)
	}

	probes := control.NewDebugProbes()
	probes.RegisterRingProbes(r)
	control.RegisterPlatformProbes(probes)

	if h.cfg.CPUAffinity {
		release, err := affinity.Pin(h.cfg.CPU)
		defer func() {
			if err := release(); err != nil {
				h.logger.Warn("CPU affinity release warning", "variant", name, "cpu", h.cfg.CPU, "error", err)
			}
		}()
		if err != nil {
			h.logger.Warn("CPU affinity warning", "variant", name, "cpu", h.cfg.CPU, "error", err)
		}
	}

	h.logger.Info("run started",
		"variant", name,
		"capacity", r.Cap(),
		"iterations", h.cfg.Iterations,
		"batch", h.cfg.Batch)

	batch := int32(h.cfg.Batch)
	start := time.Now()
	for i := 0; i < h.cfg.Iterations; i++ {
		for j := int32(0); j < batch; j++ {
			if !r.Enqueue(j) {
				return Result{}, h.failure(api.ErrBackpressure, name, i, j, j, 0, probes)
			}
		}
		for j := int32(0); j < batch; j++ {
			v, ok := r.Dequeue()
			if !ok {
				return Result{}, h.failure(api.ErrUnexpectedEmpty, name, i, j, j, 0, probes)
			}
			if v != j {
				return Result{}, h.failure(api.ErrOutOfOrder, name, i, j, j, v, probes)
			}
		}
	}
	res := Result{Name: name, Ops: h.cfg.Ops(), Elapsed: time.Since(start)}

	if h.metrics != nil {
		h.metrics.RecordRun(name, res.Ops, res.Elapsed, res.OpsPerMilli())
	}
	h.logger.Info("run finished",
		"variant", name,
		"ops", res.Ops,
		"elapsed", res.Elapsed,
		"ops_per_ms", res.OpsPerMilli())
	return res, nil
}

func (h *Harness) failure(sentinel error, name string, iteration int, index, want, got int32, probes *control.DebugProbes) error {
	e := api.WrapError(api.ErrCodeAssertion, sentinel, "bench: assertion failed").
		WithContext("variant", name).
		WithContext("iteration", iteration).
		WithContext("index", index).
		WithContext("expected", want)
	if sentinel == api.ErrOutOfOrder {
		e.WithContext("got", got)
	}
	for k, v := range probes.DumpState() {
		e.WithContext(k, v)
	}
	h.logger.Error("run aborted", "variant", name, "error", e)
	return e
}
