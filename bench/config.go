// File: bench/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"math"

	"github.com/momentics/hioload-ring/api"
)

// Config holds parameters immutable per run.
type Config struct {
	Capacity    int  // Ring capacity handed to each variant
	Iterations  int  // Number of fill-then-drain cycles
	Batch       int  // Items enqueued then dequeued per cycle
	CPUAffinity bool // Whether to pin the benchmarking thread
	CPU         int  // Logical CPU used when CPUAffinity is set
}

// DefaultConfig returns the fixed benchmark constants.
func DefaultConfig() *Config {
	return &Config{
		Capacity:    2 * 1024 * 1024, // Power of two, far above one batch
		Iterations:  500_000,         // 500k cycles
		Batch:       1000,            // Values 0..999 per cycle
		CPUAffinity: false,           // Leave scheduling to the OS
		CPU:         0,
	}
}

// Validate rejects configurations under which the harness assumptions break.
func (c *Config) Validate() error {
	invalid := func(field string, v int) *api.Error {
		return api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument, "bench: invalid config").
			WithContext("field", field).
			WithContext("value", v)
	}
	switch {
	case c.Capacity <= 0:
		return invalid("Capacity", c.Capacity)
	case c.Iterations <= 0:
		return invalid("Iterations", c.Iterations)
	case c.Batch <= 0 || c.Batch > math.MaxInt32:
		return invalid("Batch", c.Batch)
	case c.Batch > c.Capacity:
		// Every enqueue in a cycle must succeed.
		return invalid("Batch", c.Batch).WithContext("capacity", c.Capacity)
	case c.CPUAffinity && c.CPU < 0:
		return invalid("CPU", c.CPU)
	}
	return nil
}

// Ops returns the number of ring operations one run performs.
func (c *Config) Ops() uint64 {
	return uint64(c.Iterations) * uint64(c.Batch) * 2
}
