// File: cmd/ringbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ringbench runs the fill-then-drain throughput workload against the modulo
// and masked ring variants and prints two summary lines per variant.

package main

import (
	"log/slog"
	"os"

	"github.com/momentics/hioload-ring/bench"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	metrics, err := control.NewMetricsRegistry()
	if err != nil {
		logger.Error("metrics init failed", "error", err)
		os.Exit(1)
	}

	h, err := bench.New(bench.DefaultConfig(), bench.WithMetrics(metrics), bench.WithLogger(logger))
	if err != nil {
		logger.Error("invalid benchmark config", "error", err)
		os.Exit(1)
	}

	for _, kind := range []ring.Kind{ring.Modulo, ring.Masked} {
		res, err := h.RunKind(kind)
		if err != nil {
			logger.Error("benchmark failed", "variant", kind.String(), "error", err)
			os.Exit(1)
		}
		if err := bench.Report(os.Stdout, res); err != nil {
			logger.Error("report failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("benchmark summary", "metrics", metrics.GetSnapshot())
}
