// Package control
// Author: momentics <momentics@gmail.com>
//
// Run metrics and debug introspection for ring benchmarks.
//
// Provides:
//   - A Prometheus-backed metrics registry keyed by ring variant
//   - Debug probes whose dump is attached to harness failures
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
