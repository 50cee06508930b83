// File: bench/result.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"fmt"
	"io"
	"time"
)

// Result is the outcome of one harness run.
type Result struct {
	Name    string
	Ops     uint64
	Elapsed time.Duration
}

// OpsPerMilli returns whole operations per elapsed millisecond.
// Runs shorter than a millisecond are counted as one.
func (r Result) OpsPerMilli() uint64 {
	ms := r.Elapsed.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return r.Ops / uint64(ms)
}

// Report writes the two summary lines for r.
func Report(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "%d ops in %d ms\n", r.Ops, r.Elapsed.Milliseconds()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d ops/ms\n", r.OpsPerMilli())
	return err
}
