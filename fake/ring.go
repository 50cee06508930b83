// Package fake
// Author: momentics <momentics@gmail.com>
//
// Misbehaving ring implementations for exercising harness assertions.

package fake

import (
	"github.com/momentics/hioload-ring/api"
)

// Ring wraps a real api.Ring and injects one fault at a chosen operation.
// Counters are 1-based; zero disables the fault.
type Ring struct {
	api.Ring

	RejectEnqueueAt  int // Nth Enqueue returns false without storing
	EmptyDequeueAt   int // Nth Dequeue reports empty without consuming
	CorruptDequeueAt int // Nth Dequeue returns its value plus one

	enqueues int
	dequeues int
}

// NewRing wraps inner.
func NewRing(inner api.Ring) *Ring {
	return &Ring{Ring: inner}
}

// Enqueue forwards to the wrapped ring unless the reject fault fires.
func (r *Ring) Enqueue(item int32) bool {
	r.enqueues++
	if r.enqueues == r.RejectEnqueueAt {
		return false
	}
	return r.Ring.Enqueue(item)
}

// Dequeue forwards to the wrapped ring unless a dequeue fault fires.
func (r *Ring) Dequeue() (int32, bool) {
	r.dequeues++
	if r.dequeues == r.EmptyDequeueAt {
		return 0, false
	}
	v, ok := r.Ring.Dequeue()
	if ok && r.dequeues == r.CorruptDequeueAt {
		v++
	}
	return v, ok
}

// Calls returns the number of Enqueue and Dequeue calls seen.
func (r *Ring) Calls() (enqueues, dequeues int) {
	return r.enqueues, r.dequeues
}

// Ensure compile-time interface compliance.
var _ api.Ring = (*Ring)(nil)
