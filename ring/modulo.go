// File: ring/modulo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring = (*ModuloRing)(nil)

// ModuloRing is a fixed-capacity ring of any positive size.
type ModuloRing struct {
	data  []int32
	size  uint64
	read  uint64
	write uint64
}

// NewModulo allocates a zero-filled ring holding up to capacity items.
// It panics if capacity is not positive.
func NewModulo(capacity int) *ModuloRing {
	if capacity <= 0 {
		panic(api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity, "ring: NewModulo").
			WithContext("capacity", capacity))
	}
	return &ModuloRing{
		data: make([]int32, capacity),
		size: uint64(capacity),
	}
}

// Enqueue adds item; returns false if full.
func (r *ModuloRing) Enqueue(item int32) bool {
	if r.write-r.read == r.size {
		return false
	}
	r.data[r.write%r.size] = item
	r.write++
	return true
}

// Dequeue removes and returns the oldest item; ok false if empty.
func (r *ModuloRing) Dequeue() (int32, bool) {
	if r.write == r.read {
		return 0, false
	}
	item := r.data[r.read%r.size]
	r.read++
	return item, true
}

// Len returns number of items currently in buffer.
func (r *ModuloRing) Len() int {
	return int(r.write - r.read)
}

// Cap returns fixed buffer capacity.
func (r *ModuloRing) Cap() int {
	return len(r.data)
}

// IsFull reports whether the next Enqueue would be rejected.
func (r *ModuloRing) IsFull() bool {
	return r.write-r.read == r.size
}

// IsEmpty reports whether the next Dequeue would return nothing.
func (r *ModuloRing) IsEmpty() bool {
	return r.write == r.read
}
