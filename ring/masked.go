// File: ring/masked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring = (*MaskedRing)(nil)

// MaskedRing is a fixed-capacity ring (power-of-two size).
type MaskedRing struct {
	data  []int32
	mask  uint64
	read  uint64
	write uint64
}

// NewMasked allocates a zero-filled ring with capacity (must be power of two).
// It panics otherwise; no partially built ring is returned.
func NewMasked(capacity int) *MaskedRing {
	if !IsPowerOfTwo(capacity) {
		panic(api.WrapError(api.ErrCodeInvalidArgument, api.ErrNotPowerOfTwo, "ring: NewMasked").
			WithContext("capacity", capacity))
	}
	return &MaskedRing{
		data: make([]int32, capacity),
		mask: uint64(capacity) - 1,
	}
}

// Enqueue adds item; returns false if full.
func (r *MaskedRing) Enqueue(item int32) bool {
	if r.write-r.read == uint64(len(r.data)) {
		return false
	}
	r.data[r.write&r.mask] = item
	r.write++
	return true
}

// Dequeue removes and returns the oldest item; ok false if empty.
func (r *MaskedRing) Dequeue() (int32, bool) {
	if r.write == r.read {
		return 0, false
	}
	item := r.data[r.read&r.mask]
	r.read++
	return item, true
}

// Len returns number of items currently in buffer.
func (r *MaskedRing) Len() int {
	return int(r.write - r.read)
}

// Cap returns fixed buffer capacity.
func (r *MaskedRing) Cap() int {
	return len(r.data)
}

// IsFull reports whether the next Enqueue would be rejected.
func (r *MaskedRing) IsFull() bool {
	return r.write-r.read == uint64(len(r.data))
}

// IsEmpty reports whether the next Dequeue would return nothing.
func (r *MaskedRing) IsEmpty() bool {
	return r.write == r.read
}
