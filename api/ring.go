// Package api
// Author: momentics@gmail.com
//
// Bounded ring buffer contract shared by the modulo and masked variants.

package api

// Ring is a fixed-capacity FIFO of int32 values.
// Implementations never block and never grow.
type Ring interface {
	// Enqueue appends an item, returns false if full.
	Enqueue(item int32) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (int32, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}
