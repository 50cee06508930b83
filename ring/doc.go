// Package ring implements bounded circular buffers of int32 values.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two variants satisfy api.Ring and differ only in how a cursor maps to a slot:
//
//   - ModuloRing accepts any positive capacity and maps with cursor % capacity.
//   - MaskedRing requires a power-of-two capacity and maps with cursor & (capacity-1).
//
// Both keep unbounded uint64 read/write cursors and wrap only at slot lookup, so
// write-read is always the occupied count and full/empty never alias. A cursor
// would need 2^64 operations to overflow. The rings are not safe for concurrent
// use: a single goroutine owns each instance.
package ring
