// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

type fullEmpty interface {
	api.Ring
	IsFull() bool
	IsEmpty() bool
}

func variants(capacity int) map[string]fullEmpty {
	return map[string]fullEmpty{
		"modulo": NewModulo(capacity),
		"masked": NewMasked(capacity),
	}
}

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				err = fmt.Errorf("non-error panic: %v", r)
				return
			}
			err = e
		}
	}()
	fn()
	return nil
}

func TestRing_ConcreteScenario(t *testing.T) {
	for name, r := range variants(4) {
		t.Run(name, func(t *testing.T) {
			for _, v := range []int32{10, 20, 30, 40} {
				require.True(t, r.Enqueue(v), "enqueue %d", v)
			}
			assert.False(t, r.Enqueue(50))
			for _, want := range []int32{10, 20, 30, 40} {
				got, ok := r.Dequeue()
				require.True(t, ok)
				assert.Equal(t, want, got)
			}
			got, ok := r.Dequeue()
			assert.False(t, ok)
			assert.Zero(t, got)
		})
	}
}

func TestRing_CapacityBoundary(t *testing.T) {
	for name, r := range variants(8) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 8; i++ {
				require.True(t, r.Enqueue(int32(i)))
			}
			require.True(t, r.IsFull())
			require.False(t, r.Enqueue(99))
			assert.Equal(t, 8, r.Len())
			for i := 0; i < 8; i++ {
				got, ok := r.Dequeue()
				require.True(t, ok)
				assert.Equal(t, int32(i), got, "rejected enqueue must not disturb contents")
			}
			assert.True(t, r.IsEmpty())
		})
	}
}

func TestRing_EmptyBoundary(t *testing.T) {
	for name, r := range variants(2) {
		t.Run(name, func(t *testing.T) {
			_, ok := r.Dequeue()
			require.False(t, ok)
			assert.Equal(t, 0, r.Len())

			require.True(t, r.Enqueue(7))
			v, ok := r.Dequeue()
			require.True(t, ok)
			require.Equal(t, int32(7), v)

			_, ok = r.Dequeue()
			require.False(t, ok)
			assert.Equal(t, 0, r.Len())
			// Cursors unchanged by the failed dequeue: the ring still holds Cap items.
			assert.True(t, r.Enqueue(1))
			assert.True(t, r.Enqueue(2))
			assert.False(t, r.Enqueue(3))
		})
	}
}

func TestRing_WrapAround(t *testing.T) {
	for name, r := range variants(4) {
		t.Run(name, func(t *testing.T) {
			next, expect := int32(0), int32(0)
			for round := 0; round < 50; round++ {
				for r.Enqueue(next) {
					next++
				}
				for i := 0; i < 3; i++ {
					v, ok := r.Dequeue()
					require.True(t, ok)
					require.Equal(t, expect, v)
					expect++
				}
			}
			assert.Equal(t, int(next-expect), r.Len())
		})
	}
}

func TestRing_CycleHasNoResidualState(t *testing.T) {
	for name, r := range variants(1024) {
		t.Run(name, func(t *testing.T) {
			for cycle := 0; cycle < 20; cycle++ {
				for j := int32(0); j < 1000; j++ {
					require.True(t, r.Enqueue(j))
				}
				for j := int32(0); j < 1000; j++ {
					v, ok := r.Dequeue()
					require.True(t, ok)
					require.Equal(t, j, v, "cycle %d", cycle)
				}
				require.True(t, r.IsEmpty())
			}
		})
	}
}

func TestModulo_NonPowerOfTwoCapacity(t *testing.T) {
	r := NewModulo(6)
	assert.Equal(t, 6, r.Cap())
	for i := 0; i < 6; i++ {
		require.True(t, r.Enqueue(int32(i)))
	}
	require.False(t, r.Enqueue(6))
	for i := 0; i < 6; i++ {
		v, _ := r.Dequeue()
		require.Equal(t, int32(i), v)
	}
}

func TestNewMasked_Validation(t *testing.T) {
	err := recoverError(func() { NewMasked(6) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrNotPowerOfTwo))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.ErrCodeInvalidArgument, apiErr.Code)
	assert.Equal(t, 6, apiErr.Context["capacity"])

	for _, bad := range []int{0, -4, 3, 1000} {
		assert.ErrorIs(t, recoverError(func() { NewMasked(bad) }), api.ErrNotPowerOfTwo, "capacity %d", bad)
	}

	require.NoError(t, recoverError(func() {
		r := NewMasked(1024)
		assert.Equal(t, 1024, r.Cap())
	}))
}

func TestNewModulo_Validation(t *testing.T) {
	assert.ErrorIs(t, recoverError(func() { NewModulo(0) }), api.ErrInvalidCapacity)
	assert.ErrorIs(t, recoverError(func() { NewModulo(-1) }), api.ErrInvalidCapacity)
	assert.NoError(t, recoverError(func() { NewModulo(1) }))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, 2 * 1024 * 1024} {
		assert.True(t, IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{0, -1, -2, 3, 6, 1000, 2*1024*1024 + 1} {
		assert.False(t, IsPowerOfTwo(n), "%d", n)
	}
}

func TestKind(t *testing.T) {
	k, err := ParseKind("Masked")
	require.NoError(t, err)
	assert.Equal(t, Masked, k)
	k, err = ParseKind(" modulo ")
	require.NoError(t, err)
	assert.Equal(t, Modulo, k)

	_, err = ParseKind("division")
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	assert.Equal(t, "modulo", Modulo.String())
	assert.Equal(t, "masked", Masked.String())
	assert.Equal(t, "kind(7)", Kind(7).String())

	assert.IsType(t, &ModuloRing{}, New(Modulo, 3))
	assert.IsType(t, &MaskedRing{}, New(Masked, 4))
	assert.ErrorIs(t, recoverError(func() { New(Kind(7), 4) }), api.ErrNotSupported)
	assert.ErrorIs(t, recoverError(func() { New(Masked, 3) }), api.ErrNotPowerOfTwo)
}
