// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-ring/ring"
)

func TestDebugProbes_Ring(t *testing.T) {
	dp := NewDebugProbes()
	r := ring.NewModulo(3)
	dp.RegisterRingProbes(r)
	RegisterPlatformProbes(dp)

	r.Enqueue(1)
	r.Enqueue(2)
	state := dp.DumpState()
	assert.Equal(t, 2, state["ring.len"])
	assert.Equal(t, 3, state["ring.cap"])
	assert.Contains(t, state, "platform.cpus")

	r.Dequeue()
	assert.Equal(t, 1, dp.DumpState()["ring.len"])
}
