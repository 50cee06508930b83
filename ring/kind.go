// File: ring/kind.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/momentics/hioload-ring/api"
)

// Kind selects the slot mapping strategy.
type Kind int

const (
	// Modulo maps cursors with a remainder; any positive capacity.
	Modulo Kind = iota
	// Masked maps cursors with a bitmask; power-of-two capacity only.
	Masked
)

// String returns the variant name used in reports and metrics labels.
func (k Kind) String() string {
	switch k {
	case Modulo:
		return "modulo"
	case Masked:
		return "masked"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a variant name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modulo", "mod", "a":
		return Modulo, nil
	case "masked", "mask", "b":
		return Masked, nil
	}
	return 0, api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument, "ring: unknown kind").
		WithContext("kind", s)
}

// New constructs a ring of the given kind. It panics on the same
// capacity violations as NewModulo and NewMasked.
func New(kind Kind, capacity int) api.Ring {
	switch kind {
	case Masked:
		return NewMasked(capacity)
	case Modulo:
		return NewModulo(capacity)
	}
	panic(api.WrapError(api.ErrCodeNotSupported, api.ErrNotSupported, "ring: New").
		WithContext("kind", kind.String()))
}

// IsPowerOfTwo reports whether n has exactly one set bit.
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount64(uint64(n)) == 1
}
