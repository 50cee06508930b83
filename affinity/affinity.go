// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import (
	"runtime"

	"github.com/momentics/hioload-ring/api"
)

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// The previous mask is not restored; use Pin for a scoped pin.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	_, err := pinPlatform(cpuID)
	return err
}

// Pin locks the calling goroutine to its OS thread and pins that thread to cpuID.
// The returned release func restores the thread's previous CPU mask and unlocks
// the thread; it is non-nil even on error. If the mask cannot be restored the
// thread stays locked, so the runtime discards it when the goroutine exits
// instead of handing a pinned thread to other goroutines.
func Pin(cpuID int) (release func() error, err error) {
	runtime.LockOSThread()
	restore, err := pinPlatform(cpuID)
	if err != nil {
		return func() error {
			runtime.UnlockOSThread()
			return nil
		}, err
	}
	return func() error {
		if err := restore(); err != nil {
			return err
		}
		runtime.UnlockOSThread()
		return nil
	}, nil
}

// pinPlatform validates cpuID and applies the platform pin, returning a func
// that reinstates the mask in effect before the call.
func pinPlatform(cpuID int) (restore func() error, err error) {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument, "affinity: cpu out of range").
			WithContext("cpu", cpuID).
			WithContext("cpus", runtime.NumCPU())
	}
	return setAffinityPlatform(cpuID)
}
