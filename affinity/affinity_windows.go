//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package affinity

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-ring/api"
)

// maxGroupCPUs is the width of a thread affinity mask within one processor group.
const maxGroupCPUs = 64

var procSetThreadAffinityMask = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetThreadAffinityMask")

// setAffinityPlatform sets thread affinity to a given CPU for Windows.
// CPUs outside the first processor group cannot be addressed by the mask.
func setAffinityPlatform(cpuID int) (func() error, error) {
	if cpuID >= maxGroupCPUs {
		return nil, api.WrapError(api.ErrCodeNotSupported, api.ErrNotSupported, "affinity: cpu beyond first processor group").
			WithContext("cpu", cpuID)
	}
	prev, err := setThreadMask(uintptr(1) << cpuID)
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := setThreadMask(prev)
		return err
	}, nil
}

// setThreadMask applies mask to the calling thread and returns the previous mask.
func setThreadMask(mask uintptr) (uintptr, error) {
	prev, _, err := procSetThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if prev == 0 {
		return 0, fmt.Errorf("affinity: SetThreadAffinityMask failed: %w", err)
	}
	return prev, nil
}
