//go:build linux

package scheduler

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// schedSetattr issues sched_setattr(2) for pid. glibc ships no wrapper for
// it, so the call goes through the per-arch number in sysnum_linux_*.go.
func schedSetattr(pid int, attr *SchedAttr, flags uint) error {
	_, _, errno := unix.Syscall(sysSchedSetattr, uintptr(pid), uintptr(unsafe.Pointer(attr)), uintptr(flags))
	if errno != 0 {
		return fmt.Errorf("pid %d: %w", pid, errno)
	}
	return nil
}

// schedGetattr reads the current scheduling attributes of pid.
func schedGetattr(pid int) (*SchedAttr, error) {
	var attr SchedAttr
	_, _, errno := unix.Syscall6(sysSchedGetattr, uintptr(pid), uintptr(unsafe.Pointer(&attr)),
		uintptr(SizeofSchedAttr), 0, 0, 0)
	if errno != 0 {
		return nil, fmt.Errorf("pid %d: %w", pid, errno)
	}
	return &attr, nil
}
