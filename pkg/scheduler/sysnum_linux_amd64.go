//go:build linux && amd64

package scheduler

// arch/x86/entry/syscalls/syscall_64.tbl
const (
	sysSchedSetattr = 314
	sysSchedGetattr = 315
)
