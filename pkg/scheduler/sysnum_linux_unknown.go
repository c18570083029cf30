//go:build linux && !amd64 && !arm64

package scheduler

// No syscall numbers are known for this GOARCH. The reference below is
// undefined on purpose so the build stops here instead of guessing.
const (
	sysSchedSetattr = sched_setattr_syscall_number_is_not_defined_for_this_GOARCH
	sysSchedGetattr = sched_getattr_syscall_number_is_not_defined_for_this_GOARCH
)
