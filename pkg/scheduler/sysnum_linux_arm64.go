//go:build linux && arm64

package scheduler

// include/uapi/asm-generic/unistd.h
const (
	sysSchedSetattr = 274
	sysSchedGetattr = 275
)
