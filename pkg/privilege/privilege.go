package privilege

import (
	"fmt"

	"github.com/syndtr/gocapability/capability"
)

// CapabilityChecker reports whether the running process holds a capability.
type CapabilityChecker interface {
	HasSysNice() (bool, error)
}

// ProcessCapabilities inspects the effective set of the current process.
type ProcessCapabilities struct{}

// HasSysNice reports whether CAP_SYS_NICE is in the effective set. Changing
// the scheduling attributes of a task owned by another user requires it.
func (p *ProcessCapabilities) HasSysNice() (bool, error) {
	caps, err := capability.NewPid2(0)
	if err != nil {
		return false, fmt.Errorf("failed to open capabilities: %w", err)
	}
	if err := caps.Load(); err != nil {
		return false, fmt.Errorf("failed to load capabilities: %w", err)
	}
	return caps.Get(capability.EFFECTIVE, capability.CAP_SYS_NICE), nil
}

// Hint explains a permission failure. It returns an empty string when the
// capability state cannot be determined.
func Hint(c CapabilityChecker) string {
	ok, err := c.HasSysNice()
	if err != nil {
		return ""
	}
	if ok {
		return "Hint: CAP_SYS_NICE is held; the target task may be protected by an LSM or a seccomp filter."
	}
	return "Hint: CAP_SYS_NICE is not held; run as root or grant it (e.g. setcap cap_sys_nice+ep)."
}
