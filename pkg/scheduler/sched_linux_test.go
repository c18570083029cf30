//go:build linux

package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSyscallNumbers(t *testing.T) {
	assert.Equal(t, unix.SYS_SCHED_SETATTR, sysSchedSetattr)
	assert.Equal(t, unix.SYS_SCHED_GETATTR, sysSchedGetattr)
}

// skipIfFiltered skips when a seccomp profile hides the syscalls from the test.
func skipIfFiltered(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EPERM) {
		t.Skipf("sched_*attr not available: %v", err)
	}
}

func TestSchedGetattr_Self(t *testing.T) {
	attr, err := schedGetattr(0)
	skipIfFiltered(t, err)
	require.NoError(t, err)
	assert.Equal(t, SizeofSchedAttr, attr.Size)
}

func TestSchedSetattr_NoSuchProcess(t *testing.T) {
	// Above PID_MAX_LIMIT (4194304), never a live task.
	const pid = 1 << 30

	err := schedSetattr(pid, NewSchedAttr(20_000_000), 0)
	skipIfFiltered(t, err)
	assert.ErrorIs(t, err, unix.ESRCH)
	assert.Equal(t, "pid 1073741824: no such process", err.Error())
}

func TestSchedSetattr_NegativePID(t *testing.T) {
	err := schedSetattr(-1, NewSchedAttr(0), 0)
	skipIfFiltered(t, err)
	assert.ErrorIs(t, err, unix.EINVAL)
}
