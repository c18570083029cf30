package report

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/egandro/set-slice/pkg/privilege"
	"github.com/egandro/set-slice/pkg/scheduler"
)

// Exit codes of the set-slice binary.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Reporter prints the outcome of a slice update for the operator.
type Reporter struct {
	Out  io.Writer
	Err  io.Writer
	Caps privilege.CapabilityChecker
}

// New creates a Reporter writing results to out and failures to errOut.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{
		Out:  out,
		Err:  errOut,
		Caps: &privilege.ProcessCapabilities{},
	}
}

// Report prints res or err and returns the process exit code.
func (r *Reporter) Report(res *scheduler.Result, err error) int {
	if err != nil {
		r.Failure(err)
		return ExitFailure
	}

	policy := scheduler.PolicyName(res.Attr.Policy)
	if !res.Applied {
		_, _ = fmt.Fprintf(r.Out, "Dry run: PID %d would be set to %s with Slice %d ms (%d ns)\n",
			res.PID, policy, res.SliceMS, res.RuntimeNS)
		r.printAttr(res.Attr)
		return ExitOK
	}

	_, _ = fmt.Fprintf(r.Out, "Setting PID %d to %s with Slice %d ms (%d ns)...\n",
		res.PID, policy, res.SliceMS, res.RuntimeNS)
	_, _ = fmt.Fprintf(r.Out, "Success! PID %d now has a custom slice.\n", res.PID)
	return ExitOK
}

// Failure prints err verbatim. Kernel errors already carry the failing call
// in their message; everything else gets an "Error:" prefix.
func (r *Reporter) Failure(err error) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		_, _ = fmt.Fprintf(r.Err, "Error: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(r.Err, err.Error())
	if errno == syscall.EPERM && r.Caps != nil {
		if hint := privilege.Hint(r.Caps); hint != "" {
			_, _ = fmt.Fprintln(r.Err, hint)
		}
	}
}

func (r *Reporter) printAttr(attr *scheduler.SchedAttr) {
	_, _ = fmt.Fprintf(r.Out, "  size=%d policy=%d flags=%#x nice=%d priority=%d runtime=%d deadline=%d period=%d\n",
		attr.Size, attr.Policy, attr.Flags, attr.Nice, attr.Priority, attr.Runtime, attr.Deadline, attr.Period)
}
