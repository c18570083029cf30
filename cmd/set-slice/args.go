package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/egandro/set-slice/pkg/scheduler"
)

var errUsage = errors.New("expected exactly two arguments: <PID> <SLICE_MS>")

func validateArgCount(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	return nil
}

// parseArgs converts the positional arguments. pid_t is 32 bit on Linux;
// the slice must be a whole, non-negative number of milliseconds.
func parseArgs(args []string) (int, uint64, error) {
	if err := validateArgCount(args); err != nil {
		return 0, 0, err
	}

	pid, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: PID %q is not a 32-bit integer", scheduler.ErrInvalidArgument, args[0])
	}

	sliceMS, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: SLICE_MS %q is not a non-negative integer", scheduler.ErrInvalidArgument, args[1])
	}
	if sliceMS > scheduler.MaxSliceMS {
		return 0, 0, fmt.Errorf("%w: SLICE_MS %d exceeds %d", scheduler.ErrInvalidArgument, sliceMS, scheduler.MaxSliceMS)
	}

	return int(pid), sliceMS, nil
}
