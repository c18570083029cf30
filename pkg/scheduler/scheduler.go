package scheduler

import (
	"context"
	"fmt"
	"log/slog"
)

// SystemSchedOps defines the kernel operations the slice setter needs.
type SystemSchedOps interface {
	SchedSetattr(pid int, attr *SchedAttr, flags uint) error
	SchedGetattr(pid int) (*SchedAttr, error)
}

type defaultSystemSchedOps struct{}

func (s *defaultSystemSchedOps) SchedSetattr(pid int, attr *SchedAttr, flags uint) error {
	return schedSetattr(pid, attr, flags)
}

func (s *defaultSystemSchedOps) SchedGetattr(pid int) (*SchedAttr, error) {
	return schedGetattr(pid)
}

// Request describes one slice update.
type Request struct {
	PID     int
	SliceMS uint64
	// Preserve reads the current attributes first and keeps policy, nice and priority.
	Preserve bool
	// DryRun builds the record without calling the kernel.
	DryRun bool
}

// Result is the outcome of a slice update.
type Result struct {
	PID       int
	SliceMS   uint64
	RuntimeNS uint64
	Attr      *SchedAttr
	Applied   bool
}

// SliceSetter applies a custom EEVDF slice to a single task.
type SliceSetter interface {
	SetSlice(ctx context.Context, req Request) (*Result, error)
}

type sliceSetter struct {
	sys SystemSchedOps
}

// New creates a SliceSetter backed by the sched_setattr syscall.
func New() SliceSetter {
	return &sliceSetter{sys: &defaultSystemSchedOps{}}
}

// NewWithOps creates a SliceSetter on top of custom system operations.
func NewWithOps(sys SystemSchedOps) SliceSetter {
	return &sliceSetter{sys: sys}
}

// SetSlice builds the attribute record and submits it once. Failures are
// returned as-is; nothing is retried.
func (s *sliceSetter) SetSlice(_ context.Context, req Request) (*Result, error) {
	runtimeNS, err := SliceToNanoseconds(req.SliceMS)
	if err != nil {
		return nil, err
	}

	attr := NewSchedAttr(runtimeNS)
	if req.Preserve {
		current, err := s.sys.SchedGetattr(req.PID)
		if err != nil {
			return nil, fmt.Errorf("sched_getattr failed: %w", err)
		}
		slog.Debug("Current scheduling attributes", "pid", req.PID, "policy", PolicyName(current.Policy),
			"nice", current.Nice, "priority", current.Priority, "runtime_ns", current.Runtime)
		attr = NewPreservingSchedAttr(current, runtimeNS)
	}

	res := &Result{
		PID:       req.PID,
		SliceMS:   req.SliceMS,
		RuntimeNS: runtimeNS,
		Attr:      attr,
	}

	if req.DryRun {
		slog.Info("Dry run, not calling sched_setattr", "pid", req.PID, "runtime_ns", runtimeNS)
		return res, nil
	}

	slog.Debug("Calling sched_setattr", "pid", req.PID, "size", attr.Size, "policy", PolicyName(attr.Policy),
		"nice", attr.Nice, "runtime_ns", attr.Runtime)
	if err := s.sys.SchedSetattr(req.PID, attr, 0); err != nil {
		return res, fmt.Errorf("sched_setattr failed: %w", err)
	}
	res.Applied = true

	slog.Info("Applied slice", "pid", req.PID, "slice_ms", req.SliceMS, "runtime_ns", runtimeNS)
	return res, nil
}
