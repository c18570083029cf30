package scheduler

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// Scheduling policies understood by sched_setattr(2).
const (
	SchedNormal   uint32 = 0
	SchedFIFO     uint32 = 1
	SchedRR       uint32 = 2
	SchedBatch    uint32 = 3
	SchedIdle     uint32 = 5
	SchedDeadline uint32 = 6
)

// NanosecondsPerMillisecond converts a slice given in ms into sched_runtime units.
const NanosecondsPerMillisecond uint64 = 1_000_000

// MaxSliceMS is the largest slice whose nanosecond value still fits into sched_runtime.
const MaxSliceMS = math.MaxUint64 / NanosecondsPerMillisecond

var (
	// ErrInvalidArgument is returned for task ids or slices that cannot be parsed or converted.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedPlatform is returned when no sched_setattr entry point is known for the build target.
	ErrUnsupportedPlatform = errors.New("sched_setattr is only supported on linux/amd64 and linux/arm64")
)

// SchedAttr mirrors struct sched_attr (SCHED_ATTR_SIZE_VER0) from
// include/uapi/linux/sched/types.h. Field order and widths are ABI.
//
//	struct sched_attr {
//	    __u32 size;
//	    __u32 sched_policy;
//	    __u64 sched_flags;
//	    __s32 sched_nice;
//	    __u32 sched_priority;
//	    __u64 sched_runtime;
//	    __u64 sched_deadline;
//	    __u64 sched_period;
//	};
type SchedAttr struct {
	Size     uint32
	Policy   uint32
	Flags    uint64
	Nice     int32
	Priority uint32
	Runtime  uint64
	Deadline uint64
	Period   uint64
}

// SizeofSchedAttr is the byte length reported to the kernel in SchedAttr.Size.
const SizeofSchedAttr = uint32(unsafe.Sizeof(SchedAttr{}))

// SliceToNanoseconds converts a slice in milliseconds to nanoseconds.
func SliceToNanoseconds(sliceMS uint64) (uint64, error) {
	if sliceMS > MaxSliceMS {
		return 0, fmt.Errorf("%w: slice of %d ms overflows sched_runtime", ErrInvalidArgument, sliceMS)
	}
	return sliceMS * NanosecondsPerMillisecond, nil
}

// NewSchedAttr builds a SCHED_NORMAL record with nice 0 and the given runtime.
// Every other field stays zero.
//
// This resets the nice value of the target task. Use NewPreservingSchedAttr to
// carry the current policy, nice and priority over instead.
func NewSchedAttr(runtimeNS uint64) *SchedAttr {
	var attr SchedAttr
	attr.Size = SizeofSchedAttr
	attr.Policy = SchedNormal
	attr.Nice = 0
	attr.Runtime = runtimeNS
	return &attr
}

// NewPreservingSchedAttr builds a record with the given runtime that keeps
// policy, nice and priority from current. Flags, deadline and period stay zero.
func NewPreservingSchedAttr(current *SchedAttr, runtimeNS uint64) *SchedAttr {
	attr := NewSchedAttr(runtimeNS)
	if current == nil {
		return attr
	}
	attr.Policy = current.Policy
	attr.Nice = current.Nice
	attr.Priority = current.Priority
	return attr
}

// PolicyName returns the kernel name of a scheduling policy.
func PolicyName(policy uint32) string {
	switch policy {
	case SchedNormal:
		return "SCHED_NORMAL"
	case SchedFIFO:
		return "SCHED_FIFO"
	case SchedRR:
		return "SCHED_RR"
	case SchedBatch:
		return "SCHED_BATCH"
	case SchedIdle:
		return "SCHED_IDLE"
	case SchedDeadline:
		return "SCHED_DEADLINE"
	}
	return fmt.Sprintf("policy(%d)", policy)
}
