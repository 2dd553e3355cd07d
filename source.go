package tsctime

import (
	"time"

	"github.com/dropbox/godropbox/time2"

	"github.com/MengRao/tsctime/internal"
)

// CycleCounter is a source of raw hardware cycle counter readings.
type CycleCounter interface {
	Cycles() uint64
}

// CycleCounterFunc adapts an ordinary function to a CycleCounter.
type CycleCounterFunc func() uint64

// Cycles returns f().
func (f CycleCounterFunc) Cycles() uint64 { return f() }

// WallClock is a source of wall clock readings, in nanoseconds since the Unix epoch.
type WallClock interface {
	UnixNano() uint64
}

// WallClockFunc adapts an ordinary function to a WallClock.
type WallClockFunc func() uint64

// UnixNano returns f().
func (f WallClockFunc) UnixNano() uint64 { return f() }

var (
	// TSC reads the hardware cycle counter directly: RDTSC on amd64, CNTVCT_EL0 on arm64.
	// Other architectures fall back to the runtime's monotonic clock.
	//
	// The read is not serializing - it may get reordered relative to surrounding instructions.
	TSC CycleCounter = CycleCounterFunc(internal.Cycles)

	// OrderedCounter reads the same counter as TSC, but only once all preceding instructions
	// have completed (LFENCE; RDTSC on amd64, ISB on arm64). It's a few cycles slower and meant
	// for measurements where the exact instruction ordering matters.
	OrderedCounter CycleCounter = CycleCounterFunc(internal.CyclesOrdered)

	// SystemClock reads the OS realtime clock. On Linux this is a plain
	// clock_gettime(CLOCK_REALTIME) syscall.
	SystemClock WallClock = WallClockFunc(walltime)

	// StdClock reads the wall clock through the time package (and thus vDSO where available).
	StdClock = FromClock(time2.DefaultClock)
)

// FromClock returns a WallClock reading its time from c. Any time2.Clock will do, as does
// a *time2.MockClock.
func FromClock(c interface{ Now() time.Time }) WallClock {
	return WallClockFunc(func() uint64 {
		return uint64(c.Now().UnixNano())
	})
}

// InvariantTSC reports whether the CPU advertises a cycle counter that ticks at a constant rate
// regardless of frequency scaling and power states.
//
// This is informational only. A calibrated conversion on a CPU without one is only as good as
// the frequency stayed put in between calibrations.
func InvariantTSC() bool {
	return internal.HasInvariantTSC()
}

//go:noinline
func walltime() uint64 {
	return internal.Walltime()
}
