package internal

import "golang.org/x/sys/unix"

// Walltime returns the current wall clock time reported by the OS, in nanoseconds since
// the Unix epoch, read through clock_gettime(CLOCK_REALTIME).
//
// This is a real syscall (no vDSO). It's only ever used to calibrate the cycle counter and
// as ground truth, never on the hot path, so we prefer the plain and predictable read.
func Walltime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		// CLOCK_REALTIME is mandatory - this can only fail on a broken kernel.
		panic("tsctime: clock_gettime(CLOCK_REALTIME) failed: " + err.Error())
	}

	return uint64(ts.Nano())
}
