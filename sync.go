package tsctime

// DefaultSamples is the number of interleaved clock reads syncTime takes by default.
const DefaultSamples = 10

// syncTime captures a (cycles, nanos) pair that corresponds to the same instant as closely as
// we can determine.
//
// Reading the wall clock is slow and jittery compared to reading the cycle counter: it's
// a syscall (or at best a vDSO call) that can get preempted, take a page fault or simply
// land on a cold cache. A naive pair of back-to-back reads can thus be off by microseconds.
//
// Instead we bracket n wall clock reads with cycle counter reads:
//
//	c[0] t[1] c[1] t[2] c[2] ... t[n] c[n]
//
// Each t[i] is guaranteed to have been taken somewhere between c[i-1] and c[i]. The window
// with the smallest gap is the one with the least interference, so we take its t[i] and
// place it at the midpoint of the window. The error is then bounded by half the (smallest)
// window rather than by the latency of a single, arbitrary read.
func syncTime(counter CycleCounter, clock WallClock, n int) (cycles, nanos uint64) {
	var (
		// Avoid the heap for the default sample count.
		cbuf, nbuf [DefaultSamples + 1]uint64
		cs, ns     []uint64
	)

	if n <= DefaultSamples {
		cs, ns = cbuf[:n+1], nbuf[:n+1]
	} else {
		cs, ns = make([]uint64, n+1), make([]uint64, n+1)
	}

	cs[0] = counter.Cycles()
	for i := 1; i <= n; i++ {
		ns[i] = clock.UnixNano()
		cs[i] = counter.Cycles()
	}

	return pickWindow(cs, ns)
}

// pickWindow selects the tightest window from the interleaved samples taken by syncTime.
// Index 0 of ns is unused. Ties go to the later window.
func pickWindow(cs, ns []uint64) (cycles, nanos uint64) {
	best := len(cs) - 1
	for i := best - 1; i > 0; i-- {
		if cs[i]-cs[i-1] < cs[best]-cs[best-1] {
			best = i
		}
	}

	// Equivalent to (cs[best] + cs[best-1]) / 2, minus the overflow on large readings.
	return cs[best-1] + (cs[best]-cs[best-1])/2, ns[best]
}
