//go:build !amd64 && !arm64
// +build !amd64,!arm64

package internal

// HasInvariantTSC reports whether the cycle counter ticks at a constant rate.
//
// There is no hardware counter on this platform - Cycles falls back to the runtime's
// monotonic clock, which is not a cycle counter in the first place.
func HasInvariantTSC() bool {
	return false
}
