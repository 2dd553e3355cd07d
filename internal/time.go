//go:build !linux
// +build !linux

package internal

import _ "unsafe" // Required for go:linkname

// Walltime returns the current wall clock time reported by the OS, in nanoseconds since
// the Unix epoch.
//
// The function is linked against time.now() directly. Going through time.Now() would
// additionally fetch a monotonic clock reading we have no use for, and time.Now() itself
// is not what we are after on this path anyway - we want the plain realtime reading the
// cycle counter gets calibrated against.
func Walltime() uint64 {
	sec, nsec, _ := now()

	return uint64(sec)*1e9 + uint64(nsec)
}

//go:linkname now time.now
func now() (sec int64, nsec int32, mono int64)
