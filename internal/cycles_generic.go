//go:build !amd64 && !arm64
// +build !amd64,!arm64

package internal

import _ "unsafe" // Required for go:linkname

// Cycles returns the runtime's monotonic clock reading in place of a hardware cycle counter.
//
// The value is already in nanoseconds, so a calibration on this platform converges on
// a rate of 1 cycle/ns. It keeps the package usable (if pointless) on architectures we
// don't carry an assembly counter for.
func Cycles() uint64 {
	return uint64(nanotime())
}

// CyclesOrdered is equivalent to Cycles on this platform.
func CyclesOrdered() uint64 {
	return uint64(nanotime())
}

//go:linkname nanotime runtime.nanotime
func nanotime() int64
