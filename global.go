package tsctime

import "time"

var calibrator *Calibrator

// Default returns the package-level Calibrator all the functions below operate on.
//
// It reads the TSC counter and the SystemClock, and gets anchored (but not calibrated)
// when the package is loaded.
func Default() *Calibrator {
	return calibrator
}

// Init captures a new anchor pair for the package-level Calibrator.
// See Calibrator.Init() for the meaning of rate.
func Init(rate float64) {
	calibrator.Init(rate)
}

// Calibrate refines the package-level Calibrator and returns the measured rate in GHz.
// See Calibrator.Calibrate() for the caveats.
func Calibrate() float64 {
	return calibrator.Calibrate()
}

// ReadCycles returns the raw cycle counter reading.
func ReadCycles() uint64 {
	return calibrator.ReadCycles()
}

// Convert maps a cycle counter reading to nanoseconds since the Unix epoch using the
// package-level Calibrator.
func Convert(cycles uint64) uint64 {
	return calibrator.Convert(cycles)
}

// Now returns the current time in nanoseconds since the Unix epoch, derived from the cycle
// counter by the package-level Calibrator.
func Now() uint64 {
	return calibrator.Now()
}

// NowWall returns the current time in nanoseconds since the Unix epoch as reported by the OS.
func NowWall() uint64 {
	return calibrator.NowWall()
}

// Since returns the time elapsed since a previous ReadCycles() reading.
func Since(cycles uint64) time.Duration {
	return calibrator.Duration(calibrator.ReadCycles() - cycles)
}

// Snapshot returns a copy of the package-level Calibrator's current calibration.
func Snapshot() Calibration {
	return calibrator.Snapshot()
}
