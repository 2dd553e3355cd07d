// Package tsctime provides low-overhead wall clock timestamps by reading the CPU cycle counter
// and converting its readings to nanoseconds since the Unix epoch through a locally calibrated
// affine mapping.
//
// A typical process initializes once and calibrates after letting some time pass:
//
//	tsctime.Init(0)
//	time.Sleep(time.Second)
//	ghz := tsctime.Calibrate() // Worth persisting - see Init.
//
//	ts := tsctime.Now()
//
// Now() involves no syscall. Its accuracy is bounded by the calibration - the longer the
// interval between Init and Calibrate, the smaller the relative error of the measured rate.
package tsctime

import (
	"sync/atomic"
	"time"
)

// Config holds the optional settings of a Calibrator. Zero values are valid and get replaced
// by defaults.
type Config struct {
	// Counter is the cycle counter to read. Defaults to TSC.
	Counter CycleCounter

	// Clock is the wall clock the counter gets calibrated against. Defaults to SystemClock.
	Clock WallClock

	// Samples is the number of interleaved wall clock reads taken whenever an anchor gets
	// captured. Defaults to DefaultSamples. Must not be negative.
	Samples int
}

// Calibrator converts cycle counter readings into wall clock nanoseconds.
//
// A Calibrator must be constructed using New - the zero value of a Calibrator is an unusable
// state.
//
// Conversions (Convert, Now, Snapshot and friends) may be called from any number of goroutines
// concurrently, including while Init or Calibrate run: the mapping gets swapped atomically and
// readers see either the previous or the new one, never a mix. Init and Calibrate themselves
// are meant to be called from a single goroutine.
type Calibrator struct {
	// The only fields conversions read. The mapping itself lives in the snapshot.
	calibration atomic.Pointer[Calibration]
	counter     CycleCounter // Immutable.

	clock   WallClock // Immutable.
	samples int       // Immutable.
}

// New returns a new Calibrator based on the optional Config.
//
// The Calibrator starts out with a zero anchor and the uncalibrated assumption of
// 1 cycle per nanosecond. Conversions are usable, but meaningless, until Init gets called.
func New(cfg *Config) (*Calibrator, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}

	if c.Samples < 0 {
		return nil, &InvalidSampleCountError{Samples: c.Samples}
	}

	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}

	if c.Counter == nil {
		c.Counter = TSC
	}

	if c.Clock == nil {
		c.Clock = SystemClock
	}

	cal := &Calibrator{
		counter: c.Counter,
		clock:   c.Clock,
		samples: c.Samples,
	}
	cal.calibration.Store(newCalibration(0, 0, 1))

	return cal, nil
}

// Init captures a new anchor pair.
//
// If the counter frequency of this machine is already known - e.g. from a previous Calibrate
// that has been persisted somewhere - it can be passed in as rate (in cycles per nanosecond, GHz)
// and no calibration is needed. Otherwise pass 0 and call Calibrate once enough time has passed;
// until then conversions keep the ratio the Calibrator had before (1 ns per cycle on a fresh one).
//
// Calibrate always measures against the anchor captured by the most recent Init.
func (c *Calibrator) Init(rate float64) {
	nsPerCycle := c.calibration.Load().NsPerCycle
	if rate > 0 {
		nsPerCycle = 1 / rate
	}

	cycles, nanos := syncTime(c.counter, c.clock, c.samples)
	c.calibration.Store(newCalibration(cycles, nanos, nsPerCycle))
}

// Calibrate measures the counter frequency over the time that passed since Init, publishes
// the refined mapping and returns the measured rate in cycles per nanosecond (GHz).
//
// The wait before calibrating should be at least a second - the relative error of the result
// is roughly the sampling jitter divided by the elapsed time, so longer is better. Ideally
// calibrate once over a long interval and persist the returned rate for use with Init on
// subsequent runs on the same machine.
//
// Calibrate may be called repeatedly. Each call measures from the same anchor captured by Init
// to a fresh sample, not from the previous calibration.
//
// Calling it without any time having elapsed since Init results in an infinite or NaN
// ratio, which then propagates to all conversions until the next valid calibration.
// This is not guarded against.
func (c *Calibrator) Calibrate() float64 {
	var (
		anchor        = c.calibration.Load()
		cycles, nanos = syncTime(c.counter, c.clock, c.samples)
		nsPerCycle    = float64(int64(nanos-anchor.BaseNanos)) / float64(int64(cycles-anchor.BaseCycles))
	)

	c.calibration.Store(newCalibration(anchor.BaseCycles, anchor.BaseNanos, nsPerCycle))

	return 1 / nsPerCycle
}

// ReadCycles returns the raw cycle counter reading of the Calibrator's counter.
func (c *Calibrator) ReadCycles() uint64 {
	return c.counter.Cycles()
}

// Convert maps a cycle counter reading to nanoseconds since the Unix epoch using the current
// calibration.
func (c *Calibrator) Convert(cycles uint64) uint64 {
	return c.calibration.Load().Convert(cycles)
}

// Now returns the current time in nanoseconds since the Unix epoch, derived from the cycle
// counter. This does not involve any syscall.
func (c *Calibrator) Now() uint64 {
	cycles := c.counter.Cycles()

	return c.calibration.Load().Convert(cycles)
}

// NowWall returns the current time in nanoseconds since the Unix epoch, as reported by the
// wall clock the Calibrator gets calibrated against. Meant as ground truth, not for the hot path.
func (c *Calibrator) NowWall() uint64 {
	return c.clock.UnixNano()
}

// Time returns Now() as a time.Time. The result carries no monotonic clock reading.
func (c *Calibrator) Time() time.Time {
	return time.Unix(0, int64(c.Now()))
}

// Duration converts a difference between two ReadCycles() readings into a time.Duration.
func (c *Calibrator) Duration(cycles uint64) time.Duration {
	return c.calibration.Load().Duration(cycles)
}

// Rate returns the counter frequency currently assumed, in cycles per nanosecond (GHz).
func (c *Calibrator) Rate() float64 {
	return c.calibration.Load().Rate()
}

// Snapshot returns a copy of the Calibrator's current calibration.
func (c *Calibrator) Snapshot() Calibration {
	return *c.calibration.Load()
}
