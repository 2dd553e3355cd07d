package tsctime

import "time"

// Calibration is an immutable snapshot of the affine mapping from cycle counter readings
// to wall clock nanoseconds:
//
//	ns = Offset + cycles * NsPerCycle
//
// where Offset = BaseNanos - cycles(BaseCycles) * NsPerCycle, so that the anchor pair
// always maps onto itself.
//
// Calibrators publish a fresh Calibration on every Init and Calibrate and never modify
// one after it got published - a Calibration obtained via Snapshot() stays valid and
// consistent indefinitely.
type Calibration struct {
	// The pair read on every conversion. Kept at the head of the record so a conversion
	// touches a single 16 byte span of memory.
	NsPerCycle float64 `json:"nsPerCycle"`
	Offset     int64   `json:"offset"`

	BaseCycles uint64 `json:"baseCycles"` // Counter reading of the anchor pair.
	BaseNanos  uint64 `json:"baseNanos"`  // Wall clock reading of the anchor pair.
}

func newCalibration(baseCycles, baseNanos uint64, nsPerCycle float64) *Calibration {
	return &Calibration{
		NsPerCycle: nsPerCycle,
		Offset:     int64(baseNanos) - int64(float64(int64(baseCycles))*nsPerCycle),
		BaseCycles: baseCycles,
		BaseNanos:  baseNanos,
	}
}

// Convert maps a cycle counter reading to nanoseconds since the Unix epoch.
//
// The product is truncated towards zero before the offset gets applied, which is also
// what the offset itself was computed with - Convert(BaseCycles) == BaseNanos holds exactly.
// For any positive NsPerCycle the mapping is monotonic: c1 <= c2 implies
// Convert(c1) <= Convert(c2), for readings up to 1<<63.
func (c Calibration) Convert(cycles uint64) uint64 {
	return uint64(c.Offset + int64(float64(int64(cycles))*c.NsPerCycle))
}

// Duration converts a difference between two counter readings into a time.Duration.
func (c Calibration) Duration(cycles uint64) time.Duration {
	return time.Duration(float64(cycles) * c.NsPerCycle)
}

// Rate returns the counter frequency the Calibration assumes, in cycles per nanosecond (GHz).
func (c Calibration) Rate() float64 {
	return 1 / c.NsPerCycle
}
