package tsctime

import "fmt"

// InvalidSampleCountError gets returned when a Calibrator gets configured with a negative
// number of samples for its clock synchronization.
type InvalidSampleCountError struct {
	Samples int
}

func (e *InvalidSampleCountError) Error() string {
	return fmt.Sprintf("tsctime: sample count must not be negative, got %d", e.Samples)
}
