package internal

// Cycles returns the current value of the virtual counter (CNTVCT_EL0).
//
// The virtual counter ticks at the generic timer frequency (CNTFRQ_EL0), not at the core
// clock - which is exactly what a calibrated conversion to nanoseconds wants.
//
//go:noescape
func Cycles() uint64

// CyclesOrdered returns the current value of the virtual counter after an instruction
// synchronization barrier (ISB), so the read can't be hoisted above preceding instructions.
//
//go:noescape
func CyclesOrdered() uint64
