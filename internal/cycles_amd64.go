package internal

// Cycles returns the current value of the time-stamp counter (RDTSC).
//
// RDTSC is not a serializing instruction: it may be executed before preceding instructions
// have retired, or after following ones have started. Use CyclesOrdered when that matters.
//
//go:noescape
func Cycles() uint64

// CyclesOrdered returns the current value of the time-stamp counter after all preceding
// instructions have completed locally (LFENCE; RDTSC).
//
// LFENCE is part of SSE2, which every amd64 CPU provides.
//
//go:noescape
func CyclesOrdered() uint64
