package internal

// HasInvariantTSC reports whether the CPU advertises an invariant time-stamp counter, that is
// one that ticks at a constant rate regardless of P-, C- and T-state transitions.
//
// The bit lives in the extended leaf 0x80000007 (EDX bit 8) on both Intel and AMD. CPUs that
// don't expose the extended leaf at all are reported as lacking it.
func HasInvariantTSC() bool {
	// Highest extended function parameter.
	eax, _, _, _ := cpuid(0x80000000)
	if eax < 0x80000007 {
		return false
	}

	_, _, _, edx := cpuid(0x80000007)

	return (edx & (1 << 8)) != 0
}

// Gets temporarily swapped out with a mock during tests.
var cpuid = cpuidReal

//go:noescape
func cpuidReal(op uint32) (eax, ebx, ecx, edx uint32)
