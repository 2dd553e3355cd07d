package internal

import (
	"testing"
)

func testCPU(t *testing.T) {
	t.Run("real", testCPUReal)
	t.Run("mocked", testCPUMocked)
}

// First tests are run against the real hardware and actual cpuid instruction.
// We can't assume an invariant TSC (VMs commonly hide it), but the basic leaf
// must be sane and the probe must not blow up.
func testCPUReal(t *testing.T) {
	t.Run("highest-function-parameter-valid", testCPURealMFIValid)
	t.Run("highest-extended-function-parameter-valid", testCPURealExtendedMFIValid)
	t.Run("invariant-tsc-attempt", testCPURealInvariantTSCAttempt)
}

func testCPURealMFIValid(t *testing.T) {
	eax, _, _, _ := cpuid(0)
	if eax < 1 {
		t.Errorf("expected a non-zero highest function parameter, got [%d]", eax)
	}
}

func testCPURealExtendedMFIValid(t *testing.T) {
	eax, _, _, _ := cpuid(0x80000000)
	if eax < 0x80000000 {
		t.Errorf("expected the highest extended function parameter to be at least [0x80000000], got [%#x]", eax)
	}
}

func testCPURealInvariantTSCAttempt(t *testing.T) {
	// Note: We don't care about the result as we can't assume to get a 'true'.
	t.Logf("invariant TSC: %t", HasInvariantTSC())
}

// Note: Those tests must not run in parallel to any tests that rely
// on the actual cpuid implementation, as the cpuid function gets swapped out for mocks.
func testCPUMocked(t *testing.T) {
	cpuid = cpu.id
	defer func() {
		// Restore real implementation.
		cpuid = cpuidReal
	}()

	t.Run("extended-leaf-missing", testCPUInvariantTSCLeafMissing)
	t.Run("extended-leaf-too-low", testCPUInvariantTSCLeafLow)
	t.Run("bit-unset", testCPUInvariantTSCBitUnset)
	t.Run("passes", testCPUInvariantTSCPasses)
}

func testCPUInvariantTSCLeafMissing(t *testing.T) {
	cpu.reset()
	cpu.maxExt = 0
	expectInvariantTSC(t, false)
}

func testCPUInvariantTSCLeafLow(t *testing.T) {
	cpu.reset()
	cpu.maxExt = 0x80000006
	expectInvariantTSC(t, false)
}

func testCPUInvariantTSCBitUnset(t *testing.T) {
	cpu.reset()
	cpu.powerEdx ^= 1 << 8 // Everything *but* the invariant TSC bit.
	expectInvariantTSC(t, false)
}

func testCPUInvariantTSCPasses(t *testing.T) {
	cpu.reset()
	expectInvariantTSC(t, true)
}

var cpu = func() *cpuMock {
	c := &cpuMock{}
	c.reset()

	return c
}()

type cpuMock struct {
	maxExt   uint32
	powerEdx uint32
}

func (c *cpuMock) reset() {
	c.maxExt = 0x80000008
	c.powerEdx = 0x00000100 | 0x00000001 // Invariant TSC + temperature sensor.
}

func (c *cpuMock) id(op uint32) (eax, ebx, ecx, edx uint32) {
	switch op {
	case 0x80000000:
		return c.maxExt, 0, 0, 0
	case 0x80000007:
		return 0, 0, 0, c.powerEdx
	}

	return 0, 0, 0, 0
}

func expectInvariantTSC(t *testing.T, expected bool) {
	if actual := HasInvariantTSC(); actual != expected {
		t.Errorf("expected [%t], got [%t]", expected, actual)
	}
}
