//go:build !amd64
// +build !amd64

package internal

import (
	"runtime"
	"testing"
)

func testCPU(t *testing.T) {
	expected := runtime.GOARCH == "arm64"

	if actual := HasInvariantTSC(); actual != expected {
		t.Errorf("expected [%t], got [%t]", expected, actual)
	}
}
