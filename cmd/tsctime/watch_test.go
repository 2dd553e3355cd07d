package main

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MengRao/tsctime"
)

func TestWatch_RejectsNonPositiveInterval(t *testing.T) {
	prev := interval
	t.Cleanup(func() { interval = prev })

	for _, d := range []time.Duration{0, -time.Second} {
		interval = d

		err := watch()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interval")
	}
}

func TestSample(t *testing.T) {
	tsctime.Init(2)

	sample()

	assert.Equal(t, 2.0, testutil.ToFloat64(cyclesPerNs))

	// Whatever the real counter rate, hardly any time passed since Init.
	assert.Less(t, math.Abs(testutil.ToFloat64(skew)), float64(time.Second))
	assert.Equal(t, 1, testutil.CollectAndCount(skewAbs))
}
