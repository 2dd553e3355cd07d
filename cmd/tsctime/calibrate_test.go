package main

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MengRao/tsctime"
)

func withFlags(t *testing.T, path string, r float64) {
	prevPath, prevRate := storePath, rate
	storePath, rate = path, r
	t.Cleanup(func() { storePath, rate = prevPath, prevRate })
}

func TestValidRate(t *testing.T) {
	for _, tc := range []struct {
		ghz   float64
		valid bool
	}{
		{2.9, true},
		{1e-9, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	} {
		assert.Equal(t, tc.valid, validRate(tc.ghz), "rate %f", tc.ghz)
	}
}

func TestCalibrated_RejectsDegenerateRate(t *testing.T) {
	// Neither the counter nor the clock moves: 0/0 cycles per nanosecond.
	c, err := tsctime.New(&tsctime.Config{
		Counter: tsctime.CycleCounterFunc(func() uint64 { return 42 }),
		Clock:   tsctime.WallClockFunc(func() uint64 { return 1000 }),
	})
	require.NoError(t, err)

	c.Init(0)

	_, err = calibrated(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rate")
}

func TestCalibrated_AcceptsValidRate(t *testing.T) {
	var cycles, nanos uint64
	c, err := tsctime.New(&tsctime.Config{
		Counter: tsctime.CycleCounterFunc(func() uint64 { cycles += 3; return cycles }),
		Clock:   tsctime.WallClockFunc(func() uint64 { nanos++; return nanos }),
	})
	require.NoError(t, err)

	c.Init(0)

	// Every sync takes 11 counter reads against 10 clock reads: 33 cycles per 10ns.
	ghz, err := calibrated(c)
	require.NoError(t, err)
	assert.InDelta(t, 3.3, ghz, 1e-9)
}

func TestInitRate_FromFlag(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "rates.json"), 2)

	require.NoError(t, initRate())
	assert.InDelta(t, 2, tsctime.Snapshot().Rate(), 1e-12)
}

func TestInitRate_FromStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	withFlags(t, path, 0)
	withHostKey(t, "host-a")

	require.NoError(t, storeRate(path, record{Rate: 2.5, CalibratedAt: time.Now(), Wait: time.Second}))

	require.NoError(t, initRate())
	assert.InDelta(t, 2.5, tsctime.Snapshot().Rate(), 1e-12)
}
