package tsctime

import "sync/atomic"

// script replays a fixed sequence of readings and fails loudly when read past its end,
// so that a test consuming more samples than it expects can't go unnoticed.
type script struct {
	vals []uint64
	i    int
}

func newScript(vals ...uint64) *script {
	return &script{vals: vals}
}

func (s *script) next() uint64 {
	if s.i >= len(s.vals) {
		panic("script exhausted")
	}

	v := s.vals[s.i]
	s.i++

	return v
}

func (s *script) counter() CycleCounter { return CycleCounterFunc(s.next) }
func (s *script) clock() WallClock      { return WallClockFunc(s.next) }

// ticker is a goroutine-safe source advancing by a fixed step on every read.
type ticker struct {
	v    atomic.Uint64
	step uint64
}

func newTicker(start, step uint64) *ticker {
	t := &ticker{step: step}
	t.v.Store(start)

	return t
}

func (t *ticker) next() uint64 {
	return t.v.Add(t.step)
}

// mustNew builds a Calibrator from scripted sources, taking a single sample per anchor
// unless told otherwise.
func mustNew(counter CycleCounter, clock WallClock, samples int) *Calibrator {
	c, err := New(&Config{
		Counter: counter,
		Clock:   clock,
		Samples: samples,
	})
	if err != nil {
		panic(err)
	}

	return c
}
