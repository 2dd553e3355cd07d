package benchmark

import (
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/celrenheit/sandflake"
	"github.com/muyo/sno"
	"github.com/oklog/ulid"
	"github.com/rs/xid"
	"github.com/segmentio/ksuid"
	"github.com/sony/sonyflake"

	"github.com/MengRao/tsctime"
)

// Calibrating takes a while, so it's done once, lazily, for all timestamp benchmarks.
var calibrateOnce sync.Once

func calibrate() {
	calibrateOnce.Do(func() {
		tsctime.Init(0)
		time.Sleep(100 * time.Millisecond)
		tsctime.Calibrate()
	})
}

func benchmarkTimestamps(b *testing.B) {
	calibrate()

	println("\n-- Timestamps (sequential) -------------------------------------------------------------------\n")
	b.Run("s", benchmarkTimestampsSequential)
	println("\n-- Timestamps (parallel) ---------------------------------------------------------------------\n")
	b.Run("p", benchmarkTimestampsParallel)
}

// Sources that don't offer raw timestamps get measured through the timestamp embedded in
// a freshly generated ID - which is what their users end up paying for one.
//
// Each source reports in its own unit. Raw counter readings have none.
var sources = []struct {
	name string
	unit time.Duration
	now  func() int64
}{
	{"tsctime", time.Nanosecond, func() int64 { return int64(tsctime.Now()) }},
	{"tsctime-cycles", 0, func() int64 { return int64(tsctime.ReadCycles()) }},
	{"tsctime-ordered", 0, func() int64 { return int64(tsctime.OrderedCounter.Cycles()) }},
	{"tsctime-wall", time.Nanosecond, func() int64 { return int64(tsctime.NowWall()) }},
	{"time", time.Nanosecond, func() int64 { return time.Now().UnixNano() }},
	{"sno", time.Nanosecond, func() int64 { return sno.New(0).Time().UnixNano() }},    // 4msec resolution.
	{"ulid", time.Millisecond, func() int64 { return int64(ulid.Now()) }},             // 1msec resolution.
	{"snowflake", time.Millisecond, snowflakeNow},                                     // 1msec resolution.
	{"sandflake", time.Nanosecond, sandflakeNow},                                      // 1msec resolution.
	{"sonyflake", 10 * time.Millisecond, sonyflakeNow},                                // 10msec resolution.
	{"xid", time.Nanosecond, func() int64 { return xid.New().Time().UnixNano() }},     // 1sec resolution.
	{"ksuid", time.Nanosecond, func() int64 { return ksuid.New().Time().UnixNano() }}, // 1sec resolution.
}

var snowflakeNode, _ = snowflake.NewNode(255)

func snowflakeNow() int64 {
	return snowflakeNode.Generate().Time()
}

var sandflakeGen sandflake.Generator

func sandflakeNow() int64 {
	return sandflakeGen.Next().Time().UnixNano()
}

// The machine ID is fixed - by default sonyflake derives it from a private IPv4 address
// and refuses to start on hosts without one.
var (
	sonyflakeStart = time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC)
	sonyflakeGen   = sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: sonyflakeStart,
		MachineID: func() (uint16, error) { return 255, nil },
	})
)

// sonyflakeNow returns the ID's timestamp in its native 10msec units, rebased onto the
// Unix epoch.
func sonyflakeNow() int64 {
	id, _ := sonyflakeGen.NextID()

	return sonyflakeStart.UnixNano()/int64(10*time.Millisecond) + int64(sonyflake.Decompose(id)["time"])
}

var sink int64

func benchmarkTimestampsSequential(b *testing.B) {
	for _, s := range sources {
		now := s.now
		b.Run(s.name, func(b *testing.B) {
			var v int64
			for i := 0; i < b.N; i++ {
				v = now()
			}
			sink = v
		})
	}
}

func benchmarkTimestampsParallel(b *testing.B) {
	for _, s := range sources {
		now := s.now
		b.Run(s.name, func(b *testing.B) {
			b.RunParallel(func(pb *testing.PB) {
				var v int64
				for pb.Next() {
					v = now()
				}
				_ = v
			})
		})
	}
}

func benchmarkConversion(b *testing.B) {
	calibrate()

	println("\n-- Conversion --------------------------------------------------------------------------------\n")

	b.Run("convert", func(b *testing.B) {
		c := tsctime.ReadCycles()
		var v uint64
		for i := 0; i < b.N; i++ {
			v = tsctime.Convert(c + uint64(i))
		}
		sink = int64(v)
	})

	b.Run("since", func(b *testing.B) {
		c := tsctime.ReadCycles()
		var v time.Duration
		for i := 0; i < b.N; i++ {
			v = tsctime.Since(c)
		}
		sink = int64(v)
	})
}
