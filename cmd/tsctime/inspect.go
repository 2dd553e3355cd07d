package main

import (
	"fmt"
	"time"

	"github.com/MengRao/tsctime"
)

const inspectFmt = `
-- Host

         ID: %s
  Invariant: %t

-- Stored

       Rate: %s
 Calibrated: %s
       Wait: %s

-- Calibration

       Rate: %.9f GHz
     Cycles: %d
      Nanos: %d (%s)
     Offset: %d

`

func inspect() error {
	id, err := hostKey()
	if err != nil {
		return err
	}

	rec, ok, err := lookupRate(storePath)
	if err != nil {
		return err
	}

	var (
		storedRate = "none"
		storedAt   = "-"
		storedWait = "-"
	)

	if ok {
		storedRate = fmt.Sprintf("%.9f GHz", rec.Rate)
		storedAt = rec.CalibratedAt.Format(time.RFC3339)
		storedWait = rec.Wait.String()
		tsctime.Init(rec.Rate)
	}

	s := tsctime.Snapshot()

	fmt.Printf(inspectFmt,
		id,
		tsctime.InvariantTSC(),
		storedRate,
		storedAt,
		storedWait,
		s.Rate(),
		s.BaseCycles,
		s.BaseNanos,
		time.Unix(0, int64(s.BaseNanos)).UTC().Format(time.RFC3339Nano),
		s.Offset,
	)

	return nil
}
