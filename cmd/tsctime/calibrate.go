package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/dropbox/godropbox/errors"
	"github.com/muyo/rush/chars"

	"github.com/MengRao/tsctime"
)

const defaultWait = time.Second

// parseCount parses a positional numeric argument, falling back to def when it's absent.
func parseCount(in string, def uint64, what string) (uint64, error) {
	if in == "" {
		return def, nil
	}

	n, ok := chars.ParseUint64(in)
	if !ok || n == 0 {
		return 0, errors.Newf("need a valid, positive number of %s, got [%s]", what, in)
	}

	return n, nil
}

func calibrate(in string) error {
	secs, err := parseCount(in, uint64(defaultWait/time.Second), "seconds")
	if err != nil {
		return err
	}

	wait := time.Duration(secs) * time.Second

	tsctime.Init(0)
	log.Printf("calibrating for %s", wait)
	time.Sleep(wait)

	ghz, err := calibrated(tsctime.Default())
	if err != nil {
		return err
	}

	fmt.Printf("%.9f\n", ghz)

	if noSave {
		return nil
	}

	if err := storeRate(storePath, record{
		Rate:         ghz,
		CalibratedAt: time.Now().UTC(),
		Wait:         wait,
	}); err != nil {
		return err
	}

	log.Printf("stored rate in %s", storePath)

	return nil
}

// initRate initializes the package-level calibrator with the best rate available: the -rate
// flag, then the store, then a fresh calibration.
func initRate() error {
	if rate > 0 {
		tsctime.Init(rate)
		return nil
	}

	rec, ok, err := lookupRate(storePath)
	if err != nil {
		return err
	}

	if ok {
		tsctime.Init(rec.Rate)
		return nil
	}

	log.Printf("no stored rate for this host, calibrating for %s (run 'tsctime calibrate' to skip this)", defaultWait)

	tsctime.Init(0)
	time.Sleep(defaultWait)

	_, err = calibrated(tsctime.Default())

	return err
}

// calibrated calibrates c and rejects the degenerate rates a calibration over a stopped
// counter or no elapsed time yields.
func calibrated(c *tsctime.Calibrator) (float64, error) {
	ghz := c.Calibrate()
	if !validRate(ghz) {
		return 0, errors.Newf("calibration produced an invalid rate %f", ghz)
	}

	return ghz, nil
}

func validRate(ghz float64) bool {
	return !math.IsNaN(ghz) && !math.IsInf(ghz, 0) && ghz > 0
}
