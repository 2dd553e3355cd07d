// tsctime calibrates the cycle counter of this machine, remembers the result per host and
// serves cycle counter based timestamps and their skew against the system clock.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/dropbox/godropbox/errors"
)

const (
	cmdCalibrate = "calibrate"
	cmdNow       = "now"
	cmdInspect   = "inspect"
	cmdWatch     = "watch"
	cmdVersion   = "version"
	cmdHelp      = "help"
)

// Version information injected at build time.
var (
	version = "dev"
	commit  = "unknown"
)

var (
	storePath string
	noSave    bool
	rate      float64
	listen    string
	interval  time.Duration
)

func init() {
	flag.StringVar(&storePath, "store", defaultStorePath(), "Path of the file calibrated rates get stored in")
	flag.BoolVar(&noSave, "nosave", false, "Do not store the rate measured by calibrate")
	flag.Float64Var(&rate, "rate", 0, "Counter rate in GHz to use instead of the stored or a fresh calibration")
	flag.StringVar(&listen, "listen", ":9779", "Address watch serves /metrics on")
	flag.DurationVar(&interval, "interval", time.Second, "Interval watch samples the skew at")
}

func main() {
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("tsctime: ")

	var (
		args  = flag.Args()
		argsN = len(args)
		err   error
	)

	if argsN == 0 {
		usage()
		return
	}

	var arg string
	if argsN == 2 {
		arg = args[1]
	} else if argsN > 2 {
		usage()
		return
	}

	switch cmd := args[0]; cmd {
	case cmdCalibrate:
		err = calibrate(arg)
	case cmdNow:
		err = now(arg)
	case cmdInspect:
		if err = noParams(cmd, arg); err == nil {
			err = inspect()
		}
	case cmdWatch:
		if err = noParams(cmd, arg); err == nil {
			err = watch()
		}
	case cmdVersion:
		if err = noParams(cmd, arg); err == nil {
			printVersion()
		}
	case cmdHelp:
		usage()
	default:
		usage()
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}

// noParams rejects a positional parameter passed to a command that takes none.
func noParams(cmd, arg string) error {
	if arg != "" {
		return errors.Newf("%s takes no parameters, got [%s]", cmd, arg)
	}

	return nil
}
