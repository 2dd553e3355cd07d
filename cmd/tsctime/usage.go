package main

import (
	"fmt"
	"os"
)

const usageFmt = `
tsctime calibrates the cycle counter of this machine and converts its readings to timestamps.

Usage:

    tsctime [options...] <command> [parameters ...]

Commands:

    calibrate  Measures the counter rate over the given number of seconds (default 1)
               and stores it for this host

               tsctime calibrate [seconds]

    now        Prints counter based and system clock timestamps side by side

               tsctime now [count]

    inspect    Displays the CPU, the stored rate and the current calibration
    watch      Serves the skew between counter and system clock on /metrics
    version    Displays the version of this program
    help       Displays this information

Options:

    -store=<path>         File calibrated rates get stored in
    -nosave               Do not store the rate measured by calibrate
    -rate=<GHz>           Counter rate to use instead of the stored one
    -listen=<addr>        Address watch serves on (default :9779)
    -interval=<duration>  Interval watch samples at (default 1s)
`

func usage() {
	_, _ = os.Stdout.Write([]byte(usageFmt))
}

func printVersion() {
	fmt.Printf("tsctime %s (%s)\n", version, commit)
}
