package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/MengRao/tsctime"
)

func now(in string) error {
	count, err := parseCount(in, 1, "timestamps")
	if err != nil {
		return err
	}

	if err := initRate(); err != nil {
		return err
	}

	return printNow(os.Stdout, count)
}

// printNow writes count lines of counter based timestamp, system clock timestamp and
// their difference.
func printNow(out io.Writer, count uint64) error {
	w := bufio.NewWriter(out)

	for i := uint64(0); i < count; i++ {
		var (
			fast = tsctime.Now()
			wall = tsctime.NowWall()
		)

		if _, err := fmt.Fprintf(w, "%d %d %+d\n", fast, wall, int64(fast)-int64(wall)); err != nil {
			return err
		}
	}

	return w.Flush()
}
