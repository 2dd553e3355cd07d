package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dropbox/godropbox/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MengRao/tsctime"
)

var (
	skew = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tsctime_skew_nanoseconds",
		Help: "Counter based timestamp minus system clock timestamp at the last sample.",
	})

	skewAbs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "tsctime_skew_abs_seconds",
		Help: "Absolute skew between counter based timestamps and the system clock.",
		Buckets: []float64{
			0.0000001,
			0.0000005,
			0.000001,
			0.000005,
			0.00001,
			0.00005,
			0.0001,
			0.0005,
			0.001,
			0.005,
			0.010,
			0.050,
			0.100,
		},
	})

	cyclesPerNs = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tsctime_cycles_per_nanosecond",
		Help: "Counter rate the calibration assumes, in GHz.",
	})
)

func init() {
	prometheus.MustRegister(skew, skewAbs, cyclesPerNs)
}

// watch only ever observes the skew. Correcting it is up to whoever recalibrates.
func watch() error {
	if interval <= 0 {
		return errors.Newf("need a positive sampling interval, got [%s]", interval)
	}

	if err := initRate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: listen, Handler: mux}
	errc := make(chan error, 1)

	go func() {
		log.Printf("serving metrics on %s", listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- errors.Wrapf(err, "failed to serve metrics on %s", listen)
		}
	}()

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		sample()

		select {
		case <-t.C:
		case err := <-errc:
			return err
		case <-ctx.Done():
			log.Println("received signal, shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		}
	}
}

func sample() {
	var (
		fast = tsctime.Now()
		wall = tsctime.NowWall()
		d    = int64(fast) - int64(wall)
	)

	skew.Set(float64(d))
	if d < 0 {
		d = -d
	}
	skewAbs.Observe(time.Duration(d).Seconds())
	cyclesPerNs.Set(tsctime.Snapshot().Rate())
}
