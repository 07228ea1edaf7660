package main

import (
	"fmt"
	"os"

	"geoarrow/pkg/api"
	"geoarrow/pkg/config"
	"geoarrow/pkg/flight"
	"geoarrow/pkg/logging"

	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, found, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}
	if !found {
		level.Warn(logger).Log("msg", ".env file not found, using environment only")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Start REST API server in goroutine
	apiServer := api.NewAPIServer(logger, reg, cfg.CoordType, cfg.RESTPort)
	go func() {
		if err := apiServer.Start(); err != nil {
			level.Error(logger).Log("msg", "REST API server stopped", "err", err)
		}
	}()

	// Start Flight server
	srv := flight.NewGeoFlightServer(logger, reg, flight.Options{
		CoordType: cfg.CoordType,
		Workers:   cfg.Workers,
		ChunkSize: cfg.ChunkSize,
	})
	err = flight.StartFlightServer(srv, cfg.FlightPort)
	apiServer.Stop()
	if err != nil {
		level.Error(logger).Log("msg", "Flight server failed", "err", err)
		os.Exit(1)
	}
}
