// SPDX-License-Identifier: MIT

// Command poinet connects the points of interest of an OSM extract with a
// minimum spanning tree over shortest road paths and prints its total length.
//
// Usage:
//
//	poinet -config poinet.yaml
//	poinet -osm city.osm.pbf -geojson mst.geojson
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/poinet/pipeline"
)

var (
	configPath = flag.String("config", "", "YAML config file (defaults apply when empty)")
	osmPath    = flag.String("osm", "", "OSM extract, .osm or .osm.pbf (overrides source.osm)")
	poisPath   = flag.String("pois", "", "GeoJSON POI collection (overrides source.pois)")
	geojsonOut = flag.String("geojson", "", "write routes, terminals and POIs as GeoJSON (overrides output.geojson)")
	metricsOut = flag.String("metrics", "", "write Prometheus textfile metrics (overrides output.metrics)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "poinet:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	overrideString(&cfg.Source.OSM, *osmPath)
	overrideString(&cfg.Source.POIs, *poisPath)
	overrideString(&cfg.Output.GeoJSON, *geojsonOut)
	overrideString(&cfg.Output.Metrics, *metricsOut)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := pipeline.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := pipeline.NewRunner(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}
	res, runErr := runner.Run(ctx)
	if cfg.Output.Metrics != "" {
		if err := runner.Metrics().WriteTextfile(cfg.Output.Metrics); err != nil {
			logger.Warn("metrics not written", zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	if err := res.WriteReport(os.Stdout, cfg.Unit); err != nil {
		return err
	}
	if cfg.Output.GeoJSON != "" {
		if err := writeGeoJSON(cfg.Output.GeoJSON, res); err != nil {
			return err
		}
		logger.Info("geojson written", zap.String("path", cfg.Output.GeoJSON))
	}

	return nil
}

// loadConfig reads path when given; both paths apply POINET_* overrides.
func loadConfig(path string) (pipeline.Config, error) {
	if path == "" {
		return pipeline.ConfigFromEnv()
	}

	return pipeline.ReadConfig(path)
}

func writeGeoJSON(path string, res *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := res.WriteGeoJSON(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
