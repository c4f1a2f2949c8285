// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Run configuration: YAML file, environment overrides and validation.

package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poinet/poi"
)

// ErrInvalidConfig wraps every validation failure of a Config.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

var validate = validator.New()

// Config drives one poinet run.
type Config struct {
	// Place labels the run in logs and reports.
	Place string `yaml:"place"`

	Source SourceConfig `yaml:"source"`

	// NetworkType selects the road filter: drive, walk, bike or all.
	NetworkType string `yaml:"network_type" validate:"oneof=drive walk bike all"`

	// Simplify merges street segments between intersections.
	Simplify bool `yaml:"simplify"`

	// Categories are tried in order until one yields POIs ("amenity=library").
	Categories []string `yaml:"categories" validate:"min=1,dive,required"`

	// Weight is the edge attribute minimized by shortest paths.
	Weight string `yaml:"weight" validate:"required"`

	// Workers bounds concurrent shortest-path runs; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Timeout bounds the whole run; 0 disables it.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// Unit of the reported total: m or km.
	Unit string `yaml:"unit" validate:"oneof=m km"`

	// MSTMethod is kruskal or prim.
	MSTMethod string `yaml:"mst_method" validate:"oneof=kruskal prim"`

	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig names the input files.
type SourceConfig struct {
	// OSM is the .osm or .osm.pbf extract holding the road network.
	OSM string `yaml:"osm" validate:"required"`

	// POIs is an optional GeoJSON FeatureCollection; when empty, POIs come from the OSM extract.
	POIs string `yaml:"pois"`
}

// OutputConfig names the optional output files.
type OutputConfig struct {
	GeoJSON string `yaml:"geojson"`
	Metrics string `yaml:"metrics"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the settings of the reference run: libraries with a
// fallback to schools on the drive network, reported in kilometers.
// Source.OSM is left empty and must be provided.
func DefaultConfig() Config {
	return Config{
		NetworkType: "drive",
		Simplify:    true,
		Categories:  []string{"amenity=library", "amenity=school"},
		Weight:      "length",
		Unit:        "km",
		MSTMethod:   "kruskal",
		Log:         LogConfig{Level: "info"},
	}
}

// ReadConfig reads a YAML file over DefaultConfig and applies POINET_*
// environment overrides. The result is not validated.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}
	if err = cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ConfigFromEnv returns DefaultConfig with POINET_* environment overrides
// applied, for runs without a config file. The result is not validated.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig is ReadConfig followed by Validate.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overrides fields from POINET_* variables when they are set.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("POINET_OSM"); v != "" {
		c.Source.OSM = v
	}
	if v := getenv("POINET_NETWORK_TYPE"); v != "" {
		c.NetworkType = v
	}
	if v := getenv("POINET_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("POINET_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: POINET_WORKERS=%q", ErrInvalidConfig, v)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks struct tags and that every category parses.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, err := c.ParsedCategories(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ParsedCategories converts Categories to poi.Category values, in order.
func (c Config) ParsedCategories() ([]poi.Category, error) {
	out := make([]poi.Category, 0, len(c.Categories))
	for _, s := range c.Categories {
		cat, err := poi.ParseCategory(s)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}

	return out, nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
