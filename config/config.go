// Package config holds the run configuration of the hillpath command.
//
// A configuration file is optional YAML:
//
//	input: ./input.txt
//	part: 0          # 0 = both parts, 1 or 2
//	weighting: unit  # unit | climb
//	connectivity: 4  # 4 | 8
//	draw: false
//	log:
//	  level: info    # debug | info | warn | error
//
// Missing keys keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/katalvlaran/hillpath/internal/logging"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading and validation.
var (
	ErrRead            = errors.New("config: cannot read file")
	ErrDecode          = errors.New("config: invalid YAML")
	ErrBadPart         = errors.New("config: part must be 0, 1 or 2")
	ErrBadWeighting    = errors.New("config: weighting must be \"unit\" or \"climb\"")
	ErrBadConnectivity = errors.New("config: connectivity must be 4 or 8")
	ErrBadLogLevel     = errors.New("config: invalid log level")
)

// Weighting names accepted in Config.Weighting.
const (
	WeightingUnit  = "unit"
	WeightingClimb = "climb"
)

// Config is the full run configuration.
type Config struct {
	Input        string `yaml:"input"`
	Part         int    `yaml:"part"`
	Weighting    string `yaml:"weighting"`
	Connectivity int    `yaml:"connectivity"`
	Draw         bool   `yaml:"draw"`
	Log          struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is given:
// both parts, unit weighting, 4-connectivity, info logging, stdin input.
func Default() Config {
	c := Config{
		Part:         0,
		Weighting:    WeightingUnit,
		Connectivity: 4,
	}
	c.Log.Level = "info"

	return c
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return c, c.Validate()
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if c.Part < 0 || c.Part > 2 {
		return fmt.Errorf("%w: got %d", ErrBadPart, c.Part)
	}
	if c.Weighting != WeightingUnit && c.Weighting != WeightingClimb {
		return fmt.Errorf("%w: got %q", ErrBadWeighting, c.Weighting)
	}
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: got %d", ErrBadConnectivity, c.Connectivity)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrBadLogLevel, err)
	}

	return nil
}

// HeightmapOptions translates the search settings into heightmap options.
// c must be valid.
func (c Config) HeightmapOptions() []heightmap.Option {
	opts := []heightmap.Option{heightmap.WithWeighting(heightmap.UnitWeighting)}
	if c.Weighting == WeightingClimb {
		opts = []heightmap.Option{heightmap.WithWeighting(heightmap.ClimbWeighting)}
	}
	if c.Connectivity == 8 {
		opts = append(opts, heightmap.WithConnectivity(heightmap.Conn8))
	}

	return opts
}
