// Package config provides configuration loading for the simulator. Defaults
// are embedded; a YAML file and command-line flags override them in turn.
package config

import (
	_ "embed"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all run settings.
type Config struct {
	Viewport       ViewportConfig `yaml:"viewport"`
	CellSize       int            `yaml:"cell_size"`
	Interval       time.Duration  `yaml:"interval"`
	Pattern        string         `yaml:"pattern"`
	Seed           int64          `yaml:"seed"`
	Density        float64        `yaml:"density"`
	Workers        int            `yaml:"workers"`
	MaxGenerations int            `yaml:"max_generations"`
	OutputDir      string         `yaml:"output_dir"`
	LogJSON        bool           `yaml:"log_json"`
}

// ViewportConfig is the drawable area in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing embedded defaults")
	}
	return cfg, nil
}

// Load returns the defaults overridden by the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	// Only fields present in the file are overwritten.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Viewport.Width, "width", c.Viewport.Width, "viewport width in pixels")
	fs.IntVar(&c.Viewport.Height, "height", c.Viewport.Height, "viewport height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell side length in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "alive share for the random pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row-band workers per step (0 = one per CPU)")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after N generations (0 = unlimited)")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "directory for population.csv")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "log as JSON")
}

// Parse builds a Config from command-line arguments. A -config file is
// applied over the defaults, and flags given explicitly win over the file.
// extra binds command-specific flags onto the same FlagSet.
func Parse(name string, args []string, extra ...func(*flag.FlagSet)) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "path to config.yaml (empty = use defaults)")
	cfg.Bind(fs)
	for _, bind := range extra {
		bind(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *path != "" {
		fileCfg, err := Load(*path)
		if err != nil {
			return nil, err
		}
		overrides := flag.NewFlagSet(name, flag.ContinueOnError)
		fileCfg.Bind(overrides)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if setErr != nil || overrides.Lookup(f.Name) == nil {
				return
			}
			setErr = overrides.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, errors.Wrap(setErr, "applying flag overrides")
		}
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulator cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalid, "cell_size %d", c.CellSize)
	case c.Viewport.Width < c.CellSize || c.Viewport.Height < c.CellSize:
		return errors.Wrapf(ErrInvalid, "viewport %dx%d smaller than one %dpx cell",
			c.Viewport.Width, c.Viewport.Height, c.CellSize)
	case c.Interval <= 0:
		return errors.Wrapf(ErrInvalid, "interval %v", c.Interval)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalid, "density %v outside [0,1]", c.Density)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalid, "workers %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalid, "max_generations %d", c.MaxGenerations)
	case c.Pattern == "":
		return errors.Wrap(ErrInvalid, "pattern is empty")
	}
	return nil
}

// PatternOptions returns the options passed to pattern factories.
func (c *Config) PatternOptions() map[string]string {
	return map[string]string{
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
