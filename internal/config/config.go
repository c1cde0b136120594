// Package config loads run configuration from YAML with validated
// fallback to defaults.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is one evaluation run's settings.
type Config struct {
	Input struct {
		CSV string `yaml:"csv"`
	} `yaml:"input"`

	Evaluate struct {
		Factors  []string `yaml:"factors"`  // empty means all
		Workers  int      `yaml:"workers"`  // <= 0 means GOMAXPROCS
		Parallel bool     `yaml:"parallel"` //
	} `yaml:"evaluate"`

	Output struct {
		Excel string `yaml:"excel"`
		CSV   string `yaml:"csv"`
	} `yaml:"output"`

	Store struct {
		DSN string `yaml:"dsn"` // empty disables persistence
	} `yaml:"store"`

	Analysis struct {
		Horizon int `yaml:"horizon"`
		TopN    int `yaml:"top_n"`
	} `yaml:"analysis"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Evaluate.Parallel = true
	c.Analysis.Horizon = 1
	c.Analysis.TopN = 5
	return c
}

// Load reads path and validates the result. On read, parse, or
// validation failure it logs the error and returns the defaults, so a
// broken file never takes the run down.
func Load(path string, logger zerolog.Logger) Config {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("config unreadable, using defaults")
		return Default()
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("config malformed, using defaults")
		return Default()
	}
	if err := cfg.validate(); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("config invalid, using defaults")
		return Default()
	}
	return cfg
}

func (c Config) validate() error {
	if c.Analysis.Horizon <= 0 {
		return fmt.Errorf("config: analysis.horizon must be positive, got %d", c.Analysis.Horizon)
	}
	if c.Analysis.TopN <= 0 {
		return fmt.Errorf("config: analysis.top_n must be positive, got %d", c.Analysis.TopN)
	}
	return nil
}
