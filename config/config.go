package config

import (
	"fmt"

	"github.com/kbukum/chainkit/logger"
	"github.com/kbukum/chainkit/validation"
)

// BaseConfig contains the fields every chainkit binary needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "chainsim"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return fmt.Errorf("base.environment must be one of [development, staging, production] (got: %s)", c.Environment)
}

// ObservabilityConfig configures optional tracing and metrics export.
type ObservabilityConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults applies default values to observability configuration.
func (c *ObservabilityConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
		c.Insecure = true
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}

// RunConfig describes one sampling run for the chainsim driver.
type RunConfig struct {
	// Seed drives every random source in the run; the same seed
	// replays the same draws.
	Seed    uint64  `yaml:"seed" mapstructure:"seed"`
	Draws   int     `yaml:"draws" mapstructure:"draws" validate:"gt=0"`
	Workers int     `yaml:"workers" mapstructure:"workers" validate:"gte=1,lte=256"`
	Mean    float64 `yaml:"mean" mapstructure:"mean"`
	StdDev  float64 `yaml:"stddev" mapstructure:"stddev" validate:"gte=0"`
	Scale   float64 `yaml:"scale" mapstructure:"scale"`
	Shift   float64 `yaml:"shift" mapstructure:"shift"`
}

// ApplyDefaults applies default values to run configuration.
func (c *RunConfig) ApplyDefaults() {
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Draws == 0 {
		c.Draws = 10000
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.StdDev == 0 {
		c.StdDev = 1
	}
	if c.Scale == 0 {
		c.Scale = 1
	}
}

// Config is the chainsim driver configuration.
type Config struct {
	Base          BaseConfig          `yaml:"base" mapstructure:"base"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Run           RunConfig           `yaml:"run" mapstructure:"run"`
}

// ApplyDefaults applies defaults to all sections.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Observability.ApplyDefaults()
	c.Run.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := validation.Validate(c.Observability); err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	if err := validation.Validate(c.Run); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
