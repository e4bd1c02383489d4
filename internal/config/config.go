// Package config loads classgauge defaults from config file, environment
// and built-in values.
package config

import (
	"errors"
	"fmt"
)

// Default configuration values.
const (
	DefaultOutputDir = "classgauge-report"
	DefaultMean      = 0.5
	DefaultSigma     = 0.1
)

// ErrSigmaNotPositive is returned when the configured sigma would produce a
// degenerate or inverted band.
var ErrSigmaNotPositive = errors.New("sigma must be positive")

// Config holds the report defaults. Flags override whatever is loaded
// here. Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Output is the target directory for artifact pairs.
	Output string `mapstructure:"output"`

	// Mean and Sigma control the band thresholds [mean-sigma, mean+sigma].
	Mean  float64 `mapstructure:"mean"`
	Sigma float64 `mapstructure:"sigma"`

	// Metrics restricts which metric identifiers a run publishes. Empty
	// means all registered metrics.
	Metrics []string `mapstructure:"metrics"`
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Sigma <= 0 {
		return fmt.Errorf("%w: got %v", ErrSigmaNotPositive, c.Sigma)
	}

	return nil
}
