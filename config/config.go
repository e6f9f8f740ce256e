// Package config loads experiment settings from HOG_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "HOG_"

type Config struct {
	// NumSamples is the number of trials behind every averaged value.
	NumSamples int `env:"NUM_SAMPLES" envDefault:"1000"`
	// Seed seeds the shared dice source. 0 seeds from the clock.
	Seed uint64 `env:"SEED"`
	// WinRates also runs the strategy win rate experiments.
	WinRates bool `env:"WIN_RATES"`
	// RecordsDir, when set, receives a record of every simulated game.
	RecordsDir string `env:"RECORDS_DIR"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is console or json.
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom reads the configuration from the given variables instead of the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []string

	if c.NumSamples < 1 {
		errs = append(errs, fmt.Sprintf("num_samples must be >= 1, got %d", c.NumSamples))
	}
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level must be one of [trace, debug, info, warn, error], got %q", c.LogLevel))
	}
	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[c.LogFormat] {
		errs = append(errs, fmt.Sprintf("log_format must be one of [console, json], got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
