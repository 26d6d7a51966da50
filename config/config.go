// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrConfig marks invalid run settings so callers can tell a bad flag
// apart from an I/O failure; every Validate error wraps it.
var ErrConfig = errors.New("invalid config")

// Config is the root-level settings struct, populated from command
// line flags bound through Viper.
type Config struct {
	// path to the directory with FASTA/FASTQ files to clean
	Query string `mapstructure:"query"`

	// path to the directory the cleaned files are written to
	Output string `mapstructure:"output"`

	// minimum sequence length allowed (0 allows all lengths)
	MinimumLength int `mapstructure:"minimum-length"`

	// percentage of N bases allowed, 0-100 (100 allows all)
	PercentageN float64 `mapstructure:"percentage-n"`

	// keep every duplicate sequence instead of removing them
	KeepAllDuplicates bool `mapstructure:"keep-all-duplicates"`

	// also remove records whose reverse complement was already seen
	RCDuplicates bool `mapstructure:"rc-duplicates"`

	// share one duplicate set across all input files
	GlobalDuplicates bool `mapstructure:"global-duplicates"`

	// path to the log file (empty logs to stderr)
	Log string `mapstructure:"log"`
}

// New returns a new Config struct populated by Viper settings.
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}

// Validate rejects impossible filter settings before any file is
// touched.
func (c Config) Validate() error {
	if c.Query == "" {
		return fmt.Errorf("%w: a query directory is required", ErrConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: an output directory is required", ErrConfig)
	}
	if c.MinimumLength < 0 {
		return fmt.Errorf("%w: minimum-length must be >= 0, got %d", ErrConfig, c.MinimumLength)
	}
	if c.PercentageN < 0 || c.PercentageN > 100 {
		return fmt.Errorf("%w: percentage-n must be between 0 and 100, got %g", ErrConfig, c.PercentageN)
	}
	return nil
}
