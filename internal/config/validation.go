package config

import (
	"fmt"
	"slices"
)

// DigestAlgorithms lists the accepted values for digest.algorithm.
var DigestAlgorithms = []string{"sha256", "sha512", "sha3-256", "blake2b-256"}

// LogLevels lists the accepted values for log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if !slices.Contains(DigestAlgorithms, c.Digest.Algorithm) {
		errs = append(errs, fmt.Sprintf("digest.algorithm must be one of %v", DigestAlgorithms))
	}

	if c.Compression.Level < 0 || c.Compression.Level > 11 {
		errs = append(errs, "compression.level must be between 0 and 11")
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %v", LogLevels))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
