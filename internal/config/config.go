// Package config holds the runtime configuration bound to CLI flags.
package config

import (
	"fmt"
	"time"
)

type Config struct {
	// Token is the GitHub API token from --token. Empty means fall back to
	// GITHUB_TOKEN or GitHub CLI auth, then run unauthenticated.
	Token string

	// JSON selects machine-readable output instead of the text report
	// (see --json).
	JSON bool

	// Timeout bounds the whole check run (see --timeout).
	Timeout time.Duration

	// Workers bounds concurrent rule evaluation within a category
	// (see --workers).
	Workers int

	// Verbose prints every GitHub API call to stderr (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{
		Timeout: 5 * time.Minute,
		Workers: 4,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	return nil
}
