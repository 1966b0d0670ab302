// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, then environment variables.
// - Validation errors wrap ErrInvalidConfig; provider errors wrap ErrLoadConfig.
package config

import (
	"fmt"

	"github.com/okian/salesboard/internal/domain/targets"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`
	// DefaultDailyTarget, DefaultWeeklyTarget and DefaultMonthlyTarget are the
	// organizational targets used for users without a custom override.
	DefaultDailyTarget   float64 `koanf:"default_daily_target"`
	DefaultWeeklyTarget  float64 `koanf:"default_weekly_target"`
	DefaultMonthlyTarget float64 `koanf:"default_monthly_target"`
	// MaxLeaderboardSize caps ?limit on leaderboard requests.
	MaxLeaderboardSize int `koanf:"max_leaderboard_size"`
	// MaxBatchSize caps the number of users per team progress request.
	MaxBatchSize int `koanf:"max_batch_size"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		DefaultDailyTarget:   targets.DefaultDaily,
		DefaultWeeklyTarget:  targets.DefaultWeekly,
		DefaultMonthlyTarget: targets.DefaultMonthly,
		MaxLeaderboardSize:   500,
		MaxBatchSize:         1000,
	}
}

// DefaultTargets returns the configured organizational target set.
func (c *Config) DefaultTargets() targets.Set {
	return targets.Set{
		Daily:   c.DefaultDailyTarget,
		Weekly:  c.DefaultWeeklyTarget,
		Monthly: c.DefaultMonthlyTarget,
	}
}

// Validate checks the values Load cannot repair.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !c.DefaultTargets().Valid():
		return fmt.Errorf("%w: default targets must be positive", ErrInvalidConfig)
	case c.MaxLeaderboardSize < 1:
		return fmt.Errorf("%w: max_leaderboard_size must be positive", ErrInvalidConfig)
	case c.MaxBatchSize < 1:
		return fmt.Errorf("%w: max_batch_size must be positive", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json", ErrInvalidConfig)
	}
	return nil
}
