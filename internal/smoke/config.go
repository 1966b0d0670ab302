// Package smoke exercises a running evaluation service over HTTP and checks
// the behaviors clients depend on: progress against default targets, stable
// leaderboard ties, inclusive competition windows and profile-edit hints.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL      string        // Base URL of the service
	Workers      int           // Number of concurrent workers
	Rounds       int           // How many times every check is repeated
	Participants int           // Size of the generated leaderboard
	Timeout      time.Duration // HTTP request timeout
	Verbose      bool          // Log every passing check
}

// Stats holds run statistics.
type Stats struct {
	Checks    int
	Passed    int
	Failed    int
	Failures  []Failure
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Failure records one failed check execution.
type Failure struct {
	Check string
	Round int
	Err   error
}
