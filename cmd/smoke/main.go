package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/salesboard/internal/smoke"
	"github.com/okian/salesboard/pkg/logger"
)

// Default configuration constants.
const (
	defaultRounds       = 3
	defaultParticipants = 200
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 10 * time.Second
	defaultRunTimeout   = 5 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		rounds       = flag.Int("rounds", defaultRounds, "How many times every check is repeated")
		participants = flag.Int("participants", defaultParticipants, "Size of the generated leaderboard")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFormat    = flag.String("log-format", "text", "Log format: text or json")
		verbose      = flag.Bool("verbose", false, "Log every passing check")
	)
	flag.Parse()

	if err := logger.InitWithOptions(logger.WithFormat(*logFormat)); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL:      *baseURL,
		Workers:      *workers,
		Rounds:       *rounds,
		Participants: *participants,
		Timeout:      *timeout,
		Verbose:      *verbose,
	}
	if _, err := smoke.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Smoke run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
