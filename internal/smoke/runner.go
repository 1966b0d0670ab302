package smoke

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/salesboard/pkg/logger"
)

// ErrChecksFailed is returned by Run when at least one check failed.
var ErrChecksFailed = errors.New("smoke checks failed")

type job struct {
	check Check
	round int
}

// Run executes every check cfg.Rounds times across cfg.Workers workers and
// returns the collected statistics. The error wraps ErrChecksFailed when any
// execution failed.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Rounds < 1 {
		cfg.Rounds = 1
	}
	log := logger.Get().Named("smoke")
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("workers", cfg.Workers),
		logger.Int("rounds", cfg.Rounds),
		logger.Int("participants", cfg.Participants),
		logger.Duration("timeout", cfg.Timeout))

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	// The service has to be up before anything else is worth running.
	if err := checkHealth(ctx, client, cfg); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	checks := Checks()
	jobs := make(chan job, cfg.Workers*2)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				err := j.check.Run(ctx, client, cfg)

				mu.Lock()
				stats.Checks++
				if err != nil {
					stats.Failed++
					stats.Failures = append(stats.Failures, Failure{Check: j.check.Name, Round: j.round, Err: err})
				} else {
					stats.Passed++
				}
				mu.Unlock()

				if err != nil {
					log.Error(ctx, "check failed",
						logger.String("check", j.check.Name), logger.Int("round", j.round), logger.Error(err))
				} else if cfg.Verbose {
					log.Info(ctx, "check passed",
						logger.String("check", j.check.Name), logger.Int("round", j.round))
				}
			}
		}()
	}

	func() {
		defer close(jobs)
		for round := 1; round <= cfg.Rounds; round++ {
			for _, c := range checks {
				select {
				case <-ctx.Done():
					return
				case jobs <- job{check: c, round: round}:
				}
			}
		}
	}()
	wg.Wait()

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "final statistics",
		logger.Int("checks", stats.Checks),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration))

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("smoke run interrupted: %w", err)
	}
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrChecksFailed, stats.Failed, stats.Checks)
	}
	return stats, nil
}
