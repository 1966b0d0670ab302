// Package service composes the evaluation engine into the operations exposed
// by the HTTP API. It holds configuration and counters only; every input
// record arrives with the request.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/salesboard/internal/domain/targets"
	"github.com/okian/salesboard/pkg/logger"
)

const (
	defaultMaxLeaderboardSize = 500
	defaultMaxBatchSize       = 1000
)

// Service implements the API dependencies for the evaluation engine.
type Service struct {
	mu sync.RWMutex

	// Configuration
	resolver           targets.Resolver
	clock              func() time.Time
	maxLeaderboardSize int
	maxBatchSize       int

	// State
	started bool

	// Counters
	usersEvaluated        atomic.Int64
	teamsEvaluated        atomic.Int64
	competitionsEvaluated atomic.Int64
	leaderboardsRanked    atomic.Int64
	permissionChecks      atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultTargets sets the organizational targets used for users without
// a valid custom override.
func WithDefaultTargets(d targets.Set) Option {
	return func(s *Service) {
		s.resolver = targets.NewResolver(targets.WithDefaults(d))
	}
}

// WithClock replaces the wall clock used when a request carries no explicit
// evaluation time.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMaxLeaderboardSize caps the number of ranked entries returned.
func WithMaxLeaderboardSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLeaderboardSize = n
		}
	}
}

// WithMaxBatchSize caps the number of users per team evaluation.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		resolver:           targets.NewResolver(),
		clock:              time.Now,
		maxLeaderboardSize: defaultMaxLeaderboardSize,
		maxBatchSize:       defaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start marks the service ready. It is safe to call more than once.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	d := s.resolver.Defaults()
	s.started = true
	s.logger.Info(ctx, "evaluation service started",
		logger.Float64("defaultDaily", d.Daily),
		logger.Float64("defaultWeekly", d.Weekly),
		logger.Float64("defaultMonthly", d.Monthly),
		logger.Int("maxLeaderboardSize", s.maxLeaderboardSize),
		logger.Int("maxBatchSize", s.maxBatchSize),
	)
	return nil
}

// Stop marks the service stopped. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "evaluation service stopped")
}

// DefaultTargets returns the effective organizational targets.
func (s *Service) DefaultTargets() targets.Set {
	return s.resolver.Defaults()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()

	return map[string]interface{}{
		"started":               started,
		"maxLeaderboardSize":    s.maxLeaderboardSize,
		"maxBatchSize":          s.maxBatchSize,
		"usersEvaluated":        s.usersEvaluated.Load(),
		"teamsEvaluated":        s.teamsEvaluated.Load(),
		"competitionsEvaluated": s.competitionsEvaluated.Load(),
		"leaderboardsRanked":    s.leaderboardsRanked.Load(),
		"permissionChecks":      s.permissionChecks.Load(),
	}
}

// log returns the configured logger, falling back to the global one for
// services used without Start.
func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Get()
	}
	return l
}
