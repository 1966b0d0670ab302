package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/salesboard/internal/domain/lifecycle"
	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/ranking"
	"github.com/okian/salesboard/internal/domain/types"
	"github.com/okian/salesboard/pkg/logger"
	"github.com/okian/salesboard/pkg/metrics"
)

// CompetitionStatus is a competition's lifecycle state at EvaluatedAt.
type CompetitionStatus struct {
	CompetitionID string    `json:"competitionId"`
	EvaluatedAt   time.Time `json:"evaluatedAt"`
	lifecycle.Result
}

// Leaderboard is the ranked view of one competition.
type Leaderboard struct {
	CompetitionID string                   `json:"competitionId"`
	Kind          ranking.Kind             `json:"kind"`
	Participants  int                      `json:"participants"`
	Entries       []types.LeaderboardEntry `json:"entries"`
}

// CompetitionStatus classifies comp at now, or at the service clock when now
// is nil. Windows that are missing or inverted are rejected.
func (s *Service) CompetitionStatus(ctx context.Context, comp model.Competition, now *time.Time) (CompetitionStatus, error) {
	if comp.ID == "" {
		return CompetitionStatus{}, ErrMissingCompetition
	}
	if err := comp.Validate(); err != nil {
		return CompetitionStatus{}, fmt.Errorf("competition %s: %w", comp.ID, err)
	}

	at := s.clock()
	if now != nil {
		at = *now
	}
	res := lifecycle.Classify(at, comp.StartDate, comp.EndDate)

	s.competitionsEvaluated.Add(1)
	metrics.RecordCompetitionState(string(res.State))
	s.log().Debug(ctx, "classified competition",
		logger.String("competitionID", comp.ID),
		logger.String("state", string(res.State)),
		logger.Duration("remaining", res.Remaining),
	)
	return CompetitionStatus{CompetitionID: comp.ID, EvaluatedAt: at, Result: res}, nil
}

// Leaderboard ranks rows by the metric comp is scored on and returns at most
// limit entries. limit <= 0, or above the configured maximum, means the
// maximum. Truncation happens after ranking, so ranks stay global.
func (s *Service) Leaderboard(ctx context.Context, comp model.Competition, rows []model.RawLeaderboardEntry, limit int) (Leaderboard, error) {
	if comp.ID == "" {
		return Leaderboard{}, ErrMissingCompetition
	}
	if limit <= 0 || limit > s.maxLeaderboardSize {
		limit = s.maxLeaderboardSize
	}

	kind := ranking.KindForMetric(comp.Metric)
	ranked := ranking.Rank(ranking.FromRecords(rows), kind)

	s.leaderboardsRanked.Add(1)
	metrics.RecordLeaderboard(string(kind), len(ranked))
	s.log().Debug(ctx, "ranked leaderboard",
		logger.String("competitionID", comp.ID),
		logger.String("kind", string(kind)),
		logger.Int("participants", len(ranked)),
		logger.Int("limit", limit),
	)
	return Leaderboard{
		CompetitionID: comp.ID,
		Kind:          kind,
		Participants:  len(ranked),
		Entries:       ranking.Top(ranked, limit),
	}, nil
}
