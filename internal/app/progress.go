package service

import (
	"context"
	"fmt"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/progress"
	"github.com/okian/salesboard/internal/domain/targets"
	"github.com/okian/salesboard/pkg/logger"
	"github.com/okian/salesboard/pkg/metrics"
)

// ProgressRequest carries everything needed to evaluate one user: the user
// record, their custom target record if any, and the measured totals.
type ProgressRequest struct {
	User     model.User            `json:"user"`
	Override *model.TargetOverride `json:"override,omitempty"`
	Totals   []model.PeriodTotal   `json:"totals"`
}

// UserProgress is the evaluated progress of one user for every period.
type UserProgress struct {
	UserID      string          `json:"userId"`
	DisplayName string          `json:"displayName"`
	Targets     targets.Set     `json:"targets"`
	Daily       progress.Record `json:"daily"`
	Weekly      progress.Record `json:"weekly"`
	Monthly     progress.Record `json:"monthly"`
}

// For returns the record of period p.
func (u UserProgress) For(p model.Period) progress.Record {
	switch p {
	case model.PeriodDaily:
		return u.Daily
	case model.PeriodWeekly:
		return u.Weekly
	default:
		return u.Monthly
	}
}

// PeriodSummary aggregates one period across a team.
type PeriodSummary struct {
	Users             int                     `json:"users"`
	Counts            map[progress.Status]int `json:"counts"`
	AveragePercentage float64                 `json:"averagePercentage"`
}

// TeamProgress is the evaluated progress of a batch of users.
type TeamProgress struct {
	Users   []UserProgress                 `json:"users"`
	Summary map[model.Period]PeriodSummary `json:"summary"`
}

// EvaluateUser resolves the user's targets and evaluates each period total
// against the matching target. Periods without a total evaluate as zero;
// several totals for the same period are summed.
func (s *Service) EvaluateUser(ctx context.Context, req ProgressRequest) (UserProgress, error) {
	up, err := s.evaluate(req)
	if err != nil {
		return UserProgress{}, err
	}
	s.usersEvaluated.Add(1)
	s.log().Debug(ctx, "evaluated user progress",
		logger.String("userID", up.UserID),
		logger.Bool("customTargets", up.Targets.IsCustom),
		logger.String("monthlyStatus", string(up.Monthly.Status)),
		logger.Float64("monthlyPercentage", up.Monthly.Percentage),
	)
	return up, nil
}

// EvaluateTeam evaluates every request and summarizes status counts and
// average percentage per period. The whole batch fails on the first invalid
// request.
func (s *Service) EvaluateTeam(ctx context.Context, reqs []ProgressRequest) (TeamProgress, error) {
	if len(reqs) > s.maxBatchSize {
		return TeamProgress{}, fmt.Errorf("%w: %d users, max %d", ErrBatchTooLarge, len(reqs), s.maxBatchSize)
	}

	users := make([]UserProgress, 0, len(reqs))
	for i, req := range reqs {
		up, err := s.evaluate(req)
		if err != nil {
			return TeamProgress{}, fmt.Errorf("request %d: %w", i, err)
		}
		users = append(users, up)
	}

	team := TeamProgress{Users: users, Summary: summarize(users)}
	s.usersEvaluated.Add(int64(len(users)))
	s.teamsEvaluated.Add(1)
	metrics.RecordTeamBatch(len(users))
	s.log().Debug(ctx, "evaluated team progress", logger.Int("users", len(users)))
	return team, nil
}

func (s *Service) evaluate(req ProgressRequest) (UserProgress, error) {
	if req.User.ID == "" {
		return UserProgress{}, ErrMissingUserID
	}

	sums := make(map[model.Period]float64, 3)
	for _, t := range req.Totals {
		if !t.Period.Valid() {
			return UserProgress{}, fmt.Errorf("%w: %q", model.ErrUnknownPeriod, t.Period)
		}
		if t.UserID != "" && t.UserID != req.User.ID {
			return UserProgress{}, fmt.Errorf("%w: %s", ErrTotalUserMismatch, t.UserID)
		}
		sums[t.Period] += progress.Sanitize(t.TotalUnits)
	}

	set := s.resolver.ResolveRecord(req.Override)
	metrics.RecordTargetResolution(set.IsCustom)

	up := UserProgress{
		UserID:      req.User.ID,
		DisplayName: displayName(req.User),
		Targets:     set,
	}
	for _, p := range model.Periods() {
		rec := progress.Evaluate(sums[p], set.For(p))
		metrics.RecordProgressEvaluation(string(p), string(rec.Status), rec.Percentage)
		switch p {
		case model.PeriodDaily:
			up.Daily = rec
		case model.PeriodWeekly:
			up.Weekly = rec
		case model.PeriodMonthly:
			up.Monthly = rec
		}
	}
	return up, nil
}

func summarize(users []UserProgress) map[model.Period]PeriodSummary {
	out := make(map[model.Period]PeriodSummary, 3)
	for _, p := range model.Periods() {
		sum := PeriodSummary{Users: len(users), Counts: make(map[progress.Status]int, 4)}
		for _, st := range progress.Statuses() {
			sum.Counts[st] = 0
		}
		total := 0.0
		for _, u := range users {
			rec := u.For(p)
			sum.Counts[rec.Status]++
			total += rec.Percentage
		}
		if len(users) > 0 {
			sum.AveragePercentage = total / float64(len(users))
		}
		out[p] = sum
	}
	return out
}

func displayName(u model.User) string {
	if n := u.FullName(); n != "" {
		return n
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
