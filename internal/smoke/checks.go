package smoke

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/google/uuid"
	service "github.com/okian/salesboard/internal/app"
	"github.com/okian/salesboard/internal/domain/lifecycle"
	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/permission"
	"github.com/okian/salesboard/internal/domain/progress"
	"github.com/okian/salesboard/internal/domain/targets"
)

// maxGeneratedUnits bounds generated leaderboard values; a small range makes
// ties frequent.
const maxGeneratedUnits = 20

// Check is one named verification against the service.
type Check struct {
	Name string
	Run  func(ctx context.Context, c *HTTPClient, cfg *Config) error
}

// Checks returns every check in execution order.
func Checks() []Check {
	return []Check{
		{Name: "health", Run: checkHealth},
		{Name: "default_targets", Run: checkDefaultTargets},
		{Name: "progress_default_targets", Run: checkProgressDefaults},
		{Name: "progress_custom_override", Run: checkProgressOverride},
		{Name: "team_summary", Run: checkTeamSummary},
		{Name: "leaderboard_tiebreak", Run: checkLeaderboardTiebreak},
		{Name: "leaderboard_generated", Run: checkLeaderboardGenerated},
		{Name: "lifecycle_boundaries", Run: checkLifecycleBoundaries},
		{Name: "lifecycle_inverted_window", Run: checkInvertedWindow},
		{Name: "permission_matrix", Run: checkPermissionMatrix},
	}
}

type defaultsResponse struct {
	Defaults   targets.Set          `json:"defaults"`
	Thresholds []progress.Threshold `json:"thresholds"`
}

func checkHealth(ctx context.Context, c *HTTPClient, _ *Config) error {
	resp, err := c.Get(ctx, "/healthz")
	if err != nil {
		return err
	}
	return expectJSON(resp, http.StatusOK, nil)
}

func fetchDefaults(ctx context.Context, c *HTTPClient) (defaultsResponse, error) {
	var out defaultsResponse
	resp, err := c.Get(ctx, "/targets/defaults")
	if err != nil {
		return out, err
	}
	return out, expectJSON(resp, http.StatusOK, &out)
}

func checkDefaultTargets(ctx context.Context, c *HTTPClient, _ *Config) error {
	d, err := fetchDefaults(ctx, c)
	if err != nil {
		return err
	}
	if !d.Defaults.Valid() || d.Defaults.IsCustom {
		return fmt.Errorf("defaults %+v are not a positive organizational set", d.Defaults)
	}
	want := progress.Thresholds()
	if len(d.Thresholds) != len(want) {
		return fmt.Errorf("got %d thresholds, want %d", len(d.Thresholds), len(want))
	}
	for i := range want {
		if d.Thresholds[i] != want[i] {
			return fmt.Errorf("threshold %d is %+v, want %+v", i, d.Thresholds[i], want[i])
		}
	}
	return nil
}

func checkProgressDefaults(ctx context.Context, c *HTTPClient, _ *Config) error {
	d, err := fetchDefaults(ctx, c)
	if err != nil {
		return err
	}
	userID := uuid.New().String()
	resp, err := c.Post(ctx, "/progress", service.ProgressRequest{
		User:   model.User{ID: userID},
		Totals: []model.PeriodTotal{{UserID: userID, Period: model.PeriodMonthly, TotalUnits: 675}},
	})
	if err != nil {
		return err
	}
	var up service.UserProgress
	if err := expectJSON(resp, http.StatusOK, &up); err != nil {
		return err
	}
	if up.Targets.IsCustom {
		return errors.New("user without override reported custom targets")
	}
	want := progress.Evaluate(675, d.Defaults.Monthly)
	if up.Monthly != want {
		return fmt.Errorf("monthly progress %+v, want %+v", up.Monthly, want)
	}
	return nil
}

func checkProgressOverride(ctx context.Context, c *HTTPClient, _ *Config) error {
	userID := uuid.New().String()
	resp, err := c.Post(ctx, "/progress", service.ProgressRequest{
		User:     model.User{ID: userID},
		Override: &model.TargetOverride{UserID: userID, Daily: 10, Weekly: 40, Monthly: 100, IsCustom: true},
		Totals: []model.PeriodTotal{
			{Period: model.PeriodDaily, TotalUnits: 10},
			{Period: model.PeriodWeekly, TotalUnits: 30},
			{Period: model.PeriodMonthly, TotalUnits: 49},
		},
	})
	if err != nil {
		return err
	}
	var up service.UserProgress
	if err := expectJSON(resp, http.StatusOK, &up); err != nil {
		return err
	}
	switch {
	case !up.Targets.IsCustom:
		return errors.New("override was not applied")
	case up.Daily.Status != progress.StatusAchieved:
		return fmt.Errorf("daily status %s, want %s", up.Daily.Status, progress.StatusAchieved)
	case up.Weekly.Status != progress.StatusOnTrack:
		return fmt.Errorf("weekly status %s, want %s", up.Weekly.Status, progress.StatusOnTrack)
	case up.Monthly.Status != progress.StatusBehind:
		return fmt.Errorf("monthly status %s, want %s", up.Monthly.Status, progress.StatusBehind)
	}
	return nil
}

func checkTeamSummary(ctx context.Context, c *HTTPClient, _ *Config) error {
	override := &model.TargetOverride{Daily: 10, Weekly: 10, Monthly: 10}
	reqs := []service.ProgressRequest{
		{User: model.User{ID: uuid.New().String()}, Override: override,
			Totals: []model.PeriodTotal{{Period: model.PeriodDaily, TotalUnits: 10}}},
		{User: model.User{ID: uuid.New().String()}, Override: override,
			Totals: []model.PeriodTotal{{Period: model.PeriodDaily, TotalUnits: 5}}},
	}
	resp, err := c.Post(ctx, "/progress/team", reqs)
	if err != nil {
		return err
	}
	var team service.TeamProgress
	if err := expectJSON(resp, http.StatusOK, &team); err != nil {
		return err
	}
	daily := team.Summary[model.PeriodDaily]
	switch {
	case len(team.Users) != len(reqs):
		return fmt.Errorf("got %d users, want %d", len(team.Users), len(reqs))
	case daily.Counts[progress.StatusAchieved] != 1 || daily.Counts[progress.StatusNeedsPush] != 1:
		return fmt.Errorf("daily counts %v, want one ACHIEVED and one NEEDS_PUSH", daily.Counts)
	case daily.AveragePercentage != 75:
		return fmt.Errorf("daily average %.2f, want 75", daily.AveragePercentage)
	}
	return nil
}

func units(v float64) *float64 { return &v }

func postLeaderboard(ctx context.Context, c *HTTPClient, rows []model.RawLeaderboardEntry) (service.Leaderboard, error) {
	var lb service.Leaderboard
	body := map[string]interface{}{
		"competition": model.Competition{ID: uuid.New().String(), Metric: model.MetricUnits},
		"entries":     rows,
	}
	resp, err := c.Post(ctx, fmt.Sprintf("/competitions/leaderboard?limit=%d", len(rows)), body)
	if err != nil {
		return lb, err
	}
	return lb, expectJSON(resp, http.StatusOK, &lb)
}

func checkLeaderboardTiebreak(ctx context.Context, c *HTTPClient, _ *Config) error {
	rows := []model.RawLeaderboardEntry{
		{ParticipantID: "A", Units: units(5)},
		{ParticipantID: "B", Units: units(9)},
		{ParticipantID: "C", Units: units(9)},
		{ParticipantID: "D", Units: units(2)},
	}
	lb, err := postLeaderboard(ctx, c, rows)
	if err != nil {
		return err
	}
	want := []string{"B", "C", "A", "D"}
	if len(lb.Entries) != len(want) {
		return fmt.Errorf("got %d entries, want %d", len(lb.Entries), len(want))
	}
	for i, id := range want {
		if lb.Entries[i].ParticipantID != id || lb.Entries[i].Rank != i+1 {
			return fmt.Errorf("position %d is %s rank %d, want %s rank %d",
				i, lb.Entries[i].ParticipantID, lb.Entries[i].Rank, id, i+1)
		}
	}
	return nil
}

// checkLeaderboardGenerated ranks a generated field with many ties and
// verifies ordering, sequential ranks and input-order tiebreaks.
func checkLeaderboardGenerated(ctx context.Context, c *HTTPClient, cfg *Config) error {
	n := cfg.Participants
	if n < 1 {
		return nil
	}
	rows := make([]model.RawLeaderboardEntry, n)
	position := make(map[string]int, n)
	for i := range rows {
		id := uuid.New().String()
		rows[i] = model.RawLeaderboardEntry{ParticipantID: id, Units: units(randomUnits())}
		position[id] = i
	}
	lb, err := postLeaderboard(ctx, c, rows)
	if err != nil {
		return err
	}
	if len(lb.Entries) != n {
		return fmt.Errorf("got %d entries, want %d", len(lb.Entries), n)
	}
	for i, e := range lb.Entries {
		if e.Rank != i+1 {
			return fmt.Errorf("entry %d has rank %d", i, e.Rank)
		}
		if i == 0 {
			continue
		}
		prev := lb.Entries[i-1]
		if prev.MetricValue < e.MetricValue {
			return fmt.Errorf("rank %d (%.0f) above rank %d (%.0f) is out of order", prev.Rank, prev.MetricValue, e.Rank, e.MetricValue)
		}
		if prev.MetricValue == e.MetricValue && position[prev.ParticipantID] > position[e.ParticipantID] {
			return fmt.Errorf("tie at %.0f broken against input order at rank %d", e.MetricValue, e.Rank)
		}
	}
	return nil
}

func randomUnits() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(maxGeneratedUnits))
	return float64(n.Int64())
}

func competitionStatus(ctx context.Context, c *HTTPClient, comp model.Competition, now time.Time) (response, error) {
	return c.Post(ctx, "/competitions/status", map[string]interface{}{"competition": comp, "now": now})
}

func checkLifecycleBoundaries(ctx context.Context, c *HTTPClient, _ *Config) error {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	comp := model.Competition{ID: uuid.New().String(), Metric: model.MetricUnits, StartDate: start, EndDate: end}

	cases := []struct {
		at    time.Time
		state lifecycle.State
		desc  string
	}{
		{at: start.Add(-time.Second), state: lifecycle.StateUpcoming},
		{at: start, state: lifecycle.StateActive, desc: "29 days remaining"},
		{at: end.Add(-time.Hour), state: lifecycle.StateActive, desc: "1 hour remaining"},
		{at: end, state: lifecycle.StateActive, desc: "0 hours remaining"},
		{at: end.Add(time.Second), state: lifecycle.StateEnded},
	}
	for _, tc := range cases {
		resp, err := competitionStatus(ctx, c, comp, tc.at)
		if err != nil {
			return err
		}
		var st service.CompetitionStatus
		if err := expectJSON(resp, http.StatusOK, &st); err != nil {
			return err
		}
		if st.State != tc.state || st.RemainingDescription != tc.desc {
			return fmt.Errorf("at %s got %s %q, want %s %q",
				tc.at.Format(time.RFC3339), st.State, st.RemainingDescription, tc.state, tc.desc)
		}
	}
	return nil
}

func checkInvertedWindow(ctx context.Context, c *HTTPClient, _ *Config) error {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	comp := model.Competition{ID: uuid.New().String(), StartDate: start, EndDate: start.Add(-time.Hour)}
	resp, err := competitionStatus(ctx, c, comp, start)
	if err != nil {
		return err
	}
	return expectJSON(resp, http.StatusBadRequest, nil)
}

type profileEditResponse struct {
	CanEdit bool `json:"canEdit"`
}

func checkPermissionMatrix(ctx context.Context, c *HTTPClient, _ *Config) error {
	for _, actorRole := range model.Roles() {
		for _, targetRole := range model.Roles() {
			for _, self := range []bool{false, true} {
				actor := permission.Actor{Role: actorRole, ID: "actor"}
				target := model.User{ID: "other", Role: targetRole}
				if self {
					target.ID = actor.ID
				}
				resp, err := c.Post(ctx, "/permissions/profile-edit", map[string]interface{}{
					"actor":  actor,
					"target": target,
				})
				if err != nil {
					return err
				}
				var got profileEditResponse
				if err := expectJSON(resp, http.StatusOK, &got); err != nil {
					return err
				}
				if want := permission.CanEdit(actor, targetRole, self); got.CanEdit != want {
					return fmt.Errorf("%s editing %s (self=%t): got %t, want %t", actorRole, targetRole, self, got.CanEdit, want)
				}
			}
		}
	}
	return nil
}
