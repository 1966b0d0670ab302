// Package ranking orders competition participants into a leaderboard.
//
// Ordering: metric value DESC, then original input position ASC. Ranks are
// strictly sequential (1, 2, 3, ...); equal values never share a rank.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/types"
)

// Kind selects which raw metric a leaderboard is ordered by.
type Kind string

const (
	KindUnits   Kind = "UNITS"
	KindRevenue Kind = "REVENUE"
)

// ParseKind parses a metric kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case KindUnits, KindRevenue:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindForMetric maps a competition's metric to the raw field it ranks by.
// Raw leaderboard rows carry only units and revenue, so customer-count
// competitions rank by units.
func KindForMetric(m model.CompetitionMetric) Kind {
	if m == model.MetricRevenue {
		return KindRevenue
	}
	return KindUnits
}

// RawEntry is one participant's unranked metrics. A nil metric is missing.
type RawEntry struct {
	ParticipantID string
	DisplayName   string
	Units         *float64
	Revenue       *float64
}

// Value extracts the metric for kind. Missing, negative and non-finite
// values count as zero.
func (e RawEntry) Value(kind Kind) float64 {
	var v *float64
	switch kind {
	case KindRevenue:
		v = e.Revenue
	default:
		v = e.Units
	}
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

// FromRecords adapts raw leaderboard rows, preserving their order. The
// display name is the user's name, else their email, else the participant id.
func FromRecords(rows []model.RawLeaderboardEntry) []RawEntry {
	out := make([]RawEntry, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.User.Name)
		if name == "" {
			name = strings.TrimSpace(row.User.Email)
		}
		if name == "" {
			name = row.ParticipantID
		}
		out[i] = RawEntry{
			ParticipantID: row.ParticipantID,
			DisplayName:   name,
			Units:         row.Units,
			Revenue:       row.Revenue,
		}
	}
	return out
}

// Rank extracts each entry's metric for kind and returns the ranked
// leaderboard. Input order is the tiebreak, so callers should pass entries in
// a meaningful order (e.g. registration time). Empty input yields an empty,
// non-nil slice.
func Rank(entries []RawEntry, kind Kind) []types.LeaderboardEntry {
	scored := make([]types.LeaderboardEntry, len(entries))
	for i, e := range entries {
		scored[i] = types.LeaderboardEntry{
			ParticipantID: e.ParticipantID,
			DisplayName:   e.DisplayName,
			MetricValue:   e.Value(kind),
		}
	}
	return rankInPlace(scored)
}

// RankValues re-ranks entries whose metric values are already extracted.
// Existing ranks are ignored and the input slice is not modified. Ranking an
// already ranked leaderboard returns the same assignment.
func RankValues(entries []types.LeaderboardEntry) []types.LeaderboardEntry {
	out := make([]types.LeaderboardEntry, len(entries))
	copy(out, entries)
	return rankInPlace(out)
}

// Top returns at most n leading entries; n <= 0 keeps them all.
func Top(entries []types.LeaderboardEntry, n int) []types.LeaderboardEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

func rankInPlace(entries []types.LeaderboardEntry) []types.LeaderboardEntry {
	// Stability carries the input-order tiebreak.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MetricValue > entries[j].MetricValue
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
