// Package types contains common types used across the application
package types

// LeaderboardEntry is one ranked participant of a competition leaderboard.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	ParticipantID string  `json:"participantId"`
	DisplayName   string  `json:"displayName"`
	MetricValue   float64 `json:"metricValue"`
}
