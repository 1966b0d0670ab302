// Package model contains the records handed to the engine by the system of record.
// The engine consumes these shapes but never constructs or persists them.
package model

import (
	"strings"
	"time"
)

// User is a console user as returned by the users API.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// TargetOverride is a per-user custom target record. Deleting it on the
// system of record reverts the user to organizational defaults.
type TargetOverride struct {
	UserID   string  `json:"userId"`
	Daily    float64 `json:"daily"`
	Weekly   float64 `json:"weekly"`
	Monthly  float64 `json:"monthly"`
	IsCustom bool    `json:"isCustom"`
}

// PeriodTotal is the measured quantity a user accumulated within one period.
type PeriodTotal struct {
	UserID     string  `json:"userId"`
	Period     Period  `json:"period"`
	TotalUnits float64 `json:"totalUnits"`
}

// Competition is a sales competition record.
type Competition struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Metric       CompetitionMetric `json:"metric"`
	ProductID    *string           `json:"productId,omitempty"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      time.Time         `json:"endDate"`
	Participants []string          `json:"participants"`
}

// Validate rejects windows the engine refuses to classify.
// A zero end date or an end before the start is an inverted window.
func (c Competition) Validate() error {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return ErrMissingWindow
	}
	if c.StartDate.After(c.EndDate) {
		return ErrInvertedWindow
	}
	return nil
}

// LeaderboardUser is the participant summary embedded in raw leaderboard rows.
type LeaderboardUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RawLeaderboardEntry is one participant row of a competition leaderboard
// before ranking. Units and Revenue are optional on the wire.
type RawLeaderboardEntry struct {
	ParticipantID string          `json:"participantId"`
	User          LeaderboardUser `json:"user"`
	Units         *float64        `json:"units,omitempty"`
	Revenue       *float64        `json:"revenue,omitempty"`
}
