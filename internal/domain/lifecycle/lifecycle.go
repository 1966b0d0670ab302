// Package lifecycle derives a competition's temporal state from its window
// and an explicitly supplied current time.
package lifecycle

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// State is a competition's position relative to its window.
type State string

const (
	StateUpcoming State = "UPCOMING"
	StateActive   State = "ACTIVE"
	StateEnded    State = "ENDED"
)

// Result is the classification of one window at one instant.
// Remaining and RemainingDescription are set only for ACTIVE windows.
type Result struct {
	State                State         `json:"state"`
	Remaining            time.Duration `json:"-"`
	RemainingDescription string        `json:"remainingDescription,omitempty"`
}

// Classify places now relative to [startsAt, endsAt]. Both boundaries belong
// to the window. An inverted window must be rejected before calling.
//
// now is sampled by the caller once per evaluation; Classify never reads a clock.
func Classify(now, startsAt, endsAt time.Time) Result {
	switch {
	case now.Before(startsAt):
		return Result{State: StateUpcoming}
	case now.After(endsAt):
		return Result{State: StateEnded}
	}
	remaining := endsAt.Sub(now)
	return Result{
		State:                StateActive,
		Remaining:            remaining,
		RemainingDescription: Describe(remaining),
	}
}

// Describe renders a remaining duration as whole days, or whole hours when
// less than a day is left. Partial units are truncated, so the last hour of a
// window reads "0 hours remaining".
func Describe(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	if days := int64(remaining / day); days >= 1 {
		return plural(days, "day") + " remaining"
	}
	return plural(int64(remaining/time.Hour), "hour") + " remaining"
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
