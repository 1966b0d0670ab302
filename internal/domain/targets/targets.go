// Package targets resolves the effective sales targets for a user from an
// optional custom override and the organizational defaults.
package targets

import (
	"math"

	"github.com/okian/salesboard/internal/domain/model"
)

// Built-in organizational defaults. Admins may tune the three values
// independently; weekly = 7x daily is a convention, not a rule.
const (
	DefaultDaily   = 30
	DefaultWeekly  = 210
	DefaultMonthly = 900
)

// Set is the target triple used for one evaluation.
type Set struct {
	Daily    float64 `json:"daily"`
	Weekly   float64 `json:"weekly"`
	Monthly  float64 `json:"monthly"`
	IsCustom bool    `json:"isCustom"`
}

// Defaults returns the built-in organizational defaults.
func Defaults() Set {
	return Set{Daily: DefaultDaily, Weekly: DefaultWeekly, Monthly: DefaultMonthly}
}

// Valid reports whether all three fields are usable targets.
func (s Set) Valid() bool {
	return positive(s.Daily) && positive(s.Weekly) && positive(s.Monthly)
}

// For returns the target for period p, or 0 for an unknown period.
func (s Set) For(p model.Period) float64 {
	switch p {
	case model.PeriodDaily:
		return s.Daily
	case model.PeriodWeekly:
		return s.Weekly
	case model.PeriodMonthly:
		return s.Monthly
	}
	return 0
}

// Resolve picks the effective targets. A present override whose three fields
// are all positive wins and is marked custom; anything else (nil, partial,
// zero or negative fields) yields the defaults. Non-positive default fields
// are replaced field by field with the built-in constants, so the result
// always carries three positive targets.
func Resolve(override *Set, defaults Set) Set {
	if override != nil && override.Valid() {
		out := *override
		out.IsCustom = true
		return out
	}
	return normalize(defaults)
}

// FromOverride adapts a target override record. A nil record means the user
// has no override.
func FromOverride(o *model.TargetOverride) *Set {
	if o == nil {
		return nil
	}
	return &Set{Daily: o.Daily, Weekly: o.Weekly, Monthly: o.Monthly, IsCustom: true}
}

func normalize(d Set) Set {
	builtin := Defaults()
	out := Set{Daily: d.Daily, Weekly: d.Weekly, Monthly: d.Monthly}
	if !positive(out.Daily) {
		out.Daily = builtin.Daily
	}
	if !positive(out.Weekly) {
		out.Weekly = builtin.Weekly
	}
	if !positive(out.Monthly) {
		out.Monthly = builtin.Monthly
	}
	return out
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
