// Package progress computes completion percentages and status classes for a
// measured period total against its target.
package progress

import "math"

// maxPercentage caps over-achievement; progress is never shown above 100%.
const maxPercentage = 100

// Status classifies a completion percentage.
type Status string

const (
	StatusAchieved  Status = "ACHIEVED"
	StatusOnTrack   Status = "ON_TRACK"
	StatusNeedsPush Status = "NEEDS_PUSH"
	StatusBehind    Status = "BEHIND"
)

// Statuses lists every status from best to worst.
func Statuses() []Status {
	return []Status{StatusAchieved, StatusOnTrack, StatusNeedsPush, StatusBehind}
}

// Threshold is one row of the status table: percentages at or above Min map to Status.
type Threshold struct {
	Min    float64 `json:"min"`
	Status Status  `json:"status"`
}

// canonical is the single status table for every surface. The 100/90 table
// seen in older list views is not supported.
var canonical = [...]Threshold{
	{Min: 100, Status: StatusAchieved},
	{Min: 75, Status: StatusOnTrack},
	{Min: 50, Status: StatusNeedsPush},
}

// Thresholds returns a copy of the status table, evaluated top to bottom.
// Percentages below the last row are BEHIND.
func Thresholds() []Threshold {
	out := make([]Threshold, len(canonical))
	copy(out, canonical[:])
	return out
}

// Record is the evaluated progress of one period total.
type Record struct {
	PeriodTotal float64 `json:"periodTotal"`
	Target      float64 `json:"target"`
	Percentage  float64 `json:"percentage"`
	Status      Status  `json:"status"`
}

// Evaluate computes progress of periodTotal against target. Negative or
// non-finite inputs are treated as zero and a zero target yields 0%, so the
// function never divides by zero and never fails.
func Evaluate(periodTotal, target float64) Record {
	total := Sanitize(periodTotal)
	tgt := Sanitize(target)

	pct := 0.0
	if tgt > 0 {
		pct = math.Min(maxPercentage, (total/tgt)*100)
	}
	return Record{
		PeriodTotal: total,
		Target:      tgt,
		Percentage:  pct,
		Status:      StatusFor(pct),
	}
}

// StatusFor maps a percentage to its status, first matching row wins.
func StatusFor(percentage float64) Status {
	for _, t := range canonical {
		if percentage >= t.Min {
			return t.Status
		}
	}
	return StatusBehind
}

// Sanitize returns x, or zero when x is negative or not finite.
func Sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}
