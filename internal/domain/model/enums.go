package model

import (
	"fmt"
	"strings"
)

// Role is the closed set of console roles.
type Role string

const (
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleAdmin       Role = "ADMIN"
	RoleTeamHead    Role = "TEAM_HEAD"
	RoleSalesperson Role = "SALESPERSON"
	RoleCustomer    Role = "CUSTOMER"
)

// Roles lists every known role, highest privilege first.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleTeamHead, RoleSalesperson, RoleCustomer}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleTeamHead, RoleSalesperson, RoleCustomer:
		return true
	}
	return false
}

// ParseRole accepts role names case-insensitively, with "-" or spaces in
// place of underscores ("super-admin", "Team Head").
func ParseRole(s string) (Role, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	r := Role(norm)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Period names a target aggregation window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Periods lists the periods in ascending length.
func Periods() []Period {
	return []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// ParsePeriod parses a period name case-insensitively.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
	return p, nil
}

// CompetitionMetric is the quantity a competition is scored on.
type CompetitionMetric string

const (
	MetricUnits     CompetitionMetric = "units"
	MetricRevenue   CompetitionMetric = "revenue"
	MetricCustomers CompetitionMetric = "customers"
)

// ParseCompetitionMetric parses a metric name case-insensitively.
func ParseCompetitionMetric(s string) (CompetitionMetric, error) {
	m := CompetitionMetric(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MetricUnits, MetricRevenue, MetricCustomers:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}
