package model

import "errors"

// Sentinel kinds for record validation. These allow errors.Is from callers.
var (
	ErrUnknownRole    = errors.New("unknown role")
	ErrUnknownPeriod  = errors.New("unknown period")
	ErrUnknownMetric  = errors.New("unknown competition metric")
	ErrMissingWindow  = errors.New("competition window is incomplete")
	ErrInvertedWindow = errors.New("competition starts after it ends")
)
