package service

import "errors"

// Sentinel errors returned by Service operations. Callers match them with errors.Is.
var (
	ErrMissingUserID      = errors.New("user id is required")
	ErrTotalUserMismatch  = errors.New("period total belongs to another user")
	ErrBatchTooLarge      = errors.New("batch too large")
	ErrMissingCompetition = errors.New("competition id is required")
)
