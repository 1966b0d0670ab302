package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrUnknownKind = errors.New("unknown leaderboard metric kind")
)
