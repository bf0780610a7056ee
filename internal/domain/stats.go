package domain

import "time"

// PassStats holds statistics about one pipeline pass.
type PassStats struct {
	Fetched   int
	Scored    int
	Blocked   int
	Scheduled int
	Forced    int
	Errors    int
	Duration  time.Duration
}
