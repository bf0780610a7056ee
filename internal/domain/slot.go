package domain

import "time"

// ScheduleSlot reserves a future publish time for one content item.
// Locked slots are administrative holds: the publisher skips them and the
// allocator ignores them when checking collisions.
type ScheduleSlot struct {
	ID            string
	ContentID     string
	ScheduledTime time.Time
	Priority      PriorityLevel
	Strategy      Strategy
	Locked        bool
	Metadata      map[string]string
	CreatedAt     time.Time
}

// Due reports whether the slot should be published at now.
func (s ScheduleSlot) Due(now time.Time) bool {
	return !s.Locked && !s.ScheduledTime.After(now)
}
