// Package slots implements the greedy publish-slot allocator. Allocation is
// an online single pass: it never backtracks, and under sustained volume the
// schedule simply extends further into the future.
package slots

import (
	"time"

	"github.com/google/uuid"

	"content_scheduler/internal/domain"
)

const MetadataForced = "forced"

type Config struct {
	SlotsPerHour  int
	BufferMinutes int
	Tolerance     time.Duration
	Strategy      domain.Strategy
}

func (c Config) slotDuration() time.Duration {
	perHour := c.SlotsPerHour
	if perHour < 1 {
		perHour = 1
	}
	return time.Hour / time.Duration(perHour)
}

func (c Config) tolerance() time.Duration {
	if c.Tolerance <= 0 {
		return 5 * time.Minute
	}
	return c.Tolerance
}

// Allocate assigns a slot to every item, checking collisions against the
// unlocked slots in held and against slots assigned earlier in the same
// call. Items are taken in the supplied order; callers sort beforehand.
// Items carrying a rule-forced ScheduledTime are wrapped as-is with no
// collision check and no cursor movement. Cursor-assigned slot times never
// decrease within one call.
func Allocate(items []domain.PrioritizedItem, start time.Time, held []domain.ScheduleSlot, cfg Config) []domain.ScheduleSlot {
	slotDuration := cfg.slotDuration()
	buffer := time.Duration(cfg.BufferMinutes) * time.Minute
	tolerance := cfg.tolerance()

	occupied := make([]time.Time, 0, len(held)+len(items))
	for _, slot := range held {
		if !slot.Locked {
			occupied = append(occupied, slot.ScheduledTime)
		}
	}

	now := time.Now().UTC()
	cursor := start
	allocated := make([]domain.ScheduleSlot, 0, len(items))

	for _, item := range items {
		if item.ScheduledTime != nil {
			slot := newSlot(item, *item.ScheduledTime, cfg.Strategy, now)
			slot.Metadata = map[string]string{MetadataForced: "rule"}
			allocated = append(allocated, slot)
			occupied = append(occupied, slot.ScheduledTime)
			continue
		}

		candidate := cursor
		for collides(candidate, occupied, tolerance) {
			candidate = candidate.Add(slotDuration)
		}

		allocated = append(allocated, newSlot(item, candidate, cfg.Strategy, now))
		occupied = append(occupied, candidate)
		cursor = candidate.Add(slotDuration + buffer)
	}

	return allocated
}

func newSlot(item domain.PrioritizedItem, at time.Time, strategy domain.Strategy, now time.Time) domain.ScheduleSlot {
	return domain.ScheduleSlot{
		ID:            uuid.NewString(),
		ContentID:     item.ID,
		ScheduledTime: at,
		Priority:      item.Priority,
		Strategy:      strategy,
		CreatedAt:     now,
	}
}

func collides(candidate time.Time, occupied []time.Time, tolerance time.Duration) bool {
	for _, t := range occupied {
		diff := candidate.Sub(t)
		if diff < 0 {
			diff = -diff
		}
		if diff < tolerance {
			return true
		}
	}
	return false
}
