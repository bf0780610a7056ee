package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"content_scheduler/internal/domain"
)

type SlotStore struct {
	db *sqlx.DB
}

func NewSlotStore(db *sqlx.DB) *SlotStore {
	return &SlotStore{db: db}
}

// ListFuture returns every unpublished slot ordered by scheduled time.
// Overdue unpublished slots are included so a missed tick still publishes
// them.
func (s *SlotStore) ListFuture(ctx context.Context) ([]domain.ScheduleSlot, error) {
	query := `
		SELECT id, content_id, scheduled_time, priority, strategy, locked, metadata, created_at
		FROM schedule_slots
		WHERE published_at IS NULL
		ORDER BY scheduled_time`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.ScheduleSlot
	for rows.Next() {
		var (
			slot     domain.ScheduleSlot
			metadata []byte
		)
		err := rows.Scan(
			&slot.ID,
			&slot.ContentID,
			&slot.ScheduledTime,
			&slot.Priority,
			&slot.Strategy,
			&slot.Locked,
			&metadata,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &slot.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata for slot %s: %w", slot.ID, err)
			}
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

// Upsert writes a batch of slots. Runs on the transaction from the context
// when one is present, so a batch commits or rolls back as a whole.
func (s *SlotStore) Upsert(ctx context.Context, slots []domain.ScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}

	query := `
		INSERT INTO schedule_slots (
			id, content_id, scheduled_time, priority, strategy, locked, metadata, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO UPDATE SET
			scheduled_time = EXCLUDED.scheduled_time,
			priority = EXCLUDED.priority,
			strategy = EXCLUDED.strategy,
			locked = EXCLUDED.locked,
			metadata = EXCLUDED.metadata`

	exec := GetExecutor(ctx, s.db)
	for _, slot := range slots {
		metadata, err := json.Marshal(slot.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata for slot %s: %w", slot.ID, err)
		}

		_, err = exec.ExecContext(ctx, query,
			slot.ID,
			slot.ContentID,
			slot.ScheduledTime,
			slot.Priority,
			slot.Strategy,
			slot.Locked,
			metadata,
			slot.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *SlotStore) MarkPublished(ctx context.Context, id string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE schedule_slots SET published_at = $2 WHERE id = $1",
		id, at,
	)
	return err
}

// Delete removes slots by id. Runs on the transaction from the context when
// one is present.
func (s *SlotStore) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		"DELETE FROM schedule_slots WHERE id = ANY($1)",
		pq.Array(ids),
	)
	return err
}

// DeletePublishedBefore prunes published slots older than the cutoff and
// reports how many rows went away.
func (s *SlotStore) DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM schedule_slots WHERE published_at IS NOT NULL AND published_at < $1",
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
