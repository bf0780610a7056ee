package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"content_scheduler/internal/domain"
)

// ContentStore reads the intake queue. Rows are written by the upstream CMS;
// the engine only consumes them and flips their status once scheduled.
type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

// ListPending returns unscheduled content oldest-first, capped at limit.
func (s *ContentStore) ListPending(ctx context.Context, limit int) ([]domain.RawContent, error) {
	query := `
		SELECT id, title, description, url, author, source, category, tags,
			published_at, deadline, has_image, has_video, metadata
		FROM content
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RawContent
	for rows.Next() {
		var (
			item     domain.RawContent
			tags     pq.StringArray
			metadata []byte
		)
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.URL,
			&item.Author,
			&item.Source,
			&item.Category,
			&tags,
			&item.PublishedAt,
			&item.Deadline,
			&item.HasImage,
			&item.HasVideo,
			&metadata,
		)
		if err != nil {
			return nil, err
		}
		item.Tags = tags
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &item.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata for %s: %w", item.ID, err)
			}
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// MarkScheduled flips items out of the pending queue. Runs on the
// transaction from the context when one is present.
func (s *ContentStore) MarkScheduled(ctx context.Context, ids []string) error {
	return s.setStatus(ctx, ids, "scheduled")
}

// MarkBlocked parks items a rule blocked so later passes skip them.
// Re-evaluation requires resetting the status.
func (s *ContentStore) MarkBlocked(ctx context.Context, ids []string) error {
	return s.setStatus(ctx, ids, "blocked")
}

func (s *ContentStore) setStatus(ctx context.Context, ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		"UPDATE content SET status = $2 WHERE id = ANY($1)",
		pq.Array(ids), status,
	)
	return err
}
