package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_scheduler/internal/domain"
)

// FeedbackStore holds observed engagement outcomes used to retrain the
// adaptive model.
type FeedbackStore struct {
	db *sqlx.DB
}

func NewFeedbackStore(db *sqlx.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Insert(ctx context.Context, sample domain.TrainingSample) error {
	factors, err := json.Marshal(sample.Factors)
	if err != nil {
		return fmt.Errorf("encode factors: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO feedback (content_id, factors, observed_score, created_at) VALUES ($1, $2, $3, $4)",
		sample.ContentID,
		factors,
		sample.ObservedScore,
		sample.CreatedAt,
	)
	return err
}

// ListRecent returns the newest samples first, capped at limit.
func (s *FeedbackStore) ListRecent(ctx context.Context, limit int) ([]domain.TrainingSample, error) {
	query := `
		SELECT content_id, factors, observed_score, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []domain.TrainingSample
	for rows.Next() {
		var (
			sample  domain.TrainingSample
			factors []byte
		)
		if err := rows.Scan(&sample.ContentID, &factors, &sample.ObservedScore, &sample.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(factors, &sample.Factors); err != nil {
			return nil, fmt.Errorf("decode factors for %s: %w", sample.ContentID, err)
		}
		samples = append(samples, sample)
	}

	return samples, rows.Err()
}
