package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type TrustStore struct {
	db *sqlx.DB
}

func NewTrustStore(db *sqlx.DB) *TrustStore {
	return &TrustStore{db: db}
}

type trustRow struct {
	Source string  `db:"source"`
	Score  float64 `db:"score"`
}

// All returns the full trust table.
func (s *TrustStore) All(ctx context.Context) (map[string]float64, error) {
	var rows []trustRow
	err := s.db.SelectContext(ctx, &rows, "SELECT source, score FROM source_trust")
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(rows))
	for _, row := range rows {
		scores[row.Source] = row.Score
	}
	return scores, nil
}

// Get returns the stored score for a source; unknown sources score 0.5.
func (s *TrustStore) Get(ctx context.Context, source string) (float64, error) {
	var score float64
	err := s.db.GetContext(ctx, &score,
		"SELECT score FROM source_trust WHERE source = $1", source)
	if err == sql.ErrNoRows {
		return 0.5, nil
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

func (s *TrustStore) Set(ctx context.Context, source string, score float64) error {
	query := `
		INSERT INTO source_trust (source, score, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (source) DO UPDATE SET
			score = EXCLUDED.score,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query, source, score, time.Now().UTC())
	return err
}
