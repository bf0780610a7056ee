package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TrendingStore reads the trending topics table maintained by the analytics
// pipeline.
type TrendingStore struct {
	db *sqlx.DB
}

func NewTrendingStore(db *sqlx.DB) *TrendingStore {
	return &TrendingStore{db: db}
}

// List returns topics at or above minScore, strongest first.
func (s *TrendingStore) List(ctx context.Context, minScore float64) ([]string, error) {
	var topics []string
	err := s.db.SelectContext(ctx, &topics,
		"SELECT topic FROM trending_topics WHERE score >= $1 ORDER BY score DESC",
		minScore,
	)
	return topics, err
}
