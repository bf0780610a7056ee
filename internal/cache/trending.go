package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// TrendingLister loads current trending topics at or above a score floor.
type TrendingLister interface {
	List(ctx context.Context, minScore float64) ([]string, error)
}

// TrendingCache holds the lowercased trending topic list between refreshes.
type TrendingCache struct {
	mu     sync.RWMutex
	topics []string

	store    TrendingLister
	minScore float64
	logger   *slog.Logger
}

func NewTrendingCache(store TrendingLister, minScore float64, logger *slog.Logger) *TrendingCache {
	return &TrendingCache{
		store:    store,
		minScore: minScore,
		logger:   logger.With("component", "trending_cache"),
	}
}

// Refresh replaces the topic list with the stored one.
func (c *TrendingCache) Refresh(ctx context.Context) error {
	topics, err := c.store.List(ctx, c.minScore)
	if err != nil {
		return fmt.Errorf("load trending topics: %w", err)
	}

	normalized := make([]string, 0, len(topics))
	for _, topic := range topics {
		topic = strings.ToLower(strings.TrimSpace(topic))
		if topic != "" {
			normalized = append(normalized, topic)
		}
	}

	c.mu.Lock()
	c.topics = normalized
	c.mu.Unlock()

	c.logger.Debug("trending cache refreshed", "topics", len(normalized))
	return nil
}

// Topics returns a copy of the cached list.
func (c *TrendingCache) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.topics))
	copy(out, c.topics)
	return out
}
