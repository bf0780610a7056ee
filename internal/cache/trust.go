// Package cache keeps slow-moving reference data (source trust, trending
// topics) in memory between periodic refreshes from storage.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const defaultTrust = 0.5

// TrustLister loads the full trust table from storage.
type TrustLister interface {
	All(ctx context.Context) (map[string]float64, error)
}

// TrustCache answers per-source trust lookups without touching storage.
// Unknown sources score 0.5.
type TrustCache struct {
	mu     sync.RWMutex
	scores map[string]float64

	store  TrustLister
	logger *slog.Logger
}

func NewTrustCache(store TrustLister, logger *slog.Logger) *TrustCache {
	return &TrustCache{
		scores: map[string]float64{},
		store:  store,
		logger: logger.With("component", "trust_cache"),
	}
}

// Refresh replaces the in-memory table with the stored one.
func (c *TrustCache) Refresh(ctx context.Context) error {
	scores, err := c.store.All(ctx)
	if err != nil {
		return fmt.Errorf("load trust scores: %w", err)
	}

	normalized := make(map[string]float64, len(scores))
	for source, score := range scores {
		normalized[strings.ToLower(source)] = score
	}

	c.mu.Lock()
	c.scores = normalized
	c.mu.Unlock()

	c.logger.Debug("trust cache refreshed", "sources", len(normalized))
	return nil
}

// Trust returns the cached score for a source, or 0.5 when unknown.
func (c *TrustCache) Trust(source string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if score, ok := c.scores[strings.ToLower(source)]; ok {
		return score
	}
	return defaultTrust
}

// Set updates the in-memory score immediately; persistence is the caller's
// concern.
func (c *TrustCache) Set(source string, score float64) {
	c.mu.Lock()
	c.scores[strings.ToLower(source)] = score
	c.mu.Unlock()
}
