package factors

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"content_scheduler/internal/domain"
)

const (
	defaultRelevance   = 0.5
	defaultTrust       = 0.5
	defaultUniqueness  = 1.0
	freshnessWindow    = 30 * 24 * time.Hour
	trendingMatchStep  = 0.2
	similarityStep     = 0.2
	urgencyKeywordStep = 0.3
)

var questionWords = []string{"how", "why", "what", "which", "when", "should"}

var urgencyKeywords = []string{
	"urgent", "asap", "breaking", "critical",
	"immediately", "deadline", "expires", "closing",
}

// RelevanceScorer rates how relevant a piece of content is. Implemented by
// the analysis HTTP client; may be nil when no analysis service is configured.
type RelevanceScorer interface {
	Score(ctx context.Context, title, description string) (float64, error)
}

// SimilaritySearcher counts near-duplicates already known to the system.
type SimilaritySearcher interface {
	FindSimilar(ctx context.Context, title string) (int, error)
}

// TrustLookup resolves a source identifier to a trust score in [0,1].
type TrustLookup interface {
	Trust(source string) float64
}

// Calculator derives the eight normalized factor signals for a content item.
// Collaborator failures never fail a computation; each factor falls back to
// its documented default.
type Calculator struct {
	scorer   RelevanceScorer
	searcher SimilaritySearcher
	logger   *slog.Logger
}

func NewCalculator(scorer RelevanceScorer, searcher SimilaritySearcher, logger *slog.Logger) *Calculator {
	return &Calculator{
		scorer:   scorer,
		searcher: searcher,
		logger:   logger.With("component", "factors"),
	}
}

// Compute derives all factors for one item. trending must be lower-cased.
func (c *Calculator) Compute(ctx context.Context, item domain.RawContent, now time.Time, trust TrustLookup, trending []string) (domain.ContentFactors, error) {
	if item.ID == "" {
		return domain.ContentFactors{}, fmt.Errorf("content item without id")
	}

	f := domain.ContentFactors{
		Relevance:    c.relevance(ctx, item),
		Freshness:    freshness(item, now),
		Engagement:   engagement(item),
		SourceTrust:  sourceTrust(item, trust),
		Trending:     trendingMatch(item, trending),
		Uniqueness:   c.uniqueness(ctx, item),
		Completeness: completeness(item),
		Urgency:      urgency(item, now),
	}

	return f, nil
}

func (c *Calculator) relevance(ctx context.Context, item domain.RawContent) float64 {
	if c.scorer == nil {
		return defaultRelevance
	}
	score, err := c.scorer.Score(ctx, item.Title, item.Description)
	if err != nil {
		c.logger.Warn("relevance scorer unavailable, using default",
			"content_id", item.ID,
			"error", err,
		)
		return defaultRelevance
	}
	return clamp01(score)
}

// freshness decays linearly over 30 days. Items without a timestamp are
// treated as maximally fresh rather than penalized for missing data.
func freshness(item domain.RawContent, now time.Time) float64 {
	if item.PublishedAt == nil {
		return 1.0
	}
	age := now.Sub(*item.PublishedAt)
	if age < 0 {
		age = 0
	}
	return clamp01(1.0 - float64(age)/float64(freshnessWindow))
}

func engagement(item domain.RawContent) float64 {
	score := 0.1

	titleLen := len(item.Title)
	if titleLen >= 30 && titleLen <= 80 {
		score += 0.2
	}

	title := strings.ToLower(item.Title)
	if strings.ContainsFunc(item.Title, unicode.IsDigit) {
		score += 0.1
	}
	for _, w := range questionWords {
		if containsWord(title, w) {
			score += 0.1
			break
		}
	}

	descLen := len(item.Description)
	switch {
	case descLen >= 120:
		score += 0.2
	case descLen >= 60:
		score += 0.1
	}

	if item.HasImage {
		score += 0.15
	}
	if item.HasVideo {
		score += 0.15
	}

	return clamp01(score)
}

func sourceTrust(item domain.RawContent, trust TrustLookup) float64 {
	if trust == nil {
		return defaultTrust
	}
	return clamp01(trust.Trust(item.Source))
}

func trendingMatch(item domain.RawContent, trending []string) float64 {
	if len(trending) == 0 {
		return 0
	}
	text := strings.ToLower(item.Title + " " + item.Description)
	matches := 0
	for _, topic := range trending {
		if topic != "" && strings.Contains(text, topic) {
			matches++
		}
	}
	return clamp01(float64(matches) * trendingMatchStep)
}

func (c *Calculator) uniqueness(ctx context.Context, item domain.RawContent) float64 {
	if c.searcher == nil {
		return defaultUniqueness
	}
	count, err := c.searcher.FindSimilar(ctx, item.Title)
	if err != nil {
		c.logger.Warn("similarity search unavailable, assuming unique",
			"content_id", item.ID,
			"error", err,
		)
		return defaultUniqueness
	}
	if count < 0 {
		count = 0
	}
	return clamp01(1.0 - float64(count)*similarityStep)
}

func completeness(item domain.RawContent) float64 {
	filled := 0
	checklist := []bool{
		item.Title != "",
		item.Description != "",
		item.URL != "",
		item.Author != "",
		len(item.Tags) > 0,
		item.Category != "",
	}
	for _, ok := range checklist {
		if ok {
			filled++
		}
	}

	score := float64(filled) / float64(len(checklist))
	if len(item.Description) >= 150 {
		score += 0.1
	}
	if len(item.Metadata) > 0 {
		score += 0.05
	}
	return clamp01(score)
}

func urgency(item domain.RawContent, now time.Time) float64 {
	if item.Deadline != nil {
		until := item.Deadline.Sub(now)
		switch {
		case until < 24*time.Hour:
			return 1.0
		case until < 3*24*time.Hour:
			return 0.8
		case until < 7*24*time.Hour:
			return 0.6
		case until < 30*24*time.Hour:
			return 0.4
		default:
			return 0
		}
	}

	text := strings.ToLower(item.Title + " " + item.Description)
	score := 0.0
	for _, kw := range urgencyKeywords {
		if strings.Contains(text, kw) {
			score += urgencyKeywordStep
		}
	}
	return clamp01(score)
}

func containsWord(text, word string) bool {
	for _, f := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if f == word {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
