package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_scheduler/internal/domain"
)

type ContentStore interface {
	ListPending(ctx context.Context, limit int) ([]domain.RawContent, error)
	MarkScheduled(ctx context.Context, ids []string) error
	MarkBlocked(ctx context.Context, ids []string) error
}

type RuleStore interface {
	List(ctx context.Context) ([]domain.PriorityRule, error)
	Insert(ctx context.Context, rule domain.PriorityRule) error
	Delete(ctx context.Context, id string) error
}

type ScheduleStore interface {
	ListFuture(ctx context.Context) ([]domain.ScheduleSlot, error)
	Upsert(ctx context.Context, slots []domain.ScheduleSlot) error
	MarkPublished(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, ids []string) error
	DeletePublishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TrustStore interface {
	All(ctx context.Context) (map[string]float64, error)
	Get(ctx context.Context, source string) (float64, error)
	Set(ctx context.Context, source string, score float64) error
}

type TrendingStore interface {
	List(ctx context.Context, minScore float64) ([]string, error)
}

type FeedbackStore interface {
	Insert(ctx context.Context, sample domain.TrainingSample) error
	ListRecent(ctx context.Context, limit int) ([]domain.TrainingSample, error)
}

type AdaptiveModel interface {
	Train(samples []domain.TrainingSample) error
	Save(path string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type PublicationSink interface {
	Publish(ctx context.Context, contentID string, priority domain.PriorityLevel) error
	Close() error
}
