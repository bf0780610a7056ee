//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"content_scheduler/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_content.up.sql"),
			filepath.Join(migrationsPath, "002_create_priority_rules.up.sql"),
			filepath.Join(migrationsPath, "003_create_schedule_slots.up.sql"),
			filepath.Join(migrationsPath, "004_create_source_trust.up.sql"),
			filepath.Join(migrationsPath, "005_create_trending_topics.up.sql"),
			filepath.Join(migrationsPath, "006_create_feedback.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM feedback")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM trending_topics")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM source_trust")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM schedule_slots")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM priority_rules")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM content")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertContent(id, status string, createdAt time.Time) {
	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO content (id, title, description, url, source, tags, metadata, status, created_at)
		VALUES ($1, 'Title '||$1, 'Description', 'https://example.com/'||$1, 'newsroom', $2, $3, $4, $5)`,
		id, pq.Array([]string{"grants", "funding"}), []byte(`{"lang":"en"}`), status, createdAt,
	)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestContentStore_ListPending() {
	store := NewContentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.insertContent("item-old", "pending", now.Add(-2*time.Hour))
	s.insertContent("item-new", "pending", now.Add(-1*time.Hour))
	s.insertContent("item-done", "scheduled", now.Add(-3*time.Hour))

	items, err := store.ListPending(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(items, 2)

	s.Equal("item-old", items[0].ID)
	s.Equal("item-new", items[1].ID)
	s.Equal([]string{"grants", "funding"}, items[0].Tags)
	s.Equal("en", items[0].Metadata["lang"])
	s.Nil(items[0].PublishedAt)
}

func (s *PostgresIntegrationSuite) TestContentStore_ListPending_RespectsLimit() {
	store := NewContentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	for _, id := range []string{"a", "b", "c"} {
		s.insertContent("item-"+id, "pending", now)
	}

	items, err := store.ListPending(s.ctx, 2)
	s.NoError(err)
	s.Len(items, 2)
}

func (s *PostgresIntegrationSuite) TestContentStore_MarkScheduled() {
	store := NewContentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.insertContent("item-1", "pending", now)
	s.insertContent("item-2", "pending", now)

	err := store.MarkScheduled(s.ctx, []string{"item-1"})
	s.NoError(err)

	items, err := store.ListPending(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("item-2", items[0].ID)
}

func (s *PostgresIntegrationSuite) TestContentStore_MarkBlocked() {
	store := NewContentStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.insertContent("item-1", "pending", now)

	err := store.MarkBlocked(s.ctx, []string{"item-1"})
	s.NoError(err)

	items, err := store.ListPending(s.ctx, 10)
	s.NoError(err)
	s.Empty(items)

	var status string
	s.NoError(s.db.GetContext(s.ctx, &status, "SELECT status FROM content WHERE id = 'item-1'"))
	s.Equal("blocked", status)
}

func (s *PostgresIntegrationSuite) TestRuleStore_InsertListDelete() {
	store := NewRuleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	low := domain.PriorityRule{
		ID:        "rule-low",
		Name:      "suppress blogspam",
		Priority:  1,
		Enabled:   true,
		Condition: domain.RuleCondition{Field: "content.source", Operator: domain.OpEquals, Value: "blogspam"},
		Action:    domain.RuleAction{Type: domain.ActionSuppress, Value: 0.5},
		CreatedAt: now,
	}
	high := domain.PriorityRule{
		ID:        "rule-high",
		Name:      "boost urgent",
		Priority:  10,
		Enabled:   true,
		Condition: domain.RuleCondition{Field: "factors.urgency", Operator: domain.OpGreaterThan, Value: 0.5},
		Action:    domain.RuleAction{Type: domain.ActionBoost, Value: 0.2},
		CreatedAt: now,
	}
	s.NoError(store.Insert(s.ctx, low))
	s.NoError(store.Insert(s.ctx, high))

	rules, err := store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(rules, 2)
	s.Equal("rule-high", rules[0].ID)
	s.Equal("factors.urgency", rules[0].Condition.Field)
	s.Equal(domain.ActionBoost, rules[0].Action.Type)
	s.InDelta(0.2, rules[0].Action.Value.(float64), 1e-9)

	s.NoError(store.Delete(s.ctx, "rule-high"))

	rules, err = store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(rules, 1)
	s.Equal("rule-low", rules[0].ID)
}

func (s *PostgresIntegrationSuite) TestRuleStore_InsertReplacesExisting() {
	store := NewRuleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	rule := domain.PriorityRule{
		ID:        "rule-1",
		Name:      "original",
		Priority:  1,
		Enabled:   true,
		Condition: domain.RuleCondition{Field: "score", Operator: domain.OpGreaterThan, Value: 0.5},
		Action:    domain.RuleAction{Type: domain.ActionBoost, Value: 0.1},
		CreatedAt: now,
	}
	s.NoError(store.Insert(s.ctx, rule))

	rule.Name = "replaced"
	rule.Enabled = false
	s.NoError(store.Insert(s.ctx, rule))

	rules, err := store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(rules, 1)
	s.Equal("replaced", rules[0].Name)
	s.False(rules[0].Enabled)
}

func (s *PostgresIntegrationSuite) slot(id string, at time.Time) domain.ScheduleSlot {
	return domain.ScheduleSlot{
		ID:            id,
		ContentID:     "content-" + id,
		ScheduledTime: at,
		Priority:      domain.PriorityHigh,
		Strategy:      domain.StrategyHybrid,
		Metadata:      map[string]string{"origin": "test"},
		CreatedAt:     at,
	}
}

func (s *PostgresIntegrationSuite) TestSlotStore_UpsertAndListFuture() {
	store := NewSlotStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	later := s.slot("slot-b", now.Add(2*time.Hour))
	sooner := s.slot("slot-a", now.Add(time.Hour))
	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{later, sooner}))

	slots, err := store.ListFuture(s.ctx)
	s.NoError(err)
	s.Require().Len(slots, 2)
	s.Equal("slot-a", slots[0].ID)
	s.Equal("slot-b", slots[1].ID)
	s.Equal(domain.PriorityHigh, slots[0].Priority)
	s.Equal(domain.StrategyHybrid, slots[0].Strategy)
	s.Equal("test", slots[0].Metadata["origin"])
	s.WithinDuration(now.Add(time.Hour), slots[0].ScheduledTime, time.Second)
}

func (s *PostgresIntegrationSuite) TestSlotStore_UpsertMovesSlot() {
	store := NewSlotStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	slot := s.slot("slot-1", now.Add(time.Hour))
	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{slot}))

	slot.ScheduledTime = now.Add(3 * time.Hour)
	slot.Locked = true
	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{slot}))

	slots, err := store.ListFuture(s.ctx)
	s.NoError(err)
	s.Require().Len(slots, 1)
	s.WithinDuration(now.Add(3*time.Hour), slots[0].ScheduledTime, time.Second)
	s.True(slots[0].Locked)
}

func (s *PostgresIntegrationSuite) TestSlotStore_MarkPublishedHidesSlot() {
	store := NewSlotStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{s.slot("slot-1", now.Add(-time.Minute))}))
	s.NoError(store.MarkPublished(s.ctx, "slot-1", now))

	slots, err := store.ListFuture(s.ctx)
	s.NoError(err)
	s.Empty(slots)
}

func (s *PostgresIntegrationSuite) TestSlotStore_ListFutureIncludesOverdue() {
	store := NewSlotStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{s.slot("slot-overdue", now.Add(-time.Hour))}))

	slots, err := store.ListFuture(s.ctx)
	s.NoError(err)
	s.Len(slots, 1)
}

func (s *PostgresIntegrationSuite) TestSlotStore_Delete() {
	store := NewSlotStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{
		s.slot("slot-1", now.Add(time.Hour)),
		s.slot("slot-2", now.Add(2*time.Hour)),
	}))

	s.NoError(store.Delete(s.ctx, []string{"slot-1"}))

	slots, err := store.ListFuture(s.ctx)
	s.NoError(err)
	s.Require().Len(slots, 1)
	s.Equal("slot-2", slots[0].ID)
}

func (s *PostgresIntegrationSuite) TestSlotStore_DeletePublishedBefore() {
	store := NewSlotStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, []domain.ScheduleSlot{
		s.slot("slot-old", now.Add(-48*time.Hour)),
		s.slot("slot-recent", now.Add(-time.Hour)),
		s.slot("slot-unpublished", now.Add(time.Hour)),
	}))
	s.NoError(store.MarkPublished(s.ctx, "slot-old", now.Add(-48*time.Hour)))
	s.NoError(store.MarkPublished(s.ctx, "slot-recent", now.Add(-time.Hour)))

	deleted, err := store.DeletePublishedBefore(s.ctx, now.Add(-24*time.Hour))
	s.NoError(err)
	s.Equal(int64(1), deleted)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM schedule_slots"))
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestSlotStore_UpsertRollsBackInFailedTransaction() {
	store := NewSlotStore(s.db)
	tm := NewTransactionManager(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := store.Upsert(txCtx, []domain.ScheduleSlot{s.slot("slot-1", now.Add(time.Hour))}); err != nil {
			return err
		}
		return errors.New("abort batch")
	})
	s.Error(err)

	slots, err := store.ListFuture(s.ctx)
	s.NoError(err)
	s.Empty(slots)
}

func (s *PostgresIntegrationSuite) TestTrustStore_GetSetAll() {
	store := NewTrustStore(s.db)

	score, err := store.Get(s.ctx, "unknown")
	s.NoError(err)
	s.Equal(0.5, score)

	s.NoError(store.Set(s.ctx, "newsroom", 0.9))
	s.NoError(store.Set(s.ctx, "blogspam", 0.1))
	s.NoError(store.Set(s.ctx, "newsroom", 0.8))

	score, err = store.Get(s.ctx, "newsroom")
	s.NoError(err)
	s.Equal(0.8, score)

	all, err := store.All(s.ctx)
	s.NoError(err)
	s.Equal(map[string]float64{"newsroom": 0.8, "blogspam": 0.1}, all)
}

func (s *PostgresIntegrationSuite) TestTrendingStore_List() {
	store := NewTrendingStore(s.db)

	for topic, score := range map[string]float64{"climate": 0.9, "grants": 0.6, "gossip": 0.2} {
		_, err := s.db.ExecContext(s.ctx,
			"INSERT INTO trending_topics (topic, score) VALUES ($1, $2)", topic, score)
		s.Require().NoError(err)
	}

	topics, err := store.List(s.ctx, 0.5)
	s.NoError(err)
	s.Equal([]string{"climate", "grants"}, topics)
}

func (s *PostgresIntegrationSuite) TestFeedbackStore_InsertListRecent() {
	store := NewFeedbackStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	older := domain.TrainingSample{
		ContentID:     "content-1",
		Factors:       domain.ContentFactors{Relevance: 0.9, Freshness: 0.5},
		ObservedScore: 0.7,
		CreatedAt:     now.Add(-time.Hour),
	}
	newer := domain.TrainingSample{
		ContentID:     "content-2",
		Factors:       domain.ContentFactors{Relevance: 0.2},
		ObservedScore: 0.1,
		CreatedAt:     now,
	}
	s.NoError(store.Insert(s.ctx, older))
	s.NoError(store.Insert(s.ctx, newer))

	samples, err := store.ListRecent(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(samples, 2)
	s.Equal("content-2", samples[0].ContentID)
	s.Equal("content-1", samples[1].ContentID)
	s.InDelta(0.9, samples[1].Factors.Relevance, 1e-9)

	samples, err = store.ListRecent(s.ctx, 1)
	s.NoError(err)
	s.Len(samples, 1)
}
