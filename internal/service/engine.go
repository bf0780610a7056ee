package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"content_scheduler/internal/cache"
	"content_scheduler/internal/config"
	"content_scheduler/internal/domain"
	"content_scheduler/internal/events"
	"content_scheduler/internal/factors"
	"content_scheduler/internal/rules"
	"content_scheduler/internal/scoring"
	"content_scheduler/internal/slots"
)

// How many feedback samples a retraining run pulls at most.
const feedbackBatchSize = 500

// Deps bundles the engine's collaborators.
type Deps struct {
	Content  ContentStore
	Rules    RuleStore
	Slots    ScheduleStore
	Trust    TrustStore
	Feedback FeedbackStore
	Tx       TransactionManager
	Sink     PublicationSink

	Calculator *factors.Calculator
	Scorer     *scoring.Scorer
	Model      AdaptiveModel

	TrustCache    *cache.TrustCache
	TrendingCache *cache.TrendingCache
	Bus           events.Bus
}

// Engine scores incoming content, applies priority rules, places items into
// publication slots and releases them when due.
type Engine struct {
	cfg      config.Config
	strategy domain.Strategy

	contentStore  ContentStore
	ruleStore     RuleStore
	slotStore     ScheduleStore
	trustStore    TrustStore
	feedbackStore FeedbackStore
	tx            TransactionManager
	sink          PublicationSink

	calc       *factors.Calculator
	scorer     *scoring.Scorer
	ruleEngine *rules.Engine
	model      AdaptiveModel

	trustCache    *cache.TrustCache
	trendingCache *cache.TrendingCache
	bus           events.Bus
	logger        *slog.Logger

	// mu guards the working set of unpublished slots. Schedule and the
	// publish tick contend on it so a slot cannot be claimed and published
	// at the same time.
	mu       sync.Mutex
	held     []domain.ScheduleSlot
	attempts map[string]int
	alerted  map[string]bool

	ruleMu  sync.RWMutex
	ruleSet []domain.PriorityRule
}

func NewEngine(cfg config.Config, deps Deps, logger *slog.Logger) *Engine {
	strategy, err := domain.ParseStrategy(cfg.Scoring.Strategy)
	if err != nil {
		strategy = domain.StrategyHybrid
	}

	return &Engine{
		cfg:           cfg,
		strategy:      strategy,
		contentStore:  deps.Content,
		ruleStore:     deps.Rules,
		slotStore:     deps.Slots,
		trustStore:    deps.Trust,
		feedbackStore: deps.Feedback,
		tx:            deps.Tx,
		sink:          deps.Sink,
		calc:          deps.Calculator,
		scorer:        deps.Scorer,
		ruleEngine:    rules.NewEngine(logger),
		model:         deps.Model,
		trustCache:    deps.TrustCache,
		trendingCache: deps.TrendingCache,
		bus:           deps.Bus,
		logger:        logger.With("component", "engine"),
		attempts:      map[string]int{},
		alerted:       map[string]bool{},
	}
}

// Hydrate loads the unpublished slot set and the rule set from storage and
// primes the reference caches. Call once before the first pass.
func (e *Engine) Hydrate(ctx context.Context) error {
	held, err := e.slotStore.ListFuture(ctx)
	if err != nil {
		return fmt.Errorf("load slots: %w", err)
	}

	ruleSet, err := e.ruleStore.List(ctx)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	for _, rule := range ruleSet {
		if err := rules.Validate(rule); err != nil {
			return fmt.Errorf("stored rule: %w", err)
		}
	}
	rules.Sort(ruleSet)

	e.mu.Lock()
	e.held = held
	e.mu.Unlock()

	e.ruleMu.Lock()
	e.ruleSet = ruleSet
	e.ruleMu.Unlock()

	if err := e.trustCache.Refresh(ctx); err != nil {
		e.logger.Warn("trust cache refresh failed, lookups default to 0.5", "error", err)
	}
	if err := e.trendingCache.Refresh(ctx); err != nil {
		e.logger.Warn("trending cache refresh failed, matching against empty list", "error", err)
	}

	e.logger.Info("engine hydrated", "held_slots", len(held), "rules", len(ruleSet))
	return nil
}

// Prioritize scores a batch and applies the rule set. Items that cannot be
// scored are dropped with a warning; one bad item never aborts the batch.
func (e *Engine) Prioritize(ctx context.Context, items []domain.RawContent) []domain.PrioritizedItem {
	if len(items) == 0 {
		return nil
	}

	results := make([]domain.PrioritizedItem, len(items))
	valid := make([]bool, len(items))

	workers := e.cfg.Scoring.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				item, err := e.scoreOne(ctx, items[i])
				if err != nil {
					e.logger.Warn("dropping unscorable item", "content_id", items[i].ID, "error", err)
					continue
				}
				results[i] = item
				valid[i] = true
			}
		}()
	}
	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	out := make([]domain.PrioritizedItem, 0, len(items))
	for i := range results {
		if valid[i] {
			out = append(out, results[i])
		}
	}
	return out
}

func (e *Engine) scoreOne(ctx context.Context, item domain.RawContent) (domain.PrioritizedItem, error) {
	now := time.Now().UTC()

	computed, err := e.calc.Compute(ctx, item, now, e.trustCache, e.trendingCache.Topics())
	if err != nil {
		return domain.PrioritizedItem{}, err
	}

	scored := domain.PrioritizedItem{
		ID:       item.ID,
		Content:  item,
		Factors:  computed,
		Score:    e.scorer.Score(computed, e.strategy),
		ScoredAt: now,
	}

	e.ruleMu.RLock()
	ruleSet := e.ruleSet
	e.ruleMu.RUnlock()

	return e.ruleEngine.Apply(scored, ruleSet), nil
}

// Schedule allocates slots for a prioritized batch starting at start (now
// when zero) and persists them in one transaction. A cancelled context or a
// failed commit leaves both storage and the working set untouched.
func (e *Engine) Schedule(ctx context.Context, items []domain.PrioritizedItem, start time.Time) ([]domain.ScheduleSlot, error) {
	eligible := make([]domain.PrioritizedItem, 0, len(items))
	for _, item := range items {
		if item.Blocked {
			continue
		}
		eligible = append(eligible, item)
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	if start.IsZero() {
		start = time.Now().UTC()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	allocated := slots.Allocate(eligible, start, e.held, e.slotConfig())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := e.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return e.slotStore.Upsert(txCtx, allocated)
	})
	if err != nil {
		return nil, fmt.Errorf("persist slots: %w", err)
	}

	e.held = append(e.held, allocated...)
	sort.SliceStable(e.held, func(i, j int) bool {
		return e.held[i].ScheduledTime.Before(e.held[j].ScheduledTime)
	})

	for _, slot := range allocated {
		e.emit(events.TypeSlotScheduled, slot)
	}
	e.logger.Info("batch scheduled", "slots", len(allocated), "start", start)
	return allocated, nil
}

// RunPublishTick releases every due unlocked slot through the sink. Failures
// stay in the working set and retry on the next tick; delivery is at least
// once.
func (e *Engine) RunPublishTick(ctx context.Context) int {
	if e.sink == nil {
		return 0
	}
	now := time.Now().UTC()

	e.mu.Lock()
	defer e.mu.Unlock()

	published := 0
	remaining := make([]domain.ScheduleSlot, 0, len(e.held))
	for _, slot := range e.held {
		if !slot.Due(now) {
			remaining = append(remaining, slot)
			continue
		}

		if err := e.sink.Publish(ctx, slot.ContentID, slot.Priority); err != nil {
			e.noteFailure(slot, err)
			remaining = append(remaining, slot)
			continue
		}

		if err := e.slotStore.MarkPublished(ctx, slot.ID, now); err != nil {
			// Slot stays held; the next tick republishes and consumers
			// dedupe on content id.
			e.logger.Error("mark published failed", "slot_id", slot.ID, "error", err)
			remaining = append(remaining, slot)
			continue
		}

		delete(e.attempts, slot.ID)
		delete(e.alerted, slot.ID)
		published++
		e.emit(events.TypeSlotPublished, slot)
		e.logger.Info("slot published", "slot_id", slot.ID, "content_id", slot.ContentID)
	}
	e.held = remaining
	return published
}

func (e *Engine) noteFailure(slot domain.ScheduleSlot, err error) {
	e.attempts[slot.ID]++
	attempts := e.attempts[slot.ID]

	e.logger.Warn("publish failed",
		"slot_id", slot.ID,
		"content_id", slot.ContentID,
		"attempt", attempts,
		"error", err,
	)
	e.emit(events.TypePublishFailed, slot)

	if attempts >= e.cfg.Publish.MaxAttempts && !e.alerted[slot.ID] {
		e.alerted[slot.ID] = true
		e.logger.Error("slot stalled, will keep retrying", "slot_id", slot.ID, "attempts", attempts)
		e.emit(events.TypePublishStalled, slot)
	}
}

// CancelSlots drops scheduled slots as one batch: either every slot is
// removed or none is.
func (e *Engine) CancelSlots(ctx context.Context, slotIDs []string) error {
	if len(slotIDs) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return e.slotStore.Delete(txCtx, slotIDs)
	})
	if err != nil {
		return fmt.Errorf("cancel slots: %w", err)
	}

	drop := make(map[string]bool, len(slotIDs))
	for _, id := range slotIDs {
		drop[id] = true
	}
	remaining := make([]domain.ScheduleSlot, 0, len(e.held))
	for _, slot := range e.held {
		if drop[slot.ID] {
			delete(e.attempts, slot.ID)
			delete(e.alerted, slot.ID)
			continue
		}
		remaining = append(remaining, slot)
	}
	e.held = remaining

	e.logger.Info("slots cancelled", "count", len(slotIDs))
	return nil
}

// RunPipelinePass drains a batch from the intake queue: score, apply rules,
// schedule, mark consumed.
func (e *Engine) RunPipelinePass(ctx context.Context) (domain.PassStats, error) {
	start := time.Now()
	var stats domain.PassStats

	pending, err := e.contentStore.ListPending(ctx, e.cfg.Pipeline.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("list pending content: %w", err)
	}
	stats.Fetched = len(pending)
	if len(pending) == 0 {
		stats.Duration = time.Since(start)
		return stats, nil
	}

	scored := e.Prioritize(ctx, pending)
	stats.Scored = len(scored)
	stats.Errors = len(pending) - len(scored)

	var blocked []string
	eligible := make([]domain.PrioritizedItem, 0, len(scored))
	for _, item := range scored {
		if item.Blocked {
			blocked = append(blocked, item.ID)
			continue
		}
		eligible = append(eligible, item)
	}
	stats.Blocked = len(blocked)

	// Highest scores claim the earliest slots.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Score > eligible[j].Score
	})

	allocated, err := e.Schedule(ctx, eligible, time.Now().UTC())
	if err != nil {
		return stats, fmt.Errorf("schedule batch: %w", err)
	}
	stats.Scheduled = len(allocated)

	scheduledIDs := make([]string, 0, len(allocated))
	for _, slot := range allocated {
		scheduledIDs = append(scheduledIDs, slot.ContentID)
		if slot.Metadata[slots.MetadataForced] != "" {
			stats.Forced++
		}
	}
	if err := e.contentStore.MarkScheduled(ctx, scheduledIDs); err != nil {
		e.logger.Error("mark scheduled failed", "error", err)
	}
	if err := e.contentStore.MarkBlocked(ctx, blocked); err != nil {
		e.logger.Error("mark blocked failed", "error", err)
	}

	stats.Duration = time.Since(start)
	e.logger.Info("pipeline pass completed",
		"fetched", stats.Fetched,
		"scored", stats.Scored,
		"blocked", stats.Blocked,
		"scheduled", stats.Scheduled,
		"forced", stats.Forced,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

// AddRule validates, persists and activates a rule. The live set is replaced,
// not mutated, so in-flight scoring keeps its snapshot.
func (e *Engine) AddRule(ctx context.Context, rule domain.PriorityRule) error {
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}
	if err := rules.Validate(rule); err != nil {
		return err
	}

	if err := e.ruleStore.Insert(ctx, rule); err != nil {
		return fmt.Errorf("persist rule: %w", err)
	}

	e.ruleMu.Lock()
	next := make([]domain.PriorityRule, 0, len(e.ruleSet)+1)
	for _, existing := range e.ruleSet {
		if existing.ID != rule.ID {
			next = append(next, existing)
		}
	}
	next = append(next, rule)
	rules.Sort(next)
	e.ruleSet = next
	e.ruleMu.Unlock()

	e.emit(events.TypeRuleAdded, rule)
	e.logger.Info("rule added", "rule_id", rule.ID, "name", rule.Name)
	return nil
}

// RemoveRule deletes a rule from storage and the live set. Removing an
// unknown id is a no-op.
func (e *Engine) RemoveRule(ctx context.Context, id string) error {
	if err := e.ruleStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}

	e.ruleMu.Lock()
	next := make([]domain.PriorityRule, 0, len(e.ruleSet))
	for _, existing := range e.ruleSet {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	e.ruleSet = next
	e.ruleMu.Unlock()

	e.emit(events.TypeRuleRemoved, id)
	e.logger.Info("rule removed", "rule_id", id)
	return nil
}

// UpdateSourceTrust persists a trust score and applies it to lookups
// immediately. Scores clamp to [0, 1].
func (e *Engine) UpdateSourceTrust(ctx context.Context, source string, score float64) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return errors.New("source is empty")
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	old, err := e.trustStore.Get(ctx, source)
	if err != nil {
		e.logger.Warn("trust lookup failed", "source", source, "error", err)
		old = 0.5
	}

	if err := e.trustStore.Set(ctx, source, score); err != nil {
		return fmt.Errorf("persist trust score: %w", err)
	}
	e.trustCache.Set(source, score)

	e.emit(events.TypeTrustUpdated, source)
	e.logger.Info("source trust updated", "source", source, "old", old, "new", score)
	return nil
}

// TrainModel fits the adaptive model and persists the parameters. A failed
// save keeps the in-memory model and logs; the next train retries the write.
func (e *Engine) TrainModel(ctx context.Context, samples []domain.TrainingSample) error {
	if err := e.model.Train(samples); err != nil {
		return fmt.Errorf("train model: %w", err)
	}

	if path := e.cfg.Model.Path; path != "" {
		if err := e.model.Save(path); err != nil {
			e.logger.Error("model save failed", "path", path, "error", err)
		}
	}

	e.emit(events.TypeModelTrained, len(samples))
	return nil
}

// RetrainFromFeedback trains on recent engagement outcomes once enough have
// accumulated.
func (e *Engine) RetrainFromFeedback(ctx context.Context) error {
	samples, err := e.feedbackStore.ListRecent(ctx, feedbackBatchSize)
	if err != nil {
		return fmt.Errorf("list feedback: %w", err)
	}
	if len(samples) < e.cfg.Model.MinSamples {
		e.logger.Debug("not enough feedback to retrain",
			"have", len(samples),
			"need", e.cfg.Model.MinSamples,
		)
		return nil
	}
	return e.TrainModel(ctx, samples)
}

// RecordFeedback stores one observed engagement outcome for later training.
func (e *Engine) RecordFeedback(ctx context.Context, sample domain.TrainingSample) error {
	if sample.ContentID == "" {
		return errors.New("content id is empty")
	}
	if sample.ObservedScore < 0 {
		sample.ObservedScore = 0
	}
	if sample.ObservedScore > 1 {
		sample.ObservedScore = 1
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}

	if err := e.feedbackStore.Insert(ctx, sample); err != nil {
		return fmt.Errorf("persist feedback: %w", err)
	}
	return nil
}

// PrunePublished drops published slots older than the retention window.
func (e *Engine) PrunePublished(ctx context.Context) error {
	if e.cfg.Publish.RetentionDays <= 0 {
		return nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -e.cfg.Publish.RetentionDays)
	deleted, err := e.slotStore.DeletePublishedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune published slots: %w", err)
	}
	if deleted > 0 {
		e.logger.Info("pruned published slots", "deleted", deleted, "cutoff", cutoff)
	}
	return nil
}

func (e *Engine) slotConfig() slots.Config {
	return slots.Config{
		SlotsPerHour:  e.cfg.Schedule.SlotsPerHour,
		BufferMinutes: e.cfg.Schedule.BufferMinutes,
		Tolerance:     time.Duration(e.cfg.Schedule.ToleranceMinutes) * time.Minute,
		Strategy:      e.strategy,
	}
}

func (e *Engine) emit(eventType string, data any) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(events.Event{Type: eventType, Data: data})
}
