package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_scheduler/internal/cache"
	"content_scheduler/internal/config"
	"content_scheduler/internal/events"
	"content_scheduler/internal/factors"
	"content_scheduler/internal/model"
	"content_scheduler/internal/publisher"
	"content_scheduler/internal/relevance"
	"content_scheduler/internal/runner"
	"content_scheduler/internal/scoring"
	"content_scheduler/internal/service"
	"content_scheduler/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
		RatePerSec: cfg.RabbitMQ.RatePerSec,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	contentStore := postgres.NewContentStore(db)
	ruleStore := postgres.NewRuleStore(db)
	slotStore := postgres.NewSlotStore(db)
	trustStore := postgres.NewTrustStore(db)
	trendingStore := postgres.NewTrendingStore(db)
	feedbackStore := postgres.NewFeedbackStore(db)
	txManager := postgres.NewTransactionManager(db)

	// The analysis service is optional; without it the factor calculator
	// falls back to its local defaults.
	var relevanceScorer factors.RelevanceScorer
	var similaritySearcher factors.SimilaritySearcher
	if cfg.Analysis.BaseURL != "" {
		client := relevance.NewClient(
			cfg.Analysis.BaseURL,
			cfg.Analysis.APIKey,
			time.Duration(cfg.Analysis.Timeout),
			cfg.Analysis.RatePerSec,
		)
		relevanceScorer = client
		similaritySearcher = client
		logger.Info("analysis service configured", "base_url", cfg.Analysis.BaseURL)
	}

	trustCache := cache.NewTrustCache(trustStore, logger)
	trendingCache := cache.NewTrendingCache(trendingStore, cfg.Refresh.TrendingMinScore, logger)

	regressor := model.New(model.Config{
		LearningRate: cfg.Model.LearningRate,
		Epochs:       cfg.Model.Epochs,
	}, logger)
	if err := regressor.Load(cfg.Model.Path); err != nil {
		logger.Warn("model state not loaded, starting untrained", "path", cfg.Model.Path, "error", err)
	}

	calculator := factors.NewCalculator(relevanceScorer, similaritySearcher, logger)
	scorer := scoring.NewScorer(cfg.Scoring.Weights.Vector(), regressor, logger)
	bus := events.New()

	engine := service.NewEngine(*cfg, service.Deps{
		Content:       contentStore,
		Rules:         ruleStore,
		Slots:         slotStore,
		Trust:         trustStore,
		Feedback:      feedbackStore,
		Tx:            txManager,
		Sink:          rabbitMQ,
		Calculator:    calculator,
		Scorer:        scorer,
		Model:         regressor,
		TrustCache:    trustCache,
		TrendingCache: trendingCache,
		Bus:           bus,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	eventCh, unsubscribe := bus.Subscribe(64)
	defer unsubscribe()
	go func() {
		for e := range eventCh {
			logger.Debug("engine event", "type", e.Type, "time", e.Time)
		}
	}()

	if err := engine.Hydrate(ctx); err != nil {
		logger.Error("failed to hydrate engine", "error", err)
		os.Exit(1)
	}

	if _, err := engine.RunPipelinePass(ctx); err != nil {
		logger.Error("initial pipeline pass failed", "error", err)
	}

	pipelineInterval := time.Duration(cfg.Pipeline.Interval)
	publishTick := time.Duration(cfg.Publish.TickInterval)

	jobs := runner.New(logger)
	jobs.Add("pipeline_pass", pipelineInterval, pipelineInterval, func(ctx context.Context) error {
		_, err := engine.RunPipelinePass(ctx)
		return err
	})
	jobs.Add("publish_tick", publishTick, publishTick, func(ctx context.Context) error {
		engine.RunPublishTick(ctx)
		return nil
	})
	jobs.Add("trust_refresh", time.Duration(cfg.Refresh.TrustInterval), 30*time.Second, trustCache.Refresh)
	jobs.Add("trending_refresh", time.Duration(cfg.Refresh.TrendingInterval), 30*time.Second, trendingCache.Refresh)
	jobs.Add("model_retrain", time.Duration(cfg.Model.RetrainInterval), 5*time.Minute, engine.RetrainFromFeedback)
	jobs.Add("slot_cleanup", time.Duration(cfg.Publish.PruneInterval), time.Minute, engine.PrunePublished)

	if err := jobs.Start(ctx); err != nil {
		logger.Error("failed to start runner", "error", err)
		os.Exit(1)
	}

	logger.Info("content scheduler started",
		"strategy", cfg.Scoring.Strategy,
		"slots_per_hour", cfg.Schedule.SlotsPerHour,
		"pipeline_interval", pipelineInterval,
		"publish_tick", publishTick,
	)

	<-ctx.Done()
	jobs.Stop()

	if err := regressor.Save(cfg.Model.Path); err != nil {
		logger.Warn("model state not saved", "path", cfg.Model.Path, "error", err)
	}
	logger.Info("content scheduler stopped")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
