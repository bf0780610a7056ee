package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"content_scheduler/internal/domain"
)

// ErrNotTrained is returned by Predict until the first training run
// completes or a saved state is loaded.
var ErrNotTrained = errors.New("model not trained")

type Config struct {
	LearningRate float64
	Epochs       int
}

// Regressor is a sigmoid-linear scoring model over the eight factors.
// Predict is safe for concurrent use. At most one Train runs at a time;
// training requests arriving while one is in flight are dropped, not queued.
type Regressor struct {
	mu        sync.RWMutex
	weights   [8]float64
	bias      float64
	samples   int
	trainedAt time.Time

	training atomic.Bool

	learningRate float64
	epochs       int
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Regressor {
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.1
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = 200
	}
	return &Regressor{
		learningRate: cfg.LearningRate,
		epochs:       cfg.Epochs,
		logger:       logger.With("component", "model"),
	}
}

// Predict scores a factor vector with the current parameters.
func (r *Regressor) Predict(factors domain.ContentFactors) (float64, error) {
	r.mu.RLock()
	weights, bias, samples := r.weights, r.bias, r.samples
	r.mu.RUnlock()

	if samples == 0 {
		return 0, ErrNotTrained
	}
	return forward(weights, bias, factors.Vector()), nil
}

// Trained reports whether the model has parameters to predict with.
func (r *Regressor) Trained() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.samples > 0
}

// Train fits the parameters to the samples with stochastic gradient descent.
// A call made while another training run is in flight returns immediately
// without effect.
func (r *Regressor) Train(samples []domain.TrainingSample) error {
	if len(samples) == 0 {
		return fmt.Errorf("no training samples")
	}

	if !r.training.CompareAndSwap(false, true) {
		r.logger.Debug("training already in flight, dropping request", "samples", len(samples))
		return nil
	}
	defer r.training.Store(false)

	start := time.Now()

	r.mu.RLock()
	weights, bias := r.weights, r.bias
	r.mu.RUnlock()

	for epoch := 0; epoch < r.epochs; epoch++ {
		for _, sample := range samples {
			x := sample.Factors.Vector()
			y := clamp01(sample.ObservedScore)

			pred := forward(weights, bias, x)
			// Gradient of squared error through the sigmoid.
			grad := (pred - y) * pred * (1 - pred)

			for i := range weights {
				weights[i] -= r.learningRate * grad * x[i]
			}
			bias -= r.learningRate * grad
		}
	}

	r.mu.Lock()
	r.weights = weights
	r.bias = bias
	r.samples += len(samples)
	r.trainedAt = time.Now()
	r.mu.Unlock()

	r.logger.Info("model trained",
		"samples", len(samples),
		"epochs", r.epochs,
		"duration", time.Since(start),
	)

	return nil
}

type persistedState struct {
	Weights   [8]float64 `json:"weights"`
	Bias      float64    `json:"bias"`
	Samples   int        `json:"samples"`
	TrainedAt time.Time  `json:"trained_at"`
}

// Save writes the learned parameters to path, creating parent directories.
func (r *Regressor) Save(path string) error {
	r.mu.RLock()
	state := persistedState{
		Weights:   r.weights,
		Bias:      r.bias,
		Samples:   r.samples,
		TrainedAt: r.trainedAt,
	}
	r.mu.RUnlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create model dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model state: %w", err)
	}
	return nil
}

// Load restores saved parameters. A missing file is not an error; the model
// simply stays untrained.
func (r *Regressor) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read model state: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parse model state: %w", err)
	}

	r.mu.Lock()
	r.weights = state.Weights
	r.bias = state.Bias
	r.samples = state.Samples
	r.trainedAt = state.TrainedAt
	r.mu.Unlock()

	r.logger.Info("model state loaded", "path", path, "samples", state.Samples)
	return nil
}

func forward(weights [8]float64, bias float64, x [8]float64) float64 {
	z := bias
	for i, w := range weights {
		z += w * x[i]
	}
	return sigmoid(z)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
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
