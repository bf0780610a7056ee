package scoring

import (
	"errors"
	"log/slog"

	"content_scheduler/internal/domain"
)

const (
	hybridWeightedShare = 0.7
	hybridAdaptiveShare = 0.3
)

var errNoModel = errors.New("no adaptive model configured")

// Predictor yields a learned score for a factor vector. Implemented by the
// adaptive model; may be nil when no model is wired in.
type Predictor interface {
	Predict(factors domain.ContentFactors) (float64, error)
}

// Scorer combines the eight factors into a final score via the selected
// strategy. A model failure never surfaces to the caller; adaptive paths
// fall back to the weighted sum.
type Scorer struct {
	weights [8]float64
	model   Predictor
	logger  *slog.Logger
}

func NewScorer(weights [8]float64, model Predictor, logger *slog.Logger) *Scorer {
	return &Scorer{
		weights: weights,
		model:   model,
		logger:  logger.With("component", "scoring"),
	}
}

func (s *Scorer) Score(factors domain.ContentFactors, strategy domain.Strategy) float64 {
	switch strategy {
	case domain.StrategyAdaptive:
		return s.adaptive(factors)
	case domain.StrategyHybrid:
		return s.hybrid(factors)
	case domain.StrategyWeighted:
		return s.weighted(factors)
	default:
		// The remaining configured strategies (fifo, lifo, priority_only,
		// round_robin, deadline) are aliases for weighted scoring. They are
		// accepted so existing configs keep loading, but have never carried
		// distinct logic.
		return s.weighted(factors)
	}
}

func (s *Scorer) weighted(factors domain.ContentFactors) float64 {
	vec := factors.Vector()
	var score float64
	for i, w := range s.weights {
		score += w * vec[i]
	}
	return clamp01(score)
}

func (s *Scorer) adaptive(factors domain.ContentFactors) float64 {
	predicted, err := s.predict(factors)
	if err != nil {
		s.logger.Debug("model prediction unavailable, falling back to weighted", "error", err)
		return s.weighted(factors)
	}
	return clamp01(predicted)
}

func (s *Scorer) hybrid(factors domain.ContentFactors) float64 {
	weighted := s.weighted(factors)
	predicted, err := s.predict(factors)
	if err != nil {
		s.logger.Debug("model prediction unavailable, using pure weighted", "error", err)
		return weighted
	}
	return clamp01(hybridWeightedShare*weighted + hybridAdaptiveShare*predicted)
}

func (s *Scorer) predict(factors domain.ContentFactors) (float64, error) {
	if s.model == nil {
		return 0, errNoModel
	}
	return s.model.Predict(factors)
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
