package domain

import "time"

// RawContent is a candidate content item submitted for prioritization.
// The engine never owns the item; the content store stays authoritative.
type RawContent struct {
	ID          string
	Title       string
	Description string
	URL         string
	Author      string
	Source      string
	Category    string
	Tags        []string
	PublishedAt *time.Time // nil when the origin reported no timestamp
	Deadline    *time.Time
	HasImage    bool
	HasVideo    bool
	Metadata    map[string]string
}

// ContentFactors holds the eight normalized signals, each in [0,1].
type ContentFactors struct {
	Relevance    float64 `json:"relevance"`
	Freshness    float64 `json:"freshness"`
	Engagement   float64 `json:"engagement"`
	SourceTrust  float64 `json:"source_trust"`
	Trending     float64 `json:"trending"`
	Uniqueness   float64 `json:"uniqueness"`
	Completeness float64 `json:"completeness"`
	Urgency      float64 `json:"urgency"`
}

// FactorNames lists the factors in canonical vector order.
var FactorNames = [8]string{
	"relevance", "freshness", "engagement", "source_trust",
	"trending", "uniqueness", "completeness", "urgency",
}

// Vector returns the factors in canonical order, matching FactorNames.
func (f ContentFactors) Vector() [8]float64 {
	return [8]float64{
		f.Relevance, f.Freshness, f.Engagement, f.SourceTrust,
		f.Trending, f.Uniqueness, f.Completeness, f.Urgency,
	}
}

// Factor returns a single factor by its canonical name.
func (f ContentFactors) Factor(name string) (float64, bool) {
	switch name {
	case "relevance":
		return f.Relevance, true
	case "freshness":
		return f.Freshness, true
	case "engagement":
		return f.Engagement, true
	case "source_trust":
		return f.SourceTrust, true
	case "trending":
		return f.Trending, true
	case "uniqueness":
		return f.Uniqueness, true
	case "completeness":
		return f.Completeness, true
	case "urgency":
		return f.Urgency, true
	}
	return 0, false
}

// PriorityLevel is the discrete priority classification, ordered ascending.
type PriorityLevel int

const (
	PriorityBacklog PriorityLevel = iota + 1
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityEmergency
)

func (p PriorityLevel) String() string {
	switch p {
	case PriorityBacklog:
		return "backlog"
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityEmergency:
		return "emergency"
	}
	return "unknown"
}

// PrioritizedItem is a content item after one prioritization pass.
type PrioritizedItem struct {
	ID            string
	Content       RawContent
	Factors       ContentFactors
	Score         float64
	Priority      PriorityLevel
	Blocked       bool
	ScheduledTime *time.Time // set by a schedule rule; skips collision checks
	Reasoning     []string
	ScoredAt      time.Time
}

// TrainingSample pairs a factor vector with the score observed downstream.
type TrainingSample struct {
	ContentID     string
	Factors       ContentFactors
	ObservedScore float64
	CreatedAt     time.Time
}
