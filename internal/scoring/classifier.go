package scoring

import "content_scheduler/internal/domain"

// Classification thresholds. Fixed constants rather than configuration:
// changing them reinterprets every stored priority level.
const (
	emergencyThreshold = 0.90
	highThreshold      = 0.75
	mediumThreshold    = 0.50
	lowThreshold       = 0.25
)

// Classify maps a final score to its discrete priority level.
func Classify(score float64) domain.PriorityLevel {
	switch {
	case score >= emergencyThreshold:
		return domain.PriorityEmergency
	case score >= highThreshold:
		return domain.PriorityHigh
	case score >= mediumThreshold:
		return domain.PriorityMedium
	case score >= lowThreshold:
		return domain.PriorityLow
	default:
		return domain.PriorityBacklog
	}
}
