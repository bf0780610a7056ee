package domain

import "fmt"

// Strategy selects how factor vectors combine into a final score.
type Strategy string

const (
	StrategyWeighted     Strategy = "weighted"
	StrategyAdaptive     Strategy = "adaptive"
	StrategyHybrid       Strategy = "hybrid"
	StrategyFIFO         Strategy = "fifo"
	StrategyLIFO         Strategy = "lifo"
	StrategyPriorityOnly Strategy = "priority_only"
	StrategyRoundRobin   Strategy = "round_robin"
	StrategyDeadline     Strategy = "deadline"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyWeighted, StrategyAdaptive, StrategyHybrid,
		StrategyFIFO, StrategyLIFO, StrategyPriorityOnly,
		StrategyRoundRobin, StrategyDeadline:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}
