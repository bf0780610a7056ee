package domain

import "time"

// Condition operators.
const (
	OpEquals      = "equals"
	OpContains    = "contains"
	OpGreaterThan = "greater_than"
	OpLessThan    = "less_than"
	OpIn          = "in"
)

// Action types.
const (
	ActionBoost    = "boost"
	ActionSuppress = "suppress"
	ActionBlock    = "block"
	ActionSchedule = "schedule"
)

// RuleCondition matches one field of a prioritized item. Field addresses a
// factor ("factors.urgency"), a raw content field ("content.title") or the
// top-level "score". Value carries a decoded JSON value: string, float64 or
// a list for the "in" operator.
type RuleCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// RuleAction mutates the item when its condition matches. Value is a float64
// factor for boost/suppress, an RFC3339 timestamp string for schedule, and
// unused for block.
type RuleAction struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// PriorityRule is an administrator-authored override applied after scoring.
// Rules are evaluated sorted by Priority descending; ties keep store order.
type PriorityRule struct {
	ID        string
	Name      string
	Priority  int
	Enabled   bool
	Condition RuleCondition
	Action    RuleAction
	CreatedAt time.Time
}
