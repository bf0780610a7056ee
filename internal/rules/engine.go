package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"content_scheduler/internal/domain"
	"content_scheduler/internal/scoring"
)

// ErrInvalidRule marks administrator rules that fail validation.
var ErrInvalidRule = errors.New("invalid rule")

var contentFields = map[string]bool{
	"title": true, "description": true, "url": true,
	"author": true, "source": true, "category": true, "tags": true,
}

// Engine applies administrator override rules to scored items.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger.With("component", "rules")}
}

// Sort orders rules for evaluation: priority field descending, stable on
// the given order for ties. The rule store returns rules already in this
// order; in-memory additions re-sort through here.
func Sort(rules []domain.PriorityRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
}

// Apply evaluates rules against the item in the given order and fires the
// actions of matching rules. The returned item carries the mutated score,
// priority, schedule override and a reasoning entry per fired action.
func (e *Engine) Apply(item domain.PrioritizedItem, rules []domain.PriorityRule) domain.PrioritizedItem {
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		if !matches(item, rule.Condition) {
			continue
		}
		item = e.fire(item, rule)
	}

	// Block is terminal; every other outcome reclassifies from the final score.
	if !item.Blocked {
		item.Priority = scoring.Classify(item.Score)
	}
	return item
}

func (e *Engine) fire(item domain.PrioritizedItem, rule domain.PriorityRule) domain.PrioritizedItem {
	switch rule.Action.Type {
	case domain.ActionBoost:
		x, ok := toNumber(rule.Action.Value)
		if !ok {
			return item
		}
		item.Score = clamp01(item.Score * (1 + x))
		item.Reasoning = append(item.Reasoning,
			fmt.Sprintf("Boosted by rule '%s' (+%.0f%%)", rule.Name, x*100))

	case domain.ActionSuppress:
		x, ok := toNumber(rule.Action.Value)
		if !ok {
			return item
		}
		item.Score = clamp01(item.Score * (1 - x))
		item.Reasoning = append(item.Reasoning,
			fmt.Sprintf("Suppressed by rule '%s' (-%.0f%%)", rule.Name, x*100))

	case domain.ActionBlock:
		item.Score = 0
		item.Priority = domain.PriorityBacklog
		item.Blocked = true
		item.Reasoning = append(item.Reasoning,
			fmt.Sprintf("Blocked by rule '%s'", rule.Name))

	case domain.ActionSchedule:
		ts, ok := rule.Action.Value.(string)
		if !ok {
			return item
		}
		when, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			e.logger.Warn("schedule rule carries unparseable timestamp",
				"rule", rule.Name,
				"value", ts,
			)
			return item
		}
		item.ScheduledTime = &when
		item.Reasoning = append(item.Reasoning,
			fmt.Sprintf("Scheduled by rule '%s' for %s", rule.Name, when.Format(time.RFC3339)))
	}

	return item
}

func matches(item domain.PrioritizedItem, cond domain.RuleCondition) bool {
	fv, ok := resolveField(item, cond.Field)
	if !ok {
		return false
	}

	switch cond.Operator {
	case domain.OpEquals:
		if n, ok := toNumber(cond.Value); ok && fv.isNum {
			return fv.num == n
		}
		if want, ok := cond.Value.(string); ok && !fv.isList {
			return fv.str != "" && strings.EqualFold(fv.str, want)
		}
		return false

	case domain.OpContains:
		want, ok := cond.Value.(string)
		if !ok {
			return false
		}
		if fv.isList {
			for _, v := range fv.list {
				if strings.EqualFold(v, want) {
					return true
				}
			}
			return false
		}
		if fv.isNum {
			return false
		}
		return strings.Contains(strings.ToLower(fv.str), strings.ToLower(want))

	case domain.OpGreaterThan:
		n, ok := toNumber(cond.Value)
		return ok && fv.isNum && fv.num > n

	case domain.OpLessThan:
		n, ok := toNumber(cond.Value)
		return ok && fv.isNum && fv.num < n

	case domain.OpIn:
		options, ok := cond.Value.([]any)
		if !ok || fv.isList {
			return false
		}
		for _, opt := range options {
			if n, ok := toNumber(opt); ok && fv.isNum && fv.num == n {
				return true
			}
			if s, ok := opt.(string); ok && fv.str != "" && strings.EqualFold(fv.str, s) {
				return true
			}
		}
		return false
	}

	return false
}

type fieldValue struct {
	num    float64
	str    string
	list   []string
	isNum  bool
	isList bool
}

func resolveField(item domain.PrioritizedItem, field string) (fieldValue, bool) {
	switch {
	case field == "score":
		return fieldValue{num: item.Score, isNum: true}, true

	case field == "priority":
		return fieldValue{num: float64(item.Priority), str: item.Priority.String(), isNum: true}, true

	case strings.HasPrefix(field, "factors."):
		v, ok := item.Factors.Factor(strings.TrimPrefix(field, "factors."))
		if !ok {
			return fieldValue{}, false
		}
		return fieldValue{num: v, isNum: true}, true

	case strings.HasPrefix(field, "content."):
		name := strings.TrimPrefix(field, "content.")
		c := item.Content
		switch name {
		case "title":
			return fieldValue{str: c.Title}, true
		case "description":
			return fieldValue{str: c.Description}, true
		case "url":
			return fieldValue{str: c.URL}, true
		case "author":
			return fieldValue{str: c.Author}, true
		case "source":
			return fieldValue{str: c.Source}, true
		case "category":
			return fieldValue{str: c.Category}, true
		case "tags":
			return fieldValue{list: c.Tags, isList: true}, true
		}
	}
	return fieldValue{}, false
}

// Validate rejects malformed rules before they reach evaluation. Stored
// rules are validated at engine start; new rules at insertion.
func Validate(rule domain.PriorityRule) error {
	if rule.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidRule)
	}
	if err := validateCondition(rule.Condition); err != nil {
		return fmt.Errorf("%w: rule %q: %v", ErrInvalidRule, rule.Name, err)
	}
	if err := validateAction(rule.Action); err != nil {
		return fmt.Errorf("%w: rule %q: %v", ErrInvalidRule, rule.Name, err)
	}
	return nil
}

func validateCondition(cond domain.RuleCondition) error {
	switch {
	case cond.Field == "score" || cond.Field == "priority":
	case strings.HasPrefix(cond.Field, "factors."):
		name := strings.TrimPrefix(cond.Field, "factors.")
		if _, ok := (domain.ContentFactors{}).Factor(name); !ok {
			return fmt.Errorf("unknown factor %q", name)
		}
	case strings.HasPrefix(cond.Field, "content."):
		if !contentFields[strings.TrimPrefix(cond.Field, "content.")] {
			return fmt.Errorf("unknown content field %q", cond.Field)
		}
	default:
		return fmt.Errorf("unknown field %q", cond.Field)
	}

	switch cond.Operator {
	case domain.OpEquals, domain.OpContains:
		switch cond.Value.(type) {
		case string, float64, int:
		default:
			return fmt.Errorf("operator %s needs a scalar value", cond.Operator)
		}
	case domain.OpGreaterThan, domain.OpLessThan:
		if _, ok := toNumber(cond.Value); !ok {
			return fmt.Errorf("operator %s needs a numeric value", cond.Operator)
		}
	case domain.OpIn:
		if _, ok := cond.Value.([]any); !ok {
			return fmt.Errorf("operator %s needs a list value", cond.Operator)
		}
	default:
		return fmt.Errorf("unknown operator %q", cond.Operator)
	}
	return nil
}

func validateAction(action domain.RuleAction) error {
	switch action.Type {
	case domain.ActionBoost, domain.ActionSuppress:
		x, ok := toNumber(action.Value)
		if !ok || x <= 0 || x > 1 {
			return fmt.Errorf("%s factor must be in (0,1], got %v", action.Type, action.Value)
		}
	case domain.ActionBlock:
	case domain.ActionSchedule:
		ts, ok := action.Value.(string)
		if !ok {
			return fmt.Errorf("schedule action needs an RFC3339 timestamp")
		}
		if _, err := time.Parse(time.RFC3339, ts); err != nil {
			return fmt.Errorf("schedule timestamp %q: %v", ts, err)
		}
	default:
		return fmt.Errorf("unknown action %q", action.Type)
	}
	return nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
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
