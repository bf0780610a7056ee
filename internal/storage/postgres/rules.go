package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_scheduler/internal/domain"
)

type RuleStore struct {
	db *sqlx.DB
}

func NewRuleStore(db *sqlx.DB) *RuleStore {
	return &RuleStore{db: db}
}

// List returns all rules, highest priority first.
func (s *RuleStore) List(ctx context.Context) ([]domain.PriorityRule, error) {
	query := `
		SELECT id, name, priority, enabled, condition, action, created_at
		FROM priority_rules
		ORDER BY priority DESC, created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PriorityRule
	for rows.Next() {
		var (
			rule      domain.PriorityRule
			condition []byte
			action    []byte
		)
		err := rows.Scan(&rule.ID, &rule.Name, &rule.Priority, &rule.Enabled, &condition, &action, &rule.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(condition, &rule.Condition); err != nil {
			return nil, fmt.Errorf("decode condition for rule %s: %w", rule.ID, err)
		}
		if err := json.Unmarshal(action, &rule.Action); err != nil {
			return nil, fmt.Errorf("decode action for rule %s: %w", rule.ID, err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// Insert persists a rule; re-inserting an id replaces the stored rule.
func (s *RuleStore) Insert(ctx context.Context, rule domain.PriorityRule) error {
	condition, err := json.Marshal(rule.Condition)
	if err != nil {
		return fmt.Errorf("encode condition: %w", err)
	}
	action, err := json.Marshal(rule.Action)
	if err != nil {
		return fmt.Errorf("encode action: %w", err)
	}

	query := `
		INSERT INTO priority_rules (id, name, priority, enabled, condition, action, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			priority = EXCLUDED.priority,
			enabled = EXCLUDED.enabled,
			condition = EXCLUDED.condition,
			action = EXCLUDED.action`

	_, err = s.db.ExecContext(ctx, query,
		rule.ID,
		rule.Name,
		rule.Priority,
		rule.Enabled,
		condition,
		action,
		rule.CreatedAt,
	)
	return err
}

func (s *RuleStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM priority_rules WHERE id = $1", id)
	return err
}
