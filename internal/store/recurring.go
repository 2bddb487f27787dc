package store

import (
	"sync"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/uuid"
)

// RuleSet holds recurring-obligation templates. It follows the same
// idempotence contract as the ledger: Remove on an unknown id is a
// harmless no-op.
type RuleSet struct {
	mu    sync.RWMutex
	rules []models.RecurringRule
	index map[string]int
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]int)}
}

// Add stores a rule and returns its id, assigning a UUIDv7 when absent.
func (s *RuleSet) Add(rule models.RecurringRule) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rule.ID == "" {
		rule.ID = uuid.New()
	}
	if _, exists := s.index[rule.ID]; exists {
		return "", apperrors.ErrDuplicateRule
	}

	s.index[rule.ID] = len(s.rules)
	s.rules = append(s.rules, rule)
	return rule.ID, nil
}

// Remove deletes the rule with the given id, returning false when absent.
func (s *RuleSet) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, exists := s.index[id]
	if !exists {
		return false
	}

	s.rules = append(s.rules[:pos], s.rules[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.rules); i++ {
		s.index[s.rules[i].ID] = i
	}
	return true
}

// Get returns the rule with the given id, if present.
func (s *RuleSet) Get(id string) (models.RecurringRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, exists := s.index[id]
	if !exists {
		return models.RecurringRule{}, false
	}
	return s.rules[pos], true
}

// List returns a point-in-time copy of all rules in insertion order.
func (s *RuleSet) List() []models.RecurringRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RecurringRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// MarkMaterialized records the period (YYYY-MM) for which a transaction
// was created from this rule. The rest of the rule never changes;
// materialization only appends transactions to the ledger. Returns false
// when the rule is unknown.
func (s *RuleSet) MarkMaterialized(id, period string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, exists := s.index[id]
	if !exists {
		return false
	}
	s.rules[pos].LastMaterializedPeriod = period
	return true
}

// Replace swaps the whole collection.
func (s *RuleSet) Replace(rules []models.RecurringRule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = make([]models.RecurringRule, len(rules))
	copy(s.rules, rules)
	s.index = make(map[string]int, len(rules))
	for i, rule := range s.rules {
		s.index[rule.ID] = i
	}
}
