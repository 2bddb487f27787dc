package services

import (
	"strings"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/store"
)

// recurringService handles recurring-rule business logic.
type recurringService struct {
	rules     *store.RuleSet
	persister Persister
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(rules *store.RuleSet, persister Persister) RecurringServicer {
	return &recurringService{rules: rules, persister: persister}
}

func validateRule(rule models.RecurringRule) error {
	if !rule.Type.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown transaction type")
	}
	if strings.TrimSpace(rule.Category) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if rule.Amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if rule.DayOfMonth < 1 || rule.DayOfMonth > 31 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "day_of_month must be between 1 and 31")
	}
	return nil
}

// AddRule validates and stores a recurring-obligation template.
func (s *recurringService) AddRule(rule models.RecurringRule) (*models.RecurringRule, error) {
	if rule.Frequency == "" {
		rule.Frequency = models.RuleFrequencyMonthly
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	id, err := s.rules.Add(rule)
	if err != nil {
		return nil, err
	}
	if err := s.persister.SaveRecurring(s.rules.List()); err != nil {
		s.rules.Remove(id)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	saved, _ := s.rules.Get(id)
	return &saved, nil
}

// GetRules returns the current rule snapshot.
func (s *recurringService) GetRules() []models.RecurringRule {
	return s.rules.List()
}

// DeleteRule removes a rule by id; unknown ids are a no-op returning
// false. Rules are never deleted automatically.
func (s *recurringService) DeleteRule(id string) (bool, error) {
	if !s.rules.Remove(id) {
		return false, nil
	}
	if err := s.persister.SaveRecurring(s.rules.List()); err != nil {
		return true, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return true, nil
}
