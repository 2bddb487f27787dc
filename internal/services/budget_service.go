package services

import (
	"strings"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/store"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	budgets   *store.BudgetRegistry
	persister Persister
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(budgets *store.BudgetRegistry, persister Persister) BudgetServicer {
	return &budgetService{budgets: budgets, persister: persister}
}

// UpsertBudget stores a ceiling for a category, overwriting any existing
// budget with the same category, and persists the new snapshot.
func (s *budgetService) UpsertBudget(b models.Budget) (*models.Budget, error) {
	if strings.TrimSpace(b.Category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if b.Limit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be greater than zero")
	}
	if b.Period == "" {
		b.Period = models.BudgetPeriodMonthly
	}

	s.budgets.Upsert(b)
	if err := s.persister.SaveBudgets(s.budgets.List()); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &b, nil
}

// GetBudgets returns the current budget snapshot.
func (s *budgetService) GetBudgets() []models.Budget {
	return s.budgets.List()
}

// DeleteBudget removes the budget for a category; unknown categories are
// a no-op returning false.
func (s *budgetService) DeleteBudget(category string) (bool, error) {
	if !s.budgets.Remove(category) {
		return false, nil
	}
	if err := s.persister.SaveBudgets(s.budgets.List()); err != nil {
		return true, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return true, nil
}
