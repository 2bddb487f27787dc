package store

import (
	"sync"

	"choirfin/internal/models"
)

// BudgetRegistry holds per-category spending ceilings. The category is
// the key: upserting a category that already has a budget overwrites it
// in place, so at most one budget exists per category.
type BudgetRegistry struct {
	mu      sync.RWMutex
	budgets []models.Budget
}

// NewBudgetRegistry creates an empty registry.
func NewBudgetRegistry() *BudgetRegistry {
	return &BudgetRegistry{}
}

// Upsert replaces any existing budget with the same category, else appends.
func (r *BudgetRegistry) Upsert(b models.Budget) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.budgets {
		if r.budgets[i].Category == b.Category {
			r.budgets[i] = b
			return
		}
	}
	r.budgets = append(r.budgets, b)
}

// Remove deletes the budget for a category. Unknown categories are a
// no-op returning false.
func (r *BudgetRegistry) Remove(category string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.budgets {
		if r.budgets[i].Category == category {
			r.budgets = append(r.budgets[:i], r.budgets[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a point-in-time copy of all budgets.
func (r *BudgetRegistry) List() []models.Budget {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Budget, len(r.budgets))
	copy(out, r.budgets)
	return out
}

// Replace swaps the whole collection.
func (r *BudgetRegistry) Replace(budgets []models.Budget) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.budgets = make([]models.Budget, len(budgets))
	copy(r.budgets, budgets)
}
