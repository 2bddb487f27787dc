// Package storage persists the finance collections with snapshot
// semantics: every save replaces the whole collection, every load reads
// it back in full. The in-memory stores remain the source of truth while
// the process runs; this repository only mirrors them durably.
package storage

import (
	"gorm.io/gorm"

	"choirfin/internal/models"
)

// Repository is a GORM-backed snapshot store for the three finance
// collections.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on an open GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LoadTransactions reads the full ledger. Rows come back ordered by
// creation time with the time-ordered id as tie-break, which restores
// the ledger's insertion order.
func (r *Repository) LoadTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.Order("created_at, id").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// SaveTransactions replaces the stored ledger with the given snapshot.
func (r *Repository) SaveTransactions(txs []models.Transaction) error {
	return r.replaceAll(&models.Transaction{}, func(tx *gorm.DB) error {
		if len(txs) == 0 {
			return nil
		}
		return tx.Create(&txs).Error
	})
}

// LoadBudgets reads all budgets.
func (r *Repository) LoadBudgets() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("category").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets replaces the stored budgets with the given snapshot.
func (r *Repository) SaveBudgets(budgets []models.Budget) error {
	return r.replaceAll(&models.Budget{}, func(tx *gorm.DB) error {
		if len(budgets) == 0 {
			return nil
		}
		return tx.Create(&budgets).Error
	})
}

// LoadRecurring reads all recurring rules.
func (r *Repository) LoadRecurring() ([]models.RecurringRule, error) {
	var rules []models.RecurringRule
	if err := r.db.Order("created_at, id").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// SaveRecurring replaces the stored rules with the given snapshot.
func (r *Repository) SaveRecurring(rules []models.RecurringRule) error {
	return r.replaceAll(&models.RecurringRule{}, func(tx *gorm.DB) error {
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
}

// replaceAll deletes every row of the model and runs insert inside one
// database transaction, so a failed save never leaves a half-written
// collection behind.
func (r *Repository) replaceAll(model interface{}, insert func(tx *gorm.DB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		return insert(tx)
	})
}
