package services

import (
	"errors"

	"choirfin/internal/models"
)

// fakePersister records what the services hand it and can be told to
// fail any save, for exercising rollback paths.
type fakePersister struct {
	transactions []models.Transaction
	budgets      []models.Budget
	rules        []models.RecurringRule

	failTransactions bool
	failBudgets      bool
	failRecurring    bool

	txSaves     int
	budgetSaves int
	ruleSaves   int
}

var _ Persister = (*fakePersister)(nil)

var errDiskFull = errors.New("disk full")

func (f *fakePersister) LoadTransactions() ([]models.Transaction, error) { return f.transactions, nil }

func (f *fakePersister) SaveTransactions(txs []models.Transaction) error {
	if f.failTransactions {
		return errDiskFull
	}
	f.txSaves++
	f.transactions = txs
	return nil
}

func (f *fakePersister) LoadBudgets() ([]models.Budget, error) { return f.budgets, nil }

func (f *fakePersister) SaveBudgets(budgets []models.Budget) error {
	if f.failBudgets {
		return errDiskFull
	}
	f.budgetSaves++
	f.budgets = budgets
	return nil
}

func (f *fakePersister) LoadRecurring() ([]models.RecurringRule, error) { return f.rules, nil }

func (f *fakePersister) SaveRecurring(rules []models.RecurringRule) error {
	if f.failRecurring {
		return errDiskFull
	}
	f.ruleSaves++
	f.rules = rules
	return nil
}
