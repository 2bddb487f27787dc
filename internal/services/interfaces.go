package services

import (
	"context"
	"time"

	"choirfin/internal/analytics"
	"choirfin/internal/models"
	"choirfin/internal/pagination"
	"choirfin/internal/scheduler"
)

// Persister is the persistence collaborator. Every save replaces the
// whole collection and every load reads it back in full; nothing here is
// incremental. Retrying failed I/O is the collaborator's concern, the
// services never retry.
type Persister interface {
	LoadTransactions() ([]models.Transaction, error)
	SaveTransactions([]models.Transaction) error
	LoadBudgets() ([]models.Budget, error)
	SaveBudgets([]models.Budget) error
	LoadRecurring() ([]models.RecurringRule, error)
	SaveRecurring([]models.RecurringRule) error
}

// LedgerServicer defines the contract for transaction-related business logic.
type LedgerServicer interface {
	AddTransaction(tx models.Transaction) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, month string) (*pagination.PageResponse[models.Transaction], error)
	DeleteTransaction(id string) (bool, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	UpsertBudget(b models.Budget) (*models.Budget, error)
	GetBudgets() []models.Budget
	DeleteBudget(category string) (bool, error)
}

// RecurringServicer defines the contract for recurring-rule business logic.
type RecurringServicer interface {
	AddRule(rule models.RecurringRule) (*models.RecurringRule, error)
	GetRules() []models.RecurringRule
	DeleteRule(id string) (bool, error)
}

// CategoryReport is one breakdown row joined with its budget utilization.
type CategoryReport struct {
	analytics.CategorySpend
	analytics.Utilization
}

// FinanceSummary is the full dashboard view: totals, per-category
// spending against budgets, and the recent running-balance series.
type FinanceSummary struct {
	Totals         analytics.Totals         `json:"totals"`
	Categories     []CategoryReport         `json:"categories"`
	RunningBalance []analytics.BalancePoint `json:"running_balance"`
}

// ReportServicer defines the contract for derived analytics views.
type ReportServicer interface {
	Summary(ctx context.Context) (*FinanceSummary, error)
	RunningBalance(window int) []analytics.BalancePoint
}

// ObligationServicer defines the contract for recurring-obligation
// scheduling. Due returns proposals only; nothing enters the ledger
// until the treasurer confirms.
type ObligationServicer interface {
	Due(ref time.Time) []scheduler.Proposal
	Confirm(ruleID string, ref time.Time) (*models.Transaction, error)
}

// SnapshotServicer defines the contract for backup export and import.
type SnapshotServicer interface {
	Export() *models.Snapshot
	Import(doc []byte) error
}
