package testutil

import (
	"fmt"
	"sync/atomic"

	"choirfin/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Transaction builds a ledger entry with a unique id.
func Transaction(txType models.TransactionType, category string, amount int64, date string) models.Transaction {
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", nextID()),
		Type:     txType,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
}

// Income builds an income entry.
func Income(amount int64, date string) models.Transaction {
	return Transaction(models.TransactionTypeIncome, "Quỹ thành viên", amount, date)
}

// Expense builds an expense entry in the given category.
func Expense(category string, amount int64, date string) models.Transaction {
	return Transaction(models.TransactionTypeExpense, category, amount, date)
}

// Budget builds a monthly ceiling for a category.
func Budget(category string, limit int64) models.Budget {
	return models.Budget{
		Category: category,
		Limit:    limit,
		Period:   models.BudgetPeriodMonthly,
	}
}

// Rule builds a monthly recurring rule with a unique id.
func Rule(txType models.TransactionType, category string, amount int64, dayOfMonth int) models.RecurringRule {
	return models.RecurringRule{
		ID:         fmt.Sprintf("rule-%d", nextID()),
		Type:       txType,
		Category:   category,
		Amount:     amount,
		Frequency:  models.RuleFrequencyMonthly,
		DayOfMonth: dayOfMonth,
	}
}
