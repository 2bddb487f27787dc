// Package analytics derives read-only views from ledger and budget
// snapshots. Every function is pure and stateless: callers pass the
// current snapshot and get a fresh result, with no caching to
// invalidate after a mutation. All arithmetic is integer (whole VND),
// so there is no rounding policy downstream.
package analytics

import (
	"sort"

	"choirfin/internal/models"
)

// Totals summarizes a ledger: income, expense and their difference.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// CategorySpend is one row of the category breakdown: expense total per
// category with the matching budget ceiling, or 0 when none is set.
type CategorySpend struct {
	Category string `json:"category"`
	Spent    int64  `json:"spent"`
	Limit    int64  `json:"limit"`
}

// BalancePoint is one point of the running-balance series.
type BalancePoint struct {
	Date    string `json:"date"`
	Balance int64  `json:"balance"`
}

// Utilization is the spent-to-limit ratio for a budgeted category.
// Percent is clamped to 100 for display; IsOver is computed from the
// raw values, so it can be true while Percent reads 100.
type Utilization struct {
	Percent int  `json:"percent"`
	IsOver  bool `json:"is_over"`
}

// ComputeTotals sums income and expense over the snapshot. An empty
// ledger yields 0/0/0.
func ComputeTotals(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income += tx.Amount
		case models.TransactionTypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// CategoryBreakdown groups expense transactions by category and pairs
// each group with its budget limit. Rows are sorted descending by spent;
// ties keep first-encountered category order, which the dashboard relies
// on for its "largest spender first" display.
func CategoryBreakdown(txs []models.Transaction, budgets []models.Budget) []CategorySpend {
	limits := make(map[string]int64, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.Limit
	}

	pos := make(map[string]int)
	rows := make([]CategorySpend, 0)
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		i, seen := pos[tx.Category]
		if !seen {
			i = len(rows)
			pos[tx.Category] = i
			rows = append(rows, CategorySpend{Category: tx.Category, Limit: limits[tx.Category]})
		}
		rows[i].Spent += tx.Amount
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Spent > rows[j].Spent
	})
	return rows
}

// RunningBalanceSeries sorts the snapshot ascending by date and emits
// the cumulative income-minus-expense balance after each transaction,
// returning only the last window points. This is a cumulative scan, not
// a per-day aggregate: two same-day transactions produce two points, in
// their original relative order (the sort is stable and dates are
// zero-padded ISO strings, so lexicographic comparison is safe).
func RunningBalanceSeries(txs []models.Transaction, window int) []BalancePoint {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	points := make([]BalancePoint, 0, len(sorted))
	var balance int64
	for _, tx := range sorted {
		switch tx.Type {
		case models.TransactionTypeIncome:
			balance += tx.Amount
		case models.TransactionTypeExpense:
			balance -= tx.Amount
		}
		points = append(points, BalancePoint{Date: tx.Date, Balance: balance})
	}

	if window > 0 && len(points) > window {
		points = points[len(points)-window:]
	}
	return points
}

// BudgetUtilization computes the clamped spent-to-limit percentage.
// A non-positive limit means no ceiling is configured: percent is 0 and
// the budget is never considered exceeded.
func BudgetUtilization(spent, limit int64) Utilization {
	if limit <= 0 {
		return Utilization{}
	}
	u := Utilization{IsOver: spent > limit}
	if spent >= limit {
		u.Percent = 100
	} else {
		u.Percent = int(spent * 100 / limit)
	}
	return u
}
