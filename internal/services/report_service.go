package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"choirfin/internal/analytics"
	"choirfin/internal/store"
)

// reportService derives dashboard views from store snapshots. It holds
// no state of its own: every call takes fresh snapshots and recomputes,
// so results are always consistent with the stores at call time.
type reportService struct {
	ledger        *store.Ledger
	budgets       *store.BudgetRegistry
	balanceWindow int
}

// NewReportService creates a new ReportServicer. balanceWindow is the
// default number of running-balance points in the summary.
func NewReportService(ledger *store.Ledger, budgets *store.BudgetRegistry, balanceWindow int) ReportServicer {
	return &reportService{ledger: ledger, budgets: budgets, balanceWindow: balanceWindow}
}

// Summary computes totals, the category breakdown with budget
// utilization, and the recent running-balance series over a single
// point-in-time snapshot. The three aggregations are independent
// CPU-bound scans, so they run concurrently.
func (s *reportService) Summary(ctx context.Context) (*FinanceSummary, error) {
	txs := s.ledger.List()
	budgets := s.budgets.List()

	var (
		totals     analytics.Totals
		categories []CategoryReport
		series     []analytics.BalancePoint
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals = analytics.ComputeTotals(txs)
		return nil
	})
	g.Go(func() error {
		rows := analytics.CategoryBreakdown(txs, budgets)
		categories = make([]CategoryReport, len(rows))
		for i, row := range rows {
			categories[i] = CategoryReport{
				CategorySpend: row,
				Utilization:   analytics.BudgetUtilization(row.Spent, row.Limit),
			}
		}
		return nil
	})
	g.Go(func() error {
		series = analytics.RunningBalanceSeries(txs, s.balanceWindow)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &FinanceSummary{
		Totals:         totals,
		Categories:     categories,
		RunningBalance: series,
	}, nil
}

// RunningBalance computes the series alone with a caller-chosen window.
// A window of zero or less falls back to the configured default.
func (s *reportService) RunningBalance(window int) []analytics.BalancePoint {
	if window <= 0 {
		window = s.balanceWindow
	}
	return analytics.RunningBalanceSeries(s.ledger.List(), window)
}
