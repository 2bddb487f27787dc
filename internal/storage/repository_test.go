package storage

import (
	"testing"

	"choirfin/internal/models"
	"choirfin/internal/testutil"
)

func TestTransactionRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	txs := []models.Transaction{
		testutil.Income(1_000_000, "2024-01-05"),
		testutil.Expense("Liên hoan", 300_000, "2024-01-10"),
	}
	testutil.AssertNoError(t, repo.SaveTransactions(txs))

	loaded, err := repo.LoadTransactions()
	testutil.AssertNoError(t, err)
	if len(loaded) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(loaded))
	}

	byID := make(map[string]models.Transaction, len(loaded))
	for _, tx := range loaded {
		byID[tx.ID] = tx
	}
	for _, want := range txs {
		got, ok := byID[want.ID]
		if !ok {
			t.Fatalf("transaction %q missing after round trip", want.ID)
		}
		if got.Type != want.Type || got.Category != want.Category || got.Amount != want.Amount || got.Date != want.Date {
			t.Errorf("round trip changed %q: %+v != %+v", want.ID, got, want)
		}
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	testutil.AssertNoError(t, repo.SaveTransactions([]models.Transaction{
		testutil.Income(1_000_000, "2024-01-05"),
		testutil.Income(2_000_000, "2024-01-06"),
	}))

	replacement := []models.Transaction{testutil.Expense("Liên hoan", 300_000, "2024-02-01")}
	testutil.AssertNoError(t, repo.SaveTransactions(replacement))

	loaded, err := repo.LoadTransactions()
	testutil.AssertNoError(t, err)
	if len(loaded) != 1 {
		t.Fatalf("expected replacement to drop previous rows, got %d", len(loaded))
	}
	if loaded[0].ID != replacement[0].ID {
		t.Errorf("expected %q, got %q", replacement[0].ID, loaded[0].ID)
	}
}

func TestSaveEmptyCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	testutil.AssertNoError(t, repo.SaveTransactions([]models.Transaction{testutil.Income(1, "2024-01-01")}))
	testutil.AssertNoError(t, repo.SaveTransactions(nil))

	loaded, err := repo.LoadTransactions()
	testutil.AssertNoError(t, err)
	if len(loaded) != 0 {
		t.Errorf("expected empty ledger, got %d rows", len(loaded))
	}
}

func TestBudgetRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	budgets := []models.Budget{
		testutil.Budget("Liên hoan", 1_000_000),
		testutil.Budget("Trang phục", 2_000_000),
	}
	testutil.AssertNoError(t, repo.SaveBudgets(budgets))

	loaded, err := repo.LoadBudgets()
	testutil.AssertNoError(t, err)
	if len(loaded) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(loaded))
	}
	for _, b := range loaded {
		if b.Limit == 0 || b.Period != models.BudgetPeriodMonthly {
			t.Errorf("round trip lost budget fields: %+v", b)
		}
	}
}

func TestRecurringRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	rule := testutil.Rule(models.TransactionTypeExpense, "Cơ sở vật chất", 200_000, 15)
	rule.LastMaterializedPeriod = "2024-01"
	testutil.AssertNoError(t, repo.SaveRecurring([]models.RecurringRule{rule}))

	loaded, err := repo.LoadRecurring()
	testutil.AssertNoError(t, err)
	if len(loaded) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(loaded))
	}
	got := loaded[0]
	if got.DayOfMonth != 15 || got.LastMaterializedPeriod != "2024-01" {
		t.Errorf("round trip changed rule: %+v", got)
	}
}
