package services

import (
	"testing"

	"choirfin/internal/models"
	"choirfin/internal/store"
	"choirfin/internal/testutil"
)

func newRecurringFixture() (*store.RuleSet, *fakePersister, RecurringServicer) {
	rules := store.NewRuleSet()
	persister := &fakePersister{}
	return rules, persister, NewRecurringService(rules, persister)
}

func TestAddRule(t *testing.T) {
	t.Run("assigns id and defaults frequency", func(t *testing.T) {
		rules, persister, svc := newRecurringFixture()

		saved, err := svc.AddRule(models.RecurringRule{
			Type:       models.TransactionTypeExpense,
			Category:   "Cơ sở vật chất",
			Amount:     200_000,
			DayOfMonth: 15,
		})
		testutil.AssertNoError(t, err)
		if saved.ID == "" {
			t.Fatal("expected an assigned id")
		}
		if saved.Frequency != models.RuleFrequencyMonthly {
			t.Errorf("expected monthly default, got %q", saved.Frequency)
		}
		if len(rules.List()) != 1 || persister.ruleSaves != 1 {
			t.Errorf("expected one stored and persisted rule, got %d stored / %d saves", len(rules.List()), persister.ruleSaves)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, _, svc := newRecurringFixture()

		cases := []struct {
			name string
			rule models.RecurringRule
		}{
			{"unknown type", models.RecurringRule{Type: "transfer", Category: "Cơ sở vật chất", Amount: 1, DayOfMonth: 15}},
			{"empty category", models.RecurringRule{Type: models.TransactionTypeExpense, Category: " ", Amount: 1, DayOfMonth: 15}},
			{"negative amount", models.RecurringRule{Type: models.TransactionTypeExpense, Category: "Cơ sở vật chất", Amount: -1, DayOfMonth: 15}},
			{"day too low", models.RecurringRule{Type: models.TransactionTypeExpense, Category: "Cơ sở vật chất", Amount: 1, DayOfMonth: 0}},
			{"day too high", models.RecurringRule{Type: models.TransactionTypeExpense, Category: "Cơ sở vật chất", Amount: 1, DayOfMonth: 32}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.AddRule(tc.rule)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})

	t.Run("rolls back on persistence failure", func(t *testing.T) {
		rules, persister, svc := newRecurringFixture()
		persister.failRecurring = true

		_, err := svc.AddRule(testutil.Rule(models.TransactionTypeExpense, "Cơ sở vật chất", 200_000, 15))
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
		if len(rules.List()) != 0 {
			t.Errorf("expected rule set rollback, got %d rules", len(rules.List()))
		}
	})
}

func TestDeleteRule(t *testing.T) {
	rules, _, svc := newRecurringFixture()
	saved, err := svc.AddRule(testutil.Rule(models.TransactionTypeExpense, "Cơ sở vật chất", 200_000, 15))
	testutil.AssertNoError(t, err)

	removed, err := svc.DeleteRule(saved.ID)
	testutil.AssertNoError(t, err)
	if !removed || len(rules.List()) != 0 {
		t.Fatalf("expected rule removed, removed=%v remaining=%d", removed, len(rules.List()))
	}

	removed, err = svc.DeleteRule(saved.ID)
	testutil.AssertNoError(t, err)
	if removed {
		t.Error("expected repeat delete to be a no-op")
	}
}
