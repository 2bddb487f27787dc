package store

import (
	"testing"

	"choirfin/internal/models"
	"choirfin/internal/testutil"
)

func TestRuleSetAddRemove(t *testing.T) {
	t.Run("assigns_id_when_absent", func(t *testing.T) {
		rules := NewRuleSet()
		id, err := rules.Add(models.RecurringRule{
			Type:       models.TransactionTypeExpense,
			Category:   "Cơ sở vật chất",
			Amount:     200_000,
			Frequency:  models.RuleFrequencyMonthly,
			DayOfMonth: 15,
		})
		testutil.AssertNoError(t, err)
		if id == "" {
			t.Fatal("expected a generated id")
		}
	})

	t.Run("rejects_duplicate_id", func(t *testing.T) {
		rules := NewRuleSet()
		rule := testutil.Rule(models.TransactionTypeExpense, "Cơ sở vật chất", 200_000, 15)

		_, err := rules.Add(rule)
		testutil.AssertNoError(t, err)
		_, err = rules.Add(rule)
		testutil.AssertAppError(t, err, "DUPLICATE_RULE")
	})

	t.Run("remove_is_idempotent", func(t *testing.T) {
		rules := NewRuleSet()
		id, _ := rules.Add(testutil.Rule(models.TransactionTypeExpense, "Cơ sở vật chất", 200_000, 15))

		if !rules.Remove(id) {
			t.Error("expected first remove to report true")
		}
		if rules.Remove(id) {
			t.Error("expected second remove to report false")
		}
	})
}

func TestRuleSetMarkMaterialized(t *testing.T) {
	rules := NewRuleSet()
	id, _ := rules.Add(testutil.Rule(models.TransactionTypeExpense, "Cơ sở vật chất", 200_000, 15))

	if !rules.MarkMaterialized(id, "2024-02") {
		t.Fatal("expected mark on existing rule to report true")
	}

	rule, _ := rules.Get(id)
	if rule.LastMaterializedPeriod != "2024-02" {
		t.Errorf("expected period 2024-02, got %q", rule.LastMaterializedPeriod)
	}
	if rule.Amount != 200_000 || rule.DayOfMonth != 15 {
		t.Error("marking a period must not change any other rule field")
	}

	if rules.MarkMaterialized("missing", "2024-02") {
		t.Error("expected mark on unknown rule to report false")
	}
}
