package services

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/store"
	"choirfin/internal/uuid"
)

// snapshotService implements backup export and atomic import over all
// three collections.
type snapshotService struct {
	ledger    *store.Ledger
	budgets   *store.BudgetRegistry
	rules     *store.RuleSet
	persister Persister
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(ledger *store.Ledger, budgets *store.BudgetRegistry, rules *store.RuleSet, persister Persister) SnapshotServicer {
	return &snapshotService{ledger: ledger, budgets: budgets, rules: rules, persister: persister}
}

// Export captures all three collections as one serializable document.
func (s *snapshotService) Export() *models.Snapshot {
	return &models.Snapshot{
		Version:        models.SnapshotVersion,
		ExportedAt:     time.Now().UTC(),
		Transactions:   s.ledger.List(),
		Budgets:        s.budgets.List(),
		RecurringRules: s.rules.List(),
	}
}

// Import replaces all three collections with the contents of an exported
// document. The import is atomic-fail: the whole document is parsed and
// validated up front, and a malformed document leaves every store
// untouched. Fields the document carries that this version does not know
// are skipped, and records missing an id get a fresh one.
func (s *snapshotService) Import(doc []byte) error {
	var snap models.Snapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return apperrors.Wrap(apperrors.ErrMalformedSnapshot, err)
	}

	if err := validateSnapshot(&snap); err != nil {
		return err
	}

	s.ledger.Replace(snap.Transactions)
	s.budgets.Replace(snap.Budgets)
	s.rules.Replace(snap.RecurringRules)

	if err := s.persister.SaveTransactions(snap.Transactions); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.persister.SaveBudgets(snap.Budgets); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.persister.SaveRecurring(snap.RecurringRules); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// validateSnapshot checks every record of the document and assigns ids
// where missing. It mutates only the parsed document, never the stores.
func validateSnapshot(snap *models.Snapshot) error {
	seenTx := make(map[string]bool, len(snap.Transactions))
	for i := range snap.Transactions {
		tx := &snap.Transactions[i]
		if tx.ID == "" {
			tx.ID = uuid.New()
		}
		if seenTx[tx.ID] {
			return apperrors.WithMessage(apperrors.ErrMalformedSnapshot, "duplicate transaction id: "+tx.ID)
		}
		seenTx[tx.ID] = true
		if err := validateTransaction(*tx); err != nil {
			return apperrors.WithMessage(apperrors.ErrMalformedSnapshot, "transaction "+tx.ID+": "+err.Error())
		}
	}

	seenCat := make(map[string]bool, len(snap.Budgets))
	for i := range snap.Budgets {
		b := &snap.Budgets[i]
		if strings.TrimSpace(b.Category) == "" || b.Limit <= 0 {
			return apperrors.WithMessage(apperrors.ErrMalformedSnapshot, "budget with empty category or non-positive limit")
		}
		if b.Period == "" {
			b.Period = models.BudgetPeriodMonthly
		}
		if seenCat[b.Category] {
			return apperrors.WithMessage(apperrors.ErrMalformedSnapshot, "duplicate budget category: "+b.Category)
		}
		seenCat[b.Category] = true
	}

	seenRule := make(map[string]bool, len(snap.RecurringRules))
	for i := range snap.RecurringRules {
		rule := &snap.RecurringRules[i]
		if rule.ID == "" {
			rule.ID = uuid.New()
		}
		if seenRule[rule.ID] {
			return apperrors.WithMessage(apperrors.ErrMalformedSnapshot, "duplicate rule id: "+rule.ID)
		}
		seenRule[rule.ID] = true
		if rule.Frequency == "" {
			rule.Frequency = models.RuleFrequencyMonthly
		}
		if err := validateRule(*rule); err != nil {
			return apperrors.WithMessage(apperrors.ErrMalformedSnapshot, "rule "+rule.ID+": "+err.Error())
		}
	}
	return nil
}
