package services

import (
	"time"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/scheduler"
	"choirfin/internal/store"
)

// obligationService materializes due recurring rules into ledger
// entries once the treasurer confirms them.
type obligationService struct {
	ledger    *store.Ledger
	rules     *store.RuleSet
	persister Persister
}

// NewObligationService creates a new ObligationServicer.
func NewObligationService(ledger *store.Ledger, rules *store.RuleSet, persister Persister) ObligationServicer {
	return &obligationService{ledger: ledger, rules: rules, persister: persister}
}

// Due returns the proposals for all rules due at the reference time.
// Nothing is inserted; each proposal waits for an explicit Confirm.
func (s *obligationService) Due(ref time.Time) []scheduler.Proposal {
	return scheduler.DueObligations(s.rules.List(), ref)
}

// Confirm materializes one due rule. The proposed transaction enters
// the ledger first, then the rule is marked for the period; a crash in
// between leaves at most a re-proposed obligation, never a marked rule
// without its transaction.
func (s *obligationService) Confirm(ruleID string, ref time.Time) (*models.Transaction, error) {
	rule, ok := s.rules.Get(ruleID)
	if !ok {
		return nil, apperrors.ErrRuleNotFound
	}
	if !scheduler.IsDue(rule, ref) {
		return nil, apperrors.ErrObligationNotDue
	}

	proposals := scheduler.DueObligations([]models.RecurringRule{rule}, ref)
	tx := proposals[0].Transaction

	id, err := s.ledger.Add(tx)
	if err != nil {
		return nil, err
	}
	if err := s.persister.SaveTransactions(s.ledger.List()); err != nil {
		s.ledger.Remove(id)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.rules.MarkMaterialized(ruleID, scheduler.Period(ref))
	if err := s.persister.SaveRecurring(s.rules.List()); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	saved, _ := s.ledger.Get(id)
	return &saved, nil
}
