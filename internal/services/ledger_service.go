package services

import (
	"sort"
	"strings"
	"time"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/pagination"
	"choirfin/internal/store"
)

const isoDateLayout = "2006-01-02"

// ledgerService handles transaction-related business logic.
type ledgerService struct {
	ledger    *store.Ledger
	rules     *store.RuleSet
	persister Persister
}

// NewLedgerService creates a new LedgerServicer. The rule set is needed
// because saving a transaction flagged as recurring also creates its
// companion recurring rule.
func NewLedgerService(ledger *store.Ledger, rules *store.RuleSet, persister Persister) LedgerServicer {
	return &ledgerService{ledger: ledger, rules: rules, persister: persister}
}

// validateTransaction rejects data-entry errors before anything reaches
// the ledger. The stores and analytics assume valid records and never
// re-validate.
func validateTransaction(tx models.Transaction) error {
	if !tx.Type.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown transaction type")
	}
	if strings.TrimSpace(tx.Category) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if tx.Amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if _, err := time.Parse(isoDateLayout, tx.Date); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a YYYY-MM-DD calendar date")
	}
	return nil
}

// AddTransaction validates and appends a transaction, persisting the new
// ledger snapshot. When the transaction is flagged recurring, a
// companion rule is created afterwards from the same fields — always in
// that order, so a crash in between never leaves a rule without its
// originating transaction.
func (s *ledgerService) AddTransaction(tx models.Transaction) (*models.Transaction, error) {
	if tx.Date == "" {
		tx.Date = time.Now().Format(isoDateLayout)
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	id, err := s.ledger.Add(tx)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	if err := s.persister.SaveTransactions(s.ledger.List()); err != nil {
		s.ledger.Remove(id)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if tx.IsRecurring {
		if err := s.addCompanionRule(tx); err != nil {
			return nil, err
		}
	}

	saved, _ := s.ledger.Get(id)
	return &saved, nil
}

// addCompanionRule derives a monthly recurring rule from a transaction
// flagged as recurring, due each month on the transaction's day-of-month.
// The flag is a creation-time trigger only; the rule keeps no link back
// to the transaction.
func (s *ledgerService) addCompanionRule(tx models.Transaction) error {
	day, err := time.Parse(isoDateLayout, tx.Date)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rule := models.RecurringRule{
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
		Frequency:   models.RuleFrequencyMonthly,
		DayOfMonth:  day.Day(),
		// The originating transaction already covers this period.
		LastMaterializedPeriod: tx.Month(),
	}

	ruleID, err := s.rules.Add(rule)
	if err != nil {
		return err
	}
	if err := s.persister.SaveRecurring(s.rules.List()); err != nil {
		s.rules.Remove(ruleID)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTransactions returns a page of transactions, newest date first,
// optionally restricted to one YYYY-MM month.
func (s *ledgerService) GetTransactions(page pagination.PageRequest, month string) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	txs := s.ledger.List()
	if month != "" {
		filtered := txs[:0:0]
		for _, tx := range txs {
			if tx.Month() == month {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date > txs[j].Date
	})

	result := pagination.NewPageResponse(pagination.Slice(txs, page), page.Page, page.PageSize, int64(len(txs)))
	return &result, nil
}

// DeleteTransaction removes a transaction by id and persists the new
// snapshot. Deleting an unknown id is a harmless no-op: the boolean
// tells the caller whether anything changed, it is never an error.
func (s *ledgerService) DeleteTransaction(id string) (bool, error) {
	if !s.ledger.Remove(id) {
		return false, nil
	}
	if err := s.persister.SaveTransactions(s.ledger.List()); err != nil {
		return true, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return true, nil
}
