// Package store holds the three mutable collections behind the Finance
// view: the transaction ledger, the budget registry and the recurring
// rule set. Each is guarded by its own RWMutex and hands out defensive
// copies, so analytics always run on a point-in-time snapshot outside
// the lock. Persistence is the caller's concern; the stores own nothing
// durable.
package store

import (
	"sync"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/uuid"
)

// Ledger is the append/delete collection of transactions and the single
// source of truth for money movement. Insertion order is preserved: the
// running-balance series and category breakdown both depend on it for
// stable tie-breaking.
type Ledger struct {
	mu    sync.RWMutex
	txs   []models.Transaction
	index map[string]int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// Add appends a transaction and returns its id. When the transaction
// carries no id, a time-ordered UUIDv7 is assigned. A duplicate id is a
// data-integrity error.
func (l *Ledger) Add(tx models.Transaction) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New()
	}
	if _, exists := l.index[tx.ID]; exists {
		return "", apperrors.ErrDuplicateTransaction
	}

	l.index[tx.ID] = len(l.txs)
	l.txs = append(l.txs, tx)
	return tx.ID, nil
}

// Remove deletes the transaction with the given id. Unknown ids are a
// no-op returning false, so duplicate delete requests are harmless.
func (l *Ledger) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	pos, exists := l.index[id]
	if !exists {
		return false
	}

	l.txs = append(l.txs[:pos], l.txs[pos+1:]...)
	delete(l.index, id)
	for i := pos; i < len(l.txs); i++ {
		l.index[l.txs[i].ID] = i
	}
	return true
}

// Get returns the transaction with the given id, if present.
func (l *Ledger) Get(id string) (models.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pos, exists := l.index[id]
	if !exists {
		return models.Transaction{}, false
	}
	return l.txs[pos], true
}

// List returns a point-in-time copy of all transactions in insertion order.
func (l *Ledger) List() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Len returns the number of transactions currently in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.txs)
}

// Replace swaps the whole collection, e.g. on startup load or import.
func (l *Ledger) Replace(txs []models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.txs = make([]models.Transaction, len(txs))
	copy(l.txs, txs)
	l.index = make(map[string]int, len(txs))
	for i, tx := range l.txs {
		l.index[tx.ID] = i
	}
}
