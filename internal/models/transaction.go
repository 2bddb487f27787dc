package models

import "time"

// TransactionType represents the direction of money movement
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is an immutable fact of money movement in the choir ledger.
// Amounts are whole VND (the smallest currency unit); dates are ISO 8601
// calendar dates with no time component, so lexicographic order is
// chronological order. Corrections are modeled as delete + add; there is
// no update.
type Transaction struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Date        string          `gorm:"not null;index" json:"date"`
	Description string          `json:"description"`
	IsRecurring bool            `gorm:"default:false" json:"is_recurring"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Month returns the YYYY-MM prefix of the transaction date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}
