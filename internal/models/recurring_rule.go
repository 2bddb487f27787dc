package models

import "time"

// RuleFrequency represents how often a recurring obligation falls due
type RuleFrequency string

const (
	RuleFrequencyMonthly RuleFrequency = "monthly"
)

// RecurringRule is a template for a periodically-due obligation. It is
// never itself a ledger entry: materialization appends a new Transaction
// and records the period here, nothing else about the rule changes.
//
// LastMaterializedPeriod holds the YYYY-MM period for which a transaction
// was last created from this rule. It is the authoritative de-duplication
// key for the scheduler: two rules with identical amount, category and
// description stay independently schedulable.
type RecurringRule struct {
	ID                     string          `gorm:"type:uuid;primaryKey" json:"id"`
	Type                   TransactionType `gorm:"not null" json:"type"`
	Category               string          `gorm:"not null" json:"category"`
	Amount                 int64           `gorm:"type:bigint;not null" json:"amount"`
	Description            string          `json:"description"`
	Frequency              RuleFrequency   `gorm:"not null;default:'monthly'" json:"frequency"`
	DayOfMonth             int             `gorm:"not null" json:"day_of_month"`
	LastMaterializedPeriod string          `json:"last_materialized_period,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
}
