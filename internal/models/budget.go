package models

import "time"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// Budget is a spending ceiling for a category within a period. The
// category is the key: at most one budget exists per category, and
// storing a second one overwrites the first. The limit shares the
// whole-VND unit with Transaction.Amount. A budget's category does not
// have to match any transaction category; an unmatched budget simply
// reports zero spend.
type Budget struct {
	Category  string       `gorm:"primaryKey" json:"category"`
	Limit     int64        `gorm:"column:limit_amount;type:bigint;not null" json:"limit"`
	Period    BudgetPeriod `gorm:"not null;default:'monthly'" json:"period"`
	UpdatedAt time.Time    `json:"updated_at"`
}
