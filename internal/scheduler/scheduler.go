// Package scheduler determines which recurring rules are due and turns
// them into proposed ledger entries. It never inserts anything itself:
// surfacing proposals to the treasurer and confirming them is the
// caller's job.
package scheduler

import (
	"fmt"
	"time"

	"choirfin/internal/models"
)

// Proposal pairs a due rule with a ready-to-insert transaction for the
// reference period. The transaction carries no id yet; the ledger
// assigns one on insert.
type Proposal struct {
	RuleID      string             `json:"rule_id"`
	Period      string             `json:"period"`
	Transaction models.Transaction `json:"transaction"`
}

// Period formats a reference time as the YYYY-MM period key.
func Period(ref time.Time) string {
	return ref.Format("2006-01")
}

// dueDay clamps a rule's day-of-month to the length of the reference
// month, so a rule on the 31st still falls due in February.
func dueDay(ref time.Time, dayOfMonth int) int {
	lastDay := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	if dayOfMonth > lastDay {
		return lastDay
	}
	return dayOfMonth
}

// IsDue reports whether a monthly rule is due at the reference time:
// the reference day has reached the rule's (clamped) day-of-month and
// no transaction has been materialized from it this period.
func IsDue(rule models.RecurringRule, ref time.Time) bool {
	if rule.Frequency != models.RuleFrequencyMonthly {
		return false
	}
	if rule.LastMaterializedPeriod == Period(ref) {
		return false
	}
	return ref.Day() >= dueDay(ref, rule.DayOfMonth)
}

// DueObligations returns one proposal per due rule, dated on the rule's
// due day of the reference month.
func DueObligations(rules []models.RecurringRule, ref time.Time) []Proposal {
	proposals := make([]Proposal, 0)
	for _, rule := range rules {
		if !IsDue(rule, ref) {
			continue
		}
		date := fmt.Sprintf("%04d-%02d-%02d", ref.Year(), int(ref.Month()), dueDay(ref, rule.DayOfMonth))
		proposals = append(proposals, Proposal{
			RuleID: rule.ID,
			Period: Period(ref),
			Transaction: models.Transaction{
				Type:        rule.Type,
				Category:    rule.Category,
				Amount:      rule.Amount,
				Date:        date,
				Description: rule.Description,
				IsRecurring: true,
			},
		})
	}
	return proposals
}
