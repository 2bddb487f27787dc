// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
		_ = v.RegisterValidation("rule_frequency", validateRuleFrequency)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	return fl.Field().String() == "monthly"
}

func validateRuleFrequency(fl validator.FieldLevel) bool {
	return fl.Field().String() == "monthly"
}

// validateISODate accepts zero-padded YYYY-MM-DD calendar dates only.
// The ledger sorts dates as strings, which is only safe with this format.
func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
