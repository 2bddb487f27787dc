// Package errors provides custom error types for the choirfin API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrTransactionNotFound  = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrDuplicateTransaction = &AppError{Code: "DUPLICATE_TRANSACTION", Message: "A transaction with this ID already exists", StatusCode: http.StatusConflict}
)

// Recurring rule errors.
var (
	ErrRuleNotFound      = &AppError{Code: "RULE_NOT_FOUND", Message: "Recurring rule not found", StatusCode: http.StatusNotFound}
	ErrDuplicateRule     = &AppError{Code: "DUPLICATE_RULE", Message: "A recurring rule with this ID already exists", StatusCode: http.StatusConflict}
	ErrObligationNotDue  = &AppError{Code: "OBLIGATION_NOT_DUE", Message: "Recurring rule is not due for this period", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Import/export errors.
var (
	ErrMalformedSnapshot = &AppError{Code: "MALFORMED_SNAPSHOT", Message: "Snapshot document could not be parsed or validated", StatusCode: http.StatusBadRequest}
)
