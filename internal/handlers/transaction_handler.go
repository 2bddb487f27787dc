package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/pagination"
	"choirfin/internal/services"
)

// TransactionHandler handles ledger-related requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransactionRequest represents the payload for recording a transaction.
// Amount is a pointer so a legitimate zero survives binding.
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category    string                 `json:"category" binding:"required,min=1,max=100"`
	Amount      *int64                 `json:"amount" binding:"required,gte=0"`
	Date        string                 `json:"date" binding:"omitempty,iso_date"`
	Description string                 `json:"description" binding:"max=500"`
	IsRecurring bool                   `json:"is_recurring"`
}

// CreateTransaction records a new ledger entry.
// @Summary     Record a transaction
// @Description Append an income or expense entry to the ledger. Flagging it
// @Description recurring also creates a monthly recurring rule from the same fields.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.ledgerService.AddTransaction(models.Transaction{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      *req.Amount,
		Date:        req.Date,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions lists ledger entries, newest first.
// @Summary     List transactions
// @Description Get a paginated list of ledger entries, optionally filtered to one month
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       month     query string false "Restrict to month (YYYY-MM)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.ledgerService.GetTransactions(page, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteTransaction removes a ledger entry.
// @Summary     Delete a transaction
// @Description Delete a ledger entry by id; deleting an unknown id is a no-op
// @Tags        transactions
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     204 "Deleted (or already absent)"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	// Idempotent: a duplicate delete (double click) answers 204 as well.
	if _, err := h.ledgerService.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
