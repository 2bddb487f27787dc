package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/services"
)

// RecurringHandler handles recurring-rule requests.
type RecurringHandler struct {
	recurringService services.RecurringServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRuleRequest represents the payload for a recurring-obligation template.
type CreateRuleRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category    string                 `json:"category" binding:"required,min=1,max=100"`
	Amount      *int64                 `json:"amount" binding:"required,gte=0"`
	Description string                 `json:"description" binding:"max=500"`
	Frequency   models.RuleFrequency   `json:"frequency" binding:"omitempty,rule_frequency"`
	DayOfMonth  int                    `json:"day_of_month" binding:"required,min=1,max=31"`
}

// CreateRule stores a recurring-obligation template.
// @Summary     Create a recurring rule
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRuleRequest true "Rule details"
// @Success     201 {object} models.RecurringRule "Rule created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rule, err := h.recurringService.AddRule(models.RecurringRule{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      *req.Amount,
		Description: req.Description,
		Frequency:   req.Frequency,
		DayOfMonth:  req.DayOfMonth,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

// GetRules lists all recurring rules.
// @Summary     Get recurring rules
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.RecurringRule
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring [get]
func (h *RecurringHandler) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": h.recurringService.GetRules()})
}

// DeleteRule removes a recurring rule.
// @Summary     Delete a recurring rule
// @Tags        recurring
// @Security    BearerAuth
// @Param       id path string true "Rule ID"
// @Success     204 "Deleted (or already absent)"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRule(c *gin.Context) {
	if _, err := h.recurringService.DeleteRule(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
