package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudgetRequest represents the payload for setting a category ceiling.
type UpsertBudgetRequest struct {
	Category string              `json:"category" binding:"required,min=1,max=100"`
	Limit    int64               `json:"limit" binding:"required,gt=0"`
	Period   models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
}

// UpsertBudget creates or overwrites the budget for a category.
// @Summary     Set a budget
// @Description Create or replace the spending ceiling for a category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [put]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpsertBudget(models.Budget{
		Category: req.Category,
		Limit:    req.Limit,
		Period:   req.Period,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgets lists all budgets.
// @Summary     Get budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Budget
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.budgetService.GetBudgets()})
}

// DeleteBudget removes the budget for a category.
// @Summary     Delete a budget
// @Description Remove the ceiling for a category; unknown categories are a no-op
// @Tags        budgets
// @Security    BearerAuth
// @Param       category path string true "Budget category"
// @Success     204 "Deleted (or already absent)"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if _, err := h.budgetService.DeleteBudget(c.Param("category")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
