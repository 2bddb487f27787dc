package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"choirfin/internal/services"
)

// ObligationHandler surfaces due recurring obligations and confirms them.
type ObligationHandler struct {
	obligationService services.ObligationServicer
}

// NewObligationHandler creates a new ObligationHandler.
func NewObligationHandler(obligationService services.ObligationServicer) *ObligationHandler {
	return &ObligationHandler{obligationService: obligationService}
}

// GetDue lists proposals for rules due at the reference date.
// @Summary     Due obligations
// @Description Proposed ledger entries for recurring rules due this period; nothing is inserted
// @Tags        obligations
// @Produce     json
// @Security    BearerAuth
// @Param       date query string false "Reference date (YYYY-MM-DD, default today)"
// @Success     200 {array} scheduler.Proposal
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /obligations [get]
func (h *ObligationHandler) GetDue(c *gin.Context) {
	ref, err := parseRefDate(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": h.obligationService.Due(ref)})
}

// Confirm materializes one due obligation into the ledger.
// @Summary     Confirm an obligation
// @Description Insert the proposed transaction for a due rule and mark the rule for this period
// @Tags        obligations
// @Produce     json
// @Security    BearerAuth
// @Param       id   path  string true  "Rule ID"
// @Param       date query string false "Reference date (YYYY-MM-DD, default today)"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Rule not found"
// @Failure     409 {object} ErrorResponse "Not due for this period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id}/confirm [post]
func (h *ObligationHandler) Confirm(c *gin.Context) {
	ref, err := parseRefDate(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.obligationService.Confirm(c.Param("id"), ref)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}
