package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/services"
)

// ReportHandler serves derived analytics views.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary serves the full dashboard summary.
// @Summary     Finance summary
// @Description Totals, category breakdown with budget utilization, and recent running balance
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.FinanceSummary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRunningBalance serves the running-balance series.
// @Summary     Running balance series
// @Description Cumulative balance after each transaction in date order, last N points
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       window query int false "Number of points (default from config)"
// @Success     200 {array} analytics.BalancePoint
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/running-balance [get]
func (h *ReportHandler) GetRunningBalance(c *gin.Context) {
	window := 0
	if v := c.Query("window"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be a positive integer"))
			return
		}
		window = parsed
	}

	c.JSON(http.StatusOK, gin.H{"points": h.reportService.RunningBalance(window)})
}
