package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"choirfin/internal/models"
)

// CategoryHandler serves the recommended category labels.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetRecommended lists the suggested category labels. The set is
// advisory only; transactions may carry any label.
// @Summary     Recommended categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} string
// @Router      /categories [get]
func (h *CategoryHandler) GetRecommended(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.RecommendedCategories})
}
