package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/logger"
)

// ErrorResponse documents the JSON error envelope for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// parseRefDate parses the optional ?date=YYYY-MM-DD query parameter,
// defaulting to today. The obligation endpoints take it so the treasurer
// can preview a different reference day.
func parseRefDate(c *gin.Context) (time.Time, error) {
	v := c.Query("date")
	if v == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a YYYY-MM-DD calendar date")
	}
	return ref, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
