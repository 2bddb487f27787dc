package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/services"
)

// maxSnapshotBytes caps import payloads at 10 MiB.
const maxSnapshotBytes = 10 << 20

// SnapshotHandler handles backup export and import.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Export serves the full backup document.
// @Summary     Export snapshot
// @Description Download all transactions, budgets and recurring rules as one document
// @Tags        snapshot
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Snapshot
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /export [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="choirfin-backup.json"`)
	c.JSON(http.StatusOK, h.snapshotService.Export())
}

// Import replaces all three collections from an uploaded document.
// @Summary     Import snapshot
// @Description Replace all collections from a backup document; a malformed document changes nothing
// @Tags        snapshot
// @Accept      json
// @Security    BearerAuth
// @Param       request body models.Snapshot true "Backup document"
// @Success     204 "Imported"
// @Failure     400 {object} ErrorResponse "Malformed snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /import [post]
func (h *SnapshotHandler) Import(c *gin.Context) {
	doc, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSnapshotBytes))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrMalformedSnapshot, err))
		return
	}

	if err := h.snapshotService.Import(doc); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
