package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/services"
)

// IngestEvents handles POST /ingest-events. Valid batches are accepted with
// 202 before pattern detection runs; the detector is triggered asynchronously
// by the ingest service.
func (s *Server) IngestEvents(c *gin.Context) {
	var batch models.SecureEventBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidBatch, "request body must be a JSON batch with an events array")
		return
	}

	deviceFingerprint := c.GetHeader("X-Ghost-Device")
	if batch.BatchID == "" {
		batch.BatchID = c.GetHeader("X-Ghost-Batch-Id")
	}

	result, err := s.ingest.Ingest(c.Request.Context(), &batch, deviceFingerprint)
	if err != nil {
		switch {
		case services.IsValidationError(err):
			respondError(c, http.StatusBadRequest, CodeInvalidBatch, err.Error())
		case errors.Is(err, services.ErrBatchTooLarge):
			respondError(c, http.StatusBadRequest, CodeBatchTooLarge, err.Error())
		case errors.Is(err, services.ErrRateLimited):
			c.Header("Retry-After", "60")
			respondError(c, http.StatusTooManyRequests, CodeRateLimited, "per-device event rate exceeded")
		default:
			s.logger.Error("ingest failed", "error", err)
			respondError(c, http.StatusInternalServerError, CodeInsertFailed, "failed to store events")
		}
		return
	}

	respond(c, http.StatusAccepted, result)
}
