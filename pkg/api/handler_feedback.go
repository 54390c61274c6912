package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostworks/ghostd/pkg/services"
)

// SubmitFeedback handles POST /feedback.
func (s *Server) SubmitFeedback(c *gin.Context) {
	var req services.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInternalError, "invalid request body")
		return
	}

	fb, err := s.feedback.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		if services.IsValidationError(err) {
			code := CodeInternalError
			if req.OrgID == "" {
				code = CodeMissingOrg
			}
			respondError(c, http.StatusBadRequest, code, err.Error())
			return
		}
		s.logger.Error("feedback submission failed", "error", err)
		respondError(c, http.StatusInternalServerError, CodeInsertFailed, "failed to record feedback")
		return
	}

	respond(c, http.StatusCreated, gin.H{"feedbackId": fb.ID})
}
