package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostworks/ghostd/pkg/executor"
	"github.com/ghostworks/ghostd/pkg/services"
)

// ExecuteGhostRequest runs one Ghost.
type ExecuteGhostRequest struct {
	GhostID    string         `json:"ghostId"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Trigger    string         `json:"trigger,omitempty"`
}

// ExecuteGhost handles POST /ghost-executor.
func (s *Server) ExecuteGhost(c *gin.Context) {
	var req ExecuteGhostRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GhostID == "" {
		respondError(c, http.StatusBadRequest, CodeMissingGhost, "ghostId is required")
		return
	}

	result, err := s.executions.ExecuteGhost(c.Request.Context(), req.GhostID, req.Parameters, req.Trigger)
	if err != nil {
		switch {
		case errors.Is(err, executor.ErrGhostNotFound):
			respondError(c, http.StatusNotFound, CodeGhostNotFound, "ghost not found")
		case errors.Is(err, executor.ErrGhostNotApproved), errors.Is(err, services.ErrExecutionBlocked):
			respondError(c, http.StatusForbidden, CodeGhostNotApproved, err.Error())
		case errors.Is(err, executor.ErrRateLimited):
			c.Header("Retry-After", "60")
			respondError(c, http.StatusTooManyRequests, CodeRateLimited, "org execution rate exceeded")
		default:
			s.logger.Error("execution failed", "ghost_id", req.GhostID, "error", err)
			respondError(c, http.StatusInternalServerError, CodeExecutionError, "execution failed")
		}
		return
	}

	respond(c, http.StatusOK, gin.H{
		"executionId": result.ExecutionID,
		"status":      result.Status,
		"steps":       result.Steps,
	})
}
