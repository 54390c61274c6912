package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostworks/ghostd/pkg/services"
)

// ApproveGhost handles POST /approve-ghost.
func (s *Server) ApproveGhost(c *gin.Context) {
	var req services.ApproveGhostRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GhostID == "" {
		respondError(c, http.StatusBadRequest, CodeMissingGhost, "ghost_id is required")
		return
	}

	result, err := s.ghosts.ApproveGhost(c.Request.Context(), req)
	if err != nil {
		switch {
		case services.IsValidationError(err):
			respondError(c, http.StatusBadRequest, CodeInternalError, err.Error())
		case errors.Is(err, services.ErrNotFound):
			respondError(c, http.StatusNotFound, CodeGhostNotFound, "ghost not found")
		default:
			s.logger.Error("ghost approval failed", "ghost_id", req.GhostID, "error", err)
			respondError(c, http.StatusInternalServerError, CodeInternalError, "failed to update ghost")
		}
		return
	}

	respond(c, http.StatusOK, result)
}

// CreateGhost handles POST /ghosts: the dashboard path for inserting a Ghost
// directly. It converges on the same pending_approval invariant as pattern
// promotion.
func (s *Server) CreateGhost(c *gin.Context) {
	var req services.CreateGhostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInternalError, "invalid request body")
		return
	}

	g, err := s.ghosts.CreateGhost(c.Request.Context(), req)
	if err != nil {
		if services.IsValidationError(err) {
			code := CodeInternalError
			if req.OrgID == "" {
				code = CodeMissingOrg
			}
			respondError(c, http.StatusBadRequest, code, err.Error())
			return
		}
		s.logger.Error("ghost creation failed", "error", err)
		respondError(c, http.StatusInternalServerError, CodeInsertFailed, "failed to create ghost")
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"ghostId": g.ID,
		"status":  string(g.Status),
		"version": g.Version,
	})
}
