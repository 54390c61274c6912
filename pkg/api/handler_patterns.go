package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetectPatternsRequest triggers detection for one org.
type DetectPatternsRequest struct {
	OrgID string `json:"orgId"`
}

// DetectPatterns handles POST /pattern-detector.
func (s *Server) DetectPatterns(c *gin.Context) {
	var req DetectPatternsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrgID == "" {
		respondError(c, http.StatusBadRequest, CodeMissingOrg, "orgId is required")
		return
	}

	patterns, err := s.patterns.DetectPatterns(c.Request.Context(), req.OrgID)
	if err != nil {
		s.logger.Error("pattern detection failed", "org_id", req.OrgID, "error", err)
		respondError(c, http.StatusInternalServerError, CodeInternalError, "pattern detection failed")
		return
	}

	respond(c, http.StatusOK, gin.H{
		"patternsFound": len(patterns),
		"patterns":      patterns,
	})
}
