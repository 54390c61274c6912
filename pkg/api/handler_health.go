package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghostworks/ghostd/pkg/database"
	"github.com/ghostworks/ghostd/pkg/version"
)

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := gin.H{"status": "healthy", "version": version.Full()}
	healthy := true

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		status["database"] = dbHealth
		if err != nil {
			healthy = false
		}
	}
	if s.llm != nil {
		llmOK := s.llm.Healthy(ctx)
		status["llm"] = gin.H{"healthy": llmOK}
		if !llmOK {
			healthy = false
		}
	}

	if !healthy {
		status["status"] = "unhealthy"
		respond(c, http.StatusServiceUnavailable, status)
		return
	}
	respond(c, http.StatusOK, status)
}
