// Package api exposes the HTTP surface: event ingestion, pattern detection,
// ghost execution and governance, wrapped in a uniform response envelope.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostworks/ghostd/pkg/database"
	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/services"
)

// Server wires the service layer to HTTP handlers.
type Server struct {
	db         *database.Client
	llm        llm.Client
	ingest     *services.IngestService
	patterns   *services.PatternService
	ghosts     *services.GhostService
	executions *services.ExecutionService
	feedback   *services.FeedbackService
	logger     *slog.Logger

	serviceToken string
}

// Config holds server construction options.
type Config struct {
	// ServiceToken, when non-empty, is required as a bearer token on every
	// request.
	ServiceToken string
}

// NewServer creates an API server.
func NewServer(
	db *database.Client,
	llmClient llm.Client,
	ingest *services.IngestService,
	patterns *services.PatternService,
	ghosts *services.GhostService,
	executions *services.ExecutionService,
	feedback *services.FeedbackService,
	cfg Config,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:           db,
		llm:          llmClient,
		ingest:       ingest,
		patterns:     patterns,
		ghosts:       ghosts,
		executions:   executions,
		feedback:     feedback,
		logger:       logger,
		serviceToken: cfg.ServiceToken,
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(corsMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, CodeNotFound, "not found")
	})

	r.GET("/health", s.Health)

	authed := r.Group("/", authMiddleware(s.serviceToken))
	authed.POST("/ingest-events", s.IngestEvents)
	authed.POST("/pattern-detector", s.DetectPatterns)
	authed.POST("/ghost-executor", s.ExecuteGhost)
	authed.POST("/approve-ghost", s.ApproveGhost)
	authed.POST("/ghosts", s.CreateGhost)
	authed.POST("/feedback", s.SubmitFeedback)

	return r
}
