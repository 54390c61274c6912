package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorBody carries a stable machine-readable code plus a human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries per-request diagnostics.
type Meta struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// Stable error codes consumed by the dashboard.
const (
	CodeInvalidBatch     = "INVALID_BATCH"
	CodeBatchTooLarge    = "BATCH_TOO_LARGE"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeMissingOrg       = "MISSING_ORG"
	CodeMissingGhost     = "MISSING_GHOST"
	CodeGhostNotFound    = "GHOST_NOT_FOUND"
	CodeGhostNotApproved = "GHOST_NOT_APPROVED"
	CodeInsertFailed     = "INSERT_FAILED"
	CodeExecutionError   = "EXECUTION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Meta:    buildMeta(c),
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
		Meta:    buildMeta(c),
	})
}

func buildMeta(c *gin.Context) *Meta {
	return &Meta{
		RequestID: requestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
