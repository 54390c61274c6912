package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMiddleware assigns each request a UUID, exposed in the response
// header and the envelope meta.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// corsMiddleware applies permissive CORS for browser extension and dashboard
// callers. Preflight requests short-circuit with 200.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers",
			"authorization, content-type, x-client-info, apikey, x-ghost-batch-id, x-ghost-device")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// authMiddleware enforces the tenant service token when one is configured.
// An empty token disables authentication (local development).
func authMiddleware(serviceToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if serviceToken == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != serviceToken {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid or missing bearer token")
			c.Abort()
			return
		}
		c.Next()
	}
}
