package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/llm/llmtest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds a server whose handlers are only exercised up to the
// request validation layer; nothing here reaches a service.
func newTestServer(cfg Config) *Server {
	return NewServer(nil, nil, nil, nil, nil, nil, nil, cfg, nil)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestEnvelope_ErrorShape(t *testing.T) {
	router := newTestServer(Config{}).Router()

	rec := doRequest(t, router, http.MethodPost, "/pattern-detector", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeMissingOrg, env.Error.Code)
	assert.NotEmpty(t, env.Error.Message)
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.NotEmpty(t, env.Meta.Timestamp)
}

func TestIngestEvents_MalformedBody(t *testing.T) {
	router := newTestServer(Config{}).Router()

	rec := doRequest(t, router, http.MethodPost, "/ingest-events", `{"events": "not-an-array"`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeInvalidBatch, env.Error.Code)
}

func TestExecuteGhost_MissingGhostID(t *testing.T) {
	router := newTestServer(Config{}).Router()

	for _, body := range []string{`{}`, `{"ghostId": ""}`, `not json`} {
		rec := doRequest(t, router, http.MethodPost, "/ghost-executor", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, CodeMissingGhost, env.Error.Code)
	}
}

func TestApproveGhost_MissingGhostID(t *testing.T) {
	router := newTestServer(Config{}).Router()

	rec := doRequest(t, router, http.MethodPost, "/approve-ghost", `{"action": "approve"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeMissingGhost, env.Error.Code)
}

func TestCreateGhostAndFeedback_MalformedBody(t *testing.T) {
	router := newTestServer(Config{}).Router()

	for _, path := range []string{"/ghosts", "/feedback"} {
		rec := doRequest(t, router, http.MethodPost, path, `{"broken`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success, path)
		require.NotNil(t, env.Error, path)
	}
}

func TestRouter_NoRouteAndNoMethod(t *testing.T) {
	router := newTestServer(Config{}).Router()

	rec := doRequest(t, router, http.MethodPost, "/unknown-endpoint", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeNotFound, env.Error.Code)

	rec = doRequest(t, router, http.MethodGet, "/ingest-events", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeMethodNotAllowed, env.Error.Code)
}

func TestCORS_Preflight(t *testing.T) {
	router := newTestServer(Config{ServiceToken: "secret"}).Router()

	// Preflight succeeds even on authenticated routes.
	rec := doRequest(t, router, http.MethodOptions, "/ingest-events", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	allowed := rec.Header().Get("Access-Control-Allow-Headers")
	for _, h := range []string{"authorization", "x-ghost-batch-id", "x-ghost-device"} {
		assert.Contains(t, allowed, h)
	}
}

func TestAuthMiddleware(t *testing.T) {
	router := newTestServer(Config{ServiceToken: "secret"}).Router()

	rec := doRequest(t, router, http.MethodPost, "/pattern-detector", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeUnauthorized, env.Error.Code)

	rec = doRequest(t, router, http.MethodPost, "/pattern-detector", `{}`,
		map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid token reaches the handler, which rejects the empty org.
	rec = doRequest(t, router, http.MethodPost, "/pattern-detector", `{}`,
		map[string]string{"Authorization": "Bearer secret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, CodeMissingOrg, env.Error.Code)

	// Health stays open.
	rec = doRequest(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID_PassthroughAndGeneration(t *testing.T) {
	router := newTestServer(Config{}).Router()

	rec := doRequest(t, router, http.MethodGet, "/health", "", map[string]string{
		"X-Request-Id": "req-42",
	})
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, "req-42", env.Meta.RequestID)

	rec = doRequest(t, router, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHealth(t *testing.T) {
	t.Run("healthy without dependencies", func(t *testing.T) {
		router := newTestServer(Config{}).Router()

		rec := doRequest(t, router, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "healthy", data["status"])
		assert.NotEmpty(t, data["version"])
	})

	t.Run("unhealthy llm degrades status", func(t *testing.T) {
		scripted := llmtest.NewScriptedClient()
		scripted.Unhealthy = true
		srv := NewServer(nil, scripted, nil, nil, nil, nil, nil, Config{}, nil)

		rec := doRequest(t, srv.Router(), http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		env := decodeEnvelope(t, rec)
		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "unhealthy", data["status"])
	})
}
