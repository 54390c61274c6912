package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ghostworks/ghostd/pkg/models"
)

// dispatch executes one tool invocation and returns (output, strategy, error).
func (e *Engine) dispatch(ctx context.Context, action *models.NodeAction, params map[string]any) (map[string]any, string, error) {
	switch action.Tool {
	case models.ToolAPICall:
		output, err := e.apiCall(ctx, action.Params)
		return output, "api", err

	case models.ToolNavigateTo, models.ToolClickElement, models.ToolInputText, models.ToolExtractData:
		// Browser actions are recorded for the client-side driver, not
		// performed here.
		strategy := "semantic"
		if s, ok := action.Params["selector_strategy"].(string); ok && s != "" {
			strategy = s
		}
		return map[string]any{
			"action": action.Tool,
			"params": action.Params,
			"note":   "Queued for client-side browser execution",
		}, strategy, nil

	case models.ToolHumanEscalation:
		reason, _ := action.Params["reason"].(string)
		return map[string]any{
			"escalated": true,
			"reason":    reason,
			"context":   params,
		}, "human", nil

	default:
		// Unknown tools are recorded, not fatal.
		return map[string]any{
			"error": fmt.Sprintf("unknown tool: %s", action.Tool),
		}, "unknown", nil
	}
}

// apiCall performs a real HTTP request described by the node params.
func (e *Engine) apiCall(ctx context.Context, params map[string]any) (map[string]any, error) {
	endpoint, _ := params["endpoint"].(string)
	if endpoint == "" {
		return nil, fmt.Errorf("api_call requires an endpoint")
	}
	method, _ := params["method"].(string)
	if method == "" {
		method = http.MethodGet
	}
	method = strings.ToUpper(method)

	var body io.Reader
	if raw, ok := params["body"]; ok && raw != nil {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if headers, ok := params["headers"].(map[string]any); ok {
		for k, v := range headers {
			if s, ok := v.(string); ok {
				req.Header.Set(k, s)
			}
		}
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	respHeaders := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		respHeaders[k] = resp.Header.Get(k)
	}

	// Parse JSON bodies when possible, keep raw text otherwise.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		parsed = string(raw)
	}

	return map[string]any{
		"status":  resp.StatusCode,
		"headers": respHeaders,
		"body":    parsed,
	}, nil
}
