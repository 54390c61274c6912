// Package llmtest provides a scripted Client implementation for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/ghostworks/ghostd/pkg/llm"
)

// ScriptedClient replays canned responses in order. Once the script is
// exhausted it returns the last response, or ErrDefault if set.
type ScriptedClient struct {
	mu        sync.Mutex
	responses []string
	calls     []*llm.CompletionRequest
	next      int

	// Err, when set, is returned by every Complete call.
	Err error
	// Unhealthy makes Healthy report false.
	Unhealthy bool
}

// NewScriptedClient creates a client that returns the given responses in order.
func NewScriptedClient(responses ...string) *ScriptedClient {
	return &ScriptedClient{responses: responses}
}

// Complete returns the next scripted response.
func (c *ScriptedClient) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, req)
	if c.Err != nil {
		return nil, c.Err
	}
	if len(c.responses) == 0 {
		return &llm.CompletionResult{FinishReason: llm.FinishStop}, nil
	}

	idx := c.next
	if idx >= len(c.responses) {
		idx = len(c.responses) - 1
	}
	c.next++

	return &llm.CompletionResult{
		Content:      c.responses[idx],
		FinishReason: llm.FinishStop,
	}, nil
}

// Healthy reports the configured health state.
func (c *ScriptedClient) Healthy(context.Context) bool {
	return !c.Unhealthy
}

// Calls returns the requests seen so far.
func (c *ScriptedClient) Calls() []*llm.CompletionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*llm.CompletionRequest, len(c.calls))
	copy(out, c.calls)
	return out
}
