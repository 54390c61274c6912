// Package llm provides the chat completion client used for abstraction
// lifting and execution planning.
package llm

import "context"

// Client is the interface consumed by the clustering and execution engines.
// Implementations must honor context cancellation.
type Client interface {
	// Complete performs a single chat completion.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error)
	// Healthy reports whether the provider is reachable.
	Healthy(ctx context.Context) bool
}
