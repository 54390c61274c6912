package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Hard cap on a single completion. Callers may pass a shorter deadline.
const completionTimeout = 30 * time.Second

// OpenAIClient implements Client via the OpenAI Chat Completions API.
type OpenAIClient struct {
	chat        openai.Client
	model       string
	temperature *float64
	maxTokens   *int64
}

// NewOpenAIClient creates a client configured from environment variables.
// LLM_API_KEY is required; LLM_MODEL, LLM_BASE_URL, LLM_TEMPERATURE and
// LLM_MAX_TOKENS are optional.
func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return nil, errors.New("LLM_API_KEY is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	var temperature *float64
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 64); err == nil {
			temperature = &temp
		}
	}

	var maxTokens *int64
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 64); err == nil {
			maxTokens = &max
		}
	}

	slog.Info("LLM client configured", "model", model)

	return &OpenAIClient{
		chat:        openai.NewClient(opts...),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Complete performs a single chat completion with a hard 30s timeout.
func (c *OpenAIClient) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	model := req.Model
	if model == "" {
		model = c.model
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if temp := firstNonNil(req.Temperature, c.temperature); temp != nil {
		params.Temperature = openai.Float(*temp)
	}
	if max := firstNonNil(req.MaxTokens, c.maxTokens); max != nil {
		params.MaxTokens = openai.Int(*max)
	}

	resp, err := c.chat.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	return &CompletionResult{
		Content:      choice.Message.Content,
		FinishReason: mapFinishReason(choice.FinishReason),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Healthy issues a minimal completion to verify connectivity.
func (c *OpenAIClient) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.chat.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(c.model),
		Messages:  []openai.ChatCompletionMessageParamUnion{openai.UserMessage("ping")},
		MaxTokens: openai.Int(1),
	})
	return err == nil
}

func mapFinishReason(reason string) FinishReason {
	switch reason {
	case "stop":
		return FinishStop
	case "length":
		return FinishLength
	case "tool_calls":
		return FinishToolCalls
	case "content_filter":
		return FinishContentFilter
	default:
		return FinishStop
	}
}

func firstNonNil[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}
