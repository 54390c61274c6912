package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/models"
)

const plannerSystemPrompt = `You are an automation planner. Produce an execution plan as a JSON array of nodes. Each node is {"id": "<string>", "type": "action", "action": {"tool": "<tool>", "params": {...}}, "timeout": <ms, optional>}. Allowed tools: navigate_to, click_element, input_text, api_call, extract_data, human_escalation. Prefer api_call over browser actions when an API exists. Include fallbacks for fragile steps. Respond with the JSON array only.`

// escalationReason is the fallback plan's reason string.
const escalationReason = "Could not generate execution plan automatically"

// plan asks the LLM for an execution plan. Any failure yields the single-step
// human escalation plan.
func (e *Engine) plan(ctx context.Context, ghost *Ghost, params map[string]any) []models.ExecutionNode {
	nodes, err := e.planWithLLM(ctx, ghost, params)
	if err != nil {
		e.logger.Warn("LLM planning failed, escalating to human",
			"ghost_id", ghost.ID, "error", err)
		return fallbackPlan()
	}
	return nodes
}

func (e *Engine) planWithLLM(ctx context.Context, ghost *Ghost, params map[string]any) ([]models.ExecutionNode, error) {
	if e.llm == nil {
		return nil, errors.New("no LLM client configured")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan the workflow %q.\n", ghost.Name)
	if ghost.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", ghost.Description)
	}
	if len(params) > 0 {
		encoded, _ := json.Marshal(params)
		fmt.Fprintf(&sb, "Parameters: %s\n", encoded)
	}

	result, err := e.llm.Complete(ctx, &llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: plannerSystemPrompt},
			{Role: llm.RoleUser, Content: sb.String()},
		},
	})
	if err != nil {
		return nil, err
	}

	raw, err := extractJSONArray(result.Content)
	if err != nil {
		return nil, err
	}
	nodes, err := models.DecodePlan([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if len(nodes) == 0 {
		return nil, errors.New("planner returned an empty plan")
	}
	return nodes, nil
}

func fallbackPlan() []models.ExecutionNode {
	return []models.ExecutionNode{{
		ID:   "escalate",
		Type: models.NodeTypeAction,
		Action: &models.NodeAction{
			Tool:   models.ToolHumanEscalation,
			Params: map[string]any{"reason": escalationReason},
		},
	}}
}

// replan asks the LLM for a single substitute action after a step failure.
func (e *Engine) replan(ctx context.Context, failed models.ExecutionNode, errMsg string) (*models.NodeAction, error) {
	nodeJSON, err := json.Marshal(failed)
	if err != nil {
		return nil, fmt.Errorf("failed to encode node: %w", err)
	}

	prompt := fmt.Sprintf(
		"This automation step failed:\n%s\n\nError: %s\n\nPropose a single substitute action as JSON: {\"tool\": \"<tool>\", \"params\": {...}}. Allowed tools: %s. Respond with JSON only.",
		nodeJSON, errMsg, strings.Join(models.PlannerTools, ", "))

	result, err := e.llm.Complete(ctx, &llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	raw, err := extractJSONObject(result.Content)
	if err != nil {
		return nil, err
	}
	var action models.NodeAction
	if err := json.Unmarshal([]byte(raw), &action); err != nil {
		return nil, fmt.Errorf("failed to parse substitute action: %w", err)
	}
	if action.Tool == "" {
		return nil, errors.New("substitute action has no tool")
	}
	return &action, nil
}

// extractJSONArray returns the first balanced [...] block in s.
func extractJSONArray(s string) (string, error) {
	return extractBalanced(s, '[', ']')
}

// extractJSONObject returns the first balanced {...} block in s.
func extractJSONObject(s string) (string, error) {
	return extractBalanced(s, '{', '}')
}

func extractBalanced(s string, openCh, closeCh byte) (string, error) {
	start := strings.IndexByte(s, openCh)
	if start < 0 {
		return "", fmt.Errorf("no %c...%c block in response", openCh, closeCh)
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced %c...%c block in response", openCh, closeCh)
}
