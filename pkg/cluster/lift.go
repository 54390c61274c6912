package cluster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ghostworks/ghostd/pkg/llm"
)

const (
	// liftClusterLimit bounds how many clusters per run get LLM lifting.
	liftClusterLimit = 5
	// liftSampleLimit bounds how many member sequences go into the prompt.
	liftSampleLimit = 5
)

const liftSystemPrompt = `You analyze recurring browser workflow patterns observed as sequences of privacy-preserving intent labels. Given sample sequences, respond with a single JSON object: {"name": "<short workflow name>", "description": "<one sentence>", "confidence": <0..1>}. Respond with JSON only.`

// lifted is the parsed result of abstraction lifting.
type lifted struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// lift asks the LLM to name and describe the cluster's dominant workflow.
func (d *Detector) lift(ctx context.Context, g clusterGroup) (*lifted, error) {
	prompt := buildLiftPrompt(g)

	result, err := d.llm.Complete(ctx, &llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: liftSystemPrompt},
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

	var out lifted
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to parse lifting response: %w", err)
	}
	if out.Confidence < 0 || out.Confidence > 1 {
		out.Confidence = defaultLLMConfidence
	}
	return &out, nil
}

// buildLiftPrompt renders sample sequences as "label (type)" steps joined by
// arrows, followed by a frequency summary.
func buildLiftPrompt(g clusterGroup) string {
	var sb strings.Builder
	sb.WriteString("Observed workflow sequences:\n")

	samples := g.members
	if len(samples) > liftSampleLimit {
		samples = samples[:liftSampleLimit]
	}
	for i, m := range samples {
		steps := make([]string, len(m.Events))
		for j, ev := range m.Events {
			steps[j] = fmt.Sprintf("%s (%s)", ev.IntentLabel, ev.EventType)
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.Join(steps, " -> ")))
	}

	sb.WriteString(fmt.Sprintf("\nThis pattern occurred %d times across %d sessions.\n",
		len(g.members), countSessions(g.members)))
	return sb.String()
}

func countSessions(members []EventSequence) int {
	sessions := make(map[string]struct{}, len(members))
	for _, m := range members {
		sessions[m.SessionFingerprint] = struct{}{}
	}
	return len(sessions)
}

// extractJSONObject returns the first balanced {...} block in s. Models often
// wrap JSON in prose or code fences.
func extractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", errors.New("no JSON object in response")
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errors.New("unbalanced JSON object in response")
}
