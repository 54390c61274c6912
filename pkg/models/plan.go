package models

import "encoding/json"

// NodeType classifies an execution-plan node.
type NodeType string

// Node type constants.
const (
	NodeTypeAction    NodeType = "action"
	NodeTypeCondition NodeType = "condition"
	NodeTypeLoop      NodeType = "loop"
	NodeTypeParallel  NodeType = "parallel"
)

// Tool names the planner is allowed to emit.
const (
	ToolNavigateTo      = "navigate_to"
	ToolClickElement    = "click_element"
	ToolInputText       = "input_text"
	ToolAPICall         = "api_call"
	ToolExtractData     = "extract_data"
	ToolHumanEscalation = "human_escalation"
)

// PlannerTools is the closed tool set offered to the LLM planner.
var PlannerTools = []string{
	ToolNavigateTo,
	ToolClickElement,
	ToolInputText,
	ToolAPICall,
	ToolExtractData,
	ToolHumanEscalation,
}

// NodeAction is the tool invocation carried by an action node.
type NodeAction struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params,omitempty"`
}

// ExecutionNode is a vertex of a Ghost's execution plan DAG.
type ExecutionNode struct {
	ID        string      `json:"id"`
	Type      NodeType    `json:"type"`
	Action    *NodeAction `json:"action,omitempty"`
	Condition string      `json:"condition,omitempty"`
	Children  []string    `json:"children,omitempty"`
	Fallback  string      `json:"fallback,omitempty"`
	TimeoutMs int         `json:"timeout,omitempty"`
}

// GhostParameter declares a template parameter of a Ghost.
type GhostParameter struct {
	Name         string `json:"name"`
	Type         string `json:"type"` // string | number | boolean | object
	Required     bool   `json:"required"`
	DefaultValue any    `json:"defaultValue,omitempty"`
}

// GhostTrigger is the opaque trigger description stored with a Ghost.
// The condition grammar is owned by the dashboard/driver; the core treats
// it as text.
type GhostTrigger struct {
	Type      string `json:"type"` // event | schedule | api
	Condition string `json:"condition,omitempty"`
}

// DecodePlan unmarshals a stored execution plan (JSON array of nodes).
func DecodePlan(raw []byte) ([]ExecutionNode, error) {
	var plan []ExecutionNode
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}
