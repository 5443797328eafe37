package tools

import (
	"context"
	"slices"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/model"
)

// HelpTool describes what the assistant can do.
type HelpTool struct{}

func (t *HelpTool) Name() string        { return agent.ToolHelp }
func (t *HelpTool) Description() string { return "Explain what the assistant can do." }

func (t *HelpTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{"type": "string"},
		},
	}
}

func (t *HelpTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (agent.ToolResult, error) {
	return agent.ToolResult{
		Success: true,
		Message: MsgHelp,
		Data:    map[string]interface{}{"supported_actions": slices.Clone(SupportedActions)},
	}, nil
}
