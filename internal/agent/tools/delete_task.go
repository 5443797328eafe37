package tools

import (
	"context"
	"fmt"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/model"
)

// DeleteTaskTool removes a task.
type DeleteTaskTool struct {
	base
}

func (t *DeleteTaskTool) Name() string { return agent.ToolDeleteTask }

func (t *DeleteTaskTool) Description() string {
	return "Permanently delete one of the user's tasks."
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id":    map[string]interface{}{"type": "string", "description": "The identifier of the task to delete"},
			"task_title": map[string]interface{}{"type": "string", "description": "The title of the task, used when the id is unknown"},
		},
		"required": []string{"task_id"},
	}
}

func (t *DeleteTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (agent.ToolResult, error) {
	target, clarify, err := t.resolveTarget(ctx, sc, params)
	if err != nil {
		return agent.ToolResult{}, err
	}
	if clarify != nil {
		return *clarify, nil
	}

	deleted, err := t.uc.Delete(ctx, sc, target.ID)
	if err != nil {
		if res, ok := validationFailure(err); ok {
			return res, nil
		}
		t.l.Errorf(ctx, "%s: uc.Delete: %v", LogPrefixDeleteTask, err)
		return agent.ToolResult{}, err
	}

	view := agent.NewTaskView(deleted)
	return agent.ToolResult{
		Success: true,
		TaskID:  deleted.ID,
		Message: fmt.Sprintf(MsgTaskDeleted, deleted.Title),
		Task:    &view,
	}, nil
}
