package tools

import (
	"context"
	"fmt"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
)

// CompleteTaskTool marks a task as done.
type CompleteTaskTool struct {
	base
}

func (t *CompleteTaskTool) Name() string { return agent.ToolCompleteTask }

func (t *CompleteTaskTool) Description() string {
	return "Mark one of the user's tasks as completed."
}

func (t *CompleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id":          map[string]interface{}{"type": "string", "description": "The identifier of the task to complete"},
			"task_title":       map[string]interface{}{"type": "string", "description": "The title of the task, used when the id is unknown"},
			"completion_notes": map[string]interface{}{"type": "string", "description": "Additional notes about task completion"},
		},
		"required": []string{"task_id"},
	}
}

func (t *CompleteTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (agent.ToolResult, error) {
	target, clarify, err := t.resolveTarget(ctx, sc, params)
	if err != nil {
		return agent.ToolResult{}, err
	}
	if clarify != nil {
		return *clarify, nil
	}

	if target.Completed {
		view := agent.NewTaskView(target)
		return agent.ToolResult{
			Success: true,
			TaskID:  target.ID,
			Message: fmt.Sprintf(MsgAlreadyCompleted, target.Title),
			Task:    &view,
		}, nil
	}

	done, err := t.uc.Complete(ctx, sc, task.CompleteInput{
		ID:    target.ID,
		Notes: stringParam(params, toolmap.ParamCompletionNotes),
	})
	if err != nil {
		if res, ok := validationFailure(err); ok {
			return res, nil
		}
		t.l.Errorf(ctx, "%s: uc.Complete: %v", LogPrefixCompleteTask, err)
		return agent.ToolResult{}, err
	}

	view := agent.NewTaskView(done)
	return agent.ToolResult{
		Success: true,
		TaskID:  done.ID,
		Message: fmt.Sprintf(MsgTaskCompleted, done.Title),
		Task:    &view,
	}, nil
}
