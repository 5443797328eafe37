package tools

import (
	"context"
	"fmt"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
)

// AddTaskTool creates a task.
type AddTaskTool struct {
	base
}

func (t *AddTaskTool) Name() string { return agent.ToolAddTask }

func (t *AddTaskTool) Description() string {
	return "Create a new task for the user with an optional due date, priority and category."
}

func (t *AddTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title":       map[string]interface{}{"type": "string", "description": "The title of the task"},
			"description": map[string]interface{}{"type": "string", "description": "Detailed description of the task"},
			"due_date":    map[string]interface{}{"type": "string", "description": "Due date: YYYY-MM-DD or a phrase such as 'tomorrow' or 'next friday'"},
			"priority":    map[string]interface{}{"type": "string", "enum": []string{"low", "medium", "high", "urgent"}},
			"category":    map[string]interface{}{"type": "string", "description": "Category for organizing tasks"},
		},
		"required": []string{"title"},
	}
}

func (t *AddTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (agent.ToolResult, error) {
	title := stringParam(params, toolmap.ParamTitle)
	if title == "" {
		return *failure(MsgMissingTitle), nil
	}

	in := task.CreateInput{
		Title:       title,
		Description: stringParam(params, toolmap.ParamDescription),
		Priority:    model.PriorityMedium,
	}

	if raw := stringParam(params, toolmap.ParamPriority); raw != "" {
		p, ok := normalizePriority(raw)
		if !ok {
			return *failure(fmt.Sprintf(MsgBadPriority, raw)), nil
		}
		in.Priority = p
	}

	if c := normalizeCategory(stringParam(params, toolmap.ParamCategory)); c != toolmap.DefaultCategory {
		in.Category = c
	}

	if raw := stringParam(params, toolmap.ParamDueDate); raw != "" {
		due, err := t.resolveDate(raw)
		if err != nil {
			return *failure(fmt.Sprintf(MsgBadDate, raw)), nil
		}
		in.DueDate = due
	}

	created, err := t.uc.Create(ctx, sc, in)
	if err != nil {
		if res, ok := validationFailure(err); ok {
			return res, nil
		}
		t.l.Errorf(ctx, "%s: uc.Create: %v", LogPrefixAddTask, err)
		return agent.ToolResult{}, err
	}

	view := agent.NewTaskView(created)
	return agent.ToolResult{
		Success: true,
		TaskID:  created.ID,
		Message: fmt.Sprintf(MsgTaskCreated, created.Title),
		Task:    &view,
	}, nil
}
