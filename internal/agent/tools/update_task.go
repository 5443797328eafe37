package tools

import (
	"context"
	"fmt"
	"strings"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
)

// UpdateTaskTool changes fields of a task.
type UpdateTaskTool struct {
	base
}

func (t *UpdateTaskTool) Name() string { return agent.ToolUpdateTask }

func (t *UpdateTaskTool) Description() string {
	return "Change the title, description, due date, priority, category or completion of a task."
}

func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id":     map[string]interface{}{"type": "string", "description": "The identifier of the task to update"},
			"task_title":  map[string]interface{}{"type": "string", "description": "The title of the task, used when the id is unknown"},
			"title":       map[string]interface{}{"type": "string", "description": "New title for the task"},
			"description": map[string]interface{}{"type": "string", "description": "New description for the task"},
			"due_date":    map[string]interface{}{"type": "string", "description": "New due date"},
			"priority":    map[string]interface{}{"type": "string", "enum": []string{"low", "medium", "high", "urgent"}},
			"category":    map[string]interface{}{"type": "string", "description": "New category for the task"},
			"completed":   map[string]interface{}{"type": "boolean", "description": "New completion status"},
		},
		"required": []string{"task_id"},
	}
}

func (t *UpdateTaskTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (agent.ToolResult, error) {
	target, clarify, err := t.resolveTarget(ctx, sc, params)
	if err != nil {
		return agent.ToolResult{}, err
	}
	if clarify != nil {
		return *clarify, nil
	}

	in, res := t.buildInput(target, params)
	if res != nil {
		return *res, nil
	}
	if in == nil {
		return *failure(fmt.Sprintf(MsgNothingToUpdate, target.Title)), nil
	}

	updated, err := t.uc.Update(ctx, sc, *in)
	if err != nil {
		if res, ok := validationFailure(err); ok {
			return res, nil
		}
		t.l.Errorf(ctx, "%s: uc.Update: %v", LogPrefixUpdateTask, err)
		return agent.ToolResult{}, err
	}

	view := agent.NewTaskView(updated)
	return agent.ToolResult{
		Success: true,
		TaskID:  updated.ID,
		Message: fmt.Sprintf(MsgTaskUpdated, updated.Title),
		Task:    &view,
	}, nil
}

// buildInput returns nil when params change nothing. A title equal to the
// one used to find the task is not a rename.
func (t *UpdateTaskTool) buildInput(target model.Task, params map[string]interface{}) (*task.UpdateInput, *agent.ToolResult) {
	in := task.UpdateInput{ID: target.ID}
	changed := false

	if title := stringParam(params, toolmap.ParamTitle); title != "" &&
		!strings.EqualFold(title, stringParam(params, toolmap.ParamTaskTitle)) &&
		!strings.EqualFold(title, target.Title) {
		in.Title = &title
		changed = true
	}

	if _, ok := params[toolmap.ParamDescription]; ok {
		d := stringParam(params, toolmap.ParamDescription)
		in.Description = &d
		changed = true
	}

	if raw := stringParam(params, toolmap.ParamDueDate); raw != "" {
		due, err := t.resolveDate(raw)
		if err != nil {
			return nil, failure(fmt.Sprintf(MsgBadDate, raw))
		}
		in.DueDate = due
		changed = true
	}

	if raw := stringParam(params, toolmap.ParamPriority); raw != "" {
		p, ok := normalizePriority(raw)
		if !ok {
			return nil, failure(fmt.Sprintf(MsgBadPriority, raw))
		}
		in.Priority = &p
		changed = true
	}

	if raw := stringParam(params, toolmap.ParamCategory); raw != "" {
		c := normalizeCategory(raw)
		in.Category = &c
		changed = true
	}

	if v, ok := params[toolmap.ParamCompleted]; ok && v != nil {
		var done bool
		switch b := v.(type) {
		case bool:
			done = b
		default:
			raw := stringParam(params, toolmap.ParamCompleted)
			if done, ok = parseCompleted(raw); !ok {
				return nil, failure(fmt.Sprintf(MsgBadCompleted, raw))
			}
		}
		in.Completed = &done
		changed = true
	}

	if !changed {
		return nil, nil
	}
	return &in, nil
}
