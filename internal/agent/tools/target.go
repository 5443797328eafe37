package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
)

// resolveTarget finds the task a targeted tool acts on. A placeholder
// identifier or a task_title parameter is looked up by title; anything else
// is taken as a stored id. A non-nil ToolResult reports a target the user
// must clarify.
func (b base) resolveTarget(ctx context.Context, sc model.Scope, params map[string]interface{}) (model.Task, *agent.ToolResult, error) {
	id := stringParam(params, toolmap.ParamTaskID)
	title := stringParam(params, toolmap.ParamTaskTitle)
	if title == "" && toolmap.IsPlaceholderID(id) {
		title = strings.ReplaceAll(strings.TrimPrefix(id, toolmap.PlaceholderIDPrefix), "-", " ")
	}

	var (
		t   model.Task
		err error
	)
	switch {
	case title != "":
		t, err = b.uc.FindByTitle(ctx, sc, title)
	case id != "":
		t, err = b.uc.Detail(ctx, sc, id)
	default:
		return model.Task{}, failure(MsgMissingTarget), nil
	}

	switch {
	case err == nil:
		return t, nil, nil
	case errors.Is(err, task.ErrTaskNotFound):
		if title != "" {
			return model.Task{}, failure(fmt.Sprintf(MsgTaskNotFound, title)), nil
		}
		return model.Task{}, failure(MsgTaskIDNotFound), nil
	case errors.Is(err, task.ErrAmbiguousTitle):
		return model.Task{}, failure(fmt.Sprintf(MsgAmbiguousTitle, title)), nil
	case errors.Is(err, task.ErrEmptyTitleQuery):
		return model.Task{}, failure(MsgMissingTarget), nil
	default:
		b.l.Errorf(ctx, "%s: %v", LogPrefixResolve, err)
		return model.Task{}, nil, err
	}
}

func failure(msg string) *agent.ToolResult {
	return &agent.ToolResult{Success: false, Message: msg}
}

// validationFailure renders use-case validation errors as user-facing results.
func validationFailure(err error) (agent.ToolResult, bool) {
	switch {
	case errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrDescriptionTooLong),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPagination):
		return *failure(fmt.Sprintf(MsgInvalidInput, err.Error())), true
	case errors.Is(err, task.ErrTaskNotFound):
		return *failure(MsgTaskIDNotFound), true
	}
	return agent.ToolResult{}, false
}
