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

// maxListedInMessage caps how many tasks are spelled out in the reply text.
const maxListedInMessage = 20

// ListTasksTool lists the user's tasks.
type ListTasksTool struct {
	base
}

func (t *ListTasksTool) Name() string { return agent.ToolListTasks }

func (t *ListTasksTool) Description() string {
	return "List the user's tasks, optionally filtered by status, priority or category."
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status":   map[string]interface{}{"type": "string", "enum": []string{"all", "pending", "completed"}},
			"priority": map[string]interface{}{"type": "string", "enum": []string{"low", "medium", "high", "urgent"}},
			"category": map[string]interface{}{"type": "string", "description": "Filter by category"},
			"limit":    map[string]interface{}{"type": "integer", "description": "Maximum number of tasks to return (max: 100)"},
			"offset":   map[string]interface{}{"type": "integer", "description": "Number of tasks to skip for pagination"},
		},
	}
}

func (t *ListTasksTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (agent.ToolResult, error) {
	rawStatus := stringParam(params, toolmap.ParamStatus)
	status, ok := normalizeStatus(rawStatus)
	if !ok {
		return *failure(fmt.Sprintf(MsgBadStatus, rawStatus)), nil
	}

	in := task.ListInput{
		Status:   status,
		Category: normalizeCategory(stringParam(params, toolmap.ParamCategory)),
		Limit:    intParam(params, toolmap.ParamLimit, toolmap.DefaultListLimit),
		Offset:   intParam(params, toolmap.ParamOffset, 0),
	}
	if raw := stringParam(params, toolmap.ParamPriority); raw != "" {
		p, ok := normalizePriority(raw)
		if !ok {
			return *failure(fmt.Sprintf(MsgBadPriority, raw)), nil
		}
		in.Priority = p
	}

	out, err := t.uc.List(ctx, sc, in)
	if err != nil {
		if res, ok := validationFailure(err); ok {
			return res, nil
		}
		t.l.Errorf(ctx, "%s: uc.List: %v", LogPrefixListTasks, err)
		return agent.ToolResult{}, err
	}

	views := make([]agent.TaskView, len(out.Tasks))
	for i, tk := range out.Tasks {
		views[i] = agent.NewTaskView(tk)
	}

	filtered := status != model.TaskStatusAll || in.Priority != "" || in.Category != ""
	return agent.ToolResult{
		Success: true,
		Message: renderList(views, out.Total, filtered),
		Tasks:   views,
		Data:    map[string]interface{}{"total_count": out.Total, "returned_count": len(views)},
	}, nil
}

func renderList(views []agent.TaskView, total int, filtered bool) string {
	if len(views) == 0 {
		if filtered {
			return MsgNoMatchingTasks
		}
		return MsgNoTasks
	}

	noun := "tasks"
	if total == 1 {
		noun = "task"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, MsgTaskList, total, noun)
	for i, v := range views {
		if i == maxListedInMessage {
			break
		}
		box := " "
		if v.Completed {
			box = "x"
		}
		fmt.Fprintf(&sb, "\n%d. [%s] %s", i+1, box, v.Title)

		var details []string
		if v.DueDate != "" {
			details = append(details, "due "+v.DueDate)
		}
		if v.Priority != "" && v.Priority != string(model.PriorityMedium) {
			details = append(details, v.Priority)
		}
		if v.Category != "" {
			details = append(details, v.Category)
		}
		if len(details) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(details, ", "))
		}
	}
	if rest := total - min(len(views), maxListedInMessage); rest > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, MsgMoreTasks, rest)
	}
	return sb.String()
}
