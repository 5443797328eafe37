package toolmap

import (
	"fmt"
	"strings"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/intent"
)

// Map routes a classified utterance to a tool call. It never fails: every
// condition is reported through Result.
func Map(ci intent.ClassifiedIntent, userID string) Result {
	switch ci.Intent {
	case intent.IntentAddTask:
		return mapAddTask(ci)
	case intent.IntentListTasks:
		return mapListTasks(ci)
	case intent.IntentCompleteTask:
		return mapTargeted(ci, agent.ToolCompleteTask, "complete", "Completing")
	case intent.IntentDeleteTask:
		return mapTargeted(ci, agent.ToolDeleteTask, "delete", "Deleting")
	case intent.IntentUpdateTask:
		return mapTargeted(ci, agent.ToolUpdateTask, "update", "Updating")
	case intent.IntentHelp:
		return Result{
			Success:  true,
			ToolName: agent.ToolHelp,
			ToolParameters: map[string]interface{}{
				ParamMessage: "help",
				ParamUserID:  userID,
			},
			Message: msgHelp,
		}
	default:
		return Result{
			Success:        false,
			ToolParameters: map[string]interface{}{},
			Error:          fmt.Sprintf(errMsgUnknown, ci.Intent),
			Message:        msgUnknown,
		}
	}
}

func mapAddTask(ci intent.ClassifiedIntent) Result {
	title := first(ci.Entities, intent.SlotTitle)
	if title == "" {
		if m := titleFromText.FindStringSubmatch(ci.OriginalText); m != nil {
			title = strings.TrimSpace(m[1])
		}
	}
	if title == "" {
		title = strings.ToLower(strings.TrimSpace(ci.OriginalText))
	}

	params := map[string]interface{}{
		ParamTitle:       title,
		ParamDescription: first(ci.Entities, intent.SlotDescription),
		ParamPriority:    firstOr(ci.Entities, intent.SlotPriority, DefaultPriority),
		ParamCategory:    firstOr(ci.Entities, intent.SlotCategory, DefaultCategory),
	}
	if date, ok := ci.Entities.First(intent.SlotDate); ok {
		params[ParamDueDate] = date
	}

	return Result{
		Success:        true,
		ToolName:       agent.ToolAddTask,
		ToolParameters: params,
		Message:        fmt.Sprintf(msgAdding, title),
	}
}

func mapListTasks(ci intent.ClassifiedIntent) Result {
	params := map[string]interface{}{
		ParamStatus: firstOr(ci.Entities, intent.SlotStatus, DefaultStatus),
		ParamLimit:  DefaultListLimit,
		ParamOffset: 0,
	}
	if v, ok := ci.Entities.First(intent.SlotPriority); ok {
		params[ParamPriority] = v
	}
	if v, ok := ci.Entities.First(intent.SlotCategory); ok {
		params[ParamCategory] = v
	}

	return Result{
		Success:        true,
		ToolName:       agent.ToolListTasks,
		ToolParameters: params,
		Message:        msgListing,
	}
}

// mapTargeted handles the intents that act on one existing task.
func mapTargeted(ci intent.ClassifiedIntent, tool, verb, gerund string) Result {
	taskID := first(ci.Entities, intent.SlotTaskID)
	title := first(ci.Entities, intent.SlotTitle)

	if taskID == "" && title == "" {
		return Result{
			Success:        false,
			ToolParameters: map[string]interface{}{},
			Error:          fmt.Sprintf(errMsgNoTarget, verb, verb),
			Message:        fmt.Sprintf(msgNoTarget, verb),
		}
	}

	params := map[string]interface{}{}
	if taskID == "" {
		taskID = PlaceholderID(title)
		params[ParamTaskTitle] = title
	}
	params[ParamTaskID] = taskID

	switch tool {
	case agent.ToolCompleteTask:
		if v, ok := ci.Entities.First(intent.SlotNotes); ok {
			params[ParamCompletionNotes] = v
		}
	case agent.ToolUpdateTask:
		copySlot(params, ci.Entities, intent.SlotTitle, ParamTitle)
		copySlot(params, ci.Entities, intent.SlotDescription, ParamDescription)
		copySlot(params, ci.Entities, intent.SlotDate, ParamDueDate)
		copySlot(params, ci.Entities, intent.SlotPriority, ParamPriority)
		copySlot(params, ci.Entities, intent.SlotCategory, ParamCategory)
		copySlot(params, ci.Entities, intent.SlotCompleted, ParamCompleted)
	}

	return Result{
		Success:        true,
		ToolName:       tool,
		ToolParameters: params,
		Message:        fmt.Sprintf(msgTargeting, gerund, taskID),
	}
}

// PlaceholderID derives a stand-in identifier from a task title.
func PlaceholderID(title string) string {
	return PlaceholderIDPrefix + strings.ReplaceAll(title, " ", "-")
}

// IsPlaceholderID reports whether id was made by PlaceholderID.
func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, PlaceholderIDPrefix)
}

func first(e intent.Entities, slot string) string {
	v, _ := e.First(slot)
	return v
}

func firstOr(e intent.Entities, slot, def string) string {
	if v, ok := e.First(slot); ok {
		return v
	}
	return def
}

func copySlot(params map[string]interface{}, e intent.Entities, slot, param string) {
	if v, ok := e.First(slot); ok {
		params[param] = v
	}
}
