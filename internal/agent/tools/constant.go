package tools

// Log prefixes
const (
	LogPrefixAddTask      = "internal.agent.tools.AddTask"
	LogPrefixListTasks    = "internal.agent.tools.ListTasks"
	LogPrefixCompleteTask = "internal.agent.tools.CompleteTask"
	LogPrefixDeleteTask   = "internal.agent.tools.DeleteTask"
	LogPrefixUpdateTask   = "internal.agent.tools.UpdateTask"
	LogPrefixResolve      = "internal.agent.tools.resolveTarget"
)

// User-facing messages
const (
	MsgTaskCreated      = "Task '%s' created successfully"
	MsgTaskCompleted    = "Task '%s' marked as completed"
	MsgAlreadyCompleted = "Task '%s' is already completed"
	MsgTaskDeleted      = "Task '%s' deleted successfully"
	MsgTaskUpdated      = "Task '%s' updated successfully"
	MsgNothingToUpdate  = "What would you like to change about '%s'?"
	MsgNoTasks          = "You don't have any tasks yet."
	MsgNoMatchingTasks  = "No tasks match that filter."
	MsgTaskList         = "You have %d %s:"
	MsgMoreTasks        = "...and %d more."

	MsgTaskNotFound   = "I couldn't find a task called '%s'."
	MsgTaskIDNotFound = "I couldn't find that task."
	MsgAmbiguousTitle = "More than one task matches '%s'. Please be more specific."
	MsgMissingTarget  = "Please tell me which task you mean."
	MsgMissingTitle   = "Please tell me what the task is."
	MsgBadPriority    = "I don't know the priority '%s'. Use low, medium, high or urgent."
	MsgBadDate        = "I couldn't understand the date '%s'."
	MsgBadStatus      = "Invalid status '%s'. Use all, pending or completed."
	MsgBadCompleted   = "I couldn't tell whether '%s' means done or not done."
	MsgInvalidInput   = "That doesn't look right: %s."

	MsgHelp = "I'm your Todo AI Assistant. I can help you manage your tasks. You can ask me to add, list, update, complete, or delete tasks."
)

// SupportedActions is listed by the help tool.
var SupportedActions = []string{"add task", "list tasks", "update task", "complete task", "delete task"}
