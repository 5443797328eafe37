package toolmap

import "regexp"

// Parameter names understood by the task tools.
const (
	ParamTitle           = "title"
	ParamDescription     = "description"
	ParamPriority        = "priority"
	ParamCategory        = "category"
	ParamDueDate         = "due_date"
	ParamStatus          = "status"
	ParamLimit           = "limit"
	ParamOffset          = "offset"
	ParamTaskID          = "task_id"
	ParamTaskTitle       = "task_title"
	ParamCompletionNotes = "completion_notes"
	ParamCompleted       = "completed"
	ParamMessage         = "message"
	ParamUserID          = "user_id"
)

const (
	DefaultPriority  = "medium"
	DefaultCategory  = "general"
	DefaultStatus    = "all"
	DefaultListLimit = 50

	// PlaceholderIDPrefix marks an identifier derived from a spoken title.
	// Tools resolve it against stored tasks.
	PlaceholderIDPrefix = "placeholder-id-for-"
)

const (
	msgAdding    = "Adding task: %s"
	msgListing   = "Listing tasks"
	msgTargeting = "%s task: %s"
	msgHelp      = "Showing help information"
	msgUnknown   = "I didn't understand your request. Could you rephrase it?"

	errMsgNoTarget = "Please specify which task to %s. You can say something like '%s the grocery shopping task'"
	msgNoTarget    = "Which task would you like to %s?"
	errMsgUnknown  = "Could not understand intent: %s. Please try rephrasing your request."
)

// titleFromText recovers a title from "add a task to ..." when no title slot was extracted.
var titleFromText = regexp.MustCompile(`(?i)(?:add|create|make)\s+(?:a\s+)?(?:task|todo|note|item)\s+to\s+(.+?)(?:\.|$)`)
